package gazetteer

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Store publishes the current gazetteer snapshot. Reads are a single
// atomic pointer load; reloads build a complete new snapshot off to
// the side and swap it in, so a failed reload leaves the previous
// snapshot serving.
type Store struct {
	source  Source
	log     *zap.Logger
	current atomic.Pointer[Snapshot]

	reloads atomic.Int64
}

// NewStore creates a store backed by the given source and performs the
// initial load. A nil source falls back to the built-in seed set.
func NewStore(ctx context.Context, source Source, log *zap.Logger) (*Store, error) {
	if source == nil {
		source = StaticSource(DefaultLandmarks)
	}
	if log == nil {
		log = zap.NewNop()
	}

	s := &Store{source: source, log: log}
	if err := s.Reload(ctx); err != nil {
		// A broken source is not fatal while the built-in seed set
		// exists; later reloads can still pick the real data up.
		if len(DefaultLandmarks) == 0 {
			return nil, fmt.Errorf("initial gazetteer load: %w", err)
		}
		s.log.Warn("gazetteer source unavailable, serving built-in defaults",
			zap.Error(err))
		s.current.Store(newSnapshot(DefaultLandmarks))
		s.reloads.Add(1)
	}
	return s, nil
}

// Snapshot returns the current published snapshot. Never nil after a
// successful NewStore.
func (s *Store) Snapshot() *Snapshot {
	return s.current.Load()
}

// Reload rebuilds the snapshot from the source and swaps it in. On
// error the existing snapshot stays published.
func (s *Store) Reload(ctx context.Context) error {
	start := time.Now()

	landmarks, err := s.source.Load(ctx)
	if err != nil {
		s.log.Warn("gazetteer reload failed, keeping previous snapshot",
			zap.Error(err))
		return err
	}
	if len(landmarks) == 0 {
		s.log.Warn("gazetteer source returned no landmarks, keeping previous snapshot")
		return fmt.Errorf("gazetteer source returned no landmarks")
	}

	snapshot := newSnapshot(landmarks)
	s.current.Store(snapshot)
	s.reloads.Add(1)

	s.log.Info("gazetteer snapshot published",
		zap.Int("landmarks", snapshot.Size()),
		zap.Int("vocabulary", len(snapshot.Vocabulary())),
		zap.Duration("took", time.Since(start)))
	return nil
}

// Reloads returns how many snapshots have been published, including
// the initial load.
func (s *Store) Reloads() int64 {
	return s.reloads.Load()
}
