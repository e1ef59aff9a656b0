package gazetteer

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/addresspin/internal/geo"
)

func TestSnapshotByCity(t *testing.T) {
	snap := newSnapshot(DefaultLandmarks)

	mumbai := snap.ByCity("Mumbai")
	if len(mumbai) == 0 {
		t.Fatal("expected Mumbai landmarks in seed set")
	}
	for _, lm := range mumbai {
		if lm.City != "mumbai" {
			t.Errorf("ByCity(Mumbai) returned landmark in %q", lm.City)
		}
	}

	// Unknown city falls back to the full set.
	all := snap.ByCity("atlantis")
	if len(all) != snap.Size() {
		t.Errorf("unknown city returned %d landmarks, want all %d", len(all), snap.Size())
	}

	empty := snap.ByCity("")
	if len(empty) != snap.Size() {
		t.Errorf("empty city returned %d landmarks, want all %d", len(empty), snap.Size())
	}
}

func TestSnapshotVocabulary(t *testing.T) {
	snap := newSnapshot([]Landmark{
		{Name: "Shiv Mandir", Aliases: []string{"Shiva Temple"}, City: "mumbai", Lat: 19.1, Lng: 72.8},
		{Name: "Shiv Mandir", City: "pune", Lat: 18.5, Lng: 73.8},
	})

	vocab := snap.Vocabulary()
	if len(vocab) != 2 {
		t.Fatalf("vocabulary = %v, want 2 deduplicated entries", vocab)
	}

	seen := make(map[string]bool)
	for _, v := range vocab {
		seen[v] = true
	}
	if !seen["shiv mandir"] || !seen["shiva temple"] {
		t.Errorf("vocabulary missing expected entries: %v", vocab)
	}
}

func TestCSVLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "landmarks.csv")

	content := `name,category,city,lat,lng,pincode,aliases
Shiv Mandir,religious,mumbai,19.1150,72.8710,400069,shiva temple;shivji mandir
Broken Row,religious,mumbai,not-a-number,72.8,400069,
Gandhi Hall,government,indore,22.7200,75.8620,452007,
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	landmarks, err := FileSource{Path: path}.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(landmarks) != 2 {
		t.Fatalf("loaded %d landmarks, want 2 (malformed row skipped)", len(landmarks))
	}
	if landmarks[0].Name != "Shiv Mandir" || len(landmarks[0].Aliases) != 2 {
		t.Errorf("first landmark = %+v, want Shiv Mandir with 2 aliases", landmarks[0])
	}
	if landmarks[1].Pincode != "452007" {
		t.Errorf("second landmark pincode = %q, want 452007", landmarks[1].Pincode)
	}
}

func TestCSVLoadMissingColumn(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "landmarks.csv")
	if err := os.WriteFile(path, []byte("name,city\nX,mumbai\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := (FileSource{Path: path}).Load(context.Background()); err == nil {
		t.Error("expected error for csv missing lat/lng columns")
	}
}

func TestStoreReloadKeepsSnapshotOnFailure(t *testing.T) {
	ctx := context.Background()

	store, err := NewStore(ctx, StaticSource(DefaultLandmarks), nil)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	before := store.Snapshot()
	if before.Size() != len(DefaultLandmarks) {
		t.Fatalf("snapshot size = %d, want %d", before.Size(), len(DefaultLandmarks))
	}

	// Swap in a source that returns nothing; the old snapshot must survive.
	store.source = StaticSource(nil)
	if err := store.Reload(ctx); err == nil {
		t.Error("expected error from empty reload")
	}
	if store.Snapshot() != before {
		t.Error("failed reload should keep the previous snapshot")
	}
	if store.Reloads() != 1 {
		t.Errorf("Reloads() = %d, want 1", store.Reloads())
	}
}

func TestLoadLocalityAliases(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "locality_aliases.csv")

	content := `variant_name,standardized_name,city
VN,Vijay Nagar,Indore
andheri e,Andheri East,Mumbai
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	aliases, err := LoadLocalityAliases(path)
	if err != nil {
		t.Fatalf("LoadLocalityAliases: %v", err)
	}

	if got := aliases["indore"]["vn"]; got != "Vijay Nagar" {
		t.Errorf("indore/vn = %q, want Vijay Nagar", got)
	}
	if got := aliases["mumbai"]["andheri e"]; got != "Andheri East" {
		t.Errorf("mumbai/andheri e = %q, want Andheri East", got)
	}
}

func TestLoadDeliveryHistory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "delivery_history.csv")

	content := `raw_address,latitude,longitude,delivery_status,city
"flat 3 near shiv mandir",19.1136,72.8697,success,mumbai
"unreachable address",19.1136,72.8697,failed,mumbai
"vijay nagar indore",22.7515,75.8930,success,indore
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	idx := geo.NewDensityIndex(geo.DefaultDensityResolution)
	indexed, err := LoadDeliveryHistory(path, idx)
	if err != nil {
		t.Fatalf("LoadDeliveryHistory: %v", err)
	}

	if indexed != 2 {
		t.Errorf("indexed %d records, want 2 (failed delivery excluded)", indexed)
	}
	if idx.Size() != 2 {
		t.Errorf("index has %d cells, want 2", idx.Size())
	}
}

func TestSnapshotCities(t *testing.T) {
	snap := newSnapshot(DefaultLandmarks)

	cities := snap.Cities()
	if len(cities) == 0 {
		t.Fatal("expected cities in seed set")
	}
	if !sort.StringsAreSorted(cities) {
		t.Errorf("cities not sorted: %v", cities)
	}

	seen := map[string]bool{}
	for _, city := range cities {
		if seen[city] {
			t.Errorf("duplicate city %q", city)
		}
		seen[city] = true
	}
	if !seen["mumbai"] {
		t.Error("expected mumbai in city list")
	}
}

func TestNewStoreMissingSourceFallsBackToDefaults(t *testing.T) {
	ctx := context.Background()

	store, err := NewStore(ctx, FileSource{Path: "/nonexistent/landmarks.csv"}, nil)
	if err != nil {
		t.Fatalf("NewStore with missing source: %v", err)
	}

	snap := store.Snapshot()
	if snap == nil {
		t.Fatal("no snapshot published")
	}
	if snap.Size() != len(DefaultLandmarks) {
		t.Errorf("snapshot size = %d, want built-in %d", snap.Size(), len(DefaultLandmarks))
	}
}
