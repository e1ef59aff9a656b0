package gazetteer

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// PostgresSource loads landmarks from the landmarks table. The schema
// mirrors the CSV columns, with aliases stored semicolon-separated:
//
//	CREATE TABLE landmarks (
//	    id       BIGSERIAL PRIMARY KEY,
//	    name     TEXT NOT NULL,
//	    category TEXT NOT NULL DEFAULT '',
//	    city     TEXT NOT NULL,
//	    lat      DOUBLE PRECISION NOT NULL,
//	    lng      DOUBLE PRECISION NOT NULL,
//	    pincode  TEXT NOT NULL DEFAULT '',
//	    aliases  TEXT NOT NULL DEFAULT ''
//	);
type PostgresSource struct {
	db *sql.DB
}

// NewPostgresSource wraps an open database handle. The caller owns the
// handle's lifecycle.
func NewPostgresSource(db *sql.DB) *PostgresSource {
	return &PostgresSource{db: db}
}

func (p *PostgresSource) Load(ctx context.Context) ([]Landmark, error) {
	rows, err := p.db.QueryContext(ctx, `
		SELECT name, category, city, lat, lng, pincode, aliases
		FROM landmarks
		ORDER BY city, name
	`)
	if err != nil {
		return nil, fmt.Errorf("query landmarks: %w", err)
	}
	defer rows.Close()

	var landmarks []Landmark
	for rows.Next() {
		var lm Landmark
		var aliases string

		if err := rows.Scan(&lm.Name, &lm.Category, &lm.City,
			&lm.Lat, &lm.Lng, &lm.Pincode, &aliases); err != nil {
			return nil, fmt.Errorf("scan landmark row: %w", err)
		}

		lm.City = strings.ToLower(lm.City)
		lm.Category = strings.ToLower(lm.Category)
		for _, a := range strings.Split(aliases, ";") {
			if a = strings.TrimSpace(a); a != "" {
				lm.Aliases = append(lm.Aliases, a)
			}
		}

		landmarks = append(landmarks, lm)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate landmark rows: %w", err)
	}

	return landmarks, nil
}
