// Package store persists tagged directory records in a local SQLite database.
package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkt"
	_ "modernc.org/sqlite"

	"github.com/petalworks/florist-cli/internal/geo"
	"github.com/petalworks/florist-cli/internal/model"
)

// SQLiteStore implements record persistence using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS tagged_stores (
	id           TEXT PRIMARY KEY,
	name         TEXT NOT NULL,
	address      TEXT NOT NULL,
	url          TEXT NOT NULL,
	rating       TEXT NOT NULL,
	rating_count TEXT NOT NULL,
	phone        TEXT NOT NULL,
	image        TEXT NOT NULL,
	district     TEXT NOT NULL,
	geom_wkt     TEXT,
	created_at   DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_tagged_stores_district ON tagged_stores(district);
CREATE INDEX IF NOT EXISTS idx_tagged_stores_name ON tagged_stores(name);
`

// Migrate creates the schema if it does not exist.
func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// InsertTagged stores one tagged record. When the record URL carries an
// embedded coordinate, the point is stored as WKT alongside the text fields.
func (s *SQLiteStore) InsertTagged(ctx context.Context, tr model.TaggedRecord) error {
	var geomWKT sql.NullString
	if coord, ok := geo.ExtractCoordinate(tr.URL); ok {
		// WKT points are (x y) = (lon lat).
		point := geom.NewPointFlat(geom.XY, []float64{coord.Lon, coord.Lat})
		text, err := wkt.Marshal(point)
		if err != nil {
			return eris.Wrap(err, "sqlite: marshal point")
		}
		geomWKT = sql.NullString{String: text, Valid: true}
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO tagged_stores (id, name, address, url, rating, rating_count, phone, image, district, geom_wkt)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		uuid.New().String(), tr.Name, tr.Address, tr.URL, tr.Rating, tr.RatingCount,
		tr.Phone, tr.Image, tr.District, geomWKT,
	)
	return eris.Wrap(err, "sqlite: insert tagged record")
}

// InsertAll stores tagged records and returns the number inserted.
func (s *SQLiteStore) InsertAll(ctx context.Context, tagged []model.TaggedRecord) (int, error) {
	var inserted int
	for _, tr := range tagged {
		if err := s.InsertTagged(ctx, tr); err != nil {
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}

// CountsByDistrict returns per-district record counts from the store.
func (s *SQLiteStore) CountsByDistrict(ctx context.Context) (model.DistrictCounts, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT district, COUNT(*) FROM tagged_stores GROUP BY district`)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: query district counts")
	}
	defer rows.Close()

	counts := make(model.DistrictCounts)
	for rows.Next() {
		var district string
		var count int
		if err := rows.Scan(&district, &count); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan district count")
		}
		counts[district] = count
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "sqlite: iterate district counts")
	}
	return counts, nil
}
