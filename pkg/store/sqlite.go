package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"panomaster/pkg/db"
	"panomaster/pkg/scene"
)

// SQLiteStore implements Store.
type SQLiteStore struct {
	db *db.DB
}

// NewSQLiteStore creates a new store.
func NewSQLiteStore(db *db.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// GetScene returns a preset by name, nil if not found.
func (s *SQLiteStore) GetScene(ctx context.Context, name string) (*scene.Preset, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT name, pano_id, heading, pitch, created_at FROM scene WHERE name = ?`, name)

	preset, err := scanScene(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, err
	}
	return preset, nil
}

// SaveScene inserts or replaces a preset.
func (s *SQLiteStore) SaveScene(ctx context.Context, preset *scene.Preset) error {
	if preset.Name == "" {
		return fmt.Errorf("scene preset needs a name")
	}
	if preset.PanoID == "" {
		return fmt.Errorf("scene preset %q needs a pano id", preset.Name)
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO scene (name, pano_id, heading, pitch)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET pano_id = excluded.pano_id,
		   heading = excluded.heading, pitch = excluded.pitch`,
		preset.Name, preset.PanoID, nullFloat(preset.Heading), nullFloat(preset.Pitch))
	return err
}

// ListScenes returns all presets ordered by name.
func (s *SQLiteStore) ListScenes(ctx context.Context) ([]*scene.Preset, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, pano_id, heading, pitch, created_at FROM scene ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var presets []*scene.Preset
	for rows.Next() {
		preset, err := scanScene(rows)
		if err != nil {
			return nil, err
		}
		presets = append(presets, preset)
	}
	return presets, rows.Err()
}

// DeleteScene removes a preset by name. Deleting a missing preset is not an
// error.
func (s *SQLiteStore) DeleteScene(ctx context.Context, name string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM scene WHERE name = ?`, name)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanScene(row rowScanner) (*scene.Preset, error) {
	var p scene.Preset
	var heading, pitch sql.NullFloat64
	var createdAt sql.NullTime

	if err := row.Scan(&p.Name, &p.PanoID, &heading, &pitch, &createdAt); err != nil {
		return nil, err
	}

	if heading.Valid {
		p.Heading = &heading.Float64
	}
	if pitch.Valid {
		p.Pitch = &pitch.Float64
	}
	if createdAt.Valid {
		p.CreatedAt = createdAt.Time
	}
	return &p, nil
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}
