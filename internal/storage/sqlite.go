// Package storage provides SQLite-based persistence for the level catalog.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/levelsmith/internal/forge"
)

// Store manages the SQLite database connection for the level catalog.
type Store struct {
	db *sql.DB
}

// LevelRecord is one catalog row describing a generated level.
type LevelRecord struct {
	ID         int64
	Index      int
	Width      int
	Height     int
	Seed       uint64
	Difficulty float64
	MaxJumpUp  int
	MaxGap     int
	MaxDrop    int
	Attempts   int
	GenMillis  int64
	CreatedAt  time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS levels (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level_index INTEGER NOT NULL UNIQUE,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			seed TEXT NOT NULL,
			difficulty REAL NOT NULL,
			max_jump INTEGER NOT NULL,
			max_gap INTEGER NOT NULL,
			max_drop INTEGER NOT NULL,
			attempts INTEGER NOT NULL,
			gen_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_levels_index ON levels(level_index);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordLevel inserts a catalog row for a generated level. Regenerating an
// index replaces its previous row.
func (s *Store) RecordLevel(rec LevelRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT OR REPLACE INTO levels
		 (level_index, width, height, seed, difficulty, max_jump, max_gap, max_drop, attempts, gen_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Index, rec.Width, rec.Height, strconv.FormatUint(rec.Seed, 10),
		rec.Difficulty, rec.MaxJumpUp, rec.MaxGap, rec.MaxDrop,
		rec.Attempts, rec.GenMillis,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record level: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// SaveLevelEntry implements forge.CatalogSaver.
// This adapter allows the forge to record batches without direct storage dependency.
func (s *Store) SaveLevelEntry(e forge.LevelEntry) error {
	rec := LevelRecord{
		Index:      e.Index,
		Width:      e.Width,
		Height:     e.Height,
		Seed:       e.Seed,
		Difficulty: e.Difficulty,
		MaxJumpUp:  e.Capability.MaxJumpUp,
		MaxGap:     e.Capability.MaxGap,
		MaxDrop:    e.Capability.MaxDrop,
		Attempts:   e.Attempts,
		GenMillis:  e.GenMillis,
	}
	_, err := s.RecordLevel(rec)
	return err
}

// Ensure Store implements CatalogSaver
var _ forge.CatalogSaver = (*Store)(nil)

// Level retrieves the catalog row for one level index.
// Returns nil when the index has never been recorded.
func (s *Store) Level(index int) (*LevelRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, level_index, width, height, seed, difficulty, max_jump, max_gap, max_drop, attempts, gen_ms, created_at
		 FROM levels
		 WHERE level_index = ?`,
		index,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query level: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("storage: row iteration error: %w", err)
		}
		return nil, nil
	}

	rec, err := scanLevel(rows)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Levels retrieves all catalog rows ordered by level index.
func (s *Store) Levels() ([]LevelRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, level_index, width, height, seed, difficulty, max_jump, max_gap, max_drop, attempts, gen_ms, created_at
		 FROM levels
		 ORDER BY level_index ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query levels: %w", err)
	}
	defer rows.Close()

	var recs []LevelRecord
	for rows.Next() {
		rec, err := scanLevel(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return recs, nil
}

// LatestIndex returns the highest recorded level index.
// Returns 0 if the catalog is empty.
func (s *Store) LatestIndex() (int, error) {
	var idx sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(level_index) FROM levels").Scan(&idx)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query latest index: %w", err)
	}

	if !idx.Valid {
		return 0, nil
	}

	return int(idx.Int64), nil
}

// CatalogStats aggregates the whole catalog.
type CatalogStats struct {
	Count       int
	MaxIndex    int
	MaxWidth    int
	MaxHeight   int
	AvgAttempts float64
}

// Stats returns aggregate statistics over all recorded levels.
func (s *Store) Stats() (CatalogStats, error) {
	var st CatalogStats
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(MAX(level_index), 0),
		        COALESCE(MAX(width), 0),
		        COALESCE(MAX(height), 0),
		        COALESCE(AVG(attempts), 0)
		 FROM levels`,
	).Scan(&st.Count, &st.MaxIndex, &st.MaxWidth, &st.MaxHeight, &st.AvgAttempts)
	if err != nil {
		return st, fmt.Errorf("storage: cannot query stats: %w", err)
	}
	return st, nil
}

// ClearCatalog deletes all catalog rows.
func (s *Store) ClearCatalog() error {
	_, err := s.db.Exec("DELETE FROM levels")
	if err != nil {
		return fmt.Errorf("storage: cannot clear catalog: %w", err)
	}
	return nil
}

// scanLevel reads one catalog row from the current cursor position.
func scanLevel(rows *sql.Rows) (LevelRecord, error) {
	var rec LevelRecord
	var seed string
	var createdAt any
	if err := rows.Scan(
		&rec.ID, &rec.Index, &rec.Width, &rec.Height, &seed, &rec.Difficulty,
		&rec.MaxJumpUp, &rec.MaxGap, &rec.MaxDrop, &rec.Attempts, &rec.GenMillis,
		&createdAt,
	); err != nil {
		return rec, fmt.Errorf("storage: cannot scan row: %w", err)
	}

	// Seeds are stored as text: they are full-range uint64 values and
	// SQLite integers are signed.
	if parsed, err := strconv.ParseUint(seed, 10, 64); err == nil {
		rec.Seed = parsed
	}

	// Parse the datetime - handle both time.Time and string
	switch v := createdAt.(type) {
	case time.Time:
		rec.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			rec.CreatedAt = parsed
		}
	}

	return rec, nil
}
