// Package storage provides SQLite-based persistence for named piece layouts.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"tangram-kit/internal/tangram"
)

// Store manages the SQLite database connection for layout persistence.
type Store struct {
	db *sql.DB
}

// LayoutRow describes a stored layout without its piece geometry.
type LayoutRow struct {
	ID         int64
	Name       string
	Unit       float64
	PieceCount int
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

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS layouts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			unit REAL NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS pieces (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			layout_id INTEGER NOT NULL,
			piece_id TEXT NOT NULL,
			kind TEXT NOT NULL,
			x REAL NOT NULL,
			y REAL NOT NULL,
			rotation REAL NOT NULL,
			color TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_pieces_layout_id ON pieces(layout_id);
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

// SaveLayout stores a named layout and its pieces in a single transaction,
// replacing any layout previously stored under the same name. Kind and
// color travel as their symbolic names, so a database written by one build
// stays readable after the enum values shift.
// Returns the ID of the layout row.
func (s *Store) SaveLayout(name string, unit float64, pieces []tangram.Piece) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := deleteLayoutTx(tx, name); err != nil {
		return 0, fmt.Errorf("storage: cannot replace layout %q: %w", name, err)
	}

	result, err := tx.Exec("INSERT INTO layouts (name, unit) VALUES (?, ?)", name, unit)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save layout %q: %w", name, err)
	}

	layoutID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	for _, p := range pieces {
		rec := p.Record()
		_, err := tx.Exec(
			`INSERT INTO pieces (layout_id, piece_id, kind, x, y, rotation, color)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			layoutID, rec.ID, rec.Kind, rec.X, rec.Y, rec.Rotation, rec.Color,
		)
		if err != nil {
			return 0, fmt.Errorf("storage: cannot save piece %s: %w", rec.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit layout %q: %w", name, err)
	}

	return layoutID, nil
}

// LoadLayout retrieves a stored layout and rebuilds its pieces in the order
// they were saved. Returns nil, nil, nil when no layout with that name
// exists.
func (s *Store) LoadLayout(name string) (*LayoutRow, []tangram.Piece, error) {
	var row LayoutRow
	var createdAt any

	err := s.db.QueryRow(
		"SELECT id, name, unit, created_at FROM layouts WHERE name = ?",
		name,
	).Scan(&row.ID, &row.Name, &row.Unit, &createdAt)

	if err == sql.ErrNoRows {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("storage: cannot query layout %q: %w", name, err)
	}

	// Parse the datetime - handle both time.Time and string
	switch v := createdAt.(type) {
	case time.Time:
		row.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			row.CreatedAt = parsed
		}
	}

	rows, err := s.db.Query(
		`SELECT piece_id, kind, x, y, rotation, color
		 FROM pieces
		 WHERE layout_id = ?
		 ORDER BY id`,
		row.ID,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("storage: cannot query pieces of %q: %w", name, err)
	}
	defer rows.Close()

	var pieces []tangram.Piece
	for rows.Next() {
		var rec tangram.Record
		if err := rows.Scan(&rec.ID, &rec.Kind, &rec.X, &rec.Y, &rec.Rotation, &rec.Color); err != nil {
			return nil, nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		p, err := tangram.PieceFromRecord(rec)
		if err != nil {
			return nil, nil, fmt.Errorf("storage: layout %q: %w", name, err)
		}
		pieces = append(pieces, p)
	}

	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	row.PieceCount = len(pieces)
	return &row, pieces, nil
}

// ListLayouts retrieves all stored layouts ordered by name.
func (s *Store) ListLayouts() ([]LayoutRow, error) {
	rows, err := s.db.Query(
		`SELECT l.id, l.name, l.unit, COUNT(p.id), l.created_at
		 FROM layouts l
		 LEFT JOIN pieces p ON p.layout_id = l.id
		 GROUP BY l.id
		 ORDER BY l.name`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query layouts: %w", err)
	}
	defer rows.Close()

	var layouts []LayoutRow
	for rows.Next() {
		var row LayoutRow
		var createdAt any
		if err := rows.Scan(&row.ID, &row.Name, &row.Unit, &row.PieceCount, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			row.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				row.CreatedAt = parsed
			}
		}

		layouts = append(layouts, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return layouts, nil
}

// DeleteLayout removes a stored layout and its pieces.
// Returns false when no layout with that name exists.
func (s *Store) DeleteLayout(name string) (bool, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return false, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	removed, err := deleteLayoutTx(tx, name)
	if err != nil {
		return false, fmt.Errorf("storage: cannot delete layout %q: %w", name, err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("storage: cannot commit delete of %q: %w", name, err)
	}

	return removed > 0, nil
}

// deleteLayoutTx removes a layout and its pieces inside an open transaction,
// returning the number of layout rows removed.
func deleteLayoutTx(tx *sql.Tx, name string) (int64, error) {
	if _, err := tx.Exec(
		"DELETE FROM pieces WHERE layout_id IN (SELECT id FROM layouts WHERE name = ?)",
		name,
	); err != nil {
		return 0, err
	}

	result, err := tx.Exec("DELETE FROM layouts WHERE name = ?", name)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
