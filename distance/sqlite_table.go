package distance

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteTable is a Table backed by a SQLite database on disk, for
// distance tables too large to hold entirely in memory. It expects a
// single table with columns (u INTEGER, v INTEGER, dist REAL) and a
// unique index on (u, v); OpenSQLiteTable creates this schema if it
// does not already exist.
type SQLiteTable struct {
	db      *sql.DB
	getStmt *sql.Stmt
	setStmt *sql.Stmt
	closed  bool
}

// OpenSQLiteTable opens (or creates) a SQLite-backed distance table at
// path. Callers must Close it when done.
func OpenSQLiteTable(path string) (*SQLiteTable, error) {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("distance: OpenSQLiteTable: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS distances (
		u INTEGER NOT NULL,
		v INTEGER NOT NULL,
		dist REAL NOT NULL,
		PRIMARY KEY (u, v)
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("distance: OpenSQLiteTable: create schema: %w", err)
	}

	getStmt, err := db.Prepare(`SELECT dist FROM distances WHERE u = ? AND v = ?`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("distance: OpenSQLiteTable: prepare get: %w", err)
	}
	setStmt, err := db.Prepare(`INSERT INTO distances (u, v, dist) VALUES (?, ?, ?)
		ON CONFLICT(u, v) DO UPDATE SET dist = excluded.dist`)
	if err != nil {
		getStmt.Close()
		db.Close()
		return nil, fmt.Errorf("distance: OpenSQLiteTable: prepare set: %w", err)
	}

	return &SQLiteTable{db: db, getStmt: getStmt, setStmt: setStmt}, nil
}

// Get implements Table.
func (t *SQLiteTable) Get(u, v int) (float64, bool) {
	if t.closed {
		return 0, false
	}
	var d float64
	err := t.getStmt.QueryRow(u, v).Scan(&d)
	if err != nil {
		return 0, false
	}
	return d, true
}

// Set persists a precomputed distance, overwriting any existing entry.
func (t *SQLiteTable) Set(u, v int, d float64) error {
	if t.closed {
		return ErrClosed
	}
	if _, err := t.setStmt.Exec(u, v, d); err != nil {
		return fmt.Errorf("distance: SQLiteTable.Set: %w", err)
	}
	return nil
}

// Close releases the underlying database connection.
func (t *SQLiteTable) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true
	t.getStmt.Close()
	t.setStmt.Close()
	return t.db.Close()
}
