package shared

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// NewDatabase opens the SQLite database at path and verifies the connection
// before returning it. Use ":memory:" for a throwaway in-memory database.
func NewDatabase(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to reach database %s: %w", path, err)
	}

	return db, nil
}

// OpenDatabase opens the configured source database with its connection pool
// limits applied. Limits only take effect when positive; sqlite admits a
// single writer, so the driver defaults suit tests and one-shot commands.
func (c SourceConfig) OpenDatabase() (*sql.DB, error) {
	db, err := NewDatabase(c.DatabasePath)
	if err != nil {
		return nil, err
	}

	if c.MaxOpenConns > 0 {
		db.SetMaxOpenConns(c.MaxOpenConns)
	}
	if c.MaxIdleConns > 0 {
		db.SetMaxIdleConns(c.MaxIdleConns)
	}

	return db, nil
}
