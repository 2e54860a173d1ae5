package source

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/desertthunder/playaxis/internal/axis"
	"github.com/desertthunder/playaxis/internal/shared"
)

// SQLiteSource reads one column of a SQLite table as the category field, in
// rowid order.
type SQLiteSource struct {
	db     *sql.DB
	table  string
	column string
}

// NewSQLiteSource creates a SQLiteSource over an open database connection.
func NewSQLiteSource(db *sql.DB, table, column string) (*SQLiteSource, error) {
	if table == "" || column == "" {
		return nil, fmt.Errorf("%w: table and column are required", shared.ErrMissingArgument)
	}
	return &SQLiteSource{db: db, table: table, column: column}, nil
}

func (s *SQLiteSource) Name() string { return "sqlite" }

// Load queries the column and builds a snapshot. Row order follows rowid so
// insertion order defines playback order.
func (s *SQLiteSource) Load(ctx context.Context) (*axis.Snapshot, error) {
	query := fmt.Sprintf("SELECT %q FROM %q ORDER BY rowid", s.column, s.table)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrSourceUnavailable, err)
	}
	defer rows.Close()

	var values []any
	for rows.Next() {
		var value any
		if err := rows.Scan(&value); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		values = append(values, value)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration failed: %w", err)
	}

	return &axis.Snapshot{
		Categorical: &axis.Categorical{
			Categories: []axis.CategoryColumn{{Source: s.column, Values: values}},
		},
	}, nil
}

// Seed creates the demo table and fills it with a small month sequence so a
// fresh setup has something to play.
func Seed(db *sql.DB, table, column string) error {
	if table == "" || column == "" {
		return fmt.Errorf("%w: table and column are required", shared.ErrMissingArgument)
	}

	create := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %q (%q TEXT NOT NULL)", table, column)
	if _, err := db.Exec(create); err != nil {
		return fmt.Errorf("failed to create demo table: %w", err)
	}

	var count int
	if err := db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %q", table)).Scan(&count); err != nil {
		return fmt.Errorf("failed to count demo rows: %w", err)
	}
	if count > 0 {
		return nil
	}

	months := []string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
	insert := fmt.Sprintf("INSERT INTO %q (%q) VALUES (?)", table, column)
	for _, month := range months {
		if _, err := db.Exec(insert, month); err != nil {
			return fmt.Errorf("failed to seed demo row: %w", err)
		}
	}

	return nil
}
