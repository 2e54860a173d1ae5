// Package source implements the data binding layer: adapters that load a
// categorical snapshot from local data so the view model builder has
// something to iterate.
//
// Two adapters are provided:
//   - [CSVSource] : one column of a CSV file, header row names the field
//   - [SQLiteSource] : one column of a SQLite table in rowid order
//
// Both produce an [axis.Snapshot] with a single bound category field; row
// order in the underlying data defines playback order.
package source

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/desertthunder/playaxis/internal/axis"
	"github.com/desertthunder/playaxis/internal/shared"
)

// Source loads a categorical snapshot for the view model builder.
type Source interface {
	Load(ctx context.Context) (*axis.Snapshot, error)
	Name() string
}

// CSVSource reads one column of a CSV file as the category field.
//
// The header row supplies column names; Column selects by name, defaulting
// to the first column when empty.
type CSVSource struct {
	Path   string
	Column string
}

// NewCSVSource creates a CSVSource for the given file path and column name.
func NewCSVSource(path, column string) *CSVSource {
	return &CSVSource{Path: path, Column: column}
}

func (s *CSVSource) Name() string { return "csv" }

// Load reads the file and builds a snapshot from the selected column.
func (s *CSVSource) Load(ctx context.Context) (*axis.Snapshot, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrSourceUnavailable, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s", shared.ErrEmptySource, s.Path)
	}

	header := records[0]
	col := 0
	if s.Column != "" {
		col = -1
		for i, name := range header {
			if name == s.Column {
				col = i
				break
			}
		}
		if col == -1 {
			return nil, fmt.Errorf("%w: column %q not in header", shared.ErrNoCategory, s.Column)
		}
	}

	values := make([]any, 0, len(records)-1)
	for _, record := range records[1:] {
		if col >= len(record) {
			values = append(values, nil)
			continue
		}
		values = append(values, record[col])
	}

	return &axis.Snapshot{
		Categorical: &axis.Categorical{
			Categories: []axis.CategoryColumn{{Source: header[col], Values: values}},
		},
	}, nil
}
