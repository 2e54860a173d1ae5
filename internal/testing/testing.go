// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"strconv"
	"sync"

	"github.com/desertthunder/playaxis/internal/axis"
)

// MockSelection is a test double for [host.SelectionManager] recording all
// selection traffic.
type MockSelection struct {
	mu        sync.Mutex
	Selected  []string
	Clears    int
	SelectErr error
	ClearErr  error
}

func (m *MockSelection) Select(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Selected = append(m.Selected, id)
	return m.SelectErr
}

func (m *MockSelection) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Clears++
	return m.ClearErr
}

func (m *MockSelection) Name() string { return "mock" }

// SelectedIDs returns a copy of the recorded selection identifiers.
func (m *MockSelection) SelectedIDs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.Selected...)
}

// ClearCount returns the number of Clear calls seen.
func (m *MockSelection) ClearCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Clears
}

// SeqIdentity is a deterministic [axis.IdentityBuilder] issuing "column:row"
// tokens so tests can assert on selection order without UUIDs.
type SeqIdentity struct{}

func (SeqIdentity) Identity(column string, row int) string {
	return column + ":" + strconv.Itoa(row)
}

// NewSnapshot builds a one-column categorical snapshot for tests.
func NewSnapshot(column string, values ...any) *axis.Snapshot {
	return &axis.Snapshot{
		Categorical: &axis.Categorical{
			Categories: []axis.CategoryColumn{{Source: column, Values: values}},
		},
	}
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}
