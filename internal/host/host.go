// Package host renders the narrow contracts of the report host: the selection
// service that cross-filters other visuals, and the identity builder that
// issues opaque per-row selection tokens.
//
// The playback controller treats every implementation as fire-and-forget: a
// failed selection call is logged and never surfaces into the state machine.
//
// Implementations:
//   - [LogSelection] : logs selection traffic, for headless runs and development
//   - [Bridge] : forwards selection events to a cross-filter HTTP endpoint
//   - [UUIDIdentity] : issues memoized UUIDv4 tokens per (column, row)
package host

import (
	"context"

	"github.com/charmbracelet/log"
)

// SelectionManager marks one data row as the active filter target, or clears
// the active selection. Identifiers are opaque tokens from an identity
// builder and are replayed verbatim.
type SelectionManager interface {
	Select(ctx context.Context, id string) error
	Clear(ctx context.Context) error
	Name() string
}

// LogSelection is a [SelectionManager] that writes selection traffic to a
// logger. Used for headless playback without a host endpoint.
type LogSelection struct {
	logger *log.Logger
}

// NewLogSelection creates a LogSelection backed by the given logger.
func NewLogSelection(logger *log.Logger) *LogSelection {
	return &LogSelection{logger: logger}
}

func (l *LogSelection) Select(ctx context.Context, id string) error {
	l.logger.Info("select", "id", id)
	return nil
}

func (l *LogSelection) Clear(ctx context.Context) error {
	l.logger.Info("clear selection")
	return nil
}

func (l *LogSelection) Name() string { return "log" }
