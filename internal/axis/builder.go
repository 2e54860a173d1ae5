package axis

import (
	"fmt"

	"github.com/desertthunder/playaxis/internal/shared"
)

// IdentityBuilder issues the opaque selection identity for a row of the bound
// category field. Tokens are uninterpreted by this package.
type IdentityBuilder interface {
	Identity(column string, row int) string
}

// Ready reports whether enough data is bound to build a view model: a
// categorical mapping with at least one category field and a defined source.
//
// When Ready returns false the builder is not invoked and the prior view
// model (if any) stays live.
func Ready(s *Snapshot) bool {
	if s == nil || s.Categorical == nil {
		return false
	}
	if len(s.Categorical.Categories) == 0 {
		return false
	}
	return s.Categorical.Categories[0].Source != ""
}

// Build produces a fresh [ViewModel] from the snapshot and configuration.
//
// One [DataPoint] is built per row of the first bound category field, in host
// row order. Returns [shared.ErrNotReady] when the readiness predicate fails;
// missing optional settings are never an error.
func Build(s *Snapshot, cfg *shared.Config, ids IdentityBuilder) (*ViewModel, error) {
	if !Ready(s) {
		return nil, shared.ErrNotReady
	}

	column := s.Categorical.Categories[0]
	points := make([]DataPoint, 0, len(column.Values))
	for row, value := range column.Values {
		points = append(points, DataPoint{
			Category:    Stringify(value),
			SelectionID: ids.Identity(column.Source, row),
		})
	}

	return &ViewModel{
		DataPoints: points,
		Settings:   ResolveSettings(cfg),
	}, nil
}

// Stringify converts a category cell value to its label text. Nil cells
// render as "(blank)" so an empty caption still distinguishes a blank row
// from a cleared caption.
func Stringify(value any) string {
	if value == nil {
		return "(blank)"
	}
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ResolveSettings maps configuration to resolved settings field-by-field.
//
// Fields the user never set already carry their defaults (the config layer
// parses over [shared.DefaultConfig]); the step interval is clamped here so a
// hand-built config cannot smuggle an out-of-range cadence past the
// controller.
func ResolveSettings(cfg *shared.Config) Settings {
	if cfg == nil {
		cfg = shared.DefaultConfig()
	}

	interval := cfg.Playback.StepInterval
	if interval < shared.MinStepInterval {
		interval = shared.MinStepInterval
	}
	if interval > shared.MaxStepInterval {
		interval = shared.MaxStepInterval
	}

	return Settings{
		Playback: PlaybackSettings{
			AutoStart:    cfg.Playback.AutoStart,
			Loop:         cfg.Playback.Loop,
			StepInterval: interval,
		},
		Appearance: AppearanceSettings{
			ShowAll:       cfg.Appearance.ShowAll,
			PickedColor:   cfg.Appearance.PickedColor,
			PlayColor:     cfg.Appearance.PlayColor,
			PauseColor:    cfg.Appearance.PauseColor,
			StopColor:     cfg.Appearance.StopColor,
			PreviousColor: cfg.Appearance.PreviousColor,
			NextColor:     cfg.Appearance.NextColor,
		},
		Caption: CaptionSettings{
			Show:     cfg.Caption.Show,
			Color:    cfg.Caption.Color,
			FontSize: cfg.Caption.FontSize,
			Align:    cfg.Caption.Align,
		},
	}
}
