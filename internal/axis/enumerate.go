package axis

// Settings group names recognized by [EnumerateGroup].
const (
	GroupPlayback      = "playback"
	GroupColorSelector = "colorSelector"
	GroupCaption       = "caption"
)

// Groups lists the enumerable settings groups in display order.
func Groups() []string {
	return []string{GroupPlayback, GroupColorSelector, GroupCaption}
}

// EnumerateGroup returns the resolved values for the named settings group as
// a property bag for the host's format pane.
//
// For colorSelector with ShowAll off, only the flag and the shared color are
// exposed; the per-button colors are omitted from the bag entirely, not just
// hidden. Unknown group names yield an empty bag.
func EnumerateGroup(s Settings, group string) map[string]any {
	switch group {
	case GroupPlayback:
		return map[string]any{
			"autoStart":           s.Playback.AutoStart,
			"loop":                s.Playback.Loop,
			"stepIntervalSeconds": s.Playback.StepInterval,
		}
	case GroupColorSelector:
		if !s.Appearance.ShowAll {
			return map[string]any{
				"showAll":     false,
				"pickedColor": s.Appearance.PickedColor,
			}
		}
		return map[string]any{
			"showAll":       true,
			"playColor":     s.Appearance.PlayColor,
			"pauseColor":    s.Appearance.PauseColor,
			"stopColor":     s.Appearance.StopColor,
			"previousColor": s.Appearance.PreviousColor,
			"nextColor":     s.Appearance.NextColor,
		}
	case GroupCaption:
		return map[string]any{
			"show":     s.Caption.Show,
			"color":    s.Caption.Color,
			"fontSize": s.Caption.FontSize,
			"align":    s.Caption.Align,
		}
	default:
		return map[string]any{}
	}
}
