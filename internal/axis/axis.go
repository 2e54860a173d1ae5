package axis

// DataPoint represents one category value in playback order.
//
// SelectionID is an opaque identity token issued by the host's identity
// builder. It is only ever replayed back to the selection service, never
// interpreted.
type DataPoint struct {
	Category    string `json:"category"`
	SelectionID string `json:"selectionId"`
}

// CategoryColumn is a single bound category field: source column metadata plus
// one cell value per row. Row order defines playback order.
type CategoryColumn struct {
	Source string
	Values []any
}

// Categorical groups the bound category fields of a snapshot.
type Categorical struct {
	Categories []CategoryColumn
}

// Snapshot is the tabular data handed over by the data binding layer on each
// data-update notification.
type Snapshot struct {
	Categorical *Categorical
}

// PlaybackSettings is the resolved reveal cadence configuration.
type PlaybackSettings struct {
	AutoStart    bool `json:"autoStart"`
	Loop         bool `json:"loop"`
	StepInterval int  `json:"stepIntervalSeconds"`
}

// AppearanceSettings holds per-button colors for the five transport controls.
//
// When ShowAll is false every button uses PickedColor and the per-button
// values are ignored (and omitted from format-pane enumeration).
type AppearanceSettings struct {
	ShowAll       bool   `json:"showAll"`
	PickedColor   string `json:"pickedColor"`
	PlayColor     string `json:"playColor"`
	PauseColor    string `json:"pauseColor"`
	StopColor     string `json:"stopColor"`
	PreviousColor string `json:"previousColor"`
	NextColor     string `json:"nextColor"`
}

// CaptionSettings controls the caption label under the transport buttons.
type CaptionSettings struct {
	Show     bool   `json:"show"`
	Color    string `json:"color"`
	FontSize int    `json:"fontSize"`
	Align    string `json:"align"`
}

// Settings is the full resolved configuration carried by a [ViewModel].
type Settings struct {
	Playback   PlaybackSettings   `json:"playback"`
	Appearance AppearanceSettings `json:"appearance"`
	Caption    CaptionSettings    `json:"caption"`
}

// ViewModel pairs the ordered data points with resolved settings.
//
// Exactly one view model is live at a time; consumers drop any reference to
// the previous one when a new snapshot arrives.
type ViewModel struct {
	DataPoints []DataPoint `json:"dataPoints"`
	Settings   Settings    `json:"settings"`
}

// ButtonColor returns the effective color for the named transport button,
// honoring the ShowAll flag.
func (a AppearanceSettings) ButtonColor(button string) string {
	if !a.ShowAll {
		return a.PickedColor
	}
	switch button {
	case "play":
		return a.PlayColor
	case "pause":
		return a.PauseColor
	case "stop":
		return a.StopColor
	case "previous":
		return a.PreviousColor
	case "next":
		return a.NextColor
	default:
		return a.PickedColor
	}
}
