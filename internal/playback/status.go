package playback

// Status represents the transport state of a [Controller].
type Status int

const (
	Stopped Status = iota // No playback; cursor reset
	Playing               // Timer batch outstanding
	Paused                // Cursor retained, no timers outstanding
)

// String returns the string representation of the status.
func (s Status) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	default:
		return "unknown"
	}
}
