package playback

// EventKind enumerates the observable effects of the state machine.
type EventKind int

const (
	EventStatus  EventKind = iota // Status transition (Play/Pause/Stop)
	EventStep                     // One data point selected; Category carries the caption text
	EventCaption                  // Caption cleared
)

// Event is published on the controller's event channel for UI consumption.
//
// EventStep pairs with exactly one selection call to the host: Index is the
// selected cursor position and Category the caption text. EventCaption marks
// a cleared caption (stop or loop restart).
type Event struct {
	Kind     EventKind
	Status   Status
	Index    int
	Category string
}

// emit publishes without blocking; a slow or absent consumer drops events
// rather than stalling timer callbacks.
func (c *Controller) emit(e Event) {
	select {
	case c.events <- e:
	default:
	}
}
