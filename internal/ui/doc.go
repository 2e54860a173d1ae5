// Package ui implements the transport surface using bubbletea's Elm architecture.
//
// The visual is a single view: five transport buttons (previous, play,
// pause, stop, next), the caption label, and a contextual help footer.
// Button prominence follows the transport status: while playing, play and
// the steppers dim and pause/stop light up; paused and stopped invert that.
//
// The [Model] implements bubbletea's standard Init/Update/View pattern.
// Controller events (fired steps, status changes, caption clears) arrive on
// the controller's event channel and are bridged into tea messages with a
// wait-for-channel command, so timer-driven reveals repaint without polling.
//
// Keyboard transport uses space (play/pause), s (stop), ←/→ (manual step
// while paused) and q (quit).
package ui
