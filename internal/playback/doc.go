// Package playback implements the transport state machine driving the timed
// categorical reveal.
//
// # State Machine
//
// A [Controller] is always in one of three states:
//
//  1. [Stopped] : initial state; cursor reset to 0, no selection, no caption
//  2. [Playing] : a batch of fire-once timers is outstanding
//  3. [Paused] : no timers outstanding, cursor retained, selection retained
//
// # Scheduling Model
//
// Play schedules the whole remaining sequence up front as one batch of
// fire-once timers at monotonically increasing offsets, rather than a single
// recurring tick. Pre-scheduling at fixed offsets avoids drift accumulation
// from repeated re-scheduling and makes pause trivially correct: cancel the
// entire batch and remember the cursor.
//
// The first event of a batch fires one full step interval after Play, not
// immediately. Resuming from pause continues at the point after the last
// selected one, never replaying it.
//
// Each fired step issues exactly one selection call to the host and one
// caption update; the two effects are always paired. A trailing terminal
// timer either stops playback or, with looping enabled, restarts the batch
// from index 0 without a user-visible stop.
//
// # Transition Guards
//
// No transition can fail. Calls that do not meet their guard (pause while
// stopped, step while playing, step past either end) are silently ignored.
//
// # Observation
//
// State changes and fired steps are published as [Event] values on a
// buffered channel with non-blocking sends, the same pattern the UI consumes
// with a wait-for-channel command.
package playback
