// Package server provides HTTP routing, middleware, and the transport control API.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] wraps handlers in reverse order (last added executes first), following the standard Go pattern.
//
// The [BasicRouter] implementation uses [http.ServeMux] internally with method filtering.
//
// # Control API
//
// [ControlHandler] mirrors the on-screen transport controls for headless
// runs:
//
//   - GET  /status        : current status, cursor and caption as JSON
//   - POST /play          : start or resume playback
//   - POST /pause         : pause, retaining cursor and selection
//   - POST /stop          : stop, clearing selection and caption
//   - POST /step?delta=±1 : manual step while paused
//
// Transition guards are never errors: pausing a stopped controller returns
// 200 with the unchanged status, matching the silent-ignore semantics of the
// transport buttons. Only a malformed step delta is rejected (400).
//
// # Current Usage
//
// The serve command runs this API next to a headless controller so report
// tooling can script a reveal, poll progress, and stop it.
package server
