package playback

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/playaxis/internal/axis"
	"github.com/desertthunder/playaxis/internal/host"
	"github.com/desertthunder/playaxis/internal/shared"
)

// Controller owns the transport state for one visual instance: status,
// cursor, the live view model, and the outstanding timer batch.
//
// All fields are guarded by mu because timers fire on their own goroutines.
// A batch generation counter invalidates callbacks from timers that were
// cancelled while already in flight: cancellation bumps the generation, and a
// firing callback that observes a stale generation returns without effect.
type Controller struct {
	mu       sync.Mutex
	ctx      context.Context
	status   Status
	cursor   int  // last selected index; only meaningful while revealed
	revealed bool // whether any point has been selected since the last stop
	vm       *axis.ViewModel

	timers []Timer
	batch  uint64

	selection host.SelectionManager
	scheduler Scheduler
	logger    *log.Logger
	events    chan Event
}

// ControllerOpts contains configuration options for creating a Controller.
type ControllerOpts struct {
	Context     context.Context
	Selection   host.SelectionManager
	Scheduler   Scheduler
	Logger      *log.Logger
	EventBuffer int
}

// NewController creates a Controller with the provided configuration.
func NewController(opts ControllerOpts) *Controller {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Selection == nil {
		opts.Selection = host.NewLogSelection(opts.Logger)
	}
	if opts.Scheduler == nil {
		opts.Scheduler = NewScheduler()
	}
	if opts.EventBuffer <= 0 {
		opts.EventBuffer = 50
	}

	return &Controller{
		ctx:       opts.Context,
		status:    Stopped,
		selection: opts.Selection,
		scheduler: opts.Scheduler,
		logger:    opts.Logger,
		events:    make(chan Event, opts.EventBuffer),
	}
}

// Events returns the channel on which state changes and fired steps are
// published.
func (c *Controller) Events() <-chan Event {
	return c.events
}

// SetViewModel adopts a freshly built view model wholesale.
//
// Any playback in progress is cancelled and the controller resets to
// Stopped; the previous view model is never retained. With AutoStart enabled
// and a non-empty point list, playback begins immediately.
func (c *Controller) SetViewModel(vm *axis.ViewModel) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.status != Stopped {
		c.stopLocked(true)
	}
	c.vm = vm

	if vm != nil && vm.Settings.Playback.AutoStart {
		c.playLocked()
	}
}

// ViewModel returns the live view model, nil before the first data update.
func (c *Controller) ViewModel() *axis.ViewModel {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.vm
}

// Status returns the current transport status.
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Cursor returns the last selected index.
func (c *Controller) Cursor() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cursor
}

// Caption returns the caption text for the current cursor. Empty while
// Stopped, and empty during the initial delay of a batch: nothing is
// captioned before the host has been told to select it.
func (c *Controller) Caption() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.captionLocked()
}

func (c *Controller) captionLocked() string {
	if c.status == Stopped || !c.revealed || c.vm == nil || c.cursor >= len(c.vm.DataPoints) {
		return ""
	}
	return c.vm.DataPoints[c.cursor].Category
}

// Play starts or resumes playback. Ignored while already Playing or when no
// data points are bound.
func (c *Controller) Play() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.playLocked()
}

// Pause halts playback, cancelling the outstanding timer batch and retaining
// the cursor and the current selection. Ignored unless Playing.
func (c *Controller) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.status != Playing {
		return
	}

	c.cancelAllLocked()
	c.status = Paused
	c.emit(Event{Kind: EventStatus, Status: Paused, Index: c.cursor})
	c.logger.Debug("paused", "cursor", c.cursor)
}

// Stop cancels playback entirely: all pending timers are cancelled, the host
// selection is cleared, the cursor resets to 0 and the caption clears.
// Ignored when already Stopped.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.status == Stopped {
		return
	}
	c.stopLocked(true)
}

// Step moves the cursor by delta while Paused, immediately selecting the new
// point and updating the caption. Silently ignored unless Paused or when the
// resulting index would leave [0, len-1]. Never changes status.
func (c *Controller) Step(delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.status != Paused || c.vm == nil {
		return
	}

	idx := c.cursor + delta
	if !c.revealed {
		// Paused during the initial delay: stepping forward lands on the
		// first point, stepping back has nowhere to go.
		if delta < 0 {
			return
		}
		idx = 0
	}
	if idx < 0 || idx >= len(c.vm.DataPoints) {
		return
	}

	c.cursor = idx
	c.revealed = true
	c.selectLocked(idx)
}

// playLocked schedules the remaining sequence as one timer batch.
//
// Offsets are cumulative from the resume point: the event for index j fires
// (j-start+1) intervals out, so the first reveal lands one full interval
// after Play rather than immediately. A trailing terminal timer fires one
// interval after the last reveal.
func (c *Controller) playLocked() {
	if c.status == Playing {
		return
	}
	if c.vm == nil || len(c.vm.DataPoints) == 0 {
		return
	}

	// Resume continues past the last selected point; a pause during the
	// initial delay has selected nothing yet and restarts from the top.
	start := 0
	if c.status == Paused && c.revealed {
		start = c.cursor + 1
	}

	n := len(c.vm.DataPoints)
	interval := time.Duration(c.vm.Settings.Playback.StepInterval) * time.Second
	gen := c.batch

	for j := start; j < n; j++ {
		j := j
		delay := time.Duration(j-start+1) * interval
		c.timers = append(c.timers, c.scheduler.AfterFunc(delay, func() {
			c.fireStep(gen, j)
		}))
	}

	terminal := time.Duration(n-start+1) * interval
	c.timers = append(c.timers, c.scheduler.AfterFunc(terminal, func() {
		c.fireTerminal(gen)
	}))

	c.status = Playing
	c.emit(Event{Kind: EventStatus, Status: Playing, Index: c.cursor})
	c.logger.Debug("playing", "from", start, "points", n-start, "interval", interval)
}

// fireStep is the timer callback for one scheduled reveal.
func (c *Controller) fireStep(gen uint64, idx int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.batch || c.status != Playing {
		return
	}

	c.cursor = idx
	c.revealed = true
	c.selectLocked(idx)
}

// fireTerminal is the trailing timer callback closing out a batch.
func (c *Controller) fireTerminal(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.batch || c.status != Playing {
		return
	}

	if c.vm.Settings.Playback.Loop {
		// Internal reset without a user-visible status change, then
		// immediately re-enter from index 0.
		c.stopLocked(false)
		c.playLocked()
		return
	}

	c.stopLocked(true)
}

// selectLocked issues the paired selection call and caption update for idx.
// Selection is fire-and-forget: failures are logged, never propagated.
func (c *Controller) selectLocked(idx int) {
	point := c.vm.DataPoints[idx]
	if err := c.selection.Select(c.ctx, point.SelectionID); err != nil {
		c.logger.Warn("selection call failed", "index", idx, "error", err)
	}
	c.emit(Event{Kind: EventStep, Status: c.status, Index: idx, Category: point.Category})
}

// stopLocked cancels the batch, clears the host selection, resets the cursor
// and clears the caption. The status event is suppressed on loop restarts.
func (c *Controller) stopLocked(emitStatus bool) {
	c.cancelAllLocked()

	if err := c.selection.Clear(c.ctx); err != nil {
		c.logger.Warn("selection clear failed", "error", err)
	}

	c.cursor = 0
	c.revealed = false
	c.status = Stopped
	c.emit(Event{Kind: EventCaption, Status: Stopped})
	if emitStatus {
		c.emit(Event{Kind: EventStatus, Status: Stopped, Index: 0})
	}
	c.logger.Debug("stopped")
}

// cancelAllLocked invalidates the whole outstanding batch. There is no
// partial cancellation; the generation bump catches timers already in
// flight.
func (c *Controller) cancelAllLocked() {
	for _, t := range c.timers {
		t.Stop()
	}
	c.timers = c.timers[:0]
	c.batch++
}
