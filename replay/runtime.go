package replay

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// State is the runtime's lifecycle state.
type State uint8

const (
	// StateIdle means the runtime is constructed but not started.
	StateIdle State = iota
	// StateRunning means steps are being issued, one per tick.
	StateRunning
	// StateFinished means every step was issued or a quit event was
	// observed.
	StateFinished
)

var stateNames = [...]string{
	StateIdle:     "Idle",
	StateRunning:  "Running",
	StateFinished: "Finished",
}

// String returns the state's name.
func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "Unknown"
}

// StepFunc is one executable step unit. The step table handed to the
// runtime is an ordered, finite sequence of these; the runtime invokes
// each exactly once with itself as the sole argument.
//
// A returned error is logged and replay proceeds with the next tick; step
// errors never unwind the loop.
type StepFunc func(*Runtime) error

// Option configures a Runtime.
type Option func(*Runtime)

// WithLogger sets the runtime's logger. The default discards everything.
func WithLogger(log *slog.Logger) Option {
	return func(r *Runtime) {
		if log != nil {
			r.log = log
		}
	}
}

// WithTick sets the frame pacing interval. The default is 16ms.
func WithTick(d time.Duration) Option {
	return func(r *Runtime) { r.tick = d }
}

// WithTitle sets the window title seed used for created canvases.
func WithTitle(title string) Option {
	return func(r *Runtime) { r.title = title }
}

// Runtime drives a step table against a driver. It is strictly
// single-threaded: one goroutine drains events, issues steps, and
// presents contexts; nothing here is safe for concurrent use.
type Runtime struct {
	driver Driver
	steps  []StepFunc
	cursor int
	state  State

	title string
	log   *slog.Logger
	tick  time.Duration

	// Context registry: append-only until teardown.
	contexts []*Context
	byHandle map[int]*Context

	markers int
	closed  bool
}

// New constructs a runtime over a driver and a step table. The driver is
// initialized here; the runtime starts Idle.
func New(driver Driver, steps []StepFunc, opts ...Option) (*Runtime, error) {
	r := &Runtime{
		driver:   driver,
		steps:    steps,
		title:    "replay",
		log:      slog.New(nopHandler{}),
		tick:     16 * time.Millisecond,
		byHandle: make(map[int]*Context),
	}
	for _, opt := range opts {
		opt(r)
	}
	if err := driver.Init(); err != nil {
		return nil, fmt.Errorf("replay: driver init: %w", err)
	}
	return r, nil
}

// nopHandler discards all log records; Enabled returns false so disabled
// logging costs nothing.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// State returns the runtime's current lifecycle state.
func (r *Runtime) State() State { return r.state }

// Logger returns the runtime's logger, for step bodies that report
// non-fatal replay errors.
func (r *Runtime) Logger() *slog.Logger { return r.log }

// StepsRemaining returns the number of unissued steps.
func (r *Runtime) StepsRemaining() int { return len(r.steps) - r.cursor }

// Markers returns how many unsupported-call markers were hit so far.
func (r *Runtime) Markers() int { return r.markers }

// Contexts returns every live context in creation order.
func (r *Runtime) Contexts() []*Context { return r.contexts }

// Start transitions Idle to Running. The step table carries no external
// resources in this runtime, so the transition is immediate; Start is the
// load point for drivers that do carry them and fails only when called
// out of order.
func (r *Runtime) Start() error {
	if r.state != StateIdle {
		return fmt.Errorf("replay: Start in state %v", r.state)
	}
	if len(r.steps) == 0 {
		r.state = StateFinished
		return nil
	}
	r.state = StateRunning
	return nil
}

// IssueNextStep issues exactly one step and advances the cursor. It
// returns true while unissued steps remain. Issuing the final step
// transitions the runtime to Finished and returns false.
func (r *Runtime) IssueNextStep() bool {
	if r.state != StateRunning {
		return false
	}

	r.log.Debug("issuing step", "index", r.cursor)
	step := r.steps[r.cursor]
	r.cursor++
	if err := step(r); err != nil {
		r.log.Warn("step failed", "index", r.cursor-1, "error", err)
	}

	if r.cursor >= len(r.steps) {
		r.state = StateFinished
		return false
	}
	return true
}

// Run starts the runtime if needed and drives the tick loop to
// completion: drain events, issue one step, present every context, sleep.
// A quit or window-close event finishes the replay immediately, skipping
// remaining steps. Run tears the runtime down before returning.
func (r *Runtime) Run() error {
	if r.state == StateIdle {
		if err := r.Start(); err != nil {
			return err
		}
	}
	defer r.Close()

	for r.state == StateRunning {
		interrupted := false
		for _, ev := range r.driver.Poll() {
			if ev == EventQuit || ev == EventWindowClose {
				interrupted = true
			}
		}
		if interrupted {
			r.log.Info("replay interrupted", "steps_issued", r.cursor)
			r.state = StateFinished
			break
		}

		r.IssueNextStep()

		for _, c := range r.contexts {
			c.Swap()
		}
		time.Sleep(r.tick)
	}
	return nil
}

// Close tears down every context and the driver, exactly once.
func (r *Runtime) Close() {
	if r.closed {
		return
	}
	r.closed = true
	r.state = StateFinished
	for _, c := range r.contexts {
		c.destroy()
	}
	r.driver.Quit()
}

// CreateContext creates a canvas context for a context virtual handle and
// registers it. The new context becomes the natural "current" binding for
// the step body that created it.
func (r *Runtime) CreateContext(handle int) (*Context, error) {
	canvas, err := r.driver.CreateCanvas(fmt.Sprintf("%s : %d", r.title, handle), handle)
	if err != nil {
		return nil, fmt.Errorf("replay: creating context %d: %w", handle, err)
	}
	c := newContext(handle, canvas)
	r.contexts = append(r.contexts, c)
	r.byHandle[handle] = c
	r.log.Info("context created", "handle", handle)
	return c, nil
}

// MakeContextCurrent looks up a registered context, makes it current, and
// resizes it when both dimensions are supplied and differ from its stored
// size. Pass KeepSize to leave the size alone.
func (r *Runtime) MakeContextCurrent(handle, width, height int) (*Context, error) {
	c, ok := r.byHandle[handle]
	if !ok {
		return nil, fmt.Errorf("replay: no context with handle %d", handle)
	}
	c.MakeCurrent(width, height)
	return c, nil
}

// Marker records that an unsupported or unknown call was replayed as an
// inert marker.
func (r *Runtime) Marker(text string) {
	r.markers++
	r.log.Warn("unsupported call", "call", text)
}
