package replay

import (
	"fmt"

	"github.com/dreamfrog/tracing-framework/trace"
)

func init() {
	RegisterDriver("headless", func() Driver { return NewHeadless() })
}

// Headless is a windowless driver that allocates sequential object names
// and records every issued call. It backs the generator's dry-run replay
// mode and the test suite: replaying a translated trace against Headless
// audits handle resolution and call ordering without a display.
type Headless struct {
	canvases []*HeadlessCanvas
	pending  []Event
	inited   bool
	quit     bool
}

// NewHeadless creates a headless driver.
func NewHeadless() *Headless { return &Headless{} }

// Init implements Driver.
func (d *Headless) Init() error {
	d.inited = true
	return nil
}

// Quit implements Driver.
func (d *Headless) Quit() { d.quit = true }

// CreateCanvas implements Driver.
func (d *Headless) CreateCanvas(title string, handle int) (Canvas, error) {
	c := &HeadlessCanvas{
		title:  title,
		handle: handle,
		width:  800,
		height: 480,
	}
	d.canvases = append(d.canvases, c)
	return c, nil
}

// Poll implements Driver. It returns events previously queued with Push.
func (d *Headless) Poll() []Event {
	evs := d.pending
	d.pending = nil
	return evs
}

// Push queues an OS event for the next Poll. Tests use this to interrupt
// a running replay.
func (d *Headless) Push(ev Event) { d.pending = append(d.pending, ev) }

// Canvases returns every canvas created so far, in creation order.
func (d *Headless) Canvases() []*HeadlessCanvas { return d.canvases }

// HeadlessCanvas is the Canvas of the headless driver. Object names are
// handed out from a single counter starting at 1; every operation,
// including lifecycle ones, is appended to the call log.
type HeadlessCanvas struct {
	title  string
	handle int
	width  int
	height int

	nextID    uint32
	destroyed bool
	swaps     int
	calls     []string
}

// Title returns the canvas window title.
func (c *HeadlessCanvas) Title() string { return c.title }

// Calls returns the recorded call log.
func (c *HeadlessCanvas) Calls() []string { return c.calls }

// Swaps returns how many times the canvas presented.
func (c *HeadlessCanvas) Swaps() int { return c.swaps }

// Destroyed reports whether the canvas was torn down.
func (c *HeadlessCanvas) Destroyed() bool { return c.destroyed }

func (c *HeadlessCanvas) record(s string) { c.calls = append(c.calls, s) }

// MakeCurrent implements Canvas.
func (c *HeadlessCanvas) MakeCurrent() {}

// Resize implements Canvas.
func (c *HeadlessCanvas) Resize(width, height int) {
	c.width = width
	c.height = height
	c.record(fmt.Sprintf("resize(%d, %d)", width, height))
}

// Size implements Canvas.
func (c *HeadlessCanvas) Size() (int, int) { return c.width, c.height }

// Swap implements Canvas.
func (c *HeadlessCanvas) Swap() { c.swaps++ }

// Destroy implements Canvas.
func (c *HeadlessCanvas) Destroy() { c.destroyed = true }

// GenObject implements Canvas.
func (c *HeadlessCanvas) GenObject(kind trace.ObjectKind) uint32 {
	c.nextID++
	c.record(fmt.Sprintf("gen %s -> %d", kind, c.nextID))
	return c.nextID
}

// DeleteObject implements Canvas.
func (c *HeadlessCanvas) DeleteObject(kind trace.ObjectKind, id uint32) {
	c.record(fmt.Sprintf("delete %s %d", kind, id))
}

// UniformLocation implements Canvas. Locations share the object-name
// counter; the value only needs to be stable, not meaningful.
func (c *HeadlessCanvas) UniformLocation(program uint32, name string) uint32 {
	c.nextID++
	c.record(fmt.Sprintf("location %d %q -> %d", program, name, c.nextID))
	return c.nextID
}

// Call implements Canvas.
func (c *HeadlessCanvas) Call(fn string, args []Value) error {
	c.record(FormatCall(fn, args))
	return nil
}

// Err implements Canvas. The headless driver never raises errors.
func (c *HeadlessCanvas) Err() uint32 { return 0 }
