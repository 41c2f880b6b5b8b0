package replay

import (
	"github.com/dreamfrog/tracing-framework/trace"
)

// KeepSize is passed to MakeCurrent width/height when the canvas size
// should be left alone.
const KeepSize = -1

// Context is one live canvas context: the driver's window/context pair
// plus the object-handle table mapping the trace's virtual handles to
// driver-assigned object names.
//
// Table entries are installed by create calls and never removed, even
// when the underlying object is deleted; traces are assumed to never
// reuse a virtual handle after deleting it. Lookups of handle 0 or of a
// handle that was never installed resolve to object name 0, which the
// native API treats as "no object".
type Context struct {
	handle int
	canvas Canvas

	width  int
	height int

	objects map[trace.ObjectKind]map[int]uint32
}

func newContext(handle int, canvas Canvas) *Context {
	w, h := canvas.Size()
	return &Context{
		handle:  handle,
		canvas:  canvas,
		width:   w,
		height:  h,
		objects: make(map[trace.ObjectKind]map[int]uint32),
	}
}

// Handle returns the context's virtual handle.
func (c *Context) Handle() int { return c.handle }

// Canvas returns the driver canvas backing the context.
func (c *Context) Canvas() Canvas { return c.canvas }

// GetObject resolves a virtual handle to its native object name.
func (c *Context) GetObject(kind trace.ObjectKind, handle int) uint32 {
	if handle == 0 {
		return 0
	}
	return c.objects[kind][handle]
}

// SetObject installs the native object name for a virtual handle.
func (c *Context) SetObject(kind trace.ObjectKind, handle int, id uint32) {
	table, ok := c.objects[kind]
	if !ok {
		table = make(map[int]uint32)
		c.objects[kind] = table
	}
	table[handle] = id
}

// MakeCurrent binds the context and, when both dimensions are supplied
// and differ from the stored size, resizes the canvas.
func (c *Context) MakeCurrent(width, height int) {
	c.canvas.MakeCurrent()
	if width != KeepSize && height != KeepSize {
		if width != c.width || height != c.height {
			c.width = width
			c.height = height
			c.canvas.Resize(width, height)
		}
	}
}

// Swap presents the context's back buffer.
func (c *Context) Swap() {
	c.canvas.MakeCurrent()
	c.canvas.Swap()
}

func (c *Context) destroy() {
	c.canvas.Destroy()
}
