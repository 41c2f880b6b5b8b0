package replay

import (
	"fmt"
	"sort"
	"sync"

	"github.com/dreamfrog/tracing-framework/trace"
)

// Event is an OS-level event reported by a driver.
type Event uint8

const (
	// EventQuit is a process-level quit request.
	EventQuit Event = iota
	// EventWindowClose is a window close request. Either event ends the
	// replay loop immediately, skipping remaining steps.
	EventWindowClose
)

// Driver owns the windowing/graphics substrate the runtime replays
// against. Implementations are single-threaded: the runtime is the only
// caller.
type Driver interface {
	// Init prepares the driver. Called once by the runtime constructor.
	Init() error
	// Quit releases the driver. Called once during runtime teardown,
	// after every canvas has been destroyed.
	Quit()
	// CreateCanvas creates a window plus graphics context pair for the
	// given context virtual handle. Failures here are fatal to replay.
	CreateCanvas(title string, handle int) (Canvas, error)
	// Poll drains and returns all pending OS events.
	Poll() []Event
}

// Canvas is one window plus graphics context pair.
type Canvas interface {
	// MakeCurrent binds the canvas's context as the current one.
	MakeCurrent()
	// Resize resizes the window and viewport.
	Resize(width, height int)
	// Size returns the current drawable size.
	Size() (width, height int)
	// Swap presents the back buffer.
	Swap()
	// Destroy releases the context and window.
	Destroy()

	// GenObject allocates one native object of the given kind and
	// returns its driver-assigned name.
	GenObject(kind trace.ObjectKind) uint32
	// DeleteObject releases a native object.
	DeleteObject(kind trace.ObjectKind, id uint32)
	// UniformLocation resolves a uniform name within a linked program.
	UniformLocation(program uint32, name string) uint32
	// Call issues one native call. Arguments are fully resolved; any
	// error is logged by the runtime and replay proceeds.
	Call(fn string, args []Value) error
	// Err returns and clears the context's sticky error flag, 0 if none.
	// Checked after every dispatched call.
	Err() uint32
}

// DriverFactory creates a new driver instance.
type DriverFactory func() Driver

var (
	driversMu sync.RWMutex
	drivers   = make(map[string]DriverFactory)
)

// RegisterDriver registers a driver factory under a name, typically from
// an init function. It panics on a nil factory or a duplicate name so
// misconfiguration surfaces at startup.
func RegisterDriver(name string, factory DriverFactory) {
	driversMu.Lock()
	defer driversMu.Unlock()

	if factory == nil {
		panic("replay: RegisterDriver factory is nil")
	}
	if _, dup := drivers[name]; dup {
		panic("replay: RegisterDriver called twice for " + name)
	}
	drivers[name] = factory
}

// UnregisterDriver removes a registered driver. Primarily for tests.
func UnregisterDriver(name string) {
	driversMu.Lock()
	defer driversMu.Unlock()
	delete(drivers, name)
}

// NewDriver creates a driver instance by registered name.
func NewDriver(name string) (Driver, error) {
	driversMu.RLock()
	factory, ok := drivers[name]
	driversMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("replay: unknown driver %q (available: %v)", name, Drivers())
	}
	return factory(), nil
}

// Drivers returns the registered driver names, sorted.
func Drivers() []string {
	driversMu.RLock()
	defer driversMu.RUnlock()

	names := make([]string, 0, len(drivers))
	for name := range drivers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
