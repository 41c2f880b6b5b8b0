package trace

import (
	"sort"
	"strings"
)

// Event is one recorded graphics-API invocation: a qualified name
// ("Interface#method"), a capture timestamp, and named argument values.
// Events are immutable once loaded; the database owns them for the
// duration of a translation run.
type Event struct {
	// Name is the qualified call name, e.g.
	// "WebGLRenderingContext#bindBuffer".
	Name string
	// Time is the capture timestamp in milliseconds.
	Time float64
	// Args maps parameter names to recorded values.
	Args map[string]Value
}

// Arg returns the named argument, or the null value when absent.
func (e *Event) Arg(name string) Value {
	return e.Args[name]
}

// HasArg reports whether the argument was recorded at all. A recorded
// null and an absent argument are distinct for calls whose handlers
// branch on argument shape.
func (e *Event) HasArg(name string) bool {
	_, ok := e.Args[name]
	return ok
}

// Method returns the method part of the qualified name, or the whole name
// when it carries no interface qualifier.
func (e *Event) Method() string {
	if i := strings.IndexByte(e.Name, '#'); i >= 0 {
		return e.Name[i+1:]
	}
	return e.Name
}

// FormatArgs renders the event's arguments as "name=value" pairs in
// alphabetical order. Used for marker statements and diagnostics.
func (e *Event) FormatArgs() string {
	if len(e.Args) == 0 {
		return ""
	}
	names := make([]string, 0, len(e.Args))
	for name := range e.Args {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	for i, name := range names {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(name)
		sb.WriteByte('=')
		sb.WriteString(e.Args[name].Format())
	}
	return sb.String()
}
