package trace

// Context pseudo-call names. These are trace markers written by the
// capture tool, not real graphics calls; the translator turns them into
// replay-runtime context operations.
const (
	// CreateContextCall marks creation of a new canvas context.
	CreateContextCall = "wtf.webgl#createContext"
	// SetContextCall marks a context becoming current, with an optional
	// canvas size.
	SetContextCall = "wtf.webgl#setContext"
)

// NoContext is the Step.Context value for a step that starts with no
// current context.
const NoContext = -1

// Step is a contiguous, ordered batch of recorded calls emitted as one
// executable unit, plus the handle of whichever context was current when
// the step begins (NoContext if none). Steps partition the event stream
// with no gaps or overlaps.
type Step struct {
	Context int
	Events  []Event
}

// BuildSteps partitions an event stream into steps along frame
// boundaries: the events up to and including each frame's end time form
// one step, and any trailing events form a final step. A stream with no
// frames yields a single step.
//
// The current context is tracked across the whole stream by scanning the
// context pseudo-calls, so each step records the context that is live at
// its start.
func BuildSteps(events []Event, frames []Frame) []Step {
	var steps []Step
	current := NoContext

	i := 0
	for _, frame := range frames {
		step := Step{Context: current}
		for i < len(events) && events[i].Time <= frame.EndTime {
			step.Events = append(step.Events, events[i])
			current = advanceContext(current, &events[i])
			i++
		}
		steps = append(steps, step)
	}

	if i < len(events) || len(steps) == 0 {
		step := Step{Context: current}
		for ; i < len(events); i++ {
			step.Events = append(step.Events, events[i])
			current = advanceContext(current, &events[i])
		}
		steps = append(steps, step)
	}
	return steps
}

// advanceContext returns the context that is current after the event.
// Creating a context makes it current, matching the canvas acquisition
// behavior the trace was recorded against.
func advanceContext(current int, ev *Event) int {
	switch ev.Name {
	case CreateContextCall, SetContextCall:
		return ev.Arg("handle").Handle()
	}
	return current
}
