package codegen

import (
	"fmt"
	"log/slog"

	"github.com/dreamfrog/tracing-framework/trace"
)

// StepUnit is one translated step: an ordered statement list closed as a
// single named, executable unit. The positional step table built from
// these units is the only contract the replay side depends on.
type StepUnit struct {
	Index   int
	Context int
	Stmts   []Stmt
}

// Emitter turns a step list into step units by dispatching every
// recorded call through a translator, in order.
type Emitter struct {
	tr    *Translator
	debug bool
	log   *slog.Logger
}

// EmitterOption configures an Emitter.
type EmitterOption func(*Emitter)

// WithDebug includes per-event timestamp comments in the emitted units.
func WithDebug(debug bool) EmitterOption {
	return func(e *Emitter) { e.debug = debug }
}

// WithEmitterLogger sets the emitter's logger.
func WithEmitterLogger(log *slog.Logger) EmitterOption {
	return func(e *Emitter) {
		if log != nil {
			e.log = log
		}
	}
}

// NewEmitter creates an emitter over a translator.
func NewEmitter(tr *Translator, opts ...EmitterOption) *Emitter {
	e := &Emitter{
		tr:  tr,
		log: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// EmitSteps translates every step into a unit. Each unit opens with a
// make-current statement for the step's starting context; a step that
// starts without a context relies on the null-context placeholder every
// step body declares.
func (e *Emitter) EmitSteps(steps []trace.Step) []StepUnit {
	units := make([]StepUnit, 0, len(steps))
	for i, step := range steps {
		b := &Buffer{}
		if step.Context != trace.NoContext {
			b.push(MakeCurrentStmt{Handle: step.Context, Width: -1, Height: -1})
		}
		for j := range step.Events {
			ev := &step.Events[j]
			if e.debug {
				b.push(CommentStmt{Text: fmt.Sprintf("t=%v %s", ev.Time, ev.Name)})
			}
			e.tr.Translate(ev, b)
		}
		e.log.Debug("step emitted", "index", i, "events", len(step.Events), "stmts", len(b.stmts))
		units = append(units, StepUnit{Index: i, Context: step.Context, Stmts: b.Statements()})
	}
	return units
}
