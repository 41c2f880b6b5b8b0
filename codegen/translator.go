package codegen

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/dreamfrog/tracing-framework/trace"
)

// Buffer accumulates the translated statements of one step. It also owns
// the step-local counter that names typed-array declarations.
type Buffer struct {
	stmts []Stmt
	data  int
}

// Statements returns the accumulated statements in emission order.
func (b *Buffer) Statements() []Stmt { return b.stmts }

func (b *Buffer) push(s Stmt) { b.stmts = append(b.stmts, s) }

// call appends a direct native call.
func (b *Buffer) call(fn string, args ...Arg) {
	b.push(CallStmt{Fn: fn, Args: args})
}

// gen appends an object allocation plus table insert.
func (b *Buffer) gen(kind trace.ObjectKind, handle int) {
	b.push(GenStmt{Kind: kind, Handle: handle})
}

// del appends a table lookup plus native deletion. The entry stays.
func (b *Buffer) del(kind trace.ObjectKind, handle int) {
	b.push(DeleteStmt{Kind: kind, Handle: handle})
}

// dataArg declares a typed-array literal and returns the argument that
// references it.
func (b *Buffer) dataArg(arr *trace.TypedArray) Arg {
	name := "data_" + strconv.Itoa(b.data)
	b.data++
	b.push(DataStmt{Name: name, Elem: arr.Elem, Tag: arr.Tag, Values: arr.Values})
	return dataRef(name)
}

// marker appends the visible unsupported-call placeholder.
func (b *Buffer) marker(text string) {
	b.push(MarkerStmt{Text: text})
}

// check appends the post-call error check.
func (b *Buffer) check() {
	b.push(CheckStmt{})
}

// call wraps one recorded event with typed argument access. Handlers
// consume these typed fields instead of probing the dynamic argument bag
// themselves.
type call struct {
	ev *trace.Event
}

func (c *call) handle(name string) int                    { return c.ev.Arg(name).Handle() }
func (c *call) int(name string) int64                     { return c.ev.Arg(name).Int() }
func (c *call) num(name string) float64                   { return c.ev.Arg(name).Num() }
func (c *call) flag(name string) bool                     { return c.ev.Arg(name).Bool() }
func (c *call) str(name string) string                    { return c.ev.Arg(name).Str() }
func (c *call) array(name string) *trace.TypedArray       { return c.ev.Arg(name).Array() }
func (c *call) object(name string) map[string]trace.Value { return c.ev.Arg(name).Map() }
func (c *call) isNull(name string) bool                   { return c.ev.Arg(name).IsNull() }
func (c *call) has(name string) bool                      { return c.ev.HasArg(name) }

// handlerFunc translates one recorded call by appending native
// statements for it.
type handlerFunc func(c *call, b *Buffer)

// Translator dispatches recorded calls to their handlers. The handler
// table is built once at construction and only read afterwards, so a
// Translator is safe to reuse across steps of a single run; it is not
// safe for overlapping runs.
type Translator struct {
	handlers map[string]handlerFunc
	log      *slog.Logger
}

// TranslatorOption configures a Translator.
type TranslatorOption func(*Translator)

// WithTranslatorLogger sets the translator's logger.
func WithTranslatorLogger(log *slog.Logger) TranslatorOption {
	return func(t *Translator) {
		if log != nil {
			t.log = log
		}
	}
}

// NewTranslator builds a translator with the full WebGL handler table.
func NewTranslator(opts ...TranslatorOption) *Translator {
	t := &Translator{
		handlers: newHandlerTable(),
		log:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Supported reports whether a qualified call name has a handler.
func (t *Translator) Supported(name string) bool {
	_, ok := t.handlers[name]
	return ok
}

// Translate dispatches one recorded call. A handled call appends its
// statements followed by one error check; an unknown call appends
// exactly one marker carrying the call name and its arguments, so
// nothing ever drops silently.
func (t *Translator) Translate(ev *trace.Event, b *Buffer) {
	h, ok := t.handlers[ev.Name]
	if !ok {
		t.log.Debug("unknown call", "name", ev.Name)
		b.marker(ev.Name + "(" + ev.FormatArgs() + ")")
		return
	}
	h(&call{ev: ev}, b)
	b.check()
}

// newHandlerTable merges the per-area handler groups into one immutable
// dispatch table.
func newHandlerTable() map[string]handlerFunc {
	table := make(map[string]handlerFunc, 160)
	groups := []map[string]handlerFunc{
		resourceHandlers(),
		programHandlers(),
		uniformHandlers(),
		dataHandlers(),
		stateHandlers(),
		drawHandlers(),
		contextHandlers(),
	}
	for _, group := range groups {
		for name, h := range group {
			if _, dup := table[name]; dup {
				panic(fmt.Sprintf("codegen: duplicate handler for %s", name))
			}
			table[name] = h
		}
	}
	return table
}
