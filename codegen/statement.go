package codegen

import (
	"fmt"
	"strings"

	"github.com/dreamfrog/tracing-framework/trace"
)

// Stmt is one translated native statement. Every statement knows how to
// render itself into the generated C++ step body; BindSteps gives each a
// second life as an in-process replay operation.
type Stmt interface {
	emit(w *lineWriter)
}

// lineWriter accumulates indented statement lines for one step body.
type lineWriter struct {
	sb strings.Builder
}

func (w *lineWriter) linef(format string, args ...any) {
	w.sb.WriteString("  ")
	fmt.Fprintf(&w.sb, format, args...)
	w.sb.WriteByte('\n')
}

// CallStmt is a direct native call with fully marshaled arguments.
type CallStmt struct {
	// Fn is the native function name, e.g. "glBindBuffer".
	Fn string
	// Args are the call's arguments in order.
	Args []Arg
}

func (s CallStmt) emit(w *lineWriter) {
	parts := make([]string, len(s.Args))
	for i, a := range s.Args {
		parts[i] = a.cc()
	}
	w.linef("%s(%s);", s.Fn, strings.Join(parts, ", "))
}

// CheckStmt is the error check the dispatcher appends after every
// handled call. Failures are logged with file/line context at replay
// time and are not fatal.
type CheckStmt struct{}

func (CheckStmt) emit(w *lineWriter) {
	w.linef("CHECK_GL();")
}

// GenStmt allocates one native object and installs its name in the
// current context's object table under the call's output handle.
type GenStmt struct {
	Kind   trace.ObjectKind
	Handle int
	// ShaderType is the shader kind argument, used only for shaders.
	ShaderType Arg
}

func (s GenStmt) emit(w *lineWriter) {
	switch s.Kind {
	case trace.KindProgram:
		w.linef("id = glCreateProgram();")
	case trace.KindShader:
		w.linef("id = glCreateShader(%s);", s.ShaderType.cc())
	default:
		w.linef("%s(1, &id);", genFn(s.Kind))
	}
	w.linef("context->SetObject(%d, id);", s.Handle)
}

// DeleteStmt releases the native object behind a virtual handle. The
// table entry is deliberately left in place; traces are assumed to never
// reuse a handle after deleting it.
type DeleteStmt struct {
	Kind   trace.ObjectKind
	Handle int
}

func (s DeleteStmt) emit(w *lineWriter) {
	switch s.Kind {
	case trace.KindProgram:
		w.linef("glDeleteProgram(context->GetObject(%d));", s.Handle)
	case trace.KindShader:
		w.linef("glDeleteShader(context->GetObject(%d));", s.Handle)
	default:
		w.linef("id = context->GetObject(%d);", s.Handle)
		w.linef("%s(1, &id);", deleteFn(s.Kind))
	}
}

func genFn(kind trace.ObjectKind) string {
	switch kind {
	case trace.KindBuffer:
		return "glGenBuffers"
	case trace.KindTexture:
		return "glGenTextures"
	case trace.KindFramebuffer:
		return "glGenFramebuffers"
	case trace.KindRenderbuffer:
		return "glGenRenderbuffers"
	}
	return "glGenBuffers"
}

func deleteFn(kind trace.ObjectKind) string {
	switch kind {
	case trace.KindBuffer:
		return "glDeleteBuffers"
	case trace.KindTexture:
		return "glDeleteTextures"
	case trace.KindFramebuffer:
		return "glDeleteFramebuffers"
	case trace.KindRenderbuffer:
		return "glDeleteRenderbuffers"
	}
	return "glDeleteBuffers"
}

// LocationStmt captures a uniform location into the object table under
// the call's output handle.
type LocationStmt struct {
	Handle  int
	Program int
	Name    string
}

func (s LocationStmt) emit(w *lineWriter) {
	w.linef("context->SetObject(%d, glGetUniformLocation(context->GetObject(%d), %s));",
		s.Handle, s.Program, cppQuote(s.Name))
}

// ShaderSourceStmt uploads shader source text. The source is embedded as
// an escaped native string literal; the declared length is the literal's
// embedded length, matching the string-array call convention.
type ShaderSourceStmt struct {
	Shader int
	Source string
}

func (s ShaderSourceStmt) emit(w *lineWriter) {
	quoted := cppQuote(s.Source)
	w.linef("{")
	w.linef("  static const char* shader_source = %s;", quoted)
	w.linef("  static GLint shader_length = %d;", len(quoted)-2)
	w.linef("  glShaderSource(context->GetObject(%d), 1, &shader_source, &shader_length);", s.Shader)
	w.linef("}")
}

// DataStmt declares a static typed-array literal used by a later call in
// the same step.
type DataStmt struct {
	Name   string
	Elem   trace.ElemType
	Tag    string
	Values []float64
}

func (s DataStmt) emit(w *lineWriter) {
	w.linef("static const %s %s[] = %s;", CType(s.Elem), s.Name, EncodeArray(s.Elem, s.Tag, s.Values))
}

// CreateContextStmt creates a canvas context for a context virtual
// handle and binds it as the step's current context.
type CreateContextStmt struct {
	Handle int
}

func (s CreateContextStmt) emit(w *lineWriter) {
	w.linef("context = replay->CreateContext(%d);", s.Handle)
}

// MakeCurrentStmt makes a registered context current, optionally
// resizing it. Width and height of -1 keep the current size. A handle of
// trace.NoContext renders the null-context placeholder instead.
type MakeCurrentStmt struct {
	Handle int
	Width  int
	Height int
}

func (s MakeCurrentStmt) emit(w *lineWriter) {
	if s.Handle == trace.NoContext {
		w.linef("context = NULL;")
		return
	}
	if s.Width == -1 && s.Height == -1 {
		w.linef("context = replay->MakeContextCurrent(%d);", s.Handle)
		return
	}
	w.linef("context = replay->MakeContextCurrent(%d, %d, %d);", s.Handle, s.Width, s.Height)
}

// MarkerStmt is the visible placeholder emitted for a call the
// translator cannot reproduce. The generated program prints it so
// coverage gaps stay auditable at replay time.
type MarkerStmt struct {
	Text string
}

func (s MarkerStmt) emit(w *lineWriter) {
	w.linef("printf(\"UNSUPPORTED: %%s\\n\", %s);", cppQuote(s.Text))
}

// CommentStmt is an informational line in the generated source, used by
// debug mode for per-event timestamps.
type CommentStmt struct {
	Text string
}

func (s CommentStmt) emit(w *lineWriter) {
	w.linef("// %s", strings.ReplaceAll(s.Text, "\n", " "))
}
