package codegen

import (
	"strconv"

	"github.com/dreamfrog/tracing-framework/trace"
)

// argKind identifies the form of a call argument.
type argKind uint8

const (
	argInt argKind = iota
	argFloat
	argBool
	argStr
	argPtr
	argLookup
	argData
)

// Arg is one argument of a translated native call. Arguments are a
// closed sum: scalars pass through in their native encoding, handle
// references render as object-table lookups, and data references name a
// typed-array declaration emitted earlier in the same step.
type Arg struct {
	kind    argKind
	i       int64
	f       float64
	b       bool
	s       string
	objKind trace.ObjectKind
	handle  int
}

// Int returns an integer argument (enums, sizes, indices).
func Int(v int64) Arg { return Arg{kind: argInt, i: v} }

// Float returns a floating-point argument.
func Float(v float64) Arg { return Arg{kind: argFloat, f: v} }

// Flag returns a boolean argument, rendered as 1 or 0.
func Flag(v bool) Arg { return Arg{kind: argBool, b: v} }

// Str returns a string argument, rendered as a quoted native literal.
func Str(s string) Arg { return Arg{kind: argStr, s: s} }

// Ptr returns a byte-offset argument rendered with a pointer cast, for
// calls that take an offset where their signature has a pointer.
func Ptr(offset int64) Arg { return Arg{kind: argPtr, i: offset} }

// Lookup returns an object-table lookup argument: the virtual handle is
// resolved to its native object name at replay time. Handle 0 resolves
// to the default object.
func Lookup(kind trace.ObjectKind, handle int) Arg {
	return Arg{kind: argLookup, objKind: kind, handle: handle}
}

func dataRef(name string) Arg { return Arg{kind: argData, s: name} }

// cc renders the argument as a C++ expression.
func (a Arg) cc() string {
	switch a.kind {
	case argInt:
		return strconv.FormatInt(a.i, 10)
	case argFloat:
		return formatFloat(a.f, 64)
	case argBool:
		if a.b {
			return "1"
		}
		return "0"
	case argStr:
		return cppQuote(a.s)
	case argPtr:
		return "(const GLvoid*)" + strconv.FormatInt(a.i, 10)
	case argLookup:
		return "context->GetObject(" + strconv.Itoa(a.handle) + ")"
	case argData:
		return a.s
	}
	return "0"
}

// formatFloat renders a number as a C floating literal. Integral values
// keep a trailing ".0" so the literal stays a float in contexts where
// that matters.
func formatFloat(v float64, bits int) string {
	s := strconv.FormatFloat(v, 'g', -1, bits)
	for i := 0; i < len(s); i++ {
		if s[i] == '.' || s[i] == 'e' || s[i] == 'E' {
			return s
		}
	}
	return s + ".0"
}

// cppQuote renders s as a double-quoted C++ string literal, escaping
// embedded newlines and quote characters.
func cppQuote(s string) string {
	buf := make([]byte, 0, len(s)+2)
	buf = append(buf, '"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\':
			buf = append(buf, '\\', '\\')
		case '"':
			buf = append(buf, '\\', '"')
		case '\n':
			buf = append(buf, '\\', 'n')
		case '\r':
			buf = append(buf, '\\', 'r')
		case '\t':
			buf = append(buf, '\\', 't')
		default:
			buf = append(buf, c)
		}
	}
	buf = append(buf, '"')
	return string(buf)
}
