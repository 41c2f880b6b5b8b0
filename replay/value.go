package replay

import (
	"strconv"
	"strings"
)

// ValueKind identifies the native form of a driver-call argument.
type ValueKind uint8

const (
	// ValueInt is an integer argument (enums, sizes, resolved names).
	ValueInt ValueKind = iota
	// ValueFloat is a floating-point argument.
	ValueFloat
	// ValueStr is a text argument (shader source, attribute names).
	ValueStr
	// ValuePtr is a byte offset passed where the native API takes a
	// pointer-sized offset.
	ValuePtr
	// ValueData is a binary payload argument.
	ValueData
)

// Value is a single resolved argument passed to a driver call. Virtual
// handles have already been mapped to native object names by the time a
// Value is built.
type Value struct {
	Kind  ValueKind
	Int   int64
	Float float64
	Str   string
	Data  []float64
}

// IntVal returns an integer argument.
func IntVal(i int64) Value { return Value{Kind: ValueInt, Int: i} }

// FloatVal returns a floating-point argument.
func FloatVal(f float64) Value { return Value{Kind: ValueFloat, Float: f} }

// StrVal returns a text argument.
func StrVal(s string) Value { return Value{Kind: ValueStr, Str: s} }

// PtrVal returns a pointer-offset argument.
func PtrVal(offset int64) Value { return Value{Kind: ValuePtr, Int: offset} }

// DataVal returns a binary-payload argument.
func DataVal(data []float64) Value { return Value{Kind: ValueData, Data: data} }

// Format renders the value for call logs.
func (v Value) Format() string {
	switch v.Kind {
	case ValueInt:
		return strconv.FormatInt(v.Int, 10)
	case ValueFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case ValueStr:
		return strconv.Quote(v.Str)
	case ValuePtr:
		return "&" + strconv.FormatInt(v.Int, 10)
	case ValueData:
		return "data[" + strconv.Itoa(len(v.Data)) + "]"
	}
	return "?"
}

// FormatCall renders a call and its arguments the way driver logs do.
func FormatCall(fn string, args []Value) string {
	var sb strings.Builder
	sb.WriteString(fn)
	sb.WriteByte('(')
	for i, a := range args {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(a.Format())
	}
	sb.WriteByte(')')
	return sb.String()
}
