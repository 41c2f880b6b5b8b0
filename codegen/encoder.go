package codegen

import (
	"strconv"
	"strings"

	"github.com/dreamfrog/tracing-framework/trace"
)

// CType returns the native scalar type for a typed-array element kind.
// Unknown kinds fall back to a byte type so the generated source still
// compiles; EncodeArray marks the payload itself.
func CType(e trace.ElemType) string {
	switch e {
	case trace.ElemInt8:
		return "int8_t"
	case trace.ElemUint8, trace.ElemUint8Clamped:
		return "uint8_t"
	case trace.ElemInt16:
		return "int16_t"
	case trace.ElemUint16:
		return "uint16_t"
	case trace.ElemInt32:
		return "int32_t"
	case trace.ElemUint32:
		return "uint32_t"
	case trace.ElemFloat32:
		return "GLfloat"
	}
	return "uint8_t"
}

// EncodeArray renders a binary numeric payload as a native array-literal
// expression: the elements' exact decimal text, comma-separated, in
// original order. Unrecognized element kinds produce a sentinel
// "unknown type" marker instead of failing; translation always
// completes even when coverage is incomplete.
func EncodeArray(e trace.ElemType, tag string, values []float64) string {
	if e == trace.ElemUnknown {
		return "{0} /* unknown type " + strconv.Quote(tag) + " */"
	}

	var sb strings.Builder
	sb.WriteByte('{')
	for i, v := range values {
		if i > 0 {
			sb.WriteString(", ")
		}
		if e == trace.ElemFloat32 {
			sb.WriteString(formatFloat(v, 32))
			sb.WriteByte('f')
		} else {
			sb.WriteString(strconv.FormatInt(int64(v), 10))
		}
	}
	sb.WriteByte('}')
	return sb.String()
}
