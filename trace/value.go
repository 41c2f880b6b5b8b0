package trace

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Kind identifies the dynamic type of a recorded argument value.
type Kind uint8

const (
	// KindNull is a null or absent value.
	KindNull Kind = iota
	// KindNumber is a numeric value (integers and floats share one form).
	KindNumber
	// KindBool is a boolean value.
	KindBool
	// KindString is a text value.
	KindString
	// KindHandle is a virtual-handle reference to a trace resource.
	KindHandle
	// KindArray is a binary typed array payload.
	KindArray
	// KindMap is a string-keyed mapping (attribute-location maps and
	// similar auxiliary structures recorded next to a call).
	KindMap
)

var kindNames = [...]string{
	KindNull:   "Null",
	KindNumber: "Number",
	KindBool:   "Bool",
	KindString: "String",
	KindHandle: "Handle",
	KindArray:  "Array",
	KindMap:    "Map",
}

// String returns the name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// ElemType identifies the element type of a binary typed array.
type ElemType uint8

const (
	// ElemInt8 is a signed 8-bit integer element.
	ElemInt8 ElemType = iota
	// ElemUint8 is an unsigned 8-bit integer element.
	ElemUint8
	// ElemUint8Clamped is an unsigned 8-bit integer element with clamped
	// conversion semantics on the recording side. Identical to ElemUint8
	// once recorded.
	ElemUint8Clamped
	// ElemInt16 is a signed 16-bit integer element.
	ElemInt16
	// ElemUint16 is an unsigned 16-bit integer element.
	ElemUint16
	// ElemInt32 is a signed 32-bit integer element.
	ElemInt32
	// ElemUint32 is an unsigned 32-bit integer element.
	ElemUint32
	// ElemFloat32 is a 32-bit float element.
	ElemFloat32
	// ElemUnknown is any tag the loader did not recognize. Translation
	// still completes; the encoder renders a sentinel marker for it.
	ElemUnknown
)

var elemNames = [...]string{
	ElemInt8:         "int8",
	ElemUint8:        "uint8",
	ElemUint8Clamped: "uint8c",
	ElemInt16:        "int16",
	ElemUint16:       "uint16",
	ElemInt32:        "int32",
	ElemUint32:       "uint32",
	ElemFloat32:      "float32",
	ElemUnknown:      "unknown",
}

// String returns the wire tag for the element type.
func (e ElemType) String() string {
	if int(e) < len(elemNames) {
		return elemNames[e]
	}
	return "unknown"
}

// Size returns the element width in bytes, or 0 for ElemUnknown.
func (e ElemType) Size() int {
	switch e {
	case ElemInt8, ElemUint8, ElemUint8Clamped:
		return 1
	case ElemInt16, ElemUint16:
		return 2
	case ElemInt32, ElemUint32, ElemFloat32:
		return 4
	}
	return 0
}

// ParseElemType maps a wire tag to an ElemType. Unrecognized tags map to
// ElemUnknown rather than failing; translation must always complete.
func ParseElemType(tag string) ElemType {
	for e, name := range elemNames {
		if name == tag && ElemType(e) != ElemUnknown {
			return ElemType(e)
		}
	}
	return ElemUnknown
}

// TypedArray is a binary numeric payload tagged with an element type.
// Values are stored as float64 regardless of element type; the tag decides
// how they are rendered back into native form.
type TypedArray struct {
	Elem ElemType
	// Tag holds the original wire tag. It differs from Elem.String() only
	// when the tag was not recognized.
	Tag    string
	Values []float64
}

// Len returns the number of elements in the payload.
func (a *TypedArray) Len() int {
	if a == nil {
		return 0
	}
	return len(a.Values)
}

// ByteLen returns the payload size in bytes.
func (a *TypedArray) ByteLen() int {
	if a == nil {
		return 0
	}
	return len(a.Values) * a.Elem.Size()
}

// Value is one recorded argument value. Values are immutable once loaded.
// The zero Value is null.
type Value struct {
	kind   Kind
	num    float64
	b      bool
	str    string
	handle int
	arr    *TypedArray
	m      map[string]Value
}

// Null returns the null value.
func Null() Value { return Value{} }

// Number returns a numeric value.
func Number(n float64) Value { return Value{kind: KindNumber, num: n} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// String returns a text value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Handle returns a virtual-handle reference.
func Handle(h int) Value { return Value{kind: KindHandle, handle: h} }

// Array returns a typed-array value.
func Array(a *TypedArray) Value { return Value{kind: KindArray, arr: a} }

// Map returns a string-keyed mapping value.
func Map(m map[string]Value) Value { return Value{kind: KindMap, m: m} }

// Kind returns the value's dynamic kind.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is null or absent.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Num returns the numeric form of the value, or 0 for non-numbers.
func (v Value) Num() float64 {
	if v.kind == KindNumber {
		return v.num
	}
	return 0
}

// Int returns the value truncated to an integer, or 0 for non-numbers.
func (v Value) Int() int64 {
	if v.kind == KindNumber {
		return int64(v.num)
	}
	return 0
}

// Bool returns the boolean form of the value, or false otherwise.
func (v Value) Bool() bool {
	if v.kind == KindBool {
		return v.b
	}
	return false
}

// Str returns the text form of the value, or "" otherwise.
func (v Value) Str() string {
	if v.kind == KindString {
		return v.str
	}
	return ""
}

// Handle returns the referenced virtual handle. Plain numbers are
// accepted for traces that record handles untagged. Null values and the
// zero value yield handle 0, which replay resolves to the default object.
func (v Value) Handle() int {
	switch v.kind {
	case KindHandle:
		return v.handle
	case KindNumber:
		return int(v.num)
	}
	return 0
}

// Array returns the typed-array payload, or nil for other kinds.
func (v Value) Array() *TypedArray {
	if v.kind == KindArray {
		return v.arr
	}
	return nil
}

// Map returns the mapping payload, or nil for other kinds.
func (v Value) Map() map[string]Value {
	if v.kind == KindMap {
		return v.m
	}
	return nil
}

// Format renders the value in the human-readable form used by marker
// statements and diagnostics.
func (v Value) Format() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindString:
		return strconv.Quote(v.str)
	case KindHandle:
		return "<" + strconv.Itoa(v.handle) + ">"
	case KindArray:
		return fmt.Sprintf("%s[%d]", v.arr.Elem, v.arr.Len())
	case KindMap:
		return fmt.Sprintf("map[%d]", len(v.m))
	}
	return "?"
}

// UnmarshalJSON decodes a recorded value from its trace encoding.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	val, err := valueFromJSON(raw)
	if err != nil {
		return err
	}
	*v = val
	return nil
}

func valueFromJSON(raw any) (Value, error) {
	switch t := raw.(type) {
	case nil:
		return Null(), nil
	case float64:
		return Number(t), nil
	case bool:
		return Bool(t), nil
	case string:
		return String(t), nil
	case []any:
		// Bare arrays are treated as float32 payloads. Capture tools
		// normally emit tagged arrays; this keeps hand-written traces
		// loadable.
		values := make([]float64, len(t))
		for i, e := range t {
			n, ok := e.(float64)
			if !ok {
				return Null(), fmt.Errorf("trace: array element %d is not a number", i)
			}
			values[i] = n
		}
		return Array(&TypedArray{Elem: ElemFloat32, Tag: "float32", Values: values}), nil
	case map[string]any:
		return objectFromJSON(t)
	}
	return Null(), fmt.Errorf("trace: unsupported value %T", raw)
}

func objectFromJSON(obj map[string]any) (Value, error) {
	if h, ok := obj["$handle"]; ok {
		n, ok := h.(float64)
		if !ok || n != math.Trunc(n) {
			return Null(), fmt.Errorf("trace: $handle must be an integer, got %v", h)
		}
		return Handle(int(n)), nil
	}
	if tag, ok := obj["$type"]; ok {
		tagStr, ok := tag.(string)
		if !ok {
			return Null(), fmt.Errorf("trace: $type must be a string, got %v", tag)
		}
		rawData, ok := obj["$data"].([]any)
		if !ok {
			return Null(), fmt.Errorf("trace: typed array %q is missing $data", tagStr)
		}
		values := make([]float64, len(rawData))
		for i, e := range rawData {
			n, ok := e.(float64)
			if !ok {
				return Null(), fmt.Errorf("trace: typed array element %d is not a number", i)
			}
			values[i] = n
		}
		return Array(&TypedArray{Elem: ParseElemType(tagStr), Tag: tagStr, Values: values}), nil
	}
	m := make(map[string]Value, len(obj))
	for k, e := range obj {
		val, err := valueFromJSON(e)
		if err != nil {
			return Null(), err
		}
		m[k] = val
	}
	return Map(m), nil
}
