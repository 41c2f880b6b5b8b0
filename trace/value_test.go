package trace

import (
	"encoding/json"
	"testing"
)

func TestValueUnmarshalScalars(t *testing.T) {
	tests := []struct {
		name string
		in   string
		kind Kind
		want string
	}{
		{"null", `null`, KindNull, "null"},
		{"int", `42`, KindNumber, "42"},
		{"float", `2.5`, KindNumber, "2.5"},
		{"bool", `true`, KindBool, "true"},
		{"string", `"hello"`, KindString, `"hello"`},
		{"handle", `{"$handle": 7}`, KindHandle, "<7>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v Value
			if err := json.Unmarshal([]byte(tt.in), &v); err != nil {
				t.Fatalf("Unmarshal(%s): %v", tt.in, err)
			}
			if v.Kind() != tt.kind {
				t.Errorf("Kind = %v, want %v", v.Kind(), tt.kind)
			}
			if got := v.Format(); got != tt.want {
				t.Errorf("Format = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValueUnmarshalTypedArray(t *testing.T) {
	tests := []struct {
		tag  string
		elem ElemType
		size int
	}{
		{"int8", ElemInt8, 1},
		{"uint8", ElemUint8, 1},
		{"uint8c", ElemUint8Clamped, 1},
		{"int16", ElemInt16, 2},
		{"uint16", ElemUint16, 2},
		{"int32", ElemInt32, 4},
		{"uint32", ElemUint32, 4},
		{"float32", ElemFloat32, 4},
	}
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			in := `{"$type": "` + tt.tag + `", "$data": [1, 2, 3]}`
			var v Value
			if err := json.Unmarshal([]byte(in), &v); err != nil {
				t.Fatalf("Unmarshal(%s): %v", in, err)
			}
			arr := v.Array()
			if arr == nil {
				t.Fatalf("Array() = nil, kind %v", v.Kind())
			}
			if arr.Elem != tt.elem {
				t.Errorf("Elem = %v, want %v", arr.Elem, tt.elem)
			}
			if arr.Len() != 3 {
				t.Errorf("Len = %d, want 3", arr.Len())
			}
			if arr.ByteLen() != 3*tt.size {
				t.Errorf("ByteLen = %d, want %d", arr.ByteLen(), 3*tt.size)
			}
		})
	}
}

func TestValueUnmarshalUnknownTag(t *testing.T) {
	var v Value
	if err := json.Unmarshal([]byte(`{"$type": "float64", "$data": [1]}`), &v); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	arr := v.Array()
	if arr == nil {
		t.Fatal("Array() = nil")
	}
	if arr.Elem != ElemUnknown {
		t.Errorf("Elem = %v, want ElemUnknown", arr.Elem)
	}
	if arr.Tag != "float64" {
		t.Errorf("Tag = %q, want %q", arr.Tag, "float64")
	}
}

func TestValueUnmarshalBareArray(t *testing.T) {
	var v Value
	if err := json.Unmarshal([]byte(`[0.5, 1.5]`), &v); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	arr := v.Array()
	if arr == nil {
		t.Fatal("Array() = nil")
	}
	if arr.Elem != ElemFloat32 {
		t.Errorf("Elem = %v, want ElemFloat32", arr.Elem)
	}
	if arr.Values[1] != 1.5 {
		t.Errorf("Values[1] = %v, want 1.5", arr.Values[1])
	}
}

func TestValueUnmarshalMap(t *testing.T) {
	var v Value
	in := `{"position": 0, "color": 1}`
	if err := json.Unmarshal([]byte(in), &v); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	m := v.Map()
	if m == nil {
		t.Fatalf("Map() = nil, kind %v", v.Kind())
	}
	if m["position"].Int() != 0 || m["color"].Int() != 1 {
		t.Errorf("Map = %v, want position=0 color=1", m)
	}
}

func TestValueUnmarshalErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"fractional handle", `{"$handle": 1.5}`},
		{"typed array without data", `{"$type": "uint8"}`},
		{"non-numeric element", `{"$type": "uint8", "$data": ["x"]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v Value
			if err := json.Unmarshal([]byte(tt.in), &v); err == nil {
				t.Errorf("Unmarshal(%s) succeeded, want error", tt.in)
			}
		})
	}
}

func TestValueHandleLenient(t *testing.T) {
	if got := Number(9).Handle(); got != 9 {
		t.Errorf("Number(9).Handle() = %d, want 9", got)
	}
	if got := Null().Handle(); got != 0 {
		t.Errorf("Null().Handle() = %d, want 0", got)
	}
}

func TestParseElemType(t *testing.T) {
	if got := ParseElemType("uint16"); got != ElemUint16 {
		t.Errorf("ParseElemType(uint16) = %v", got)
	}
	if got := ParseElemType("unknown"); got != ElemUnknown {
		t.Errorf("ParseElemType(unknown) = %v", got)
	}
	if got := ParseElemType("float64"); got != ElemUnknown {
		t.Errorf("ParseElemType(float64) = %v", got)
	}
}
