package codegen

import (
	"github.com/dreamfrog/tracing-framework/trace"
)

// uniformHandlers covers the uniform and vertex-attrib scalar, vector,
// and matrix families. Vector calls compute their element count from the
// payload length divided by the call's fixed arity; matrix calls divide
// by the matrix cell count and pass the transpose flag through.
func uniformHandlers() map[string]handlerFunc {
	h := make(map[string]handlerFunc, 40)

	scalarF := []string{"x", "y", "z", "w"}
	for n := 1; n <= 4; n++ {
		n := n
		fnF := fdigit("glUniform", n, "f")
		h[fdigit(glPrefix+"uniform", n, "f")] = func(c *call, b *Buffer) {
			args := []Arg{Lookup(trace.KindUniformLocation, c.handle("location"))}
			for i := 0; i < n; i++ {
				args = append(args, Float(c.num(scalarF[i])))
			}
			b.call(fnF, args...)
		}
		fnI := fdigit("glUniform", n, "i")
		h[fdigit(glPrefix+"uniform", n, "i")] = func(c *call, b *Buffer) {
			args := []Arg{Lookup(trace.KindUniformLocation, c.handle("location"))}
			for i := 0; i < n; i++ {
				args = append(args, Int(c.int(scalarF[i])))
			}
			b.call(fnI, args...)
		}

		fnFV := fdigit("glUniform", n, "fv")
		h[fdigit(glPrefix+"uniform", n, "fv")] = func(c *call, b *Buffer) {
			uniformVector(c, b, fnFV, n, trace.ElemFloat32)
		}
		fnIV := fdigit("glUniform", n, "iv")
		h[fdigit(glPrefix+"uniform", n, "iv")] = func(c *call, b *Buffer) {
			uniformVector(c, b, fnIV, n, trace.ElemInt32)
		}
	}

	for _, m := range []int{2, 3, 4} {
		m := m
		fn := fdigit("glUniformMatrix", m, "fv")
		h[fdigit(glPrefix+"uniformMatrix", m, "fv")] = func(c *call, b *Buffer) {
			arr := coerceElem(c.array("value"), trace.ElemFloat32)
			count := arr.Len() / (m * m)
			b.call(fn,
				Lookup(trace.KindUniformLocation, c.handle("location")),
				Int(int64(count)),
				Flag(c.flag("transpose")),
				b.dataArg(arr))
		}
	}

	for n := 1; n <= 4; n++ {
		n := n
		fn := fdigit("glVertexAttrib", n, "f")
		h[fdigit(glPrefix+"vertexAttrib", n, "f")] = func(c *call, b *Buffer) {
			args := []Arg{Int(c.int("indx"))}
			for i := 0; i < n; i++ {
				args = append(args, Float(c.num(scalarF[i])))
			}
			b.call(fn, args...)
		}
		fnV := fdigit("glVertexAttrib", n, "fv")
		h[fdigit(glPrefix+"vertexAttrib", n, "fv")] = func(c *call, b *Buffer) {
			arr := coerceElem(c.array("values"), trace.ElemFloat32)
			b.call(fnV, Int(c.int("indx")), b.dataArg(arr))
		}
	}

	return h
}

// uniformVector emits a glUniform{N}{f,i}v call: data declaration, then
// the call with count = payload length / arity.
func uniformVector(c *call, b *Buffer, fn string, arity int, elem trace.ElemType) {
	arr := coerceElem(c.array("v"), elem)
	count := arr.Len() / arity
	b.call(fn,
		Lookup(trace.KindUniformLocation, c.handle("location")),
		Int(int64(count)),
		b.dataArg(arr))
}

// coerceElem retags a payload so its native declaration matches the
// call's signature (uniform fv wants GLfloat, iv wants GLint) regardless
// of how the capture tool tagged it. A nil payload becomes empty.
func coerceElem(arr *trace.TypedArray, elem trace.ElemType) *trace.TypedArray {
	if arr == nil {
		return &trace.TypedArray{Elem: elem, Tag: elem.String()}
	}
	if arr.Elem == elem || arr.Elem == trace.ElemUnknown {
		return arr
	}
	return &trace.TypedArray{Elem: elem, Tag: elem.String(), Values: arr.Values}
}

// fdigit builds names like glUniform3fv from a prefix, digit, and
// suffix.
func fdigit(prefix string, n int, suffix string) string {
	return prefix + string(rune('0'+n)) + suffix
}
