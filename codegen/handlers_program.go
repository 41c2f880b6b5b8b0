package codegen

import (
	"sort"

	"github.com/dreamfrog/tracing-framework/trace"
)

// programHandlers covers shader and program lifecycle: source upload,
// compilation, attachment, linking with explicit attribute bindings, and
// uniform-location capture.
func programHandlers() map[string]handlerFunc {
	return map[string]handlerFunc{
		glPrefix + "shaderSource": func(c *call, b *Buffer) {
			b.push(ShaderSourceStmt{
				Shader: c.handle("shader"),
				Source: c.str("source"),
			})
		},
		glPrefix + "compileShader": func(c *call, b *Buffer) {
			b.call("glCompileShader", Lookup(trace.KindShader, c.handle("shader")))
		},
		glPrefix + "attachShader": func(c *call, b *Buffer) {
			b.call("glAttachShader",
				Lookup(trace.KindProgram, c.handle("program")),
				Lookup(trace.KindShader, c.handle("shader")))
		},
		glPrefix + "detachShader": func(c *call, b *Buffer) {
			b.call("glDetachShader",
				Lookup(trace.KindProgram, c.handle("program")),
				Lookup(trace.KindShader, c.handle("shader")))
		},
		glPrefix + "bindAttribLocation": func(c *call, b *Buffer) {
			b.call("glBindAttribLocation",
				Lookup(trace.KindProgram, c.handle("program")),
				Int(c.int("index")),
				Str(c.str("name")))
		},
		glPrefix + "linkProgram": linkProgram,
		glPrefix + "useProgram": func(c *call, b *Buffer) {
			b.call("glUseProgram", Lookup(trace.KindProgram, c.handle("program")))
		},
		glPrefix + "validateProgram": func(c *call, b *Buffer) {
			b.call("glValidateProgram", Lookup(trace.KindProgram, c.handle("program")))
		},
		glPrefix + "getUniformLocation": func(c *call, b *Buffer) {
			b.push(LocationStmt{
				Handle:  c.handle("value"),
				Program: c.handle("program"),
				Name:    c.str("name"),
			})
		},
	}
}

// linkProgram emits one attribute-location binding per entry of the
// recorded attribute map, then the link call. Bindings are ordered by
// location index, which reproduces the recorder's insertion order for
// the maps WebGL produces.
func linkProgram(c *call, b *Buffer) {
	program := c.handle("program")

	attribs := c.object("attributes")
	names := make([]string, 0, len(attribs))
	for name := range attribs {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return attribs[names[i]].Int() < attribs[names[j]].Int()
	})
	for _, name := range names {
		b.call("glBindAttribLocation",
			Lookup(trace.KindProgram, program),
			Int(attribs[name].Int()),
			Str(name))
	}

	b.call("glLinkProgram", Lookup(trace.KindProgram, program))
}
