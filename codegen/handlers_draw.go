package codegen

// anglePrefix qualifies the instanced-arrays extension calls. The
// generated prologue resolves the native entry points at startup.
const anglePrefix = "ANGLEInstancedArrays#"

// drawHandlers covers vertex attribute setup and the draw calls,
// including the instanced-arrays extension trio.
func drawHandlers() map[string]handlerFunc {
	return map[string]handlerFunc{
		glPrefix + "enableVertexAttribArray": func(c *call, b *Buffer) {
			b.call("glEnableVertexAttribArray", Int(c.int("index")))
		},
		glPrefix + "disableVertexAttribArray": func(c *call, b *Buffer) {
			b.call("glDisableVertexAttribArray", Int(c.int("index")))
		},
		glPrefix + "vertexAttribPointer": func(c *call, b *Buffer) {
			b.call("glVertexAttribPointer",
				Int(c.int("indx")),
				Int(c.int("size")),
				Int(c.int("type")),
				Flag(c.flag("normalized")),
				Int(c.int("stride")),
				Ptr(c.int("offset")))
		},
		glPrefix + "drawArrays": func(c *call, b *Buffer) {
			b.call("glDrawArrays",
				Int(c.int("mode")), Int(c.int("first")), Int(c.int("count")))
		},
		glPrefix + "drawElements": func(c *call, b *Buffer) {
			b.call("glDrawElements",
				Int(c.int("mode")),
				Int(c.int("count")),
				Int(c.int("type")),
				Ptr(c.int("offset")))
		},

		anglePrefix + "drawArraysInstancedANGLE": func(c *call, b *Buffer) {
			b.call("glDrawArraysInstanced",
				Int(c.int("mode")),
				Int(c.int("first")),
				Int(c.int("count")),
				Int(c.int("primcount")))
		},
		anglePrefix + "drawElementsInstancedANGLE": func(c *call, b *Buffer) {
			b.call("glDrawElementsInstanced",
				Int(c.int("mode")),
				Int(c.int("count")),
				Int(c.int("type")),
				Ptr(c.int("offset")),
				Int(c.int("primcount")))
		},
		anglePrefix + "vertexAttribDivisorANGLE": func(c *call, b *Buffer) {
			b.call("glVertexAttribDivisor",
				Int(c.int("index")), Int(c.int("divisor")))
		},
	}
}
