package codegen

import (
	"github.com/dreamfrog/tracing-framework/trace"
)

// glPrefix is the interface qualifier of every real context call in a
// WebGL trace.
const glPrefix = "WebGLRenderingContext#"

// resourceHandlers covers resource creation and deletion. Creation
// allocates one native object into the scratch identifier and installs
// it in the object table under the call's output handle; deletion looks
// the native name up and releases it, leaving the table entry behind.
func resourceHandlers() map[string]handlerFunc {
	return map[string]handlerFunc{
		glPrefix + "createBuffer": func(c *call, b *Buffer) {
			b.gen(trace.KindBuffer, c.handle("value"))
		},
		glPrefix + "createTexture": func(c *call, b *Buffer) {
			b.gen(trace.KindTexture, c.handle("value"))
		},
		glPrefix + "createFramebuffer": func(c *call, b *Buffer) {
			b.gen(trace.KindFramebuffer, c.handle("value"))
		},
		glPrefix + "createRenderbuffer": func(c *call, b *Buffer) {
			b.gen(trace.KindRenderbuffer, c.handle("value"))
		},
		glPrefix + "createProgram": func(c *call, b *Buffer) {
			b.gen(trace.KindProgram, c.handle("value"))
		},
		glPrefix + "createShader": func(c *call, b *Buffer) {
			b.push(GenStmt{
				Kind:       trace.KindShader,
				Handle:     c.handle("value"),
				ShaderType: Int(c.int("type")),
			})
		},

		glPrefix + "deleteBuffer": func(c *call, b *Buffer) {
			b.del(trace.KindBuffer, c.handle("buffer"))
		},
		glPrefix + "deleteTexture": func(c *call, b *Buffer) {
			b.del(trace.KindTexture, c.handle("texture"))
		},
		glPrefix + "deleteFramebuffer": func(c *call, b *Buffer) {
			b.del(trace.KindFramebuffer, c.handle("framebuffer"))
		},
		glPrefix + "deleteRenderbuffer": func(c *call, b *Buffer) {
			b.del(trace.KindRenderbuffer, c.handle("renderbuffer"))
		},
		glPrefix + "deleteProgram": func(c *call, b *Buffer) {
			b.del(trace.KindProgram, c.handle("program"))
		},
		glPrefix + "deleteShader": func(c *call, b *Buffer) {
			b.del(trace.KindShader, c.handle("shader"))
		},
	}
}
