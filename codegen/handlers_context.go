package codegen

import (
	"github.com/dreamfrog/tracing-framework/trace"
)

// contextHandlers covers the trace's context lifecycle pseudo-calls.
// These are capture-tool markers, not graphics calls; they become replay
// runtime context operations.
func contextHandlers() map[string]handlerFunc {
	return map[string]handlerFunc{
		trace.CreateContextCall: func(c *call, b *Buffer) {
			b.push(CreateContextStmt{Handle: c.handle("handle")})
		},
		trace.SetContextCall: func(c *call, b *Buffer) {
			width, height := -1, -1
			if c.has("width") && c.has("height") {
				width = int(c.int("width"))
				height = int(c.int("height"))
			}
			b.push(MakeCurrentStmt{
				Handle: c.handle("handle"),
				Width:  width,
				Height: height,
			})
		},
	}
}
