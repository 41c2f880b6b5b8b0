package codegen

// stateHandlers covers the fixed-function state setters. Their scalar
// and enumerated arguments are already native-compatible encodings and
// pass through unchanged.
func stateHandlers() map[string]handlerFunc {
	return map[string]handlerFunc{
		glPrefix + "activeTexture": func(c *call, b *Buffer) {
			b.call("glActiveTexture", Int(c.int("texture")))
		},
		glPrefix + "blendColor": func(c *call, b *Buffer) {
			b.call("glBlendColor",
				Float(c.num("red")), Float(c.num("green")),
				Float(c.num("blue")), Float(c.num("alpha")))
		},
		glPrefix + "blendEquation": func(c *call, b *Buffer) {
			b.call("glBlendEquation", Int(c.int("mode")))
		},
		glPrefix + "blendEquationSeparate": func(c *call, b *Buffer) {
			b.call("glBlendEquationSeparate",
				Int(c.int("modeRGB")), Int(c.int("modeAlpha")))
		},
		glPrefix + "blendFunc": func(c *call, b *Buffer) {
			b.call("glBlendFunc", Int(c.int("sfactor")), Int(c.int("dfactor")))
		},
		glPrefix + "blendFuncSeparate": func(c *call, b *Buffer) {
			b.call("glBlendFuncSeparate",
				Int(c.int("srcRGB")), Int(c.int("dstRGB")),
				Int(c.int("srcAlpha")), Int(c.int("dstAlpha")))
		},
		glPrefix + "clear": func(c *call, b *Buffer) {
			b.call("glClear", Int(c.int("mask")))
		},
		glPrefix + "clearColor": func(c *call, b *Buffer) {
			b.call("glClearColor",
				Float(c.num("red")), Float(c.num("green")),
				Float(c.num("blue")), Float(c.num("alpha")))
		},
		glPrefix + "clearDepth": func(c *call, b *Buffer) {
			b.call("glClearDepthf", Float(c.num("depth")))
		},
		glPrefix + "clearStencil": func(c *call, b *Buffer) {
			b.call("glClearStencil", Int(c.int("s")))
		},
		glPrefix + "colorMask": func(c *call, b *Buffer) {
			b.call("glColorMask",
				Flag(c.flag("red")), Flag(c.flag("green")),
				Flag(c.flag("blue")), Flag(c.flag("alpha")))
		},
		glPrefix + "cullFace": func(c *call, b *Buffer) {
			b.call("glCullFace", Int(c.int("mode")))
		},
		glPrefix + "depthFunc": func(c *call, b *Buffer) {
			b.call("glDepthFunc", Int(c.int("func")))
		},
		glPrefix + "depthMask": func(c *call, b *Buffer) {
			b.call("glDepthMask", Flag(c.flag("flag")))
		},
		glPrefix + "depthRange": func(c *call, b *Buffer) {
			b.call("glDepthRangef", Float(c.num("zNear")), Float(c.num("zFar")))
		},
		glPrefix + "disable": func(c *call, b *Buffer) {
			b.call("glDisable", Int(c.int("cap")))
		},
		glPrefix + "enable": func(c *call, b *Buffer) {
			b.call("glEnable", Int(c.int("cap")))
		},
		glPrefix + "finish": func(c *call, b *Buffer) {
			b.call("glFinish")
		},
		glPrefix + "flush": func(c *call, b *Buffer) {
			b.call("glFlush")
		},
		glPrefix + "frontFace": func(c *call, b *Buffer) {
			b.call("glFrontFace", Int(c.int("mode")))
		},
		glPrefix + "hint": func(c *call, b *Buffer) {
			b.call("glHint", Int(c.int("target")), Int(c.int("mode")))
		},
		glPrefix + "lineWidth": func(c *call, b *Buffer) {
			b.call("glLineWidth", Float(c.num("width")))
		},
		glPrefix + "polygonOffset": func(c *call, b *Buffer) {
			b.call("glPolygonOffset", Float(c.num("factor")), Float(c.num("units")))
		},
		glPrefix + "sampleCoverage": func(c *call, b *Buffer) {
			b.call("glSampleCoverage", Float(c.num("value")), Flag(c.flag("invert")))
		},
		glPrefix + "scissor": func(c *call, b *Buffer) {
			b.call("glScissor",
				Int(c.int("x")), Int(c.int("y")),
				Int(c.int("width")), Int(c.int("height")))
		},
		glPrefix + "stencilFunc": func(c *call, b *Buffer) {
			b.call("glStencilFunc",
				Int(c.int("func")), Int(c.int("ref")), Int(c.int("mask")))
		},
		glPrefix + "stencilFuncSeparate": func(c *call, b *Buffer) {
			b.call("glStencilFuncSeparate",
				Int(c.int("face")), Int(c.int("func")),
				Int(c.int("ref")), Int(c.int("mask")))
		},
		glPrefix + "stencilMask": func(c *call, b *Buffer) {
			b.call("glStencilMask", Int(c.int("mask")))
		},
		glPrefix + "stencilMaskSeparate": func(c *call, b *Buffer) {
			b.call("glStencilMaskSeparate", Int(c.int("face")), Int(c.int("mask")))
		},
		glPrefix + "stencilOp": func(c *call, b *Buffer) {
			b.call("glStencilOp",
				Int(c.int("fail")), Int(c.int("zfail")), Int(c.int("zpass")))
		},
		glPrefix + "stencilOpSeparate": func(c *call, b *Buffer) {
			b.call("glStencilOpSeparate",
				Int(c.int("face")), Int(c.int("fail")),
				Int(c.int("zfail")), Int(c.int("zpass")))
		},
		glPrefix + "viewport": func(c *call, b *Buffer) {
			b.call("glViewport",
				Int(c.int("x")), Int(c.int("y")),
				Int(c.int("width")), Int(c.int("height")))
		},
	}
}
