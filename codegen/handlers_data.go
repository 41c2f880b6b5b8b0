package codegen

import (
	"github.com/dreamfrog/tracing-framework/trace"
)

// WebGL-only pixel-store parameters with no native equivalent. Uploads
// recorded under them were already converted by the browser; replay
// skips the calls visibly.
const (
	pnameUnpackFlipY            = 0x9240
	pnameUnpackPremultiplyAlpha = 0x9241
	pnameUnpackColorspaceConv   = 0x9243
)

// dataHandlers covers binds, data uploads, texture parameters, and the
// framebuffer/renderbuffer plumbing. Upload handlers branch on the
// payload shape: a present payload is embedded as a typed literal, an
// absent one allocates uninitialized storage, and an external-media
// source becomes an explicit unhandled marker rather than a guess.
func dataHandlers() map[string]handlerFunc {
	return map[string]handlerFunc{
		glPrefix + "bindBuffer": func(c *call, b *Buffer) {
			b.call("glBindBuffer",
				Int(c.int("target")),
				Lookup(trace.KindBuffer, c.handle("buffer")))
		},
		glPrefix + "bindTexture": func(c *call, b *Buffer) {
			b.call("glBindTexture",
				Int(c.int("target")),
				Lookup(trace.KindTexture, c.handle("texture")))
		},
		glPrefix + "bindFramebuffer": func(c *call, b *Buffer) {
			b.call("glBindFramebuffer",
				Int(c.int("target")),
				Lookup(trace.KindFramebuffer, c.handle("framebuffer")))
		},
		glPrefix + "bindRenderbuffer": func(c *call, b *Buffer) {
			b.call("glBindRenderbuffer",
				Int(c.int("target")),
				Lookup(trace.KindRenderbuffer, c.handle("renderbuffer")))
		},

		glPrefix + "bufferData":    bufferData,
		glPrefix + "bufferSubData": bufferSubData,

		glPrefix + "texImage2D":    texImage2D,
		glPrefix + "texSubImage2D": texSubImage2D,

		glPrefix + "compressedTexImage2D": func(c *call, b *Buffer) {
			arr := c.array("data")
			if arr == nil {
				b.marker("compressedTexImage2D without payload")
				return
			}
			b.call("glCompressedTexImage2D",
				Int(c.int("target")),
				Int(c.int("level")),
				Int(c.int("internalformat")),
				Int(c.int("width")),
				Int(c.int("height")),
				Int(c.int("border")),
				Int(int64(arr.ByteLen())),
				b.dataArg(arr))
		},
		glPrefix + "compressedTexSubImage2D": func(c *call, b *Buffer) {
			arr := c.array("data")
			if arr == nil {
				b.marker("compressedTexSubImage2D without payload")
				return
			}
			b.call("glCompressedTexSubImage2D",
				Int(c.int("target")),
				Int(c.int("level")),
				Int(c.int("xoffset")),
				Int(c.int("yoffset")),
				Int(c.int("width")),
				Int(c.int("height")),
				Int(c.int("format")),
				Int(int64(arr.ByteLen())),
				b.dataArg(arr))
		},

		glPrefix + "copyTexImage2D": func(c *call, b *Buffer) {
			b.call("glCopyTexImage2D",
				Int(c.int("target")),
				Int(c.int("level")),
				Int(c.int("internalformat")),
				Int(c.int("x")),
				Int(c.int("y")),
				Int(c.int("width")),
				Int(c.int("height")),
				Int(c.int("border")))
		},
		glPrefix + "copyTexSubImage2D": func(c *call, b *Buffer) {
			b.call("glCopyTexSubImage2D",
				Int(c.int("target")),
				Int(c.int("level")),
				Int(c.int("xoffset")),
				Int(c.int("yoffset")),
				Int(c.int("x")),
				Int(c.int("y")),
				Int(c.int("width")),
				Int(c.int("height")))
		},

		glPrefix + "texParameterf": func(c *call, b *Buffer) {
			b.call("glTexParameterf",
				Int(c.int("target")),
				Int(c.int("pname")),
				Float(c.num("param")))
		},
		glPrefix + "texParameteri": func(c *call, b *Buffer) {
			b.call("glTexParameteri",
				Int(c.int("target")),
				Int(c.int("pname")),
				Int(c.int("param")))
		},
		glPrefix + "generateMipmap": func(c *call, b *Buffer) {
			b.call("glGenerateMipmap", Int(c.int("target")))
		},

		glPrefix + "pixelStorei": func(c *call, b *Buffer) {
			pname := c.int("pname")
			switch pname {
			case pnameUnpackFlipY, pnameUnpackPremultiplyAlpha, pnameUnpackColorspaceConv:
				b.marker(c.ev.Method() + "(WebGL-only pname, already applied at capture)")
				return
			}
			b.call("glPixelStorei", Int(pname), Int(c.int("param")))
		},

		glPrefix + "framebufferRenderbuffer": func(c *call, b *Buffer) {
			b.call("glFramebufferRenderbuffer",
				Int(c.int("target")),
				Int(c.int("attachment")),
				Int(c.int("renderbuffertarget")),
				Lookup(trace.KindRenderbuffer, c.handle("renderbuffer")))
		},
		glPrefix + "framebufferTexture2D": func(c *call, b *Buffer) {
			b.call("glFramebufferTexture2D",
				Int(c.int("target")),
				Int(c.int("attachment")),
				Int(c.int("textarget")),
				Lookup(trace.KindTexture, c.handle("texture")),
				Int(c.int("level")))
		},
		glPrefix + "renderbufferStorage": func(c *call, b *Buffer) {
			b.call("glRenderbufferStorage",
				Int(c.int("target")),
				Int(c.int("internalformat")),
				Int(c.int("width")),
				Int(c.int("height")))
		},
	}
}

// bufferData allocates or uploads buffer storage. The recorded "data"
// argument is either a typed array (upload) or a number (the size of an
// uninitialized allocation).
func bufferData(c *call, b *Buffer) {
	target := Int(c.int("target"))
	usage := Int(c.int("usage"))

	if arr := c.array("data"); arr != nil {
		b.call("glBufferData", target, Int(int64(arr.ByteLen())), b.dataArg(arr), usage)
		return
	}
	b.call("glBufferData", target, Int(c.int("data")), Ptr(0), usage)
}

func bufferSubData(c *call, b *Buffer) {
	arr := c.array("data")
	if arr == nil {
		b.marker("bufferSubData without payload")
		return
	}
	b.call("glBufferSubData",
		Int(c.int("target")),
		Int(c.int("offset")),
		Int(int64(arr.ByteLen())),
		b.dataArg(arr))
}

// texImage2D branches on the upload source: an embedded payload whose
// size matches the declared dimensions, a null payload (uninitialized
// storage), or an external media element the trace could not capture,
// which stays an explicit unhandled marker. A payload whose size
// disagrees with the declared dimensions also allocates empty storage
// rather than failing.
func texImage2D(c *call, b *Buffer) {
	if !c.has("width") {
		// Six-argument overload: pixels sourced from a DOM media
		// element that was never serialized into the trace.
		b.marker("texImage2D from external media element")
		return
	}

	args := []Arg{
		Int(c.int("target")),
		Int(c.int("level")),
		Int(c.int("internalformat")),
		Int(c.int("width")),
		Int(c.int("height")),
		Int(c.int("border")),
		Int(c.int("format")),
		Int(c.int("type")),
	}

	arr := c.array("pixels")
	if arr != nil && arr.ByteLen() == texByteLen(c) {
		args = append(args, b.dataArg(arr))
	} else {
		args = append(args, Ptr(0))
	}
	b.call("glTexImage2D", args...)
}

func texSubImage2D(c *call, b *Buffer) {
	if !c.has("width") {
		b.marker("texSubImage2D from external media element")
		return
	}

	arr := c.array("pixels")
	if arr == nil || arr.ByteLen() != texByteLen(c) {
		// Sub-image updates have no empty-allocation form.
		b.marker("texSubImage2D with missing or mismatched payload")
		return
	}
	b.call("glTexSubImage2D",
		Int(c.int("target")),
		Int(c.int("level")),
		Int(c.int("xoffset")),
		Int(c.int("yoffset")),
		Int(c.int("width")),
		Int(c.int("height")),
		Int(c.int("format")),
		Int(c.int("type")),
		b.dataArg(arr))
}

// texByteLen computes the expected payload size in bytes from the
// declared dimensions, pixel format, and channel type.
func texByteLen(c *call) int {
	w := int(c.int("width"))
	h := int(c.int("height"))
	return w * h * texelSize(int(c.int("format")), int(c.int("type")))
}

// Pixel formats and channel types used by texel size computation.
const (
	fmtAlpha          = 0x1906
	fmtRGB            = 0x1907
	fmtRGBA           = 0x1908
	fmtLuminance      = 0x1909
	fmtLuminanceAlpha = 0x190A
	fmtDepthComponent = 0x1902

	typeUnsignedByte      = 0x1401
	typeUnsignedShort     = 0x1403
	typeUnsignedInt       = 0x1405
	typeFloat             = 0x1406
	typeUnsignedShort4444 = 0x8033
	typeUnsignedShort5551 = 0x8034
	typeUnsignedShort565  = 0x8363
)

func texelSize(format, channelType int) int {
	switch channelType {
	case typeUnsignedShort4444, typeUnsignedShort5551, typeUnsignedShort565:
		return 2
	case typeUnsignedShort:
		return 2
	case typeUnsignedInt:
		return 4
	}

	channels := 1
	switch format {
	case fmtRGBA:
		channels = 4
	case fmtRGB:
		channels = 3
	case fmtLuminanceAlpha:
		channels = 2
	case fmtAlpha, fmtLuminance, fmtDepthComponent:
		channels = 1
	}
	if channelType == typeFloat {
		return channels * 4
	}
	return channels
}
