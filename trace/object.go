package trace

// ObjectKind is the resource namespace of a virtual handle. Identical
// handle integers across kinds name unrelated resources.
type ObjectKind uint8

const (
	// KindBuffer is a vertex/index buffer object.
	KindBuffer ObjectKind = iota
	// KindTexture is a texture object.
	KindTexture
	// KindProgram is a linked shader program object.
	KindProgram
	// KindShader is a vertex or fragment shader object.
	KindShader
	// KindFramebuffer is a framebuffer object.
	KindFramebuffer
	// KindRenderbuffer is a renderbuffer object.
	KindRenderbuffer
	// KindUniformLocation is a uniform location within a linked program.
	KindUniformLocation
)

var objectKindNames = [...]string{
	KindBuffer:          "buffer",
	KindTexture:         "texture",
	KindProgram:         "program",
	KindShader:          "shader",
	KindFramebuffer:     "framebuffer",
	KindRenderbuffer:    "renderbuffer",
	KindUniformLocation: "uniform-location",
}

// String returns the kind's name.
func (k ObjectKind) String() string {
	if int(k) < len(objectKindNames) {
		return objectKindNames[k]
	}
	return "unknown"
}
