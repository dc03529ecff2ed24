package glcore

// Driver is the interface between gla and a concrete graphics driver.
// It covers exactly the entry points that vertex-attribute configuration
// needs; everything else (shaders, draw calls, data upload) is outside
// the boundary.
//
// Drivers wrap a stateful graphics context that is not thread-safe.
// All calls on a Driver must come from the thread that owns the
// underlying context; gla never serializes access on the caller's
// behalf.
type Driver interface {
	// Name returns the driver identifier (e.g. "gl41", "headless").
	Name() string

	// Init prepares the driver for use. For real drivers this loads
	// the GL function pointers and must run after a context is current
	// on the calling thread.
	Init() error

	// MaxVertexAttribs queries the driver-reported maximum number of
	// vertex attribute slots. The GL specification guarantees a floor
	// of 16, but the runtime value must always be queried.
	MaxVertexAttribs() (int, error)

	// CreateBuffer creates a new buffer object and returns its name.
	CreateBuffer() (uint32, error)

	// DeleteBuffer destroys a buffer object. Deleting name 0 or an
	// already-deleted buffer is a no-op.
	DeleteBuffer(id uint32)

	// BindBuffer binds a buffer object to the given target. Binding
	// name 0 unbinds the target.
	BindBuffer(target Enum, id uint32) error

	// EnableVertexAttrib enables the vertex attribute slot at index.
	EnableVertexAttrib(index uint32) error

	// DisableVertexAttrib disables the vertex attribute slot at index.
	DisableVertexAttrib(index uint32) error

	// VertexAttribPointer describes the layout of a floating-point
	// attribute slot within the buffer currently bound to
	// TargetArrayBuffer. Integer storage types are converted to float,
	// optionally normalized.
	VertexAttribPointer(index uint32, components int32, typ Enum, normalized bool, stride int32, offset uintptr) error

	// VertexAttribIPointer is the integer variant: stored values reach
	// the shader stage as integers, with no conversion and no
	// normalization.
	VertexAttribIPointer(index uint32, components int32, typ Enum, stride int32, offset uintptr) error
}
