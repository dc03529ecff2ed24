package gl41

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/gogpu/gla/glcore"
)

// DriverGL41 is the name of the gl41 driver.
const DriverGL41 = "gl41"

// Package errors for the gl41 driver.
var (
	// ErrNotInitialized is returned when calls are issued before Init.
	ErrNotInitialized = errors.New("gl41: driver not initialized")

	// ErrCall is returned by checked drivers when glGetError reports
	// a failure after an issued call.
	ErrCall = errors.New("gl41: driver call failed")
)

// Driver issues vertex-attribute configuration calls through OpenGL
// 4.1 core. It implements [glcore.Driver].
//
// Like the context it wraps, Driver is not safe for concurrent use;
// all calls must come from the thread on which the context is current.
type Driver struct {
	checkCalls  bool
	initialized bool
}

// New creates an unchecked driver. GL errors are left in the context's
// error queue for the caller to inspect.
func New() *Driver {
	return &Driver{}
}

// NewChecked creates a driver that drains glGetError after every
// issued call and surfaces failures as errors wrapping [ErrCall].
func NewChecked() *Driver {
	return &Driver{checkCalls: true}
}

// Name returns the driver identifier.
func (d *Driver) Name() string { return DriverGL41 }

// Init loads the GL function pointers. An OpenGL context must be
// current on the calling thread.
func (d *Driver) Init() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl41: load GL functions: %w", err)
	}
	d.initialized = true
	return nil
}

// MaxVertexAttribs queries GL_MAX_VERTEX_ATTRIBS. If the query fails,
// the driver leaves the output untouched and the negative sentinel is
// returned for the caller to reject.
func (d *Driver) MaxVertexAttribs() (int, error) {
	if !d.initialized {
		return -1, ErrNotInitialized
	}
	n := int32(-1)
	gl.GetIntegerv(gl.MAX_VERTEX_ATTRIBS, &n)
	if err := d.check("glGetIntegerv(GL_MAX_VERTEX_ATTRIBS)"); err != nil {
		return -1, err
	}
	return int(n), nil
}

// CreateBuffer generates a buffer object name.
func (d *Driver) CreateBuffer() (uint32, error) {
	if !d.initialized {
		return 0, ErrNotInitialized
	}
	var id uint32
	gl.GenBuffers(1, &id)
	if err := d.check("glGenBuffers"); err != nil {
		return 0, err
	}
	return id, nil
}

// DeleteBuffer deletes a buffer object name.
func (d *Driver) DeleteBuffer(id uint32) {
	if !d.initialized {
		return
	}
	gl.DeleteBuffers(1, &id)
}

// BindBuffer binds a buffer object to the given target.
func (d *Driver) BindBuffer(target glcore.Enum, id uint32) error {
	if !d.initialized {
		return ErrNotInitialized
	}
	gl.BindBuffer(uint32(target), id)
	return d.check("glBindBuffer")
}

// EnableVertexAttrib enables the attribute slot at index.
func (d *Driver) EnableVertexAttrib(index uint32) error {
	if !d.initialized {
		return ErrNotInitialized
	}
	gl.EnableVertexAttribArray(index)
	return d.check("glEnableVertexAttribArray")
}

// DisableVertexAttrib disables the attribute slot at index.
func (d *Driver) DisableVertexAttrib(index uint32) error {
	if !d.initialized {
		return ErrNotInitialized
	}
	gl.DisableVertexAttribArray(index)
	return d.check("glDisableVertexAttribArray")
}

// VertexAttribPointer issues glVertexAttribPointer for the buffer
// currently bound to GL_ARRAY_BUFFER.
func (d *Driver) VertexAttribPointer(index uint32, components int32, typ glcore.Enum, normalized bool, stride int32, offset uintptr) error {
	if !d.initialized {
		return ErrNotInitialized
	}
	gl.VertexAttribPointerWithOffset(index, components, uint32(typ), normalized, stride, offset)
	return d.check("glVertexAttribPointer")
}

// VertexAttribIPointer issues glVertexAttribIPointer for the buffer
// currently bound to GL_ARRAY_BUFFER.
func (d *Driver) VertexAttribIPointer(index uint32, components int32, typ glcore.Enum, stride int32, offset uintptr) error {
	if !d.initialized {
		return ErrNotInitialized
	}
	gl.VertexAttribIPointerWithOffset(index, components, uint32(typ), stride, offset)
	return d.check("glVertexAttribIPointer")
}
