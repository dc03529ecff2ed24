package gl41

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// check drains the GL error queue after a call when call checking is
// on. The first error is reported; later queued errors are still
// drained so they cannot be misattributed to a following call.
func (d *Driver) check(call string) error {
	if !d.checkCalls {
		return nil
	}
	first := gl.GetError()
	if first == gl.NO_ERROR {
		return nil
	}
	for gl.GetError() != gl.NO_ERROR {
	}
	return fmt.Errorf("%w: %s: %s", ErrCall, call, errorString(first))
}

// errorString names a glGetError code.
func errorString(code uint32) string {
	switch code {
	case gl.INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	case gl.OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	default:
		return fmt.Sprintf("GL error 0x%04X", code)
	}
}
