package gl41

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/gogpu/gla/backend"
	"github.com/gogpu/gla/glcore"
)

// TestDriverImplementsInterface verifies that Driver implements
// glcore.Driver.
func TestDriverImplementsInterface(t *testing.T) {
	var _ glcore.Driver = (*Driver)(nil)
}

// TestDriverRegistration verifies that the driver is registered on
// import.
func TestDriverRegistration(t *testing.T) {
	if !backend.IsRegistered(backend.DriverGL41) {
		t.Error("gl41 driver should be registered")
	}
}

func TestDriverName(t *testing.T) {
	if got := New().Name(); got != "gl41" {
		t.Errorf("Name() = %q, want %q", got, "gl41")
	}
}

// TestUninitializedDriver verifies that calls before Init fail cleanly
// instead of reaching unloaded GL function pointers. These paths never
// touch the driver, so they run without a GL context.
func TestUninitializedDriver(t *testing.T) {
	d := New()

	if _, err := d.MaxVertexAttribs(); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("MaxVertexAttribs() = %v, want ErrNotInitialized", err)
	}
	if _, err := d.CreateBuffer(); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("CreateBuffer() = %v, want ErrNotInitialized", err)
	}
	if err := d.BindBuffer(glcore.TargetArrayBuffer, 1); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("BindBuffer() = %v, want ErrNotInitialized", err)
	}
	if err := d.EnableVertexAttrib(0); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("EnableVertexAttrib() = %v, want ErrNotInitialized", err)
	}
	if err := d.DisableVertexAttrib(0); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("DisableVertexAttrib() = %v, want ErrNotInitialized", err)
	}
	if err := d.VertexAttribPointer(0, 3, glcore.TypeFloat, false, 12, 0); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("VertexAttribPointer() = %v, want ErrNotInitialized", err)
	}
	if err := d.VertexAttribIPointer(0, 4, glcore.TypeInt, 16, 0); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("VertexAttribIPointer() = %v, want ErrNotInitialized", err)
	}

	// DeleteBuffer is a no-op before Init.
	d.DeleteBuffer(1)
}

func TestErrorString(t *testing.T) {
	tests := []struct {
		code uint32
		want string
	}{
		{gl.INVALID_ENUM, "GL_INVALID_ENUM"},
		{gl.INVALID_VALUE, "GL_INVALID_VALUE"},
		{gl.INVALID_OPERATION, "GL_INVALID_OPERATION"},
		{gl.INVALID_FRAMEBUFFER_OPERATION, "GL_INVALID_FRAMEBUFFER_OPERATION"},
		{gl.OUT_OF_MEMORY, "GL_OUT_OF_MEMORY"},
	}
	for _, tt := range tests {
		if got := errorString(tt.code); got != tt.want {
			t.Errorf("errorString(0x%04X) = %q, want %q", tt.code, got, tt.want)
		}
	}
	if got := errorString(0x9999); !strings.Contains(got, "0x9999") {
		t.Errorf("errorString(unknown) = %q, should contain the code", got)
	}
}

// TestUncheckedSkipsErrorQueue verifies that an unchecked driver never
// reports call failures of its own.
func TestUncheckedSkipsErrorQueue(t *testing.T) {
	d := New()
	if err := d.check("test"); err != nil {
		t.Errorf("check() on unchecked driver = %v, want nil", err)
	}
}
