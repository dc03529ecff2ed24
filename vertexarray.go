package gla

import (
	"fmt"

	"github.com/gogpu/gla/glcore"
)

// Config holds optional VertexArray behavior. The zero value is the
// production configuration.
type Config struct {
	// StrictLayout enables a structural pass over the descriptor list
	// in SetAttributes: every attribute's byte range must fit within
	// the stride, and no two attributes' byte ranges may overlap.
	// The pass is O(n²) in the list length and purely diagnostic, so
	// it is off by default; enable it in development builds.
	StrictLayout bool
}

// VertexArray validates vertex-attribute layouts and binds them through
// a driver. It composes a generic [Buffer] on the array-buffer target
// (the attachment point for attribute-pointer calls) and tracks which
// attribute slots it has enabled, replacing that set wholesale on each
// successful [VertexArray.SetAttributes].
//
// A VertexArray must be released before its GL context is destroyed,
// and is not safe for concurrent use. The driver's attribute state is
// shared across every VertexArray on the same context; see the package
// documentation.
type VertexArray struct {
	driver glcore.Driver
	buf    *Buffer
	cfg    Config

	// enabled is the set of slot indices enabled by the most recent
	// SetAttributes, in descriptor order.
	enabled []uint32
}

// NewVertexArray creates a vertex array with the default [Config].
func NewVertexArray(d glcore.Driver) (*VertexArray, error) {
	return NewVertexArrayWith(d, Config{})
}

// NewVertexArrayWith creates a vertex array with explicit configuration.
func NewVertexArrayWith(d glcore.Driver, cfg Config) (*VertexArray, error) {
	buf, err := NewBuffer(d, ArrayBuffer)
	if err != nil {
		return nil, err
	}
	return &VertexArray{driver: d, buf: buf, cfg: cfg}, nil
}

// Buffer returns the underlying array buffer.
func (va *VertexArray) Buffer() *Buffer { return va.buf }

// Bind binds the underlying array buffer.
func (va *VertexArray) Bind() error { return va.buf.Bind() }

// Enabled returns the slot indices enabled by the most recent
// SetAttributes call, in descriptor order. The returned slice is a
// copy.
func (va *VertexArray) Enabled() []uint32 {
	out := make([]uint32, len(va.enabled))
	copy(out, va.enabled)
	return out
}

// Release destroys the underlying buffer object. It does not touch the
// driver's enabled-slot state.
func (va *VertexArray) Release() { va.buf.Release() }

// SetAttributes validates the descriptor list against the driver's
// limits and against itself, then binds each attribute's byte layout
// within the underlying buffer. stride is the byte distance between
// consecutive vertex records and must be positive.
//
// Checks run in a fixed order: stride, driver attribute-count limit,
// then (with Config.StrictLayout) the structural overlap/overflow pass,
// then each descriptor in list order. Slots enabled by a previous call
// are disabled before any new slot is enabled.
//
// SetAttributes is not atomic: when a descriptor fails validation
// mid-list, the slots already processed in the same call stay enabled
// and the driver keeps their bindings. After an error the VertexArray
// must not be drawn from until a later SetAttributes succeeds or the
// object is rebuilt.
func (va *VertexArray) SetAttributes(attribs []VertexAttribute, stride int) error {
	if stride <= 0 {
		return fmt.Errorf("%w: stride must be positive, got %d", ErrInvalidArgument, stride)
	}

	maxAttribs, err := va.driver.MaxVertexAttribs()
	if err != nil {
		return fmt.Errorf("%w: could not determine device limit: %v", ErrDriver, err)
	}
	if maxAttribs < 0 {
		return fmt.Errorf("%w: could not determine device limit (driver reported %d)", ErrDriver, maxAttribs)
	}
	if len(attribs) > maxAttribs {
		return fmt.Errorf("%w: %d vertex attributes requested, driver supports %d (at least 16 are guaranteed)",
			ErrDriver, len(attribs), maxAttribs)
	}

	// Attachment point for the attribute-pointer calls below.
	if err := va.Bind(); err != nil {
		return err
	}

	for _, idx := range va.enabled {
		if err := va.driver.DisableVertexAttrib(idx); err != nil {
			return fmt.Errorf("%w: disable attribute %d: %v", ErrDriver, idx, err)
		}
	}
	va.enabled = va.enabled[:0]

	if va.cfg.StrictLayout {
		if err := checkLayout(attribs, stride); err != nil {
			return err
		}
	}

	for i, a := range attribs {
		if a.Offset < 0 {
			return fmt.Errorf("%w: attribute %d: offset must be non-negative, got %d", ErrInvalidArgument, i, a.Offset)
		}
		if int(a.Index) >= maxAttribs {
			return fmt.Errorf("%w: attribute %d: index %d exceeds driver limit %d", ErrInvalidArgument, i, a.Index, maxAttribs)
		}
		if a.Components < 1 || a.Components > 4 {
			return fmt.Errorf("%w: attribute %d: components must be 1 to 4, got %d", ErrInvalidArgument, i, a.Components)
		}

		if err := va.driver.EnableVertexAttrib(a.Index); err != nil {
			return fmt.Errorf("%w: enable attribute %d: %v", ErrDriver, a.Index, err)
		}
		va.enabled = append(va.enabled, a.Index)

		if err := CheckInterp(a.Type, a.Interp); err != nil {
			return fmt.Errorf("attribute %d: %w", i, err)
		}
		code, err := GLCode(a.Type)
		if err != nil {
			return fmt.Errorf("attribute %d: %w", i, err)
		}

		if a.Interp == InterpInteger {
			err = va.driver.VertexAttribIPointer(a.Index, int32(a.Components), code, int32(stride), uintptr(a.Offset))
		} else {
			err = va.driver.VertexAttribPointer(a.Index, int32(a.Components), code, a.Normalized, int32(stride), uintptr(a.Offset))
		}
		if err != nil {
			return fmt.Errorf("%w: bind attribute %d: %v", ErrDriver, a.Index, err)
		}
	}

	Logger().Debug("vertex attributes bound",
		"driver", va.driver.Name(),
		"count", len(attribs),
		"stride", stride)
	return nil
}

// checkLayout is the strict-mode structural pass: every attribute must
// end at or before the stride, and no two attributes' byte ranges
// [offset, offset+size) may overlap.
func checkLayout(attribs []VertexAttribute, stride int) error {
	for i, a := range attribs {
		size, err := a.size()
		if err != nil {
			return fmt.Errorf("attribute %d: %w", i, err)
		}
		end := a.Offset + size
		if end > stride {
			return fmt.Errorf("%w: attribute %d ends at byte %d, past stride %d", ErrInvalidArgument, i, end, stride)
		}
		for j, b := range attribs {
			if i == j {
				continue
			}
			if a.Offset <= b.Offset && end > b.Offset {
				return fmt.Errorf("%w: attributes %d and %d overlap", ErrInvalidArgument, i, j)
			}
		}
	}
	return nil
}
