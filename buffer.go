package gla

import (
	"fmt"

	"github.com/gogpu/gla/glcore"
)

// BufferTarget selects the binding point of a [Buffer].
type BufferTarget glcore.Enum

const (
	// ArrayBuffer holds vertex data.
	ArrayBuffer = BufferTarget(glcore.TargetArrayBuffer)

	// ElementArrayBuffer holds index data.
	ElementArrayBuffer = BufferTarget(glcore.TargetElementArrayBuffer)
)

// Buffer is a generic bindable GPU buffer object. It pairs a driver
// buffer name with the target it binds to. Data upload is outside the
// scope of this library; callers upload through the driver API after
// binding.
//
// A Buffer must be released before its GL context is destroyed, and
// is not safe for concurrent use.
type Buffer struct {
	driver glcore.Driver
	id     uint32
	target BufferTarget
}

// NewBuffer creates a buffer object for the given target.
func NewBuffer(d glcore.Driver, target BufferTarget) (*Buffer, error) {
	id, err := d.CreateBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: create buffer: %v", ErrDriver, err)
	}
	return &Buffer{driver: d, id: id, target: target}, nil
}

// ID returns the driver name of the buffer object, or 0 after Release.
func (b *Buffer) ID() uint32 { return b.id }

// Target returns the binding point of the buffer.
func (b *Buffer) Target() BufferTarget { return b.target }

// Bind binds the buffer to its target, making it the attachment point
// for subsequent calls on that target.
func (b *Buffer) Bind() error {
	if err := b.driver.BindBuffer(glcore.Enum(b.target), b.id); err != nil {
		return fmt.Errorf("%w: bind buffer %d: %v", ErrDriver, b.id, err)
	}
	return nil
}

// Release destroys the buffer object. The Buffer must not be used
// afterwards; a second Release is a no-op.
func (b *Buffer) Release() {
	if b.id == 0 {
		return
	}
	b.driver.DeleteBuffer(b.id)
	b.id = 0
}
