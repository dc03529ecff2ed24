package gla

import (
	"fmt"

	"github.com/gogpu/gla/glcore"
)

// AttribType is the numeric storage type of a vertex attribute in the
// buffer. It says how the raw bytes of one component are encoded, not
// how the shader sees them; that is the job of [AttribInterp].
type AttribType int

// Supported storage types.
const (
	// Byte is a signed 8-bit integer (GL_BYTE).
	Byte AttribType = iota

	// UnsignedByte is an unsigned 8-bit integer (GL_UNSIGNED_BYTE).
	UnsignedByte

	// Short is a signed 16-bit integer (GL_SHORT).
	Short

	// UnsignedShort is an unsigned 16-bit integer (GL_UNSIGNED_SHORT).
	UnsignedShort

	// Int is a signed 32-bit integer (GL_INT).
	Int

	// UnsignedInt is an unsigned 32-bit integer (GL_UNSIGNED_INT).
	UnsignedInt

	// HalfFloat is a 16-bit floating-point value (GL_HALF_FLOAT).
	HalfFloat

	// Float is a 32-bit floating-point value (GL_FLOAT).
	Float

	// Double is a 64-bit floating-point value (GL_DOUBLE).
	Double

	// Fixed is a 16.16 fixed-point value (GL_FIXED).
	Fixed
)

// attribTypeNames is indexed by AttribType.
var attribTypeNames = [...]string{
	Byte:          "Byte",
	UnsignedByte:  "UnsignedByte",
	Short:         "Short",
	UnsignedShort: "UnsignedShort",
	Int:           "Int",
	UnsignedInt:   "UnsignedInt",
	HalfFloat:     "HalfFloat",
	Float:         "Float",
	Double:        "Double",
	Fixed:         "Fixed",
}

// String returns the name of the storage type.
func (t AttribType) String() string {
	if t < 0 || int(t) >= len(attribTypeNames) {
		return fmt.Sprintf("AttribType(%d)", int(t))
	}
	return attribTypeNames[t]
}

// SizeOf returns the size in bytes of one component of the given
// storage type. It fails with [ErrInvalidArgument] for values outside
// the defined enumerants; that case is reachable only through a
// corrupted or uninitialized AttribType.
func SizeOf(t AttribType) (int, error) {
	switch t {
	case Byte, UnsignedByte:
		return 1, nil
	case Short, UnsignedShort, HalfFloat:
		return 2, nil
	case Int, UnsignedInt, Float, Fixed:
		return 4, nil
	case Double:
		return 8, nil
	}
	return 0, fmt.Errorf("%w: unknown attribute type %d", ErrInvalidArgument, int(t))
}

// GLCode returns the native GL enumerant for the given storage type.
// It fails with [ErrInvalidArgument] for values outside the defined
// enumerants.
func GLCode(t AttribType) (glcore.Enum, error) {
	switch t {
	case Byte:
		return glcore.TypeByte, nil
	case UnsignedByte:
		return glcore.TypeUnsignedByte, nil
	case Short:
		return glcore.TypeShort, nil
	case UnsignedShort:
		return glcore.TypeUnsignedShort, nil
	case Int:
		return glcore.TypeInt, nil
	case UnsignedInt:
		return glcore.TypeUnsignedInt, nil
	case HalfFloat:
		return glcore.TypeHalfFloat, nil
	case Float:
		return glcore.TypeFloat, nil
	case Double:
		return glcore.TypeDouble, nil
	case Fixed:
		return glcore.TypeFixed, nil
	}
	return 0, fmt.Errorf("%w: unknown attribute type %d", ErrInvalidArgument, int(t))
}

// AttribInterp selects how the shader stage reads an attribute's
// stored values.
type AttribInterp int

const (
	// InterpFloat exposes values to the shader as floating point.
	// Integer storage types are converted, and optionally normalized
	// into [-1,1] (signed) or [0,1] (unsigned).
	InterpFloat AttribInterp = iota

	// InterpInteger passes stored values through to the shader as
	// integers. No conversion, no normalization. Only exact integer
	// storage types may be read this way.
	InterpInteger
)

// String returns the name of the interpretation.
func (i AttribInterp) String() string {
	switch i {
	case InterpFloat:
		return "Float"
	case InterpInteger:
		return "Integer"
	}
	return fmt.Sprintf("AttribInterp(%d)", int(i))
}

// CheckInterp reports whether a storage type may be combined with an
// interpretation. The only invalid combinations are InterpInteger with
// a floating or fixed-point storage type (HalfFloat, Float, Double,
// Fixed); everything else is accepted, including every type under
// InterpFloat. The returned error wraps [ErrInvalidArgument] and names
// the offending type.
func CheckInterp(t AttribType, interp AttribInterp) error {
	if interp != InterpInteger {
		return nil
	}
	switch t {
	case HalfFloat, Float, Double, Fixed:
		return fmt.Errorf("%w: type %s cannot be used with Integer interpretation", ErrInvalidArgument, t)
	}
	return nil
}

// VertexAttribute describes the layout of a single vertex attribute
// within one vertex record.
type VertexAttribute struct {
	// Index is the attribute slot in the shader program. It must be
	// below the driver-reported maximum attribute count.
	Index uint32

	// Components is the number of components per vertex, 1 to 4.
	// For example 3 for a vec3 position.
	Components int

	// Type is the storage type of each component.
	Type AttribType

	// Interp selects float or integer reads. See [CheckInterp] for
	// the valid combinations with Type.
	Interp AttribInterp

	// Normalized maps integer storage values into [-1,1] (signed) or
	// [0,1] (unsigned) on read. Meaningful only with InterpFloat;
	// ignored for InterpInteger.
	Normalized bool

	// Offset is the byte offset of this attribute from the start of a
	// vertex record. Must be non-negative.
	Offset int
}

// size returns the total byte size of the attribute, Components times
// the component size.
func (a VertexAttribute) size() (int, error) {
	n, err := SizeOf(a.Type)
	if err != nil {
		return 0, err
	}
	return n * a.Components, nil
}
