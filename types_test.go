package gla

import (
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/gla/glcore"
)

func TestSizeOf(t *testing.T) {
	tests := []struct {
		typ  AttribType
		want int
	}{
		{Byte, 1},
		{UnsignedByte, 1},
		{Short, 2},
		{UnsignedShort, 2},
		{Int, 4},
		{UnsignedInt, 4},
		{HalfFloat, 2},
		{Float, 4},
		{Double, 8},
		{Fixed, 4},
	}
	for _, tt := range tests {
		got, err := SizeOf(tt.typ)
		if err != nil {
			t.Errorf("SizeOf(%v) returned error: %v", tt.typ, err)
			continue
		}
		if got != tt.want {
			t.Errorf("SizeOf(%v) = %d, want %d", tt.typ, got, tt.want)
		}
	}
}

func TestSizeOfUnknownType(t *testing.T) {
	_, err := SizeOf(AttribType(99))
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("SizeOf(99) error = %v, want ErrInvalidArgument", err)
	}
}

func TestGLCode(t *testing.T) {
	tests := []struct {
		typ  AttribType
		want glcore.Enum
	}{
		{Byte, glcore.TypeByte},
		{UnsignedByte, glcore.TypeUnsignedByte},
		{Short, glcore.TypeShort},
		{UnsignedShort, glcore.TypeUnsignedShort},
		{Int, glcore.TypeInt},
		{UnsignedInt, glcore.TypeUnsignedInt},
		{HalfFloat, glcore.TypeHalfFloat},
		{Float, glcore.TypeFloat},
		{Double, glcore.TypeDouble},
		{Fixed, glcore.TypeFixed},
	}
	for _, tt := range tests {
		got, err := GLCode(tt.typ)
		if err != nil {
			t.Errorf("GLCode(%v) returned error: %v", tt.typ, err)
			continue
		}
		if got != tt.want {
			t.Errorf("GLCode(%v) = 0x%04X, want 0x%04X", tt.typ, uint32(got), uint32(tt.want))
		}
	}
}

func TestGLCodeUnknownType(t *testing.T) {
	_, err := GLCode(AttribType(-1))
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("GLCode(-1) error = %v, want ErrInvalidArgument", err)
	}
}

func TestAttribTypeString(t *testing.T) {
	if got := Float.String(); got != "Float" {
		t.Errorf("Float.String() = %q, want %q", got, "Float")
	}
	if got := AttribType(42).String(); got != "AttribType(42)" {
		t.Errorf("AttribType(42).String() = %q, want %q", got, "AttribType(42)")
	}
}

func TestAttribInterpString(t *testing.T) {
	if got := InterpFloat.String(); got != "Float" {
		t.Errorf("InterpFloat.String() = %q, want %q", got, "Float")
	}
	if got := InterpInteger.String(); got != "Integer" {
		t.Errorf("InterpInteger.String() = %q, want %q", got, "Integer")
	}
}

func TestCheckInterp(t *testing.T) {
	integerTypes := []AttribType{Byte, UnsignedByte, Short, UnsignedShort, Int, UnsignedInt}
	floatTypes := []AttribType{HalfFloat, Float, Double, Fixed}

	// Every type is valid under float interpretation.
	for _, typ := range append(integerTypes, floatTypes...) {
		if err := CheckInterp(typ, InterpFloat); err != nil {
			t.Errorf("CheckInterp(%v, InterpFloat) = %v, want nil", typ, err)
		}
	}

	// Exact integer storage may be reinterpreted as integers.
	for _, typ := range integerTypes {
		if err := CheckInterp(typ, InterpInteger); err != nil {
			t.Errorf("CheckInterp(%v, InterpInteger) = %v, want nil", typ, err)
		}
	}

	// Floating and fixed-point storage may not.
	for _, typ := range floatTypes {
		err := CheckInterp(typ, InterpInteger)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("CheckInterp(%v, InterpInteger) = %v, want ErrInvalidArgument", typ, err)
			continue
		}
		if !strings.Contains(err.Error(), typ.String()) {
			t.Errorf("CheckInterp(%v, InterpInteger) error %q does not name the type", typ, err)
		}
	}
}
