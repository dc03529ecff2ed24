package gla

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestWebGPULayout(t *testing.T) {
	layout, err := WebGPULayout([]VertexAttribute{
		{Index: 0, Components: 3, Type: Float, Interp: InterpFloat, Offset: 0},
		{Index: 1, Components: 4, Type: UnsignedByte, Interp: InterpFloat, Normalized: true, Offset: 12},
	}, 16)
	if err != nil {
		t.Fatalf("WebGPULayout() failed: %v", err)
	}

	if layout.ArrayStride != 16 {
		t.Errorf("ArrayStride = %d, want 16", layout.ArrayStride)
	}
	if layout.StepMode != gputypes.VertexStepModeVertex {
		t.Errorf("StepMode = %v, want VertexStepModeVertex", layout.StepMode)
	}
	if len(layout.Attributes) != 2 {
		t.Fatalf("len(Attributes) = %d, want 2", len(layout.Attributes))
	}

	pos := layout.Attributes[0]
	if pos.Format != gputypes.VertexFormatFloat32x3 || pos.Offset != 0 || pos.ShaderLocation != 0 {
		t.Errorf("position attribute = %+v", pos)
	}
	col := layout.Attributes[1]
	if col.Format != gputypes.VertexFormatUnorm8x4 || col.Offset != 12 || col.ShaderLocation != 1 {
		t.Errorf("color attribute = %+v", col)
	}
}

func TestWebGPULayoutFormats(t *testing.T) {
	tests := []struct {
		name   string
		attrib VertexAttribute
		stride int
		want   gputypes.VertexFormat
	}{
		{"float scalar", VertexAttribute{Components: 1, Type: Float}, 4, gputypes.VertexFormatFloat32},
		{"half float pair", VertexAttribute{Components: 2, Type: HalfFloat}, 4, gputypes.VertexFormatFloat16x2},
		{"short pair integer", VertexAttribute{Components: 2, Type: Short, Interp: InterpInteger}, 4, gputypes.VertexFormatSint16x2},
		{"uint scalar integer", VertexAttribute{Components: 1, Type: UnsignedInt, Interp: InterpInteger}, 4, gputypes.VertexFormatUint32},
		{"snorm bytes", VertexAttribute{Components: 4, Type: Byte, Normalized: true}, 4, gputypes.VertexFormatSnorm8x4},
		{"unorm shorts", VertexAttribute{Components: 2, Type: UnsignedShort, Normalized: true}, 4, gputypes.VertexFormatUnorm16x2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout, err := WebGPULayout([]VertexAttribute{tt.attrib}, tt.stride)
			if err != nil {
				t.Fatalf("WebGPULayout() failed: %v", err)
			}
			if got := layout.Attributes[0].Format; got != tt.want {
				t.Errorf("Format = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWebGPULayoutUnmappable(t *testing.T) {
	tests := []struct {
		name   string
		attrib VertexAttribute
		stride int
	}{
		{"double has no WebGPU format", VertexAttribute{Components: 2, Type: Double}, 16},
		{"fixed has no WebGPU format", VertexAttribute{Components: 2, Type: Fixed}, 8},
		{"8-bit triple", VertexAttribute{Components: 3, Type: Byte, Interp: InterpInteger}, 4},
		{"unnormalized byte as float", VertexAttribute{Components: 2, Type: UnsignedByte}, 2},
		{"normalized 32-bit int", VertexAttribute{Components: 2, Type: Int, Normalized: true}, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := WebGPULayout([]VertexAttribute{tt.attrib}, tt.stride)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("WebGPULayout() = %v, want ErrInvalidArgument", err)
			}
		})
	}
}

func TestWebGPULayoutValidation(t *testing.T) {
	good := VertexAttribute{Components: 2, Type: Float}

	// Stride and interpretation rules match SetAttributes.
	if _, err := WebGPULayout([]VertexAttribute{good}, 0); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("WebGPULayout(stride=0) = %v, want ErrInvalidArgument", err)
	}
	if _, err := WebGPULayout([]VertexAttribute{
		{Components: 2, Type: Float, Interp: InterpInteger},
	}, 8); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("WebGPULayout(Float as Integer) = %v, want ErrInvalidArgument", err)
	}

	// The structural pass always runs: WebGPU validates layouts up
	// front, so overlaps are never deferred to the caller.
	_, err := WebGPULayout([]VertexAttribute{
		{Index: 0, Components: 1, Type: Float, Offset: 0},
		{Index: 1, Components: 1, Type: Float, Offset: 2},
	}, 8)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("WebGPULayout(overlapping) = %v, want ErrInvalidArgument", err)
	}
}
