package gla

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// WebGPULayout converts a descriptor list and stride into a
// [gputypes.VertexBufferLayout] for use with the GoGPU WebGPU stack,
// so a layout validated here can drive a render pipeline there.
//
// The conversion applies the same per-descriptor rules as
// [VertexArray.SetAttributes] (component count, offset, type and
// interpretation compatibility) plus the strict structural pass, since
// WebGPU validates layouts up front rather than at draw time. It has no
// driver and no side effects.
//
// WebGPU's vertex format table is narrower than GL's attribute-pointer
// calls: Double and Fixed storage have no equivalent, 8- and 16-bit
// types exist only with 2 or 4 components, and integer storage read as
// unnormalized float has no cast format. Those combinations fail with
// [ErrInvalidArgument] naming the descriptor.
func WebGPULayout(attribs []VertexAttribute, stride int) (gputypes.VertexBufferLayout, error) {
	if stride <= 0 {
		return gputypes.VertexBufferLayout{}, fmt.Errorf("%w: stride must be positive, got %d", ErrInvalidArgument, stride)
	}
	if err := checkLayout(attribs, stride); err != nil {
		return gputypes.VertexBufferLayout{}, err
	}

	out := gputypes.VertexBufferLayout{
		ArrayStride: uint64(stride),
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes:  make([]gputypes.VertexAttribute, 0, len(attribs)),
	}
	for i, a := range attribs {
		if a.Offset < 0 {
			return gputypes.VertexBufferLayout{}, fmt.Errorf("%w: attribute %d: offset must be non-negative, got %d", ErrInvalidArgument, i, a.Offset)
		}
		if a.Components < 1 || a.Components > 4 {
			return gputypes.VertexBufferLayout{}, fmt.Errorf("%w: attribute %d: components must be 1 to 4, got %d", ErrInvalidArgument, i, a.Components)
		}
		if err := CheckInterp(a.Type, a.Interp); err != nil {
			return gputypes.VertexBufferLayout{}, fmt.Errorf("attribute %d: %w", i, err)
		}
		format, err := vertexFormat(a)
		if err != nil {
			return gputypes.VertexBufferLayout{}, fmt.Errorf("attribute %d: %w", i, err)
		}
		out.Attributes = append(out.Attributes, gputypes.VertexAttribute{
			Format:         format,
			Offset:         uint64(a.Offset),
			ShaderLocation: a.Index,
		})
	}
	return out, nil
}

// vertexFormat maps one descriptor's type, component count,
// interpretation and normalization onto a WebGPU vertex format.
func vertexFormat(a VertexAttribute) (gputypes.VertexFormat, error) {
	type key struct {
		t AttribType
		n int
	}
	var table map[key]gputypes.VertexFormat

	switch {
	case a.Interp == InterpInteger:
		table = map[key]gputypes.VertexFormat{
			{Byte, 2}:          gputypes.VertexFormatSint8x2,
			{Byte, 4}:          gputypes.VertexFormatSint8x4,
			{UnsignedByte, 2}:  gputypes.VertexFormatUint8x2,
			{UnsignedByte, 4}:  gputypes.VertexFormatUint8x4,
			{Short, 2}:         gputypes.VertexFormatSint16x2,
			{Short, 4}:         gputypes.VertexFormatSint16x4,
			{UnsignedShort, 2}: gputypes.VertexFormatUint16x2,
			{UnsignedShort, 4}: gputypes.VertexFormatUint16x4,
			{Int, 1}:           gputypes.VertexFormatSint32,
			{Int, 2}:           gputypes.VertexFormatSint32x2,
			{Int, 3}:           gputypes.VertexFormatSint32x3,
			{Int, 4}:           gputypes.VertexFormatSint32x4,
			{UnsignedInt, 1}:   gputypes.VertexFormatUint32,
			{UnsignedInt, 2}:   gputypes.VertexFormatUint32x2,
			{UnsignedInt, 3}:   gputypes.VertexFormatUint32x3,
			{UnsignedInt, 4}:   gputypes.VertexFormatUint32x4,
		}
	case a.Normalized:
		table = map[key]gputypes.VertexFormat{
			{Byte, 2}:          gputypes.VertexFormatSnorm8x2,
			{Byte, 4}:          gputypes.VertexFormatSnorm8x4,
			{UnsignedByte, 2}:  gputypes.VertexFormatUnorm8x2,
			{UnsignedByte, 4}:  gputypes.VertexFormatUnorm8x4,
			{Short, 2}:         gputypes.VertexFormatSnorm16x2,
			{Short, 4}:         gputypes.VertexFormatSnorm16x4,
			{UnsignedShort, 2}: gputypes.VertexFormatUnorm16x2,
			{UnsignedShort, 4}: gputypes.VertexFormatUnorm16x4,
		}
	default:
		table = map[key]gputypes.VertexFormat{
			{HalfFloat, 2}: gputypes.VertexFormatFloat16x2,
			{HalfFloat, 4}: gputypes.VertexFormatFloat16x4,
			{Float, 1}:     gputypes.VertexFormatFloat32,
			{Float, 2}:     gputypes.VertexFormatFloat32x2,
			{Float, 3}:     gputypes.VertexFormatFloat32x3,
			{Float, 4}:     gputypes.VertexFormatFloat32x4,
		}
	}

	format, ok := table[key{a.Type, a.Components}]
	if !ok {
		var zero gputypes.VertexFormat
		return zero, fmt.Errorf("%w: no WebGPU vertex format for %s x%d as %s (normalized=%t)",
			ErrInvalidArgument, a.Type, a.Components, a.Interp, a.Normalized)
	}
	return format, nil
}
