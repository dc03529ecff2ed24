// Package gla is a small OpenGL abstraction for vertex-attribute
// layout validation and binding.
//
// # Overview
//
// gla wraps the vertex-attribute configuration calls of a GL-family
// driver behind a validated API. A [VertexArray] owns a generic GPU
// [Buffer] and a record of the attribute slots it has enabled;
// [VertexArray.SetAttributes] checks an ordered list of
// [VertexAttribute] descriptors against the driver's reported limits
// and against each other, then issues the per-slot binding calls.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/gla"
//	    "github.com/gogpu/gla/backend/gl41"
//	)
//
//	drv := gl41.New()
//	if err := drv.Init(); err != nil { ... } // GL context must be current
//
//	va, err := gla.NewVertexArray(drv)
//	if err != nil { ... }
//	defer va.Release()
//
//	err = va.SetAttributes([]gla.VertexAttribute{
//	    {Index: 0, Components: 3, Type: gla.Float, Interp: gla.InterpFloat},
//	    {Index: 1, Components: 4, Type: gla.UnsignedByte, Interp: gla.InterpFloat,
//	        Normalized: true, Offset: 12},
//	}, 16)
//
// # Drivers
//
// The validation core is driver-agnostic: it talks to a
// [glcore.Driver]. Two drivers ship with the library: backend/gl41
// issues real OpenGL calls via go-gl, and the backend package's
// headless driver simulates the attribute state machine in memory for
// tests and CI. Drivers register themselves with the backend package's
// registry.
//
// # Errors
//
// All failures are one of two kinds, matched with [errors.Is]:
// [ErrInvalidArgument] for contract violations in the caller's
// descriptor list, and [ErrDriver] for driver or hardware conditions.
//
// # Concurrency
//
// gla is single-threaded by contract. The driver's attribute-binding
// state machine is shared by every VertexArray bound to the same
// context and by any other code touching that context, so call order
// across instances is observable: the most recent successful
// SetAttributes determines the enabled-slot set. Callers must confine
// all calls to the thread owning the graphics context.
package gla
