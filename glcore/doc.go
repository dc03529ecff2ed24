// Package glcore defines the driver boundary for the gla library.
//
// This package contains the [Driver] interface, which abstracts the small
// set of OpenGL entry points that vertex-attribute configuration needs:
// the device limit query, buffer object creation and binding, attribute
// slot enable/disable, and the two attribute-pointer calls.
//
// # Architecture
//
// gla follows a shared-core plus thin-adapters design. The validation
// logic lives once in the root gla package, while adapters translate
// between the [Driver] interface and a concrete driver:
//
//	        +-----------------+
//	        |       gla       |
//	        | (VertexArray)   |
//	        +--------+--------+
//	                 |
//	     +-----------+-----------+
//	     |                       |
//	+----v-----+          +------v-----+
//	|   gl41   |          |  headless  |
//	| (go-gl)  |          | (recording)|
//	+----------+          +------------+
//
// The gl41 adapter issues real OpenGL calls via go-gl. The headless
// driver simulates the attribute state machine in memory and records
// every issued call; it backs the test suite and is usable in CI.
//
// # Enum values
//
// [Enum] constants carry the numeric values of the OpenGL specification,
// so adapters for GL-family APIs can pass them through unchanged.
package glcore
