// Package backend provides a pluggable driver registry for gla.
//
// The backend package lets gla support multiple [glcore.Driver]
// implementations. The headless driver is always available and is
// automatically registered on import; the gl41 driver registers itself
// when its package is imported:
//
//	import _ "github.com/gogpu/gla/backend/gl41"
//
// # Driver Selection
//
// Use Default() to get the best available driver, or Get() to request
// a specific driver by name:
//
//	// Get the default (best available) driver
//	d := backend.Default()
//
//	// Or request a specific driver
//	d := backend.Get(backend.DriverHeadless)
//
// # Usage with VertexArray
//
//	d, err := backend.InitDefault()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	va, err := gla.NewVertexArray(d)
//
// # Available Drivers
//
//   - "gl41": real OpenGL calls via go-gl (requires a current context)
//   - "headless": in-memory recording driver (always available)
package backend
