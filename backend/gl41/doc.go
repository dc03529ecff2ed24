// Package gl41 provides a gla driver backed by OpenGL 4.1 core via
// go-gl.
//
// The driver issues real GL calls, so an OpenGL context must be
// current on the calling thread before [Driver.Init] runs; context
// creation itself (GLFW, SDL, EGL) is the caller's business.
//
//	window.MakeContextCurrent()
//	drv := gl41.New()
//	if err := drv.Init(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Call checking
//
// [NewChecked] returns a driver that drains glGetError after every
// issued call and reports failures as errors naming the call and the
// GL error code. This costs a driver round trip per call; production
// code uses [New], which never queries the error state.
package gl41
