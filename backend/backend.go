package backend

import "errors"

// Common backend errors.
var (
	// ErrDriverNotAvailable is returned when no requested driver is available.
	ErrDriverNotAvailable = errors.New("backend: driver not available")
)

// Driver name constants.
const (
	// DriverHeadless is the name of the in-memory recording driver.
	DriverHeadless = "headless"
	// DriverGL41 is the name of the OpenGL 4.1 core driver (go-gl).
	DriverGL41 = "gl41"
)
