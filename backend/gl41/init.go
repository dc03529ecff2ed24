package gl41

import (
	"github.com/gogpu/gla/backend"
	"github.com/gogpu/gla/glcore"
)

// init registers the gl41 driver on package import.
func init() {
	backend.Register(backend.DriverGL41, func() glcore.Driver {
		return New()
	})
}
