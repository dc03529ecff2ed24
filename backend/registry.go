package backend

import (
	"sync"

	"github.com/gogpu/gla/glcore"
)

// DriverFactory creates a new driver instance.
type DriverFactory func() glcore.Driver

// registry holds registered drivers.
var (
	registryMu sync.RWMutex
	drivers    = make(map[string]DriverFactory)
	// Priority order for driver selection (first available wins).
	// gl41 > headless (gl41 talks to real hardware, headless is the
	// always-available fallback).
	driverPriority = []string{DriverGL41, DriverHeadless}
)

// Register registers a driver factory with the given name.
// This is typically called from init() functions in driver packages.
// If a driver with the same name is already registered, it will be replaced.
func Register(name string, factory DriverFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	drivers[name] = factory
}

// Unregister removes a driver from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(drivers, name)
}

// Available returns a list of registered driver names.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(drivers))
	for name := range drivers {
		names = append(names, name)
	}
	return names
}

// IsRegistered checks if a driver with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := drivers[name]
	return ok
}

// Get returns a driver instance by name.
// Returns nil if the driver is not registered.
func Get(name string) glcore.Driver {
	registryMu.RLock()
	defer registryMu.RUnlock()

	factory, ok := drivers[name]
	if !ok {
		return nil
	}
	return factory()
}

// Default returns the best available driver based on priority.
// Priority order: gl41 > headless.
// Returns nil if no drivers are registered.
func Default() glcore.Driver {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, name := range driverPriority {
		if factory, ok := drivers[name]; ok {
			d := factory()
			if d != nil {
				return d
			}
		}
	}

	// Fallback: return first available
	for _, factory := range drivers {
		if d := factory(); d != nil {
			return d
		}
	}

	return nil
}

// MustDefault returns the default driver or panics.
func MustDefault() glcore.Driver {
	d := Default()
	if d == nil {
		panic("backend: no driver available")
	}
	return d
}

// InitDefault returns the default driver, initialized.
func InitDefault() (glcore.Driver, error) {
	d := Default()
	if d == nil {
		return nil, ErrDriverNotAvailable
	}

	if err := d.Init(); err != nil {
		return nil, err
	}

	return d, nil
}
