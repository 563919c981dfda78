// Package accel carries the configuration for optional hardware-accelerated
// implementations of the arithmetic kernels.
//
// Device implementations live in subpackages gated by build tags; nothing
// here is selected implicitly and the pure Go kernels never depend on this
// package.
package accel

import "fmt"

// Config is the configuration for an accelerator device.
type Config struct {
	DeviceID    int
	Backend     Backend
	BackendLibs string
}

// NewConfig creates a new Config with the given options. If no options are
// provided, it uses sensible defaults (CUDA backend, device id 0).
func NewConfig(opts ...Option) (*Config, error) {
	cfg := Config{
		DeviceID: 0,
		Backend:  CUDA,
	}
	for _, o := range opts {
		if o != nil {
			if err := o(&cfg); err != nil {
				return nil, err
			}
		}
	}
	return &cfg, nil
}

// Option is an option for an accelerator device. See the descriptions of
// functions returning instances of this type for implemented options.
type Option func(*Config) error

// Backend defines the type of device backend used for acceleration.
type Backend int

const (
	CUDA Backend = iota
	CPU
	maxBackend
)

func (b Backend) String() string {
	switch b {
	case CUDA:
		return "CUDA"
	case CPU:
		return "CPU"
	default:
		return "unknown"
	}
}

// WithDeviceID sets the device ID to be used. If this option is not set then
// device ID 0 is used.
func WithDeviceID(id int) Option {
	return func(c *Config) error {
		if id < 0 {
			return fmt.Errorf("invalid device id %d", id)
		}
		c.DeviceID = id
		return nil
	}
}

// WithBackend sets the device backend. If this option is not set then the
// CUDA backend is used.
func WithBackend(backend Backend) Option {
	return func(c *Config) error {
		if backend < 0 || backend >= maxBackend {
			return fmt.Errorf("invalid backend %d", backend)
		}
		c.Backend = backend
		return nil
	}
}

// WithBackendLibrary sets the location of the backend library. This overrides
// the environment variable `ICICLE_BACKEND_INSTALL_DIR`. If this option is
// not set, then the environment variable is used first and if the variable is
// not set, then the default search location is used.
func WithBackendLibrary(libs string) Option {
	return func(c *Config) error {
		if libs == "" {
			return fmt.Errorf("no backend libs provided")
		}
		c.BackendLibs = libs
		return nil
	}
}
