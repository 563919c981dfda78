package fft

import (
	"fmt"
	"runtime"

	"github.com/ocelot-zk/garith/parallel"
)

// Option alters how a transform schedules its work. See the descriptions of
// functions returning instances of this type for implemented options.
type Option func(*Config) error

// Config is the transform configuration with the options applied.
type Config struct {
	NbTasks int // defaults to runtime.NumCPU()
}

// WithNbTasks sets the number of parallel workers the transform may fan out
// to. If not set, the number of workers is runtime.NumCPU().
func WithNbTasks(nbTasks int) Option {
	return func(opt *Config) error {
		if nbTasks <= 0 {
			return fmt.Errorf("invalid number of tasks: %d", nbTasks)
		}
		if nbTasks > parallel.MaxTasks {
			nbTasks = parallel.MaxTasks
		}
		opt.NbTasks = nbTasks
		return nil
	}
}

// NewConfig returns the default configuration with opts applied.
func NewConfig(opts ...Option) (Config, error) {
	opt := Config{NbTasks: runtime.NumCPU()}
	for _, option := range opts {
		if err := option(&opt); err != nil {
			return Config{}, err
		}
	}
	return opt, nil
}
