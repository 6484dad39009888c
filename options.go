package collections

import (
	"reflect"

	"github.com/rs/zerolog"
)

// config holds the settings shared by list constructors.
type config struct {
	log         zerolog.Logger
	maxCapacity int
	equal       func(a, b any) bool
}

func defaultConfig() config {
	return config{
		log:         zerolog.Nop(),
		maxCapacity: MaxCapacity,
		equal:       reflect.DeepEqual,
	}
}

func newConfig(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Option configures a list at construction time.
type Option func(*config)

// WithLogger sets the logger used for growth and clear events.
func WithLogger(log zerolog.Logger) Option {
	return func(c *config) {
		c.log = log
	}
}

// WithMaxCapacity caps the backing capacity. Growth past n fails with
// ErrResourceExhausted. If n <= 0, MaxCapacity is used.
func WithMaxCapacity(n int) Option {
	return func(c *config) {
		if n <= 0 {
			n = MaxCapacity
		}
		c.maxCapacity = n
	}
}

// WithEqual sets the equality used by Contains, IndexOf and Remove.
// The default is reflect.DeepEqual. A nil func keeps the default.
func WithEqual(equal func(a, b any) bool) Option {
	return func(c *config) {
		if equal != nil {
			c.equal = equal
		}
	}
}
