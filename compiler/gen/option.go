package gen

import (
	"github.com/syssam/scriptgen/dialect"
)

// Config holds the generator configuration.
type Config struct {
	// Target is the output directory for generated scripts.
	Target string
	// Dialects are the dialect names to generate. When empty, the
	// descriptor's dialects are used, falling back to the default dialect.
	Dialects []string
	// Header lines override the descriptor's file header.
	Header []string
	// Workers bounds the number of scripts generated in parallel.
	Workers int
}

// Option configures script generation.
type Option func(*Config) error

// WithTarget sets the output directory.
func WithTarget(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return NewConfigError("Target", nil, "target directory cannot be empty")
		}
		c.Target = dir
		return nil
	}
}

// WithDialects sets the dialects to generate, overriding the descriptor.
func WithDialects(names ...string) Option {
	return func(c *Config) error {
		for _, n := range names {
			if _, err := dialect.Lookup(n); err != nil {
				return NewConfigError("Dialects", n, "unsupported dialect")
			}
		}
		c.Dialects = names
		return nil
	}
}

// WithHeader sets the file header added at the top of each generated
// script, overriding the descriptor's header.
func WithHeader(lines ...string) Option {
	return func(c *Config) error {
		c.Header = lines
		return nil
	}
}

// WithWorkers sets the number of parallel workers.
func WithWorkers(n int) Option {
	return func(c *Config) error {
		if n <= 0 {
			return NewConfigError("Workers", n, "workers must be positive")
		}
		c.Workers = n
		return nil
	}
}
