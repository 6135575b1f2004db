package gen

import (
	"errors"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/typemill/typemill"
)

// Option configures a generation run.
type Option func(*Config) error

// WithSource sets the type metadata provider for the run.
func WithSource(src typemill.TypeSource) Option {
	return func(c *Config) error {
		if src == nil {
			return NewConfigError("Source", nil, "type source cannot be nil")
		}
		c.Source = src
		return nil
	}
}

// WithSettings sets the settings store consulted by the resolver.
func WithSettings(store typemill.SettingsSource) Option {
	return func(c *Config) error {
		if store == nil {
			return NewConfigError("Settings", nil, "settings store cannot be nil")
		}
		c.Settings = store
		return nil
	}
}

// WithTargets adds emission targets to the run.
func WithTargets(targets ...Target) Option {
	return func(c *Config) error {
		for _, t := range targets {
			if t == nil {
				return NewConfigError("Targets", nil, "target cannot be nil")
			}
		}
		c.Targets = append(c.Targets, targets...)
		return nil
	}
}

// WithOutDir sets the output directory for a unit kind.
func WithOutDir(unit UnitKind, dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return NewConfigError("OutDirs", unit, "output directory cannot be empty")
		}
		if c.OutDirs == nil {
			c.OutDirs = make(map[UnitKind]string)
		}
		c.OutDirs[unit] = dir
		return nil
	}
}

// WithHeader replaces the default header comment at the top of each
// artifact.
func WithHeader(header string) Option {
	return func(c *Config) error {
		c.Header = header
		return nil
	}
}

// WithHooks adds emitter hooks. Hooks wrap every emitter of the run, first
// hook outermost.
func WithHooks(hooks ...Hook) Option {
	return func(c *Config) error {
		c.Hooks = append(c.Hooks, hooks...)
		return nil
	}
}

// WithVersionProperties replaces the row-version property exclusion list.
func WithVersionProperties(names ...string) Option {
	return func(c *Config) error {
		c.VersionProperties = names
		return nil
	}
}

// WithLogger sets the diagnostics logger for the run.
func WithLogger(log *zap.Logger) Option {
	return func(c *Config) error {
		if log == nil {
			return NewConfigError("Logger", nil, "logger cannot be nil")
		}
		c.Logger = log
		return nil
	}
}

// WithFS sets the filesystem the run reads prior artifacts from and writes
// generated artifacts to.
func WithFS(fsys afero.Fs) Option {
	return func(c *Config) error {
		if fsys == nil {
			return NewConfigError("FS", nil, "filesystem cannot be nil")
		}
		c.FS = fsys
		return nil
	}
}

// WithWorkers bounds parallel artifact generation.
func WithWorkers(n int) Option {
	return func(c *Config) error {
		if n <= 0 {
			return NewConfigError("Workers", n, "worker count must be positive")
		}
		c.Workers = n
		return nil
	}
}

// Apply applies options to the config, returning the first error.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// ApplyAll applies options and collects all errors.
func (c *Config) ApplyAll(opts ...Option) error {
	var errs []error
	for _, opt := range opts {
		if err := opt(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewConfig creates a run configuration from the given options.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{}
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNewConfig is NewConfig that panics on error.
func MustNewConfig(opts ...Option) *Config {
	c, err := NewConfig(opts...)
	if err != nil {
		panic(err)
	}
	return c
}
