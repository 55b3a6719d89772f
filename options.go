package hufblob

import (
	"fmt"

	"github.com/arloliu/hufblob/errs"
	"github.com/arloliu/hufblob/format"
	"github.com/arloliu/hufblob/internal/options"
)

// Config holds the settings applied by Compress.
type Config struct {
	padding format.PaddingPolicy
	verify  bool
}

// Option is a functional option for Compress.
type Option = options.Option[*Config]

func newConfig(opts ...Option) (*Config, error) {
	cfg := &Config{
		padding: format.PaddingAlwaysFull,
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// PaddingPolicy returns the configured padding policy.
func (c *Config) PaddingPolicy() format.PaddingPolicy {
	return c.padding
}

// Verify reports whether Compress re-decodes its output.
func (c *Config) Verify() bool {
	return c.verify
}

// WithPaddingPolicy selects how the packed frame is aligned to a byte boundary.
// Default is format.PaddingAlwaysFull.
func WithPaddingPolicy(policy format.PaddingPolicy) Option {
	return options.New(func(c *Config) error {
		if !policy.IsValid() {
			return fmt.Errorf("%w: %d", errs.ErrInvalidPaddingPolicy, policy)
		}
		c.padding = policy

		return nil
	})
}

// WithVerify makes Compress decode the artifact it produced and compare the
// xxHash64 digest of the result with the input before returning it.
// Default is false.
func WithVerify(enabled bool) Option {
	return options.NoError(func(c *Config) {
		c.verify = enabled
	})
}
