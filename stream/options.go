package stream

import (
	"github.com/npillmayer/pcomb"
)

type config struct {
	source    string
	positions func(int) pcomb.Pos
}

// Option configures a stream.
type Option func(*config)

// Named sets the name of a stream's source, to be included in error messages.
func Named(source string) Option {
	return func(c *config) {
		c.source = source
	}
}

// WithPositions sets a function mapping a Slice stream's offsets to positions.
// Other streams ignore this option.
func WithPositions(positions func(offset int) pcomb.Pos) Option {
	return func(c *config) {
		c.positions = positions
	}
}

func configure(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
