package generator

import (
	"github.com/sirupsen/logrus"
)

// Defaults for the connector's retry budgets
const (
	DefaultSideRetries = 100
	DefaultStallLimit  = 1000
)

type options struct {
	logger      logrus.FieldLogger
	sideRetries int
	stallLimit  int
}

func defaultOptions() options {
	return options{
		logger:      logrus.StandardLogger(),
		sideRetries: DefaultSideRetries,
		stallLimit:  DefaultStallLimit,
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Option tunes a generation run
type Option func(*options)

// WithLogger sends debug output to logger instead of the standard logger
func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithSideRetries bounds how often the connector redraws a side of one room
// before abandoning the pick.
func WithSideRetries(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.sideRetries = n
		}
	}
}

// WithStallLimit bounds how many picks in a row may be abandoned before
// generation fails.
func WithStallLimit(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.stallLimit = n
		}
	}
}
