package proving

import (
	"errors"
)

type option struct {
	iterations uint64
	// How many iterations between progress reports.
	progressInterval uint64
	progress         func(done, total uint64)
}

func (o *option) validate() error {
	if o.progressInterval == 0 {
		return errors.New("`progressInterval` must be greater than 0")
	}
	return nil
}

type OptionFunc func(*option) error

// WithIterations overrides the delay parameter of the config.
func WithIterations(iterations uint64) OptionFunc {
	return func(o *option) error {
		o.iterations = iterations
		return nil
	}
}

// WithProgressInterval sets how many iterations pass between progress reports.
func WithProgressInterval(interval uint64) OptionFunc {
	return func(o *option) error {
		if interval == 0 {
			return errors.New("`interval` must be greater than 0")
		}
		o.progressInterval = interval
		return nil
	}
}

// WithProgress registers a callback invoked on every progress report.
func WithProgress(f func(done, total uint64)) OptionFunc {
	return func(o *option) error {
		o.progress = f
		return nil
	}
}
