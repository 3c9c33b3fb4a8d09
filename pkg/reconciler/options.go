package reconciler

import (
	"fmt"

	"github.com/agentstation/heromap/pkg/constants"
	"github.com/agentstation/heromap/pkg/errors"
)

// Options configures a reconciler.
type options struct {
	concurrency int
	tracking    bool
	dedupe      bool
}

func defaultOptions() *options {
	return &options{
		concurrency: constants.DefaultConcurrency,
		tracking:    false,
		dedupe:      true,
	}
}

// Option is a function that configures a Reconciler.
type Option func(*options) error

func (options *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}
	return options, nil
}

// newOptions returns reconciler options with default values.
func newOptions(opts ...Option) (*options, error) {
	return defaultOptions().apply(opts...)
}

// WithConcurrency bounds the number of bundles resolved and merged at once.
func WithConcurrency(n int) Option {
	return func(r *options) error {
		if n < 1 || n > constants.MaxConcurrency {
			return &errors.ValidationError{
				Field:   "concurrency",
				Value:   n,
				Message: fmt.Sprintf("must be between 1 and %d", constants.MaxConcurrency),
			}
		}
		r.concurrency = n
		return nil
	}
}

// WithProvenance enables field-level tracking.
func WithProvenance(enabled bool) Option {
	return func(r *options) error {
		r.tracking = enabled
		return nil
	}
}

// WithDeduplication enables collapsing wiki pages with identical content.
func WithDeduplication(enabled bool) Option {
	return func(r *options) error {
		r.dedupe = enabled
		return nil
	}
}
