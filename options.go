package enginehost

import "github.com/ajoly/enginehost/retry"

// CreateOptions holds resolved configuration for New.
// ResolveOptions collapses functional options into this struct.
type CreateOptions struct {
	// Retry governs how construction failures are retried.
	Retry retry.Policy
}

// Option configures a New invocation.
type Option func(*CreateOptions)

// ResolveOptions applies functional options over the defaults and returns
// the resolved config.
func ResolveOptions(opts ...Option) CreateOptions {
	co := CreateOptions{Retry: retry.DefaultPolicy()}
	for _, opt := range opts {
		if opt != nil {
			opt(&co)
		}
	}
	return co
}

// WithRetryPolicy overrides the construction retry policy.
func WithRetryPolicy(p retry.Policy) Option {
	return func(o *CreateOptions) {
		o.Retry = p
	}
}
