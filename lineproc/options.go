package lineproc

import "time"

// Default runner configuration values.
const (
	defaultLineBuffer    = 100
	defaultScannerBuffer = 1 << 20 // 1 MB
	defaultGracePeriod   = 5 * time.Second
)

// Options holds resolved construction-time configuration for a Runner.
// Use Start with Option functions to customize these values.
type Options struct {
	// LineBuffer is the channel buffer size for stdout lines.
	LineBuffer int

	// ScannerBuffer is the maximum line size in bytes for the stdout scanner.
	ScannerBuffer int

	// GracePeriod is the duration to wait after SIGTERM before sending SIGKILL.
	GracePeriod time.Duration
}

// Option configures a Runner at construction time.
type Option func(*Options)

// WithLineBuffer sets the channel buffer size for stdout lines.
// Values <= 0 are ignored.
func WithLineBuffer(size int) Option {
	return func(o *Options) {
		if size > 0 {
			o.LineBuffer = size
		}
	}
}

// WithScannerBuffer sets the maximum line size in bytes for the stdout scanner.
// Values <= 0 are ignored.
func WithScannerBuffer(size int) Option {
	return func(o *Options) {
		if size > 0 {
			o.ScannerBuffer = size
		}
	}
}

// WithGracePeriod sets the duration to wait after SIGTERM before sending SIGKILL.
// Values <= 0 are ignored.
func WithGracePeriod(d time.Duration) Option {
	return func(o *Options) {
		if d > 0 {
			o.GracePeriod = d
		}
	}
}

func resolveOptions(opts ...Option) Options {
	o := Options{
		LineBuffer:    defaultLineBuffer,
		ScannerBuffer: defaultScannerBuffer,
		GracePeriod:   defaultGracePeriod,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
