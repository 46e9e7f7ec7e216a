package algebra

import "github.com/ardnew/jalg/log"

// Option configures parsing behavior.
type Option func(*parser)

// WithLogger sets the structured logger for trace-level debugging.
// If not provided, the logger is zero-valued and all logging is a no-op.
func WithLogger(logger log.Logger) Option {
	return func(p *parser) {
		p.logger = logger
	}
}

// WithDiscardUnclosed controls how containers left open at the end of input
// are handled. By default they fail with [ErrMismatch]. When discard is true
// they are dropped silently, together with everything parsed inside them.
func WithDiscardUnclosed(discard bool) Option {
	return func(p *parser) {
		p.discardUnclosed = discard
	}
}
