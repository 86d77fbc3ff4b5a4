package triangulation

import "go.uber.org/zap"

type options struct {
	logger *zap.Logger
}

// An Option configures the triangulation engine.
type Option func(*options)

// WithLogger attaches a logger that receives debug-level telemetry for each
// insertion step. The default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func newOptions(setters []Option) options {
	opts := options{logger: zap.NewNop()}
	for _, set := range setters {
		set(&opts)
	}
	return opts
}
