package simterms

import (
	"log/slog"

	"github.com/subsurf/simterms/codec"
)

type options struct {
	unitSet string
	logger  *Logger
	metrics MetricsCollector
	codec   codec.Codec
}

// Option configures Terminology construction and loading.
type Option func(*options)

// WithDefaultUnitSet configures the unit set used by ReformatUnit when the
// caller passes an empty set name. Defaults to DefaultUnitSet.
func WithDefaultUnitSet(unitSet string) Option {
	return func(o *options) {
		if unitSet != "" {
			o.unitSet = unitSet
		}
	}
}

// WithLogger configures structured logging. The description-miss advisory is
// emitted through this logger at WARN level. Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := simterms.NewJSONLogger(slog.LevelWarn)
//	t := simterms.Default(simterms.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector for lookups.
// Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metrics = mc
	}
}

// WithCodec configures the codec used by Load to decode the reference
// documents. If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		unitSet: DefaultUnitSet,
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
		codec:   codec.Default,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
