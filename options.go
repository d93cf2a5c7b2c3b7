package ringbuffer

import (
	"log/slog"

	"github.com/dgodfrey206/RingBuffer/metric"
)

// Option configures buffer behavior using the functional options pattern.
type Option[T any] func(*options[T])

// options holds internal configuration for buffer instances.
// Stats are always collected; metrics and logging are opt-in.
type options[T any] struct {
	fill         *T
	dropCallback DropCallback[T]

	// metricsReg is optional - if provided, buffer stats are also exposed
	// as Prometheus metrics
	metricsReg *metric.Registry

	// name labels metrics and log records for this instance
	name string

	logger *slog.Logger
}

// WithFill pre-fills the buffer with value at construction, inserting it
// capacity times and leaving the buffer full.
func WithFill[T any](value T) Option[T] {
	return func(opts *options[T]) {
		opts.fill = &value
	}
}

// WithDropCallback sets a callback invoked with each value rejected by a
// saturated Put and each value discarded by Clear.
func WithDropCallback[T any](callback DropCallback[T]) Option[T] {
	return func(opts *options[T]) {
		opts.dropCallback = callback
	}
}

// WithMetrics enables Prometheus metrics export for buffer statistics,
// labeled with name. If registry is nil or name is empty, the option is
// ignored.
func WithMetrics[T any](registry *metric.Registry, name string) Option[T] {
	return func(opts *options[T]) {
		if registry != nil && name != "" {
			opts.metricsReg = registry
			opts.name = name
		}
	}
}

// WithLogger sets a structured logger. When present, saturated Puts are
// logged at Debug level. Without a logger the buffer stays silent.
func WithLogger[T any](logger *slog.Logger) Option[T] {
	return func(opts *options[T]) {
		opts.logger = logger
	}
}

// applyOptions applies functional options to create final buffer
// configuration.
func applyOptions[T any](opts ...Option[T]) *options[T] {
	applied := &options[T]{}

	for _, opt := range opts {
		if opt != nil {
			opt(applied)
		}
	}

	return applied
}
