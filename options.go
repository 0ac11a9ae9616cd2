package taskgroup

import "github.com/ygrebnov/taskgroup/metrics"

// Option configures a group constructed by WithTaskGroup or
// WithThrowingTaskGroup.
type Option func(*groupOptions)

// groupOptions is the internal builder state assembled from the options
// passed to a scope wrapper.
type groupOptions struct {
	metrics            metrics.Provider
	cancelOnFirstError bool
}

func defaultGroupOptions() groupOptions {
	return groupOptions{
		metrics:            metrics.NewNoopProvider(),
		cancelOnFirstError: false,
	}
}

// WithMetrics reports group activity (spawns, completions, panics, pending
// count, Next wait time) through the given provider. The default is a
// no-op provider.
func WithMetrics(p metrics.Provider) Option {
	return func(o *groupOptions) {
		if p == nil {
			return
		}
		o.metrics = p
	}
}

// WithCancelOnFirstError enables automatic cancellation of a throwing group's
// remaining children as soon as one child's outcome carries a non-nil,
// non-panic error. The erroring child's outcome is still delivered through
// Next; only its siblings are cancelled. Off by default: spawned children run
// to completion independently unless the caller or the group's body cancels
// them explicitly.
func WithCancelOnFirstError() Option {
	return func(o *groupOptions) { o.cancelOnFirstError = true }
}

func resolveOptions(opts []Option) groupOptions {
	co := defaultGroupOptions()
	for _, opt := range opts {
		if opt == nil {
			panic(Namespace + ": nil option")
		}
		opt(&co)
	}
	return co
}
