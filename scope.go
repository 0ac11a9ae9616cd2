package taskgroup

import "context"

// WithTaskGroup constructs a TaskGroup bound to ctx, runs body with it, and
// guarantees the group is fully drained before returning — even if body
// leaves children pending. The group must not be used after body returns.
//
// If a child panicked and its panic hasn't yet been observed by a call to
// Next inside body, draining re-raises it from this call.
func WithTaskGroup[T, R any](ctx context.Context, body func(g *TaskGroup[T]) R, opts ...Option) R {
	co := resolveOptions(opts)
	g := newTaskGroup[T](ctx, co)

	var td scopeTeardown
	defer td.Run(func() {
		for !g.IsEmpty() {
			g.Next()
		}
	})

	return body(g)
}

// WithThrowingTaskGroup constructs a ThrowingTaskGroup bound to ctx, runs
// body with it, and guarantees the group is fully drained before returning.
//
// If body returns a non-nil error, every remaining child is cancelled first
// and its outcome is discarded during the drain — only the error returned by
// body itself propagates out of this call. If body returns nil, the drain
// still runs but CancelAll is not called automatically, and any child error
// that body did not observe through Next is discarded: only errors returned
// by body ever propagate out of this call.
func WithThrowingTaskGroup[T, R any](
	ctx context.Context,
	body func(g *ThrowingTaskGroup[T]) (R, error),
	opts ...Option,
) (R, error) {
	co := resolveOptions(opts)
	g := newThrowingTaskGroup[T](ctx, co)

	var td scopeTeardown
	var bodyErr error
	defer func() {
		td.Run(func() {
			if bodyErr != nil {
				g.CancelAll()
			}
			for !g.IsEmpty() {
				g.Next()
			}
		})
	}()

	var result R
	result, bodyErr = body(g)
	return result, bodyErr
}
