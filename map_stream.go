package taskgroup

import "context"

// MapInGroupStream is RunThrowingTaskGroupStream under the name that matches
// MapInGroup, for call sites that prefer to spell out the fan-out intent.
// See RunThrowingTaskGroupStream for the two-goroutine intake/drain caveat.
func MapInGroupStream[I, R any](
	ctx context.Context,
	in <-chan I,
	fn func(context.Context, I) (R, error),
	opts ...Option,
) (<-chan R, <-chan error) {
	return RunThrowingTaskGroupStream(ctx, in, fn, opts...)
}
