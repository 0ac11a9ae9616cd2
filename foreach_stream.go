package taskgroup

import "context"

// ForEachInGroupStream applies fn to each item arriving on in, one spawned
// child per item, and returns a channel of per-item errors. The channel
// closes once in is exhausted (or ctx is cancelled) and every spawned child
// has completed. See RunThrowingTaskGroupStream for the two-goroutine
// intake/drain caveat.
func ForEachInGroupStream[I any](
	ctx context.Context,
	in <-chan I,
	fn func(context.Context, I) error,
	opts ...Option,
) <-chan error {
	resultsOut, errsOut := RunThrowingTaskGroupStream(ctx, in, func(ctx context.Context, item I) (struct{}, error) {
		return struct{}{}, fn(ctx, item)
	}, opts...)

	// Every call produces a struct{} result alongside the channel's real
	// payload (its error); discard the unused result side so the stream's
	// drain goroutine never blocks sending on it.
	go func() {
		for range resultsOut {
		}
	}()

	return errsOut
}
