package taskgroup

import "context"

// RunThrowingTaskGroupStream consumes items from in, spawning one child per
// item as it arrives, and returns channels carrying results and errors as
// children complete. Both channels close once in is exhausted (or ctx is
// cancelled) and every spawned child has been accounted for.
//
// Unlike the rest of this package's public surface, this helper is driven by
// two dedicated goroutines — one admitting children as items arrive, one
// draining completions — rather than a single owning goroutine. Building with
// -tags taskgroup_debug enables the single-owner assertion on TaskGroup and
// ThrowingTaskGroup; that assertion also runs for this helper's admissions
// and drains, which happen off the calling goroutine, so under that tag this
// helper panics with ErrScopeViolation.
func RunThrowingTaskGroupStream[I, R any](
	ctx context.Context,
	in <-chan I,
	fn func(context.Context, I) (R, error),
	opts ...Option,
) (<-chan R, <-chan error) {
	core := newGroupCore[R](ctx, resolveOptions(opts))

	results := make(chan R)
	errsOut := make(chan error)

	core.beginKeepalive()
	go func() {
		defer core.releaseKeepalive()
		for {
			select {
			case <-core.context().Done():
				return
			case item, ok := <-in:
				if !ok {
					return
				}
				item := item
				if !spawnChild(core, func(ctx context.Context) (R, error) { return fn(ctx, item) }) {
					return
				}
			}
		}
	}()

	go func() {
		defer close(results)
		defer close(errsOut)
		for {
			o, ok := core.next()
			if !ok {
				return
			}
			if o.err != nil {
				errsOut <- o.err
				continue
			}
			results <- o.value
		}
	}()

	return results, errsOut
}
