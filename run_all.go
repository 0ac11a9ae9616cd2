package taskgroup

import "context"

// RunTaskGroup spawns one child per function in fns using a scoped
// TaskGroup, waits for all of them, and returns their results. Results are
// collected in completion order, not the order fns was given in.
func RunTaskGroup[T any](ctx context.Context, fns []func(context.Context) T, opts ...Option) []T {
	return WithTaskGroup(ctx, func(g *TaskGroup[T]) []T {
		for _, fn := range fns {
			fn := fn
			g.Spawn(fn)
		}

		results := make([]T, 0, len(fns))
		for {
			v, ok := g.Next()
			if !ok {
				break
			}
			results = append(results, v)
		}
		return results
	}, opts...)
}

// RunThrowingTaskGroup spawns one child per function in fns using a scoped
// ThrowingTaskGroup, waits for all of them, and returns their results plus
// the joined errors of every child that failed. Results are collected in
// completion order; the index of which fn produced which result is not
// preserved — use ExtractSpawnID on a returned error if correlation is
// needed.
func RunThrowingTaskGroup[T any](
	ctx context.Context,
	fns []func(context.Context) (T, error),
	opts ...Option,
) ([]T, error) {
	return WithThrowingTaskGroup(ctx, func(g *ThrowingTaskGroup[T]) ([]T, error) {
		for _, fn := range fns {
			fn := fn
			g.Spawn(fn)
		}

		var results []T
		var errs []error
		for {
			v, err, ok := g.Next()
			if !ok {
				break
			}
			if err != nil {
				errs = append(errs, err)
				continue
			}
			results = append(results, v)
		}
		return results, joinErrors(errs)
	}, opts...)
}
