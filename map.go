package taskgroup

import "context"

// MapInGroup fans items out through fn, one spawned child per item, and
// returns every successful result plus the joined error of every failing
// call. As with RunThrowingTaskGroup, results are collected in completion
// order rather than input order.
func MapInGroup[I, R any](
	ctx context.Context,
	items []I,
	fn func(context.Context, I) (R, error),
	opts ...Option,
) ([]R, error) {
	if len(items) == 0 {
		return nil, nil
	}

	return WithThrowingTaskGroup(ctx, func(g *ThrowingTaskGroup[R]) ([]R, error) {
		for i := range items {
			item := items[i]
			g.Spawn(func(ctx context.Context) (R, error) { return fn(ctx, item) })
		}

		var results []R
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
