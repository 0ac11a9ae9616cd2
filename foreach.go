package taskgroup

import "context"

// ForEachInGroup applies fn to each item concurrently, one spawned child per
// item, and returns the joined error of every failing call (nil if every
// call succeeded).
func ForEachInGroup[I any](
	ctx context.Context,
	items []I,
	fn func(context.Context, I) error,
	opts ...Option,
) error {
	if len(items) == 0 {
		return nil
	}

	_, err := WithThrowingTaskGroup(ctx, func(g *ThrowingTaskGroup[struct{}]) (struct{}, error) {
		for i := range items {
			item := items[i]
			g.Spawn(func(ctx context.Context) (struct{}, error) {
				return struct{}{}, fn(ctx, item)
			})
		}

		var errs []error
		for {
			_, err, ok := g.Next()
			if !ok {
				break
			}
			if err != nil {
				errs = append(errs, err)
			}
		}
		return struct{}{}, joinErrors(errs)
	}, opts...)

	return err
}
