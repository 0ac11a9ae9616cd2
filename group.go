package taskgroup

import "context"

// TaskGroup spawns child functions that cannot fail and collects their
// results in completion order. Create one with WithTaskGroup; do not
// construct a TaskGroup directly.
type TaskGroup[T any] struct {
	core *groupCore[T]
}

func newTaskGroup[T any](ctx context.Context, opts groupOptions) *TaskGroup[T] {
	return &TaskGroup[T]{core: newGroupCore[T](ctx, opts)}
}

// Spawn runs fn on its own goroutine, sharing the group's context. It
// returns false without running fn if the group has already been cancelled.
func (g *TaskGroup[T]) Spawn(fn func(ctx context.Context) T) bool {
	if !g.core.beginSpawn() {
		return false
	}

	go func() {
		o := outcome[T]{spawnID: newSpawnID()}
		defer func() {
			if r := recover(); r != nil {
				o.panicVal = r
			}
			g.core.offer(o)
		}()
		o.value = fn(g.core.context())
	}()

	return true
}

// Next returns the next child result in completion order, or false once the
// group has no pending or ready children left. It panics if a child panicked,
// since the non-throwing flavor has no channel to carry that failure as a
// value.
func (g *TaskGroup[T]) Next() (T, bool) {
	o, ok := g.core.next()
	if !ok {
		var zero T
		return zero, false
	}
	if o.panicked() {
		panic(o.panicVal)
	}
	return o.value, true
}

// IsEmpty reports whether every spawned child has completed and been
// delivered through Next.
func (g *TaskGroup[T]) IsEmpty() bool { return g.core.isEmpty() }

// CancelAll cancels the group's context, signalling every child to stop
// cooperatively. It is idempotent and safe to call from any goroutine,
// including from within a spawned child.
func (g *TaskGroup[T]) CancelAll() { g.core.cancelAll() }

// IsCancelled reports whether the group (or its parent context) has been
// cancelled. Safe to call from any goroutine.
func (g *TaskGroup[T]) IsCancelled() bool { return g.core.isCancelled() }
