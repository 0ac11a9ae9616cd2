package taskgroup

import (
	"context"
	"errors"
	"fmt"
)

// ThrowingTaskGroup spawns child functions that may fail and collects their
// results (or errors) in completion order. Create one with
// WithThrowingTaskGroup; do not construct a ThrowingTaskGroup directly.
type ThrowingTaskGroup[T any] struct {
	core *groupCore[T]
}

func newThrowingTaskGroup[T any](ctx context.Context, opts groupOptions) *ThrowingTaskGroup[T] {
	return &ThrowingTaskGroup[T]{core: newGroupCore[T](ctx, opts)}
}

// Spawn runs fn on its own goroutine, sharing the group's context. It
// returns false without running fn if the group has already been cancelled.
// fn's returned error is never surfaced by Spawn itself — only the matching
// Next delivery observes it.
func (g *ThrowingTaskGroup[T]) Spawn(fn func(ctx context.Context) (T, error)) bool {
	return spawnChild(g.core, fn)
}

// Next returns the next child result in completion order. ok is false once
// the group has no pending or ready children left. A non-nil err means this
// child failed (or panicked, tagged with ErrChildPanicked); its siblings
// remain deliverable by subsequent Next calls.
func (g *ThrowingTaskGroup[T]) Next() (value T, err error, ok bool) {
	o, has := g.core.next()
	if !has {
		var zero T
		return zero, nil, false
	}
	return o.value, o.err, true
}

// IsEmpty reports whether every spawned child has completed and been
// delivered through Next.
func (g *ThrowingTaskGroup[T]) IsEmpty() bool { return g.core.isEmpty() }

// CancelAll cancels the group's context, signalling every child to stop
// cooperatively. It is idempotent and safe to call from any goroutine,
// including from within a spawned child.
func (g *ThrowingTaskGroup[T]) CancelAll() { g.core.cancelAll() }

// IsCancelled reports whether the group (or its parent context) has been
// cancelled. Safe to call from any goroutine.
func (g *ThrowingTaskGroup[T]) IsCancelled() bool { return g.core.isCancelled() }

// spawnChild admits and launches a child goroutine against core, recovering
// any panic into a tagged ErrChildPanicked error. Shared by
// ThrowingTaskGroup.Spawn and the streaming convenience wrappers, which
// spawn directly against a *groupCore without going through a
// ThrowingTaskGroup handle.
func spawnChild[T any](core *groupCore[T], fn func(context.Context) (T, error)) bool {
	if !core.beginSpawn() {
		return false
	}

	go func() {
		spawnID := newSpawnID()
		o := outcome[T]{spawnID: spawnID}
		defer func() {
			if r := recover(); r != nil {
				o.panicVal = r
				o.err = newChildTaggedError(
					errors.Join(ErrChildPanicked, fmt.Errorf("%v", r)),
					spawnID,
				)
			}
			core.offer(o)
		}()
		v, err := fn(core.context())
		o.value = v
		if err != nil {
			o.err = newChildTaggedError(err, spawnID)
		}
	}()

	return true
}
