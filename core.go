package taskgroup

import (
	"context"
	"sync"
	"time"
)

// groupCore holds the state shared by TaskGroup and ThrowingTaskGroup: the
// pending/ready bookkeeping, the single-slot waiter used to suspend Next, and
// the context every child's goroutine is launched with. A single mutex
// linearizes every operation; groups are not expected to handle enough
// concurrent admission/delivery traffic for a lock-free structure to pay for
// its own complexity.
type groupCore[T any] struct {
	mu      sync.Mutex
	pending pendingSet
	ready   readyQueue[T]
	waiter  chan outcome[T]

	cancelled bool
	ctx       context.Context
	cancel    context.CancelFunc

	cancelOnFirstError bool
	errorSeen          bool

	metrics *groupMetrics
	owner   ownerGuard
}

func newGroupCore[T any](parent context.Context, opts groupOptions) *groupCore[T] {
	ctx, cancel := context.WithCancel(parent)
	return &groupCore[T]{
		ctx:                ctx,
		cancel:             cancel,
		cancelOnFirstError: opts.cancelOnFirstError,
		metrics:            newGroupMetrics(opts.metrics),
		owner:              newOwnerGuard(),
	}
}

// context returns the context every child goroutine should run with. It is
// cancelled when the parent context is cancelled, when CancelAll is called,
// or (for a throwing group whose options request it) when the first child
// error arrives.
func (g *groupCore[T]) context() context.Context {
	return g.ctx
}

// beginSpawn admits a new child, returning false if the group is already
// cancelled. The caller must be on the group's owning goroutine.
func (g *groupCore[T]) beginSpawn() bool {
	g.owner.check()

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.cancelled {
		return false
	}
	g.pending.incrementLocked()
	g.metrics.onSpawn()
	return true
}

// offer delivers a completed child's outcome to the group. It runs on the
// child's own goroutine, never the owner's, so it must not touch ownerGuard.
func (g *groupCore[T]) offer(o outcome[T]) {
	g.mu.Lock()
	g.pending.decrementLocked()
	g.metrics.onOffer(o.panicked())

	triggerCancel := g.cancelOnFirstError && !g.errorSeen && o.err != nil && !o.panicked()
	if triggerCancel {
		g.errorSeen = true
	}

	// The handoff-or-enqueue decision must happen before pending is
	// observable as decremented, or a concurrent next()/isEmpty() can see
	// pending == 0 with the record in neither the waiter nor ready yet and
	// conclude the group is drained while this outcome is still in flight.
	w := g.waiter
	g.waiter = nil
	if w == nil {
		g.ready.pushLocked(o)
	}
	g.mu.Unlock()

	if triggerCancel {
		g.cancelAll()
	}

	if w != nil {
		w <- o
	}
}

// next returns the next outcome in completion order, blocking if none is
// ready yet but children remain pending. It returns false once the group has
// no pending children and nothing left to deliver.
func (g *groupCore[T]) next() (outcome[T], bool) {
	g.owner.check()

	for {
		g.mu.Lock()
		if o, ok := g.ready.popLocked(); ok {
			g.mu.Unlock()
			return o, true
		}
		if g.pending.isEmptyLocked() {
			g.mu.Unlock()
			var zero outcome[T]
			return zero, false
		}
		w := make(chan outcome[T], 1)
		g.waiter = w
		g.mu.Unlock()

		started := time.Now()
		o := <-w
		g.metrics.onWait(started)
		if o.isPoke {
			continue
		}
		return o, true
	}
}

// beginKeepalive admits a placeholder pending slot with no corresponding
// child goroutine. It is used by streaming convenience wrappers to hold the
// group open across an intake loop whose item count isn't known up front,
// preventing pending from transiently touching zero when every admitted child
// has finished before the next item arrives. Pair every beginKeepalive with one releaseKeepalive.
func (g *groupCore[T]) beginKeepalive() {
	g.mu.Lock()
	g.pending.incrementLocked()
	g.mu.Unlock()
}

// releaseKeepalive retires a placeholder slot admitted by beginKeepalive. It
// wakes any blocked Next call so it can re-examine whether the group is now
// truly empty, without ever surfacing a value from Next.
func (g *groupCore[T]) releaseKeepalive() {
	g.mu.Lock()
	g.pending.decrementLocked()
	w := g.waiter
	g.waiter = nil
	g.mu.Unlock()

	if w != nil {
		w <- outcome[T]{isPoke: true}
	}
}

// cancelAll cancels the group's context, which every spawned child observes
// through its own copy of the context. It is idempotent and, unlike the rest
// of groupCore's surface, safe to call from any goroutine, including from
// within a spawned child.
func (g *groupCore[T]) cancelAll() {
	g.mu.Lock()
	if g.cancelled {
		g.mu.Unlock()
		return
	}
	g.cancelled = true
	g.mu.Unlock()

	g.cancel()
}

// isCancelled reports whether cancelAll has run or the parent context has
// been cancelled. Safe to call from any goroutine.
func (g *groupCore[T]) isCancelled() bool {
	select {
	case <-g.ctx.Done():
		return true
	default:
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	return g.cancelled
}

// isEmpty reports whether every spawned child has both completed and been
// delivered through Next.
func (g *groupCore[T]) isEmpty() bool {
	g.owner.check()

	g.mu.Lock()
	defer g.mu.Unlock()
	return g.pending.isEmptyLocked() && g.ready.emptyLocked()
}
