// Package taskgroup provides structured concurrency primitives for spawning
// child goroutines that share a lifetime with their parent and deliver their
// results back in completion order.
//
// Constructors
//   - WithTaskGroup / WithThrowingTaskGroup: scoped entry points. The group
//     is only reachable from inside the supplied body function and is fully
//     drained before either call returns.
//   - RunTaskGroup / RunThrowingTaskGroup: convenience wrappers that spawn one
//     child per input value and collect every result, analogous to a fixed
//     fan-out/fan-in.
//   - RunThrowingTaskGroupStream: spawns children as values arrive on an input
//     channel, for producers whose full input isn't known up front.
//   - NewSequence: adapts a throwing group's Next into a pull-based iterator
//     for range-style consumption.
//
// Cancellation
// A group's internal context is derived from the context passed to its scope
// wrapper. Cancelling the parent context cancels every child transitively.
// Calling CancelAll on the group does the same thing explicitly, and a
// throwing group's body returning a non-nil error triggers it automatically
// during scope exit.
//
// Delivery
// Results are delivered in completion order, not spawn order: Next never
// blocks longer than it takes for some pending child to finish. Each
// completion is delivered exactly once, to the single goroutine that owns
// the group.
//
// Panics
//   - TaskGroup (non-throwing): a child panic is fatal to the group and is
//     re-raised from the next call to Next, since there is no error channel
//     to carry it.
//   - ThrowingTaskGroup: a child panic is recovered and surfaced as a regular
//     error wrapping ErrChildPanicked.
package taskgroup
