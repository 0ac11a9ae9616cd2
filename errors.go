package taskgroup

import "errors"

const Namespace = "taskgroup"

var (
	// ErrScopeViolation is panicked with, under the taskgroup_debug build tag
	// only, when Spawn, Next or IsEmpty is called from a goroutine other than
	// the one that created the group.
	ErrScopeViolation = errors.New(Namespace + ": group accessed outside its owning goroutine")

	// ErrChildPanicked tags an error produced by recovering a panicking child
	// in a throwing group.
	ErrChildPanicked = errors.New(Namespace + ": child task panicked")
)

// joinErrors is a small errors.Join wrapper so call sites that collect errors
// into a slice don't need to import errors themselves.
func joinErrors(errs []error) error {
	return errors.Join(errs...)
}
