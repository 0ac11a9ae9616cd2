//go:build !taskgroup_debug

package taskgroup

// ownerGuard is a zero-cost no-op outside debug builds. Build with
// -tags taskgroup_debug to enable the goroutine-identity check.
type ownerGuard struct{}

func newOwnerGuard() ownerGuard { return ownerGuard{} }

func (ownerGuard) check() {}
