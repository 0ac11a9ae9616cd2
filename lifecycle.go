package taskgroup

import "sync"

// scopeTeardown encapsulates the exit sequence for a scope wrapper. It is a
// wiring helper: it doesn't own the group itself, just runs a caller-supplied
// sequence of steps exactly once, regardless of how many goroutines race to
// trigger it.
//
// A scope wrapper only ever calls Run from the single goroutine running the
// body, so the exactly-once guarantee is mostly defensive — but it keeps the
// teardown sequence expressed as an explicit, orderable, independently
// testable list of steps rather than inline control flow, the same shape a
// destructor sequence takes wherever it's reused.
type scopeTeardown struct {
	once sync.Once
}

// Run executes steps in order, the first time it is called. Later calls are
// no-ops.
func (t *scopeTeardown) Run(steps ...func()) {
	t.once.Do(func() {
		for _, step := range steps {
			if step != nil {
				step()
			}
		}
	})
}
