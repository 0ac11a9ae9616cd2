package taskgroup

import "github.com/google/uuid"

// outcome carries a single child's completion back to the group. Exactly one
// outcome is produced per spawned child, whether it returns normally, returns
// an error, or panics.
type outcome[T any] struct {
	spawnID  uuid.UUID
	value    T
	err      error
	panicVal any

	// isPoke marks an internal wakeup that carries no real completion. It is
	// only ever produced by releaseKeepalive and is never returned from a
	// group's public Next.
	isPoke bool
}

// panicked reports whether this outcome represents a recovered child panic
// rather than a normal return or a returned error.
func (o outcome[T]) panicked() bool { return o.panicVal != nil }

func newSpawnID() uuid.UUID { return uuid.New() }
