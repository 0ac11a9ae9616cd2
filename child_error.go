package taskgroup

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ChildError exposes correlation metadata for a failure surfaced by a
// throwing group: which spawned child produced it.
type ChildError interface {
	error
	Unwrap() error
	SpawnID() uuid.UUID
}

type childTaggedError struct {
	err     error
	spawnID uuid.UUID
}

func newChildTaggedError(err error, spawnID uuid.UUID) error {
	if err == nil {
		return nil
	}
	return &childTaggedError{err: err, spawnID: spawnID}
}

func (e *childTaggedError) Error() string      { return e.err.Error() }
func (e *childTaggedError) Unwrap() error      { return e.err }
func (e *childTaggedError) SpawnID() uuid.UUID { return e.spawnID }

func (e *childTaggedError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = fmt.Fprintf(s, "child(spawnID=%s): %+v", e.spawnID, e.err)
			return
		}
		fallthrough
	case 's':
		_, _ = fmt.Fprint(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	}
}

// ExtractSpawnID returns the spawn ID carried by err, if it (or something it
// wraps) is a ChildError.
func ExtractSpawnID(err error) (uuid.UUID, bool) {
	var ce ChildError
	if errors.As(err, &ce) {
		return ce.SpawnID(), true
	}
	return uuid.UUID{}, false
}
