//go:build taskgroup_debug

package taskgroup

import (
	"bytes"
	"runtime"
	"strconv"
)

// ownerGuard records the goroutine that created a group and panics if Spawn,
// Next or IsEmpty later runs on a different goroutine (CancelAll and
// IsCancelled are not checked). Go has no supported API
// for a goroutine's identity, so this parses it out of runtime.Stack — a
// debug-only cost, compiled out entirely unless the taskgroup_debug build tag
// is set.
type ownerGuard struct {
	id uint64
}

func newOwnerGuard() ownerGuard {
	return ownerGuard{id: currentGoroutineID()}
}

func (g ownerGuard) check() {
	if id := currentGoroutineID(); id != g.id {
		panic(ErrScopeViolation)
	}
}

func currentGoroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	b := bytes.TrimPrefix(buf[:n], []byte("goroutine "))
	i := bytes.IndexByte(b, ' ')
	if i < 0 {
		return 0
	}
	id, _ := strconv.ParseUint(string(b[:i]), 10, 64)
	return id
}
