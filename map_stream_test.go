package taskgroup

import (
	"context"
	"testing"
	"time"
)

func TestMapInGroupStream_IsAnAliasForRunThrowingTaskGroupStream(t *testing.T) {
	in := make(chan int, 1)
	in <- 5
	close(in)

	results, errs := MapInGroupStream(context.Background(), in, func(ctx context.Context, item int) (int, error) {
		return item + 1, nil
	})

	select {
	case v := <-results:
		if v != 6 {
			t.Fatalf("expected 6, got %d", v)
		}
	case <-time.After(time.Second):
		t.Fatalf("timed out waiting for result")
	}

	select {
	case _, ok := <-errs:
		if ok {
			t.Fatalf("expected no error")
		}
	case <-time.After(time.Second):
		t.Fatalf("timed out waiting for errs to close")
	}
}
