package taskgroup

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTaskGroup_SpawnNextCompletionOrder(t *testing.T) {
	WithTaskGroup(context.Background(), func(g *TaskGroup[int]) struct{} {
		first := make(chan struct{})
		g.Spawn(func(ctx context.Context) int {
			<-first
			return 1
		})
		g.Spawn(func(ctx context.Context) int {
			return 2
		})

		v, ok := g.Next()
		require.True(t, ok)
		require.Equal(t, 2, v, "the child that doesn't wait should complete first")

		close(first)
		v, ok = g.Next()
		require.True(t, ok)
		require.Equal(t, 1, v)

		_, ok = g.Next()
		require.False(t, ok)
		require.True(t, g.IsEmpty())
		return struct{}{}
	})
}

func TestTaskGroup_SpawnAfterCancel_ReturnsFalse(t *testing.T) {
	WithTaskGroup(context.Background(), func(g *TaskGroup[int]) struct{} {
		g.CancelAll()
		require.True(t, g.IsCancelled())
		require.False(t, g.Spawn(func(ctx context.Context) int { return 1 }))
		require.True(t, g.IsEmpty())
		return struct{}{}
	})
}

func TestTaskGroup_ChildPanic_RepanicsOnNext(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a child panic to re-panic from Next")
	}()

	WithTaskGroup(context.Background(), func(g *TaskGroup[int]) struct{} {
		g.Spawn(func(ctx context.Context) int { panic("boom") })
		g.Next()
		return struct{}{}
	})
}

func TestTaskGroup_ParentCancellationPropagates(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	WithTaskGroup(ctx, func(g *TaskGroup[bool]) struct{} {
		childSeen := make(chan bool, 1)
		g.Spawn(func(ctx context.Context) bool {
			<-ctx.Done()
			childSeen <- true
			return true
		})

		cancel()

		v, ok := g.Next()
		require.True(t, ok)
		require.True(t, v)
		return struct{}{}
	})
}
