package taskgroup

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSequence_IterationEndsOnErrorThenFinishes(t *testing.T) {
	WithThrowingTaskGroup(context.Background(), func(g *ThrowingTaskGroup[int]) (struct{}, error) {
		g.Spawn(func(ctx context.Context) (int, error) { return 0, errBoom })

		seq := NewSequence[int](g)
		v, err, ok := seq.Next()
		require.True(t, ok)
		require.Equal(t, 0, v)
		require.ErrorIs(t, err, errBoom)

		_, _, ok = seq.Next()
		require.False(t, ok, "sequence must end permanently once an error is observed")
		return struct{}{}, nil
	})
}

func TestSequence_Cancel(t *testing.T) {
	WithThrowingTaskGroup(context.Background(), func(g *ThrowingTaskGroup[int]) (struct{}, error) {
		seq := NewSequence[int](g)
		seq.Cancel()
		require.True(t, g.IsCancelled())

		_, _, ok := seq.Next()
		require.False(t, ok)
		return struct{}{}, nil
	})
}

func TestTaskSequence_DrainsInCompletionOrder(t *testing.T) {
	WithTaskGroup(context.Background(), func(g *TaskGroup[int]) struct{} {
		g.Spawn(func(ctx context.Context) int { return 1 })

		seq := NewTaskSequence[int](g)
		v, ok := seq.Next()
		require.True(t, ok)
		require.Equal(t, 1, v)

		_, ok = seq.Next()
		require.False(t, ok)
		return struct{}{}
	})
}

func TestTaskSequence_Cancel(t *testing.T) {
	WithTaskGroup(context.Background(), func(g *TaskGroup[int]) struct{} {
		seq := NewTaskSequence[int](g)
		seq.Cancel()
		require.True(t, g.IsCancelled())
		return struct{}{}
	})
}
