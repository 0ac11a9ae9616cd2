package taskgroup

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestForEachInGroup_AppliesToEveryItem(t *testing.T) {
	var calls int32
	err := ForEachInGroup(context.Background(), []int{1, 2, 3}, func(ctx context.Context, item int) error {
		atomic.AddInt32(&calls, 1)
		return nil
	})
	require.NoError(t, err)
	require.EqualValues(t, 3, atomic.LoadInt32(&calls))
}

func TestForEachInGroup_EmptyItems_NoOp(t *testing.T) {
	err := ForEachInGroup(context.Background(), []int{}, func(ctx context.Context, item int) error {
		t.Fatalf("fn must not be called for an empty item list")
		return nil
	})
	require.NoError(t, err)
}

func TestForEachInGroup_JoinsFailures(t *testing.T) {
	err := ForEachInGroup(context.Background(), []int{1, 2}, func(ctx context.Context, item int) error {
		if item == 2 {
			return errBoom
		}
		return nil
	})
	require.ErrorIs(t, err, errBoom)
}
