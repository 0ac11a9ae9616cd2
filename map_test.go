package taskgroup

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMapInGroup_TransformsEveryItem(t *testing.T) {
	results, err := MapInGroup(context.Background(), []int{1, 2, 3}, func(ctx context.Context, item int) (int, error) {
		return item * 2, nil
	})
	require.NoError(t, err)
	sort.Ints(results)
	require.Equal(t, []int{2, 4, 6}, results)
}

func TestMapInGroup_EmptyItems_NilResults(t *testing.T) {
	results, err := MapInGroup(context.Background(), []int{}, func(ctx context.Context, item int) (int, error) {
		t.Fatalf("fn must not be called for an empty item list")
		return 0, nil
	})
	require.NoError(t, err)
	require.Nil(t, results)
}

func TestMapInGroup_PartialFailure(t *testing.T) {
	results, err := MapInGroup(context.Background(), []int{1, 2}, func(ctx context.Context, item int) (int, error) {
		if item == 2 {
			return 0, errBoom
		}
		return item, nil
	})
	require.ErrorIs(t, err, errBoom)
	require.Equal(t, []int{1}, results)
}
