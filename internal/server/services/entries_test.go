package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/harudiary/haru/internal/common"
	"github.com/harudiary/haru/internal/logging"
	"github.com/harudiary/haru/internal/server/hub"
)

func discardLogger() logging.Logger {
	return logging.Discard()
}

func TestCreate_AssignsIDAndBroadcasts(t *testing.T) {
	m := newFakeRepoManager()
	h := hub.New()
	svc := NewEntryService(m, h, discardLogger())
	ctx := context.Background()

	w := h.Add("u1", "", "")

	id, err := svc.Create(ctx, "u1", "2024-05-05", "hello")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	snapshot := <-w.C()
	require.Len(t, snapshot, 1)
	require.Equal(t, id, snapshot[0].ID)
	require.Equal(t, "2024-05-05", snapshot[0].DateKey)
	require.Equal(t, "hello", snapshot[0].Content)
	require.False(t, snapshot[0].CreatedAt.IsZero())
}

func TestUpdateContent_OtherOwnerBlocked(t *testing.T) {
	m := newFakeRepoManager()
	svc := NewEntryService(m, hub.New(), discardLogger())
	ctx := context.Background()

	id, err := svc.Create(ctx, "u1", "2024-05-05", "hello")
	require.NoError(t, err)

	err = svc.UpdateContent(ctx, "u2", id, "hijacked")
	require.ErrorIs(t, err, common.ErrNotFound)

	snapshot, err := svc.Snapshot(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, "hello", snapshot[0].Content)
}

func TestDelete_BroadcastsEmptySnapshot(t *testing.T) {
	m := newFakeRepoManager()
	h := hub.New()
	svc := NewEntryService(m, h, discardLogger())
	ctx := context.Background()

	id, err := svc.Create(ctx, "u1", "2024-05-05", "hello")
	require.NoError(t, err)

	w := h.Add("u1", "", "")
	require.NoError(t, svc.Delete(ctx, "u1", id))

	snapshot := <-w.C()
	require.Empty(t, snapshot)
}

func TestList_RangeFiltersLexically(t *testing.T) {
	m := newFakeRepoManager()
	svc := NewEntryService(m, hub.New(), discardLogger())
	ctx := context.Background()

	for _, key := range []string{"2024-04-30", "2024-05-05", "2024-05-31", "2024-06-01"} {
		_, err := svc.Create(ctx, "u1", key, "answer for "+key)
		require.NoError(t, err)
	}

	got, err := svc.List(ctx, "u1", "2024-05-01", "2024-05-31")
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "2024-05-05", got[0].DateKey)
	require.Equal(t, "2024-05-31", got[1].DateKey)
}
