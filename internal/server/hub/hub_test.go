package hub

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/harudiary/haru/internal/diary"
)

func snapshot() []diary.Entry {
	return []diary.Entry{
		{ID: "a", DateKey: "2024-04-30", Content: "april"},
		{ID: "b", DateKey: "2024-05-05", Content: "may"},
		{ID: "c", DateKey: "2024-05-31", Content: "late may"},
		{ID: "d", DateKey: "2024-06-01", Content: "june"},
	}
}

func TestBroadcast_ReachesOnlyOwnersWatchers(t *testing.T) {
	h := New()
	w1 := h.Add("u1", "", "")
	w2 := h.Add("u2", "", "")

	h.Broadcast("u1", snapshot())

	require.Len(t, <-w1.C(), 4)
	select {
	case <-w2.C():
		t.Fatal("watcher of another owner received a snapshot")
	default:
	}
}

func TestBroadcast_RangeFilter(t *testing.T) {
	h := New()
	w := h.Add("u1", "2024-05-01", "2024-05-31")

	h.Broadcast("u1", snapshot())

	got := <-w.C()
	require.Len(t, got, 2)
	require.Equal(t, "b", got[0].ID)
	require.Equal(t, "c", got[1].ID)
}

func TestRemove_Idempotent(t *testing.T) {
	h := New()
	w := h.Add("u1", "", "")

	h.Remove(w)
	h.Remove(w) // second call is a no-op

	_, ok := <-w.C()
	require.False(t, ok, "channel should be closed")

	// broadcasting after removal must not panic
	h.Broadcast("u1", snapshot())
}

func TestBroadcast_SlowConsumerDropsOldest(t *testing.T) {
	h := New()
	w := h.Add("u1", "", "")

	for i := 0; i < watcherBuffer+3; i++ {
		h.Broadcast("u1", snapshot())
	}

	// watcher still receives without the hub having blocked
	require.Len(t, <-w.C(), 4)
}
