package state

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/harudiary/haru/internal/client/remote"
	"github.com/harudiary/haru/internal/common"
	"github.com/harudiary/haru/internal/diary"
	"github.com/harudiary/haru/internal/logging"
)

// fakeRemote records mutation calls and hands the test the subscription
// callback so it can play server pushes by hand.
type fakeRemote struct {
	createCalls []struct{ dateKey, content string }
	createErr   error
	updateErr   error
	deleteErr   error

	push    func([]diary.Entry)
	cancels int
}

func (f *fakeRemote) Close() error                                              { return nil }
func (f *fakeRemote) Register(ctx context.Context, username, password string) error { return nil }
func (f *fakeRemote) Login(ctx context.Context, username, password string) (string, error) {
	return "", nil
}
func (f *fakeRemote) Logout()                        {}
func (f *fakeRemote) Ping(ctx context.Context) error { return nil }

func (f *fakeRemote) CreateEntry(ctx context.Context, dateKey, content string) (string, error) {
	f.createCalls = append(f.createCalls, struct{ dateKey, content string }{dateKey, content})
	return "server-id", f.createErr
}

func (f *fakeRemote) UpdateEntry(ctx context.Context, id, content string) error { return f.updateErr }

func (f *fakeRemote) DeleteEntry(ctx context.Context, id string) error { return f.deleteErr }

func (f *fakeRemote) SubscribeAll(ctx context.Context, fn func([]diary.Entry)) (remote.CancelFunc, error) {
	f.push = fn
	return func() { f.cancels++ }, nil
}

func (f *fakeRemote) SubscribeMonth(ctx context.Context, year int, month time.Month, fn func([]diary.Entry)) (remote.CancelFunc, error) {
	return func() {}, nil
}

func testLogger() logging.Logger {
	return logging.Discard()
}

func newSignedInStore(t *testing.T) (*Store, *fakeRemote) {
	t.Helper()
	f := &fakeRemote{}
	s := NewStore(f, testLogger())
	s.SetOwner("U1")
	require.NotNil(t, f.push)
	s.SetSelectedDate("2024-05-05")
	return s, f
}

func TestSaveAnswer_OptimisticAppendAndRemoteCreate(t *testing.T) {
	s, f := newSignedInStore(t)

	s.SaveAnswer(context.Background(), "hello")

	list := s.EntriesFor("2024-05-05")
	require.Len(t, list, 1)
	require.Equal(t, "hello", list[0].Content)
	require.NotEmpty(t, list[0].ID)

	require.Len(t, f.createCalls, 1)
	require.Equal(t, "2024-05-05", f.createCalls[0].dateKey)
	require.Equal(t, "hello", f.createCalls[0].content)
}

func TestSaveAnswer_DeduplicatesIdenticalContent(t *testing.T) {
	s, f := newSignedInStore(t)

	s.SaveAnswer(context.Background(), "hello")
	s.SaveAnswer(context.Background(), "hello")

	require.Len(t, s.EntriesFor("2024-05-05"), 1)
	require.Len(t, f.createCalls, 1)
}

func TestSaveAnswer_RemoteFailureKeepsOptimisticEntry(t *testing.T) {
	s, f := newSignedInStore(t)
	f.createErr = common.ErrUnavailable

	s.SaveAnswer(context.Background(), "hello")

	// no rollback: the next snapshot is what reconciles
	require.Len(t, s.EntriesFor("2024-05-05"), 1)
}

func TestSaveAnswer_SignedOutIsNoOp(t *testing.T) {
	f := &fakeRemote{}
	s := NewStore(f, testLogger())

	s.SaveAnswer(context.Background(), "hello")

	require.Empty(t, s.EntriesByDate())
	require.Empty(t, f.createCalls)
}

func TestEditAnswer_AppliesLocallyOnlyOnSuccess(t *testing.T) {
	s, f := newSignedInStore(t)
	f.push([]diary.Entry{{ID: "A", DateKey: "2024-05-05", Content: "old"}})

	require.True(t, s.EditAnswer(context.Background(), "A", "new"))
	require.Equal(t, "new", s.EntriesFor("2024-05-05")[0].Content)
}

func TestEditAnswer_RemoteFailureLeavesContentUntouched(t *testing.T) {
	s, f := newSignedInStore(t)
	f.push([]diary.Entry{{ID: "A", DateKey: "2024-05-05", Content: "old"}})
	f.updateErr = common.ErrUnavailable

	require.False(t, s.EditAnswer(context.Background(), "A", "new"))
	require.Equal(t, "old", s.EntriesFor("2024-05-05")[0].Content)
}

func TestDeleteAnswer_RemovesOnlyAfterConfirmation(t *testing.T) {
	s, f := newSignedInStore(t)
	f.push([]diary.Entry{
		{ID: "A", DateKey: "2024-05-05", Content: "one"},
		{ID: "B", DateKey: "2024-05-05", Content: "two"},
	})

	require.True(t, s.DeleteAnswer(context.Background(), "A"))

	list := s.EntriesFor("2024-05-05")
	require.Len(t, list, 1)
	require.Equal(t, "B", list[0].ID)
}

func TestDeleteAnswer_RemoteFailureLeavesListUnchanged(t *testing.T) {
	s, f := newSignedInStore(t)
	f.push([]diary.Entry{{ID: "A", DateKey: "2024-05-05", Content: "one"}})
	f.deleteErr = common.ErrUnavailable

	before := s.EntriesFor("2024-05-05")
	require.False(t, s.DeleteAnswer(context.Background(), "A"))
	require.Equal(t, before, s.EntriesFor("2024-05-05"))
}

func TestDeleteAndEdit_SignedOutReturnFalse(t *testing.T) {
	s := NewStore(&fakeRemote{}, testLogger())

	require.False(t, s.DeleteAnswer(context.Background(), "A"))
	require.False(t, s.EditAnswer(context.Background(), "A", "x"))
}

func TestSetOwner_SignOutClearsStateAndCancelsSubscription(t *testing.T) {
	s, f := newSignedInStore(t)
	f.push([]diary.Entry{{ID: "A", DateKey: "2024-05-05", Content: "one"}})

	s.SetOwner("")

	_, ok := s.OwnerID()
	require.False(t, ok)
	require.Empty(t, s.EntriesByDate())
	require.Equal(t, 1, f.cancels)
	// selected date is just a default, it survives sign-out
	require.Equal(t, "2024-05-05", s.SelectedDate())
}

func TestApplySnapshot_StaleGenerationIsDropped(t *testing.T) {
	s, f := newSignedInStore(t)
	stalePush := f.push

	s.SetOwner("")
	stalePush([]diary.Entry{{ID: "A", DateKey: "2024-05-05", Content: "late"}})

	require.Empty(t, s.EntriesByDate())
}

func TestApplySnapshot_RebuildIsIdempotent(t *testing.T) {
	s, f := newSignedInStore(t)
	snapshot := []diary.Entry{
		{ID: "A", DateKey: "2024-05-05", Content: "one"},
		{ID: "B", DateKey: "2024-05-06", Content: "two"},
	}

	f.push(snapshot)
	first := s.EntriesByDate()
	f.push(snapshot)
	second := s.EntriesByDate()

	require.Equal(t, first, second)
}

func TestSnapshot_ReplacesWholesale(t *testing.T) {
	s, f := newSignedInStore(t)
	f.push([]diary.Entry{{ID: "A", DateKey: "2024-05-05", Content: "one"}})

	// an optimistic save then a snapshot without it: snapshot wins
	s.SaveAnswer(context.Background(), "two")
	f.push([]diary.Entry{{ID: "A", DateKey: "2024-05-05", Content: "one"}})

	list := s.EntriesFor("2024-05-05")
	require.Len(t, list, 1)
	require.Equal(t, "A", list[0].ID)
}

func TestSetSelectedDate_RejectsMalformedKeys(t *testing.T) {
	s, _ := newSignedInStore(t)

	s.SetSelectedDate("05/05/2024")
	require.Equal(t, "2024-05-05", s.SelectedDate())
}

type stubAuth struct{ fn func(string) }

func (a *stubAuth) OnChange(fn func(userID string)) { a.fn = fn }

func TestBindAuth_RoutesOwnerChanges(t *testing.T) {
	f := &fakeRemote{}
	s := NewStore(f, testLogger())

	a := &stubAuth{}
	s.BindAuth(a)
	a.fn("U1")

	owner, ok := s.OwnerID()
	require.True(t, ok)
	require.Equal(t, "U1", owner)
	require.NotNil(t, f.push)

	a.fn("")
	_, ok = s.OwnerID()
	require.False(t, ok)
}

func TestNewStore_DefaultsToToday(t *testing.T) {
	s := NewStore(&fakeRemote{}, testLogger())
	require.Equal(t, time.Now().Format("2006-01-02"), s.SelectedDate())
}
