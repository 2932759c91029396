package dates

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeliveryDates/internal/availability"
	"github.com/m04kA/SMC-DeliveryDates/internal/domain"
	metafieldsRepo "github.com/m04kA/SMC-DeliveryDates/internal/infra/storage/metafields"
	"github.com/m04kA/SMC-DeliveryDates/internal/service/dates/models"
	"github.com/m04kA/SMC-DeliveryDates/pkg/logger"
	"github.com/m04kA/SMC-DeliveryDates/pkg/ptr"
	"github.com/m04kA/SMC-DeliveryDates/pkg/types"
)

const shopID = "shop-1"

type fakeStore struct {
	values   map[string]string
	getErr   error
	setErr   error
	getCalls int
	setCalls int
}

func newFakeStore() *fakeStore {
	return &fakeStore{values: make(map[string]string)}
}

func (f *fakeStore) Get(_ context.Context, shopID, key string) (string, error) {
	f.getCalls++
	if f.getErr != nil {
		return "", f.getErr
	}
	v, ok := f.values[shopID+"/"+key]
	if !ok {
		return "", metafieldsRepo.ErrMetafieldNotFound
	}
	return v, nil
}

func (f *fakeStore) Set(_ context.Context, shopID, key, value string) error {
	f.setCalls++
	if f.setErr != nil {
		return f.setErr
	}
	f.values[shopID+"/"+key] = value
	return nil
}

type nopObserver struct{}

func (nopObserver) ObserveConfigWrite(string, error) {}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func setup() (*Service, *fakeStore, *fakeClock) {
	store := newFakeStore()
	clock := &fakeClock{now: time.Date(2024, time.December, 1, 9, 0, 0, 0, time.UTC)}
	svc := NewService(store, nopObserver{}, 30*time.Minute, logger.NewNop())
	svc.timeProvider = clock
	return svc, store, clock
}

func rangeReq(start, end string) *models.RangeRequest {
	return &models.RangeRequest{ShopID: shopID, Start: start, End: end}
}

func TestAdd_PersistsWholeCollection(t *testing.T) {
	svc, store, _ := setup()
	ctx := context.Background()

	index, r, err := svc.Add(ctx, rangeReq("2024-12-24", "2024-12-26"))
	require.NoError(t, err)
	assert.Equal(t, 0, index)
	assert.Equal(t, "2024-12-24 – 2024-12-26", r.String())

	index, _, err = svc.Add(ctx, rangeReq("2025-01-01", ""))
	require.NoError(t, err)
	assert.Equal(t, 1, index)

	assert.JSONEq(t, `[
		{"start":"2024-12-24T00:00:00.000Z","end":"2024-12-26T00:00:00.000Z"},
		{"start":"2025-01-01T00:00:00.000Z","end":"2025-01-01T00:00:00.000Z"}
	]`, store.values[shopID+"/"+domain.KeyDates])
}

func TestAdd_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
	}{
		{"missing start", "", "2024-12-26"},
		{"start after end", "2024-12-26", "2024-12-24"},
		{"garbage", "tomorrow", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store, _ := setup()

			_, _, err := svc.Add(context.Background(), rangeReq(tt.start, tt.end))
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Zero(t, store.setCalls)
		})
	}
}

func TestAdd_LongRangeAccepted(t *testing.T) {
	svc, store, _ := setup()

	_, r, err := svc.Add(context.Background(), rangeReq("2024-01-01", "2025-06-30"))
	require.NoError(t, err)
	assert.Equal(t, 547, r.DayCount())
	assert.Equal(t, 1, store.setCalls)
}

func TestAdd_PersistFailureLeavesSessionUnchanged(t *testing.T) {
	svc, store, _ := setup()
	ctx := context.Background()

	_, _, err := svc.Add(ctx, rangeReq("2024-12-24", "2024-12-26"))
	require.NoError(t, err)

	store.setErr = errors.New("connection reset")
	_, _, err = svc.Add(ctx, rangeReq("2025-01-01", ""))
	assert.ErrorIs(t, err, ErrInternal)

	snap, err := svc.List(ctx, shopID)
	require.NoError(t, err)
	assert.Len(t, snap.Ranges, 1)
}

func TestEdit(t *testing.T) {
	svc, store, _ := setup()
	ctx := context.Background()

	_, _, err := svc.Add(ctx, rangeReq("2024-12-24", "2024-12-26"))
	require.NoError(t, err)
	_, _, err = svc.Add(ctx, rangeReq("2025-01-01", ""))
	require.NoError(t, err)

	_, err = svc.Edit(ctx, 0, rangeReq("2024-12-20", "2024-12-21"))
	require.NoError(t, err)

	snap, err := svc.List(ctx, shopID)
	require.NoError(t, err)
	require.Len(t, snap.Ranges, 2)
	assert.Equal(t, "2024-12-20", snap.Ranges[0].Start.String())
	assert.Equal(t, "2025-01-01", snap.Ranges[1].Start.String())
	assert.Equal(t, 3, store.setCalls)

	_, err = svc.Edit(ctx, 5, rangeReq("2024-12-20", ""))
	assert.ErrorIs(t, err, ErrRangeNotFound)
}

func TestRemove_TwoPhase(t *testing.T) {
	svc, store, _ := setup()
	ctx := context.Background()

	_, _, err := svc.Add(ctx, rangeReq("2024-12-24", "2024-12-26"))
	require.NoError(t, err)
	_, _, err = svc.Add(ctx, rangeReq("2025-01-01", ""))
	require.NoError(t, err)
	writes := store.setCalls

	candidate, err := svc.RequestRemove(ctx, shopID, 0)
	require.NoError(t, err)
	assert.Equal(t, "2024-12-24", candidate.Start.String())
	assert.Equal(t, writes, store.setCalls)

	snap, err := svc.List(ctx, shopID)
	require.NoError(t, err)
	assert.Len(t, snap.Ranges, 2)
	assert.Equal(t, ptr.Ptr(0), snap.PendingRemoval)

	index, removed, err := svc.ConfirmRemove(ctx, shopID)
	require.NoError(t, err)
	assert.Equal(t, 0, index)
	assert.Equal(t, candidate, removed)
	assert.Equal(t, writes+1, store.setCalls)

	snap, err = svc.List(ctx, shopID)
	require.NoError(t, err)
	require.Len(t, snap.Ranges, 1)
	assert.Equal(t, "2025-01-01", snap.Ranges[0].Start.String())
	assert.Nil(t, snap.PendingRemoval)
}

func TestRemove_CancelDoesNotWrite(t *testing.T) {
	svc, store, _ := setup()
	ctx := context.Background()

	_, _, err := svc.Add(ctx, rangeReq("2024-12-24", ""))
	require.NoError(t, err)
	writes := store.setCalls

	_, err = svc.RequestRemove(ctx, shopID, 0)
	require.NoError(t, err)

	canceled, err := svc.CancelRemove(ctx, shopID)
	require.NoError(t, err)
	assert.True(t, canceled)
	assert.Equal(t, writes, store.setCalls)

	_, _, err = svc.ConfirmRemove(ctx, shopID)
	assert.ErrorIs(t, err, ErrNoPendingRemoval)

	canceled, err = svc.CancelRemove(ctx, shopID)
	require.NoError(t, err)
	assert.False(t, canceled)
}

func TestRemove_RequestOutOfRange(t *testing.T) {
	svc, _, _ := setup()

	_, err := svc.RequestRemove(context.Background(), shopID, 0)
	assert.ErrorIs(t, err, ErrRangeNotFound)
}

func TestRemove_PersistFailureKeepsCandidate(t *testing.T) {
	svc, store, _ := setup()
	ctx := context.Background()

	_, _, err := svc.Add(ctx, rangeReq("2024-12-24", ""))
	require.NoError(t, err)
	_, err = svc.RequestRemove(ctx, shopID, 0)
	require.NoError(t, err)

	store.setErr = errors.New("timeout")
	_, _, err = svc.ConfirmRemove(ctx, shopID)
	assert.ErrorIs(t, err, ErrInternal)

	snap, err := svc.List(ctx, shopID)
	require.NoError(t, err)
	assert.Len(t, snap.Ranges, 1)
	assert.Equal(t, ptr.Ptr(0), snap.PendingRemoval)
}

func TestList_ReloadsExternalWrites(t *testing.T) {
	svc, store, _ := setup()
	ctx := context.Background()
	key := shopID + "/" + domain.KeyDates
	store.values[key] = `[{"start":"2024-12-24T00:00:00.000Z","end":"2024-12-24T00:00:00.000Z"}]`

	snap, err := svc.List(ctx, shopID)
	require.NoError(t, err)
	assert.Len(t, snap.Ranges, 1)

	store.values[key] = `[
		{"start":"2024-12-24T00:00:00.000Z","end":"2024-12-24T00:00:00.000Z"},
		{"start":"2025-01-01T00:00:00.000Z","end":"2025-01-01T00:00:00.000Z"}
	]`
	snap, err = svc.List(ctx, shopID)
	require.NoError(t, err)
	assert.Len(t, snap.Ranges, 2)

	index, _, err := svc.Add(ctx, rangeReq("2025-02-01", ""))
	require.NoError(t, err)
	assert.Equal(t, 2, index)
	assert.JSONEq(t, `[
		{"start":"2024-12-24T00:00:00.000Z","end":"2024-12-24T00:00:00.000Z"},
		{"start":"2025-01-01T00:00:00.000Z","end":"2025-01-01T00:00:00.000Z"},
		{"start":"2025-02-01T00:00:00.000Z","end":"2025-02-01T00:00:00.000Z"}
	]`, store.values[key])
}

func TestRemove_CandidateDroppedWhenStoreChanged(t *testing.T) {
	svc, store, _ := setup()
	ctx := context.Background()
	key := shopID + "/" + domain.KeyDates

	_, _, err := svc.Add(ctx, rangeReq("2024-12-24", ""))
	require.NoError(t, err)
	_, _, err = svc.Add(ctx, rangeReq("2025-01-01", ""))
	require.NoError(t, err)
	_, err = svc.RequestRemove(ctx, shopID, 0)
	require.NoError(t, err)

	// another session removed the first range
	store.values[key] = `[{"start":"2025-01-01T00:00:00.000Z","end":"2025-01-01T00:00:00.000Z"}]`
	writes := store.setCalls

	snap, err := svc.List(ctx, shopID)
	require.NoError(t, err)
	assert.Nil(t, snap.PendingRemoval)

	_, _, err = svc.ConfirmRemove(ctx, shopID)
	assert.ErrorIs(t, err, ErrNoPendingRemoval)
	assert.Equal(t, writes, store.setCalls)
	assert.Contains(t, store.values[key], "2025-01-01")
}

func TestRemove_CandidateSurvivesUnrelatedWrite(t *testing.T) {
	svc, store, _ := setup()
	ctx := context.Background()
	key := shopID + "/" + domain.KeyDates

	_, _, err := svc.Add(ctx, rangeReq("2024-12-24", ""))
	require.NoError(t, err)
	_, err = svc.RequestRemove(ctx, shopID, 0)
	require.NoError(t, err)

	store.values[key] = `[
		{"start":"2024-12-24T00:00:00.000Z","end":"2024-12-24T00:00:00.000Z"},
		{"start":"2025-01-01T00:00:00.000Z","end":"2025-01-01T00:00:00.000Z"}
	]`

	_, removed, err := svc.ConfirmRemove(ctx, shopID)
	require.NoError(t, err)
	assert.Equal(t, "2024-12-24", removed.Start.String())
	assert.JSONEq(t, `[{"start":"2025-01-01T00:00:00.000Z","end":"2025-01-01T00:00:00.000Z"}]`, store.values[key])
}

func TestRemove_CandidateExpiresWhenIdle(t *testing.T) {
	svc, _, clock := setup()
	ctx := context.Background()

	_, _, err := svc.Add(ctx, rangeReq("2024-12-24", ""))
	require.NoError(t, err)
	_, err = svc.RequestRemove(ctx, shopID, 0)
	require.NoError(t, err)

	clock.now = clock.now.Add(10 * time.Minute)
	snap, err := svc.List(ctx, shopID)
	require.NoError(t, err)
	assert.Equal(t, ptr.Ptr(0), snap.PendingRemoval)

	clock.now = clock.now.Add(time.Hour)
	snap, err = svc.List(ctx, shopID)
	require.NoError(t, err)
	assert.Nil(t, snap.PendingRemoval)
	assert.Len(t, snap.Ranges, 1)
}

func TestSession_MalformedBlobLoadsEmpty(t *testing.T) {
	svc, store, _ := setup()
	store.values[shopID+"/"+domain.KeyDates] = `{"oops":true}`

	snap, err := svc.List(context.Background(), shopID)
	require.NoError(t, err)
	assert.Empty(t, snap.Ranges)
}

func TestSession_StoreFailure(t *testing.T) {
	svc, store, _ := setup()
	store.getErr = errors.New("connection refused")

	_, err := svc.List(context.Background(), shopID)
	assert.ErrorIs(t, err, ErrInternal)

	store.getErr = nil
	_, err = svc.List(context.Background(), shopID)
	assert.NoError(t, err)
}

func TestBlockedDays_ExcludeIndex(t *testing.T) {
	svc, _, _ := setup()
	ctx := context.Background()

	_, _, err := svc.Add(ctx, rangeReq("2024-12-24", "2024-12-25"))
	require.NoError(t, err)
	_, _, err = svc.Add(ctx, rangeReq("2025-01-01", ""))
	require.NoError(t, err)

	all, err := svc.BlockedDays(ctx, shopID, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-12-24", "2024-12-25", "2025-01-01"}, isoDays(all))

	editing, err := svc.BlockedDays(ctx, shopID, ptr.Ptr(0), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-01-01"}, isoDays(editing))

	december := &availability.Window{
		From: types.NewDate(2024, time.December, 25),
		To:   types.NewDate(2024, time.December, 31),
	}
	windowed, err := svc.BlockedDays(ctx, shopID, nil, december)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-12-25"}, isoDays(windowed))
}

func TestEmptyShopID(t *testing.T) {
	svc, _, _ := setup()

	_, err := svc.List(context.Background(), " ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func isoDays(days []types.Date) []string {
	out := make([]string, len(days))
	for i, d := range days {
		out[i] = d.String()
	}
	return out
}
