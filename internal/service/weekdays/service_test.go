package weekdays

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeliveryDates/internal/domain"
	metafieldsRepo "github.com/m04kA/SMC-DeliveryDates/internal/infra/storage/metafields"
	"github.com/m04kA/SMC-DeliveryDates/pkg/logger"
)

type fakeStore struct {
	values   map[string]string
	getErr   error
	setErr   error
	setCalls int
}

func newFakeStore() *fakeStore {
	return &fakeStore{values: make(map[string]string)}
}

func (f *fakeStore) Get(_ context.Context, shopID, key string) (string, error) {
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

type fakeObserver struct {
	writes []error
}

func (f *fakeObserver) ObserveConfigWrite(_ string, err error) {
	f.writes = append(f.writes, err)
}

func setup() (*Service, *fakeStore, *fakeObserver) {
	store := newFakeStore()
	observer := &fakeObserver{}
	return NewService(store, observer, logger.NewNop()), store, observer
}

func TestGet_MissingKeyIsEmpty(t *testing.T) {
	svc, _, _ := setup()

	set, err := svc.Get(context.Background(), "shop-1")
	require.NoError(t, err)
	assert.Equal(t, 0, set.Len())
}

func TestGet_MalformedBlobIsEmpty(t *testing.T) {
	svc, store, _ := setup()
	store.values["shop-1/blockedDays"] = "{not json"

	set, err := svc.Get(context.Background(), "shop-1")
	require.NoError(t, err)
	assert.Equal(t, 0, set.Len())
}

func TestGet_StoreFailure(t *testing.T) {
	svc, store, _ := setup()
	store.getErr = errors.New("connection refused")

	_, err := svc.Get(context.Background(), "shop-1")
	assert.ErrorIs(t, err, ErrInternal)
}

func TestToggle_WritesWholeSetThrough(t *testing.T) {
	svc, store, observer := setup()
	ctx := context.Background()

	_, err := svc.Toggle(ctx, "shop-1", "Sunday")
	require.NoError(t, err)
	set, err := svc.Toggle(ctx, "shop-1", "monday")
	require.NoError(t, err)

	assert.Equal(t, []domain.Weekday{domain.Monday, domain.Sunday}, set.Days())
	assert.JSONEq(t, `["Monday","Sunday"]`, store.values["shop-1/blockedDays"])
	assert.Equal(t, []error{nil, nil}, observer.writes)
}

func TestToggle_TwiceRestoresOriginal(t *testing.T) {
	svc, store, _ := setup()
	store.values["shop-1/blockedDays"] = `["Saturday"]`
	ctx := context.Background()

	_, err := svc.Toggle(ctx, "shop-1", "Sunday")
	require.NoError(t, err)
	set, err := svc.Toggle(ctx, "shop-1", "Sunday")
	require.NoError(t, err)

	assert.Equal(t, []domain.Weekday{domain.Saturday}, set.Days())
	assert.JSONEq(t, `["Saturday"]`, store.values["shop-1/blockedDays"])
}

func TestToggle_UnknownDay(t *testing.T) {
	svc, store, _ := setup()

	_, err := svc.Toggle(context.Background(), "shop-1", "Funday")
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Zero(t, store.setCalls)
}

func TestToggle_PersistFailure(t *testing.T) {
	svc, store, observer := setup()
	store.setErr = errors.New("disk full")

	_, err := svc.Toggle(context.Background(), "shop-1", "Friday")
	assert.ErrorIs(t, err, ErrInternal)
	require.Len(t, observer.writes, 1)
	assert.Error(t, observer.writes[0])
}
