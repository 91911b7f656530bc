package profile

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GachaTrip_Go/internal/clock"
	"github.com/osse101/GachaTrip_Go/internal/domain"
	"github.com/osse101/GachaTrip_Go/internal/event"
	"github.com/osse101/GachaTrip_Go/internal/storage"
)

type MockKV struct {
	mock.Mock
}

func (m *MockKV) Get(ctx context.Context, key string) (string, bool, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockKV) Set(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockKV) Close() error {
	args := m.Called()
	return args.Error(0)
}

var (
	taipei101 = domain.CollectionEntry{Title: "Taipei 101", County: "臺北市", Category: "Landmark"}
	jiufen    = domain.CollectionEntry{Title: "Jiufen Old Street", County: "新北市", Category: "Old Street"}
	lukang    = domain.CollectionEntry{Title: "Lukang Old Street", County: "彰化縣", Category: "Old Street"}
)

func newTestClock() *clock.SimulatedClock {
	return clock.NewSimulatedClock(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
}

func testOptions(clk clock.Clock) Options {
	return Options{
		ProfileID:    "alice",
		Clock:        clk,
		ItemBoxTTL:   10 * time.Minute,
		XPPerNewItem: 50,
		XPPerCheckIn: 10,
		Random:       func() float64 { return 0 },
	}
}

func openTestService(t *testing.T, kv storage.KV, clk clock.Clock) Service {
	t.Helper()
	svc, err := Open(context.Background(), kv, testOptions(clk))
	require.NoError(t, err)
	return svc
}

func TestOpen_RequiresProfileID(t *testing.T) {
	opts := testOptions(newTestClock())
	opts.ProfileID = "  "

	_, err := Open(context.Background(), storage.NewMemoryKV(), opts)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), ErrMsgProfileIDRequired)
}

func TestOpen_FreshProfile(t *testing.T) {
	svc := openTestService(t, storage.NewMemoryKV(), newTestClock())

	assert.Equal(t, "alice", svc.ID())
	assert.Equal(t, 1, svc.Level().Level)
	assert.Equal(t, int64(0), svc.Level().TotalXP)
	assert.Empty(t, svc.Items())
	assert.Empty(t, svc.BoxItems())
	assert.Equal(t, 0, svc.Streak())
}

func TestOpen_UnreadableSnapshotsStartFresh(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		value string
	}{
		{"not json", "{broken"},
		{"foreign version", `{"version":"99","data":{"total_xp":500}}`},
		{"wrong shape", `{"version":"1","data":"lots"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := storage.NewMemoryKV()
			require.NoError(t, kv.Set(ctx, "alice:level", tt.value))
			require.NoError(t, kv.Set(ctx, "alice:collection", tt.value))
			require.NoError(t, kv.Set(ctx, "alice:itembox", tt.value))

			svc := openTestService(t, kv, newTestClock())

			assert.Equal(t, int64(0), svc.Level().TotalXP)
			assert.Empty(t, svc.Items())
			assert.Empty(t, svc.BoxItems())
		})
	}
}

func TestOpen_BackendErrorIsReturned(t *testing.T) {
	kv := new(MockKV)
	kv.On("Get", mock.Anything, "alice:level").Return("", false, errors.New("disk on fire"))

	_, err := Open(context.Background(), kv, testOptions(newTestClock()))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
	kv.AssertExpectations(t)
}

func TestCollect_GrantsXPAndPersists(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	clk := newTestClock()
	svc := openTestService(t, kv, clk)

	res, grant, err := svc.Collect(ctx, taipei101)
	require.NoError(t, err)
	assert.True(t, res.Created)
	assert.Equal(t, int64(50), grant.XPGained)

	clk.Advance(time.Hour)
	res, grant, err = svc.Collect(ctx, taipei101)
	require.NoError(t, err)
	assert.False(t, res.Created)
	assert.Equal(t, 2, res.Item.CheckInCount)
	assert.Equal(t, int64(10), grant.XPGained)
	assert.Equal(t, int64(60), svc.Level().TotalXP)

	reopened := openTestService(t, kv, clk)
	items := reopened.Items()
	require.Len(t, items, 1)
	assert.Equal(t, res.Item.ID, items[0].ID)
	assert.Equal(t, 2, items[0].CheckInCount)
	assert.Equal(t, int64(60), reopened.Level().TotalXP)
}

func TestCollect_InvalidEntry(t *testing.T) {
	ctx := context.Background()
	svc := openTestService(t, storage.NewMemoryKV(), newTestClock())

	_, _, err := svc.Collect(ctx, domain.CollectionEntry{Title: "   ", County: "臺北市"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, svc.Items())
	assert.Equal(t, int64(0), svc.Level().TotalXP)
}

func TestCollectMany_ValidatesBeforeMutating(t *testing.T) {
	ctx := context.Background()
	svc := openTestService(t, storage.NewMemoryKV(), newTestClock())

	_, _, err := svc.CollectMany(ctx, []domain.CollectionEntry{taipei101, {Title: "Nowhere"}})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "#2")
	assert.Empty(t, svc.Items())
}

func TestCollectMany_LevelsUp(t *testing.T) {
	ctx := context.Background()
	svc := openTestService(t, storage.NewMemoryKV(), newTestClock())

	results, grant, err := svc.CollectMany(ctx, []domain.CollectionEntry{taipei101, jiufen, lukang})
	require.NoError(t, err)

	require.Len(t, results, 3)
	assert.Equal(t, int64(150), grant.XPGained)
	assert.True(t, grant.LeveledUp)
	assert.Equal(t, 2, grant.NewLevel)
}

func TestCollect_SaveFailureIsReturned(t *testing.T) {
	ctx := context.Background()
	kv := new(MockKV)
	kv.On("Get", mock.Anything, mock.Anything).Return("", false, nil)
	kv.On("Set", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("read-only"))

	svc := openTestService(t, kv, newTestClock())
	res, _, err := svc.Collect(ctx, taipei101)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
	assert.True(t, res.Created, "in-memory state still moves")
	assert.Len(t, svc.Items(), 1)
	kv.AssertCalled(t, "Set", mock.Anything, "alice:collection", mock.Anything)
	kv.AssertCalled(t, "Set", mock.Anything, "alice:level", mock.Anything)
}

func TestPull_CollectsDrawnDestinations(t *testing.T) {
	ctx := context.Background()
	svc := openTestService(t, storage.NewMemoryKV(), newTestClock())

	res, err := svc.Pull(ctx, 3)
	require.NoError(t, err)

	require.Len(t, res.Destinations, 3)
	require.Len(t, res.Results, 3)
	assert.True(t, res.Results[0].Created)
	assert.False(t, res.Results[1].Created)
	assert.False(t, res.Results[2].Created)
	assert.Equal(t, int64(70), res.Grant.XPGained)

	items := svc.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Taipei 101", items[0].Title)
	assert.Equal(t, 3, items[0].CheckInCount)
}

func TestMarks(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	clk := newTestClock()
	svc := openTestService(t, kv, clk)

	first, _, err := svc.Collect(ctx, taipei101)
	require.NoError(t, err)
	second, _, err := svc.Collect(ctx, jiufen)
	require.NoError(t, err)

	item, ok, err := svc.ToggleFavorite(ctx, first.Item.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, item.IsFavorite())

	item, ok, err = svc.ToggleBlacklist(ctx, first.Item.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, item.IsBlacklisted())
	assert.False(t, item.IsFavorite())

	_, _, err = svc.ToggleFavorite(ctx, second.Item.ID)
	require.NoError(t, err)

	assert.Len(t, svc.Favorites(), 1)
	assert.Len(t, svc.Blacklisted(), 1)

	reopened := openTestService(t, kv, clk)
	assert.Equal(t, svc.Favorites(), reopened.Favorites())
	assert.Equal(t, svc.Blacklisted(), reopened.Blacklisted())

	item, ok, err = reopened.Unmark(ctx, first.Item.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, domain.MarkNone, item.Mark)
	assert.Empty(t, reopened.Blacklisted())
}

func TestMarks_UnknownIDWritesNothing(t *testing.T) {
	ctx := context.Background()
	kv := new(MockKV)
	kv.On("Get", mock.Anything, mock.Anything).Return("", false, nil)

	svc := openTestService(t, kv, newTestClock())

	for _, toggle := range []func(context.Context, string) (domain.CollectionItem, bool, error){
		svc.ToggleFavorite, svc.ToggleBlacklist, svc.Unmark,
	} {
		_, ok, err := toggle(ctx, "missing")
		require.NoError(t, err)
		assert.False(t, ok)
	}

	kv.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
}

func TestGrantXP(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	clk := newTestClock()
	svc := openTestService(t, kv, clk)

	grant, err := svc.GrantXP(ctx, 115, "")
	require.NoError(t, err)
	assert.True(t, grant.LeveledUp)
	assert.Equal(t, 2, svc.Level().Level)

	grant, err = svc.GrantXP(ctx, -40, "")
	require.NoError(t, err)
	assert.Equal(t, int64(0), grant.XPGained)
	assert.Equal(t, int64(115), svc.Level().TotalXP)

	assert.Equal(t, int64(115), openTestService(t, kv, clk).Level().TotalXP)
}

func TestGrantXP_HugeGrantKeepsProgressAcrossReopen(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	clk := newTestClock()
	svc := openTestService(t, kv, clk)

	_, err := svc.GrantXP(ctx, 1000, "")
	require.NoError(t, err)
	_, err = svc.GrantXP(ctx, math.MaxInt64, "")
	require.NoError(t, err)

	reopened := openTestService(t, kv, clk).Level()
	assert.Equal(t, int64(math.MaxInt64), reopened.TotalXP)
	assert.Equal(t, 99, reopened.Level)
}

func TestClaimDailyLogin(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	clk := newTestClock()
	svc := openTestService(t, kv, clk)

	result, err := svc.ClaimDailyLogin(ctx)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 1, result.Streak)
	assert.Equal(t, int64(20), result.XPGained)

	result, err = svc.ClaimDailyLogin(ctx)
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, int64(20), svc.Level().TotalXP)

	clk.AdvanceDays(1)
	reopened := openTestService(t, kv, clk)
	assert.Equal(t, 1, reopened.Streak())

	result, err = reopened.ClaimDailyLogin(ctx)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 2, result.Streak)
}

func TestItemBox(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	clk := newTestClock()
	svc := openTestService(t, kv, clk)

	_, err := svc.AddBoxItem(ctx, "", "coupon")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	item, err := svc.AddBoxItem(ctx, "Night market coupon", "coupon")
	require.NoError(t, err)

	redeemed, ok, err := svc.RedeemBoxItem(ctx, item.ID)
	require.NoError(t, err)
	require.True(t, ok)
	require.NotNil(t, redeemed.ExpiresAt)

	_, ok, err = svc.RedeemBoxItem(ctx, item.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	reopened := openTestService(t, kv, clk)
	assert.Len(t, reopened.BoxItems(), 1)

	clk.Advance(11 * time.Minute)
	assert.Empty(t, reopened.BoxItems())

	n, err := reopened.SweepExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = reopened.SweepExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestEventsArePublished(t *testing.T) {
	ctx := context.Background()
	bus := event.NewMemoryBus()

	var seen []event.Type
	record := func(_ context.Context, evt event.Event) error {
		seen = append(seen, evt.Type)
		return nil
	}
	for _, typ := range []event.Type{event.ItemCollected, event.XPGranted, event.LevelUp, event.DailyLoginClaimed} {
		bus.Subscribe(typ, record)
	}

	opts := testOptions(newTestClock())
	opts.Bus = bus
	svc, err := Open(ctx, storage.NewMemoryKV(), opts)
	require.NoError(t, err)

	_, _, err = svc.CollectMany(ctx, []domain.CollectionEntry{taipei101, jiufen, lukang})
	require.NoError(t, err)

	assert.Equal(t, []event.Type{
		event.ItemCollected, event.ItemCollected, event.ItemCollected,
		event.XPGranted, event.LevelUp,
	}, seen)
}

func TestEventHandlerErrorDoesNotFailOperation(t *testing.T) {
	ctx := context.Background()
	bus := event.NewMemoryBus()
	bus.Subscribe(event.ItemCollected, func(context.Context, event.Event) error {
		return errors.New("handler failed")
	})

	opts := testOptions(newTestClock())
	opts.Bus = bus
	svc, err := Open(ctx, storage.NewMemoryKV(), opts)
	require.NoError(t, err)

	_, _, err = svc.Collect(ctx, taipei101)
	assert.NoError(t, err)
}

func TestAchievements(t *testing.T) {
	ctx := context.Background()
	svc := openTestService(t, storage.NewMemoryKV(), newTestClock())

	_, _, err := svc.CollectMany(ctx, []domain.CollectionEntry{taipei101, jiufen, lukang})
	require.NoError(t, err)

	earned := map[string]bool{}
	for _, a := range svc.Achievements() {
		earned[a.ID] = a.Earned
	}
	assert.True(t, earned["first_pull"])
	assert.True(t, earned["first_steps"])
	assert.False(t, earned["county_hopper"])
}

func TestGroupedAndSearch(t *testing.T) {
	ctx := context.Background()
	svc := openTestService(t, storage.NewMemoryKV(), newTestClock())

	_, _, err := svc.CollectMany(ctx, []domain.CollectionEntry{taipei101, jiufen, lukang})
	require.NoError(t, err)

	groups := svc.Grouped()
	require.Len(t, groups, 3)
	assert.Equal(t, 3, svc.Totals().Counties)

	found := svc.Search("jiufen", 5)
	require.NotEmpty(t, found)
	assert.Equal(t, "Jiufen Old Street", found[0].Title)
}
