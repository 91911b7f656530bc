package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GachaTrip_Go/internal/clock"
	"github.com/osse101/GachaTrip_Go/internal/event"
	"github.com/osse101/GachaTrip_Go/internal/eventlog"
	"github.com/osse101/GachaTrip_Go/internal/profile"
	"github.com/osse101/GachaTrip_Go/internal/storage"
)

func newTestApp(t *testing.T) (*Registry, *bytes.Buffer, profile.Service) {
	t.Helper()
	kv := storage.NewMemoryKV()
	clk := clock.NewSimulatedClock(time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC))
	bus := event.NewMemoryBus()

	history := eventlog.NewService(eventlog.NewKVRepository(kv, eventlog.StorageKey("cli"), 0), clk)
	history.Subscribe(bus)

	svc, err := profile.Open(context.Background(), kv, profile.Options{
		ProfileID:    "cli",
		Clock:        clk,
		XPPerNewItem: 50,
		XPPerCheckIn: 10,
		Bus:          bus,
		Random:       func() float64 { return 0 },
	})
	require.NoError(t, err)

	out := &bytes.Buffer{}
	registry := NewRegistry()
	registerCommands(registry, &app{svc: svc, history: history, retentionDays: 30, ui: &ui{out: out}})
	return registry, out, svc
}

func runCommand(t *testing.T, r *Registry, args ...string) error {
	t.Helper()
	cmd, ok := r.Get(args[0])
	require.True(t, ok, "command %s not registered", args[0])
	return cmd.Run(context.Background(), args[1:])
}

func TestRegistry_ListIsSorted(t *testing.T) {
	registry, _, _ := newTestApp(t)

	var names []string
	for _, cmd := range registry.List() {
		names = append(names, cmd.Name())
	}

	assert.IsIncreasing(t, names)
	assert.Contains(t, names, "collect")
	assert.Contains(t, names, "claim")
}

func TestRegistry_PrintHelp(t *testing.T) {
	registry := NewRegistry()
	registerCommands(registry, &app{ui: &ui{out: &bytes.Buffer{}}})

	var help bytes.Buffer
	registry.PrintHelp(&help)

	assert.Contains(t, help.String(), "Usage: gachatrip <command>")
	assert.Contains(t, help.String(), "collect <title> <county>")
}

func TestCollectCommand(t *testing.T) {
	registry, out, svc := newTestApp(t)

	require.NoError(t, runCommand(t, registry, "collect", "Taipei 101", "臺北市", "Landmark"))
	assert.Contains(t, out.String(), "New: Taipei 101")
	assert.Contains(t, out.String(), "+50 XP")

	out.Reset()
	require.NoError(t, runCommand(t, registry, "collect", "Taipei 101", "臺北市"))
	assert.Contains(t, out.String(), "Check-in #2")
	assert.Len(t, svc.Items(), 1)
}

func TestCommands_UsageErrors(t *testing.T) {
	registry, _, _ := newTestApp(t)

	tests := [][]string{
		{"collect", "Taipei 101"},
		{"pull", "many"},
		{"fav"},
		{"search"},
		{"grant", "lots"},
		{"box", "remove", "x"},
		{"redeem"},
		{"history", "prune", "-3"},
	}

	for _, args := range tests {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			err := runCommand(t, registry, args...)
			require.Error(t, err)
			assert.ErrorIs(t, err, errUsage)
		})
	}
}

func TestMarkCommands(t *testing.T) {
	registry, out, svc := newTestApp(t)
	require.NoError(t, runCommand(t, registry, "collect", "Jiufen Old Street", "新北市", "Old Street"))
	id := svc.Items()[0].ID

	require.NoError(t, runCommand(t, registry, "fav", id))
	assert.Contains(t, out.String(), "is now favorite")
	assert.Len(t, svc.Favorites(), 1)

	require.NoError(t, runCommand(t, registry, "block", id))
	assert.Empty(t, svc.Favorites())
	assert.Len(t, svc.Blacklisted(), 1)

	require.NoError(t, runCommand(t, registry, "unmark", id))
	assert.Empty(t, svc.Blacklisted())

	out.Reset()
	require.NoError(t, runCommand(t, registry, "fav", "missing"))
	assert.Contains(t, out.String(), "No item with id missing")
}

func TestPullAndGroups(t *testing.T) {
	registry, out, _ := newTestApp(t)

	require.NoError(t, runCommand(t, registry, "pull", "2"))
	assert.Contains(t, out.String(), "[COMMON] Taipei 101")

	out.Reset()
	require.NoError(t, runCommand(t, registry, "groups"))
	assert.Contains(t, out.String(), "臺北市 (1)")
	assert.Contains(t, out.String(), "x2")
}

func TestClaimCommand(t *testing.T) {
	registry, out, _ := newTestApp(t)

	require.NoError(t, runCommand(t, registry, "claim"))
	assert.Contains(t, out.String(), "+20 XP")

	out.Reset()
	require.NoError(t, runCommand(t, registry, "claim"))
	assert.Contains(t, out.String(), "streak 1")
}

func TestBoxCommands(t *testing.T) {
	registry, out, svc := newTestApp(t)

	require.NoError(t, runCommand(t, registry, "box"))
	assert.Contains(t, out.String(), "Item box is empty")

	require.NoError(t, runCommand(t, registry, "box", "add", "Ferry ticket", "ticket"))
	items := svc.BoxItems()
	require.Len(t, items, 1)

	out.Reset()
	require.NoError(t, runCommand(t, registry, "redeem", items[0].ID))
	assert.Contains(t, out.String(), "Redeemed Ferry ticket")

	out.Reset()
	require.NoError(t, runCommand(t, registry, "sweep"))
	assert.Contains(t, out.String(), "Removed 0 expired item(s)")
}

func TestStatusAndAchievements(t *testing.T) {
	registry, out, _ := newTestApp(t)
	require.NoError(t, runCommand(t, registry, "collect", "Taipei 101", "臺北市"))

	out.Reset()
	require.NoError(t, runCommand(t, registry, "status"))
	assert.Contains(t, out.String(), "Profile cli")
	assert.Contains(t, out.String(), "Level 1")
	assert.Contains(t, out.String(), "Items: 1")

	out.Reset()
	require.NoError(t, runCommand(t, registry, "achievements"))
	assert.Contains(t, out.String(), "[x] 📍 First Stamp")
	assert.Contains(t, out.String(), "1/15 earned")
}

func TestOddsCommand(t *testing.T) {
	registry, out, _ := newTestApp(t)

	require.NoError(t, runCommand(t, registry, "odds"))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.NotEmpty(t, lines)
	assert.True(t, strings.HasPrefix(lines[0], "COMMON"))
}

func TestHistoryCommand(t *testing.T) {
	registry, out, _ := newTestApp(t)

	require.NoError(t, runCommand(t, registry, "history"))
	assert.Contains(t, out.String(), "No activity yet")

	require.NoError(t, runCommand(t, registry, "collect", "Taipei 101", "臺北市"))
	require.NoError(t, runCommand(t, registry, "claim"))

	out.Reset()
	require.NoError(t, runCommand(t, registry, "history", "5"))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], string(event.DailyLoginClaimed))
	assert.Contains(t, lines[1], "Taipei 101")

	out.Reset()
	require.NoError(t, runCommand(t, registry, "history", "prune"))
	assert.Contains(t, out.String(), "Removed 0 history entries older than 30 day(s)")
}
