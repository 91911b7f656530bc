package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"

	"github.com/osse101/GachaTrip_Go/internal/catalog"
	"github.com/osse101/GachaTrip_Go/internal/clock"
	"github.com/osse101/GachaTrip_Go/internal/config"
	"github.com/osse101/GachaTrip_Go/internal/event"
	"github.com/osse101/GachaTrip_Go/internal/eventlog"
	"github.com/osse101/GachaTrip_Go/internal/logger"
	"github.com/osse101/GachaTrip_Go/internal/metrics"
	"github.com/osse101/GachaTrip_Go/internal/profile"
	"github.com/osse101/GachaTrip_Go/internal/storage"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run executes one command and returns the process exit code
func run(args []string, out io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		return 1
	}

	closer := initLogger(cfg)
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logger.WithRequestID(ctx, logger.GenerateRequestID())

	u := &ui{out: out, color: isTerminal(out)}

	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		registry := NewRegistry()
		registerCommands(registry, &app{ui: u})
		registry.PrintHelp(out)
		return 0
	}

	sess, err := openSession(ctx, cfg)
	if err != nil {
		slog.Error("Failed to open profile", "profile_id", cfg.ProfileID, "error", err)
		u.Error("%v", err)
		return 1
	}
	defer func() {
		if err := sess.kv.Close(); err != nil {
			slog.Warn("Failed to close storage", "error", err)
		}
	}()

	registry := NewRegistry()
	registerCommands(registry, &app{
		svc:           sess.svc,
		history:       sess.history,
		retentionDays: cfg.HistoryRetentionDays,
		ui:            u,
	})

	cmd, ok := registry.Get(args[0])
	if !ok {
		u.Error("Unknown command: %s", args[0])
		registry.PrintHelp(out)
		return 2
	}

	if err := cmd.Run(ctx, args[1:]); err != nil {
		if !errors.Is(err, errUsage) {
			slog.Error("Command failed", "command", cmd.Name(), "error", err)
		}
		u.Error("%v", err)
		return 1
	}
	return 0
}

// session is everything one command invocation works with
type session struct {
	svc     profile.Service
	history eventlog.Service
	kv      storage.KV
}

// openSession wires catalog, storage, event bus, metrics and history into a profile service
func openSession(ctx context.Context, cfg *config.Config) (*session, error) {
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}

	kv, err := storage.Open(ctx, storage.Options{
		Backend: cfg.StorageBackend,
		Path:    cfg.StoragePath,
		DSN:     cfg.GetDBConnString(),
		Pool: storage.PoolOptions{
			MaxConns:    cfg.DBMaxConns,
			MaxConnIdle: cfg.DBMaxConnIdleTime,
			MaxConnLife: cfg.DBMaxConnLifetime,
		},
		CacheSize: cfg.CacheSize,
		CacheTTL:  cfg.CacheTTL,
	})
	if err != nil {
		return nil, err
	}

	clk := clock.NewRealClock()
	bus := event.NewMemoryBus()
	metrics.NewEventMetricsCollector().Register(bus)

	history := eventlog.NewService(
		eventlog.NewKVRepository(kv, eventlog.StorageKey(cfg.ProfileID), cfg.HistoryMaxEntries), clk)
	history.Subscribe(bus)

	svc, err := profile.Open(ctx, kv, profile.Options{
		ProfileID:    cfg.ProfileID,
		Catalog:      cat,
		Clock:        clk,
		ItemBoxTTL:   cfg.ItemBoxTTL,
		XPPerNewItem: cfg.XPPerNewItem,
		XPPerCheckIn: cfg.XPPerCheckIn,
		Bus:          bus,
	})
	if err != nil {
		_ = kv.Close()
		return nil, err
	}
	return &session{svc: svc, history: history, kv: kv}, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
