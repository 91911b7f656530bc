package eventlog

import (
	"context"
	"encoding/json"
	"time"

	"github.com/osse101/GachaTrip_Go/internal/clock"
	"github.com/osse101/GachaTrip_Go/internal/event"
	"github.com/osse101/GachaTrip_Go/internal/logger"
)

// loggedEventTypes are the events kept in the player's history
var loggedEventTypes = []event.Type{
	event.ItemCollected,
	event.ItemMarked,
	event.LevelUp,
	event.DailyLoginClaimed,
	event.BoxItemRedeemed,
	event.GachaPullCompleted,
}

// Service handles activity history business logic
type Service interface {
	// Subscribe registers the history logger on the bus
	Subscribe(bus event.Bus)

	// Recent returns up to limit events, newest first
	Recent(ctx context.Context, limit int) ([]Event, error)

	// CleanupOldEvents removes events older than retention period
	CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error)
}

type service struct {
	repo  Repository
	clock clock.Clock
}

// NewService creates a new history service
func NewService(repo Repository, clk clock.Clock) Service {
	if clk == nil {
		clk = clock.NewRealClock()
	}
	return &service{repo: repo, clock: clk}
}

// Subscribe registers event handlers for all logged event types
func (s *service) Subscribe(bus event.Bus) {
	for _, eventType := range loggedEventTypes {
		bus.Subscribe(eventType, s.handleEvent)
	}
}

// handleEvent records evt in the history
func (s *service) handleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(evt.Payload)
	if err != nil {
		log.Error(LogMsgFailedToLogEvent, LogFieldError, err, LogFieldType, evt.Type)
		return err
	}

	source, _ := evt.GetMetadataValue("source").(string)
	entry := Event{
		EventType: string(evt.Type),
		Source:    source,
		Payload:   payload,
		CreatedAt: s.clock.Now(),
	}

	if err := s.repo.LogEvent(ctx, entry); err != nil {
		log.Error(LogMsgFailedToLogEvent, LogFieldError, err, LogFieldType, evt.Type)
		return err
	}

	log.Debug(LogMsgEventLogged, LogFieldType, evt.Type)
	return nil
}

func (s *service) Recent(ctx context.Context, limit int) ([]Event, error) {
	return s.repo.GetEvents(ctx, EventFilter{Limit: limit})
}

// CleanupOldEvents removes events older than the retention period
func (s *service) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	cutoff := s.clock.Now().Add(-time.Duration(retentionDays) * 24 * time.Hour)
	return s.repo.CleanupOldEvents(ctx, cutoff)
}
