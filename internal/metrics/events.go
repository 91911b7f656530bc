package metrics

import (
	"context"

	"github.com/osse101/GachaTrip_Go/internal/event"
	"github.com/osse101/GachaTrip_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	eventTypes := []event.Type{
		event.ItemCollected,
		event.ItemMarked,
		event.XPGranted,
		event.LevelUp,
		event.DailyLoginClaimed,
		event.BoxItemRedeemed,
		event.BoxItemsSwept,
		event.GachaPullCompleted,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch p := evt.Payload.(type) {
	case event.ItemCollectedPayloadV1:
		if p.Created {
			ItemsCollected.WithLabelValues(p.County).Inc()
		} else {
			CheckIns.WithLabelValues(p.County).Inc()
		}

	case event.ItemMarkedPayloadV1:
		mark := p.Mark
		if mark == "" {
			mark = MarkCleared
		}
		ItemsMarked.WithLabelValues(mark).Inc()

	case event.XPGrantedPayloadV1:
		XPGranted.WithLabelValues(p.Source).Add(float64(p.Amount))

	case event.LevelUpPayloadV1:
		LevelUps.Inc()

	case event.DailyLoginPayloadV1:
		DailyClaims.WithLabelValues(claimOutcome(p)).Inc()

	case event.BoxPayloadV1:
		if evt.Type == event.BoxItemsSwept {
			BoxItemsSwept.Add(float64(p.Count))
		} else {
			BoxItemsRedeemed.Inc()
		}

	case event.GachaPullPayloadV1:
		for rarity, n := range p.Rarities {
			GachaPulls.WithLabelValues(rarity).Add(float64(n))
		}

	default:
		log.Debug(LogMsgUnexpectedPayload, "type", evt.Type)
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

func claimOutcome(p event.DailyLoginPayloadV1) string {
	switch {
	case !p.Success:
		return OutcomeAlreadyClaimed
	case p.MilestoneReached:
		return OutcomeMilestone
	default:
		return OutcomeClaimed
	}
}
