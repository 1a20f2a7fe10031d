package events

import (
	"context"

	"github.com/Spark-Corporations/Red-Shadow-sub000/ent"
)

// eventQuerier is the slice of services.EventService the adapter needs.
type eventQuerier interface {
	GetEventsAfter(ctx context.Context, channel string, afterID, limit int) ([]*ent.Event, error)
}

// EventServiceAdapter wraps services.EventService to implement CatchupQuerier.
type EventServiceAdapter struct {
	eventService eventQuerier
}

// NewEventServiceAdapter creates a CatchupQuerier from an EventService.
func NewEventServiceAdapter(es eventQuerier) *EventServiceAdapter {
	return &EventServiceAdapter{eventService: es}
}

// GetCatchupEvents queries events after afterID up to limit for the catchup
// mechanism.
func (a *EventServiceAdapter) GetCatchupEvents(ctx context.Context, channel string, afterID, limit int) ([]CatchupEvent, error) {
	rows, err := a.eventService.GetEventsAfter(ctx, channel, afterID, limit)
	if err != nil {
		return nil, err
	}

	result := make([]CatchupEvent, len(rows))
	for i, row := range rows {
		result[i] = CatchupEvent{
			ID:      row.ID,
			Payload: row.Payload,
		}
	}
	return result, nil
}
