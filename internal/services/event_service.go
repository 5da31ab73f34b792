package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/dinakar-24/sse-pay/internal/models"
	"github.com/dinakar-24/sse-pay/internal/repositories"
)

type EventService struct {
	EventRepo *repositories.EventRepository
	DueRepo   *repositories.DueRepository
}

func (s *EventService) CreateEvent(ctx context.Context, e models.Event) (models.Event, error) {
	e.ID = uuid.NewString()
	if err := s.EventRepo.CreateEvent(ctx, e); err != nil {
		return models.Event{}, err
	}
	return e, nil
}

func (s *EventService) GetEventByID(ctx context.Context, id string) (models.Event, error) {
	return s.EventRepo.GetEventByID(ctx, id)
}

func (s *EventService) GetEvents(ctx context.Context, eventType string) ([]models.Event, error) {
	return s.EventRepo.GetEvents(ctx, eventType)
}

func (s *EventService) UpdateEvent(ctx context.Context, e models.Event) error {
	return s.EventRepo.UpdateEvent(ctx, e)
}

func (s *EventService) DeleteEvent(ctx context.Context, id string) error {
	return s.EventRepo.DeleteEvent(ctx, id)
}

// AssignToRollSeries creates one due per matching student for the event's
// amount. Students who already carry a due for the event are skipped.
func (s *EventService) AssignToRollSeries(ctx context.Context, eventID, rollSeries string) (int, error) {
	event, err := s.EventRepo.GetEventByID(ctx, eventID)
	if err != nil {
		return 0, err
	}
	return s.DueRepo.CreateForRollSeries(ctx, event.ID, rollSeries, event.Title, event.Amount)
}
