package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/dinakar-24/sse-pay/internal/models"
	"github.com/dinakar-24/sse-pay/internal/repositories"
)

type DueService struct {
	DueRepo *repositories.DueRepository
}

func (s *DueService) CreateDue(ctx context.Context, d models.Due) (models.Due, error) {
	d.ID = uuid.NewString()
	d.Paid = false
	if err := s.DueRepo.CreateDue(ctx, d); err != nil {
		return models.Due{}, err
	}
	return d, nil
}

func (s *DueService) GetDueByID(ctx context.Context, id string) (models.Due, error) {
	return s.DueRepo.GetDueByID(ctx, id)
}

func (s *DueService) GetDuesByStudent(ctx context.Context, studentID string, paid *bool) ([]models.Due, error) {
	return s.DueRepo.GetDuesByStudent(ctx, studentID, paid)
}

func (s *DueService) GetDuesByEvent(ctx context.Context, eventID string) ([]models.Due, error) {
	return s.DueRepo.GetDuesByEvent(ctx, eventID)
}

func (s *DueService) GetSummaryByStudent(ctx context.Context, studentID string) (models.DueSummary, error) {
	return s.DueRepo.GetSummaryByStudent(ctx, studentID)
}
