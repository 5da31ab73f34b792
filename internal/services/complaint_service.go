package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/dinakar-24/sse-pay/internal/models"
	"github.com/dinakar-24/sse-pay/internal/repositories"
)

type ComplaintService struct {
	ComplaintRepo *repositories.ComplaintRepository
	DueRepo       *repositories.DueRepository
}

func (s *ComplaintService) CreateComplaint(ctx context.Context, c models.Complaint) (models.Complaint, error) {
	c.ID = uuid.NewString()
	c.Status = "open"
	if err := s.ComplaintRepo.CreateComplaint(ctx, c); err != nil {
		return models.Complaint{}, err
	}
	return c, nil
}

func (s *ComplaintService) GetComplaintsByStudent(ctx context.Context, studentID string) ([]models.Complaint, error) {
	return s.ComplaintRepo.GetComplaintsByStudent(ctx, studentID)
}

func (s *ComplaintService) GetAllComplaints(ctx context.Context) ([]models.Complaint, error) {
	return s.ComplaintRepo.GetAllComplaints(ctx)
}

// Resolve closes a complaint; a positive fine also creates a due against
// the student.
func (s *ComplaintService) Resolve(ctx context.Context, complaintID, studentID, description string, fine float64) error {
	if err := s.ComplaintRepo.UpdateStatus(ctx, complaintID, "resolved"); err != nil {
		return err
	}
	if fine > 0 && studentID != "" {
		due := models.Due{
			ID:          uuid.NewString(),
			StudentID:   studentID,
			Description: description,
			Amount:      fine,
		}
		return s.DueRepo.CreateDue(ctx, due)
	}
	return nil
}

func (s *ComplaintService) DeleteComplaintByID(ctx context.Context, id string) error {
	return s.ComplaintRepo.DeleteComplaintByID(ctx, id)
}
