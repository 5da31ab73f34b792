package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/dinakar-24/sse-pay/internal/models"
	"github.com/dinakar-24/sse-pay/internal/repositories"
)

type CollegeService struct {
	CollegeRepo *repositories.CollegeInfoRepository
}

func (s *CollegeService) GetCollegeInfo(ctx context.Context) (models.CollegeInfo, error) {
	return s.CollegeRepo.GetCollegeInfo(ctx)
}

func (s *CollegeService) SaveCollegeInfo(ctx context.Context, c models.CollegeInfo) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return s.CollegeRepo.UpsertCollegeInfo(ctx, c)
}
