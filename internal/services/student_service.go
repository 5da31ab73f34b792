package services

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dinakar-24/sse-pay/internal/models"
	"github.com/dinakar-24/sse-pay/internal/repositories"
)

type StudentService struct {
	StudentRepo *repositories.StudentRepository
}

func (s *StudentService) CreateStudent(ctx context.Context, st models.Student) (models.Student, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(st.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.Student{}, err
	}
	st.ID = uuid.NewString()
	st.Password = ""
	if err := s.StudentRepo.CreateStudent(ctx, st, string(hash)); err != nil {
		return models.Student{}, err
	}
	return st, nil
}

func (s *StudentService) GetStudentByID(ctx context.Context, id string) (models.Student, error) {
	return s.StudentRepo.GetStudentByID(ctx, id)
}

func (s *StudentService) GetStudentByRollNo(ctx context.Context, rollNo string) (models.Student, error) {
	return s.StudentRepo.GetStudentByRollNo(ctx, rollNo)
}

func (s *StudentService) GetStudents(ctx context.Context, rollSeries string) ([]models.Student, error) {
	return s.StudentRepo.GetStudents(ctx, rollSeries)
}

func (s *StudentService) UpdateStudent(ctx context.Context, st models.Student) error {
	return s.StudentRepo.UpdateStudent(ctx, st)
}

func (s *StudentService) DeleteStudent(ctx context.Context, id string) error {
	return s.StudentRepo.DeleteStudent(ctx, id)
}
