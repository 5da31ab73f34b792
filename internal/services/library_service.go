package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dinakar-24/sse-pay/internal/models"
	"github.com/dinakar-24/sse-pay/internal/repositories"
)

type LibraryService struct {
	BookRepo *repositories.LibraryBookRepository
	DueRepo  *repositories.DueRepository
}

func (s *LibraryService) CreateBook(ctx context.Context, b models.LibraryBook) (models.LibraryBook, error) {
	b.ID = uuid.NewString()
	if err := s.BookRepo.CreateBook(ctx, b); err != nil {
		return models.LibraryBook{}, err
	}
	return b, nil
}

func (s *LibraryService) GetBooks(ctx context.Context, studentID string) ([]models.LibraryBook, error) {
	return s.BookRepo.GetBooks(ctx, studentID)
}

func (s *LibraryService) UpdateBook(ctx context.Context, b models.LibraryBook) error {
	return s.BookRepo.UpdateBook(ctx, b)
}

func (s *LibraryService) DeleteBook(ctx context.Context, id string) error {
	return s.BookRepo.DeleteBook(ctx, id)
}

// ChargeOverdueFine raises a due for the book's fine amount against the
// student currently holding it.
func (s *LibraryService) ChargeOverdueFine(ctx context.Context, bookID string) (models.Due, error) {
	book, err := s.BookRepo.GetBookByID(ctx, bookID)
	if err != nil {
		return models.Due{}, err
	}
	if book.AssignedTo == "" {
		return models.Due{}, fmt.Errorf("library book %s is not assigned to a student", bookID)
	}
	if book.FineAmount <= 0 {
		return models.Due{}, fmt.Errorf("library book %s has no fine amount", bookID)
	}

	due := models.Due{
		ID:          uuid.NewString(),
		StudentID:   book.AssignedTo,
		Description: fmt.Sprintf("Library fine: %s", book.Title),
		Amount:      book.FineAmount,
	}
	if err := s.DueRepo.CreateDue(ctx, due); err != nil {
		return models.Due{}, err
	}
	return due, nil
}
