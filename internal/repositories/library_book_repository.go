package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dinakar-24/sse-pay/internal/models"
)

type LibraryBookRepository struct {
	DB *sql.DB
}

func (r *LibraryBookRepository) CreateBook(ctx context.Context, b models.LibraryBook) error {
	query := `INSERT INTO library_books (id, title, isbn, assigned_to, due_date, fine_amount) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.DB.ExecContext(ctx, query, b.ID, b.Title, nullString(b.ISBN), nullString(b.AssignedTo), nullString(b.DueDate), b.FineAmount)
	return err
}

func (r *LibraryBookRepository) GetBookByID(ctx context.Context, id string) (models.LibraryBook, error) {
	query := `SELECT id, COALESCE(title, ''), COALESCE(isbn, ''), COALESCE(assigned_to, ''), COALESCE(due_date, ''), COALESCE(fine_amount, 0), created_at
        FROM library_books WHERE id = ?`
	var b models.LibraryBook
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&b.ID, &b.Title, &b.ISBN, &b.AssignedTo, &b.DueDate, &b.FineAmount, &b.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.LibraryBook{}, models.ErrNoRecord
	}
	return b, err
}

func (r *LibraryBookRepository) GetBooks(ctx context.Context, studentID string) ([]models.LibraryBook, error) {
	query := `SELECT id, COALESCE(title, ''), COALESCE(isbn, ''), COALESCE(assigned_to, ''), COALESCE(due_date, ''), COALESCE(fine_amount, 0), created_at
        FROM library_books`
	args := []any{}
	if studentID != "" {
		query += ` WHERE assigned_to = ?`
		args = append(args, studentID)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []models.LibraryBook
	for rows.Next() {
		var b models.LibraryBook
		if err := rows.Scan(&b.ID, &b.Title, &b.ISBN, &b.AssignedTo, &b.DueDate, &b.FineAmount, &b.CreatedAt); err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

func (r *LibraryBookRepository) UpdateBook(ctx context.Context, b models.LibraryBook) error {
	query := `UPDATE library_books SET title = ?, isbn = ?, assigned_to = ?, due_date = ?, fine_amount = ? WHERE id = ?`
	_, err := r.DB.ExecContext(ctx, query, b.Title, nullString(b.ISBN), nullString(b.AssignedTo), nullString(b.DueDate), b.FineAmount, b.ID)
	return err
}

func (r *LibraryBookRepository) DeleteBook(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM library_books WHERE id = ?`, id)
	return err
}
