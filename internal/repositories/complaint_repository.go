package repositories

import (
	"context"
	"database/sql"

	"github.com/dinakar-24/sse-pay/internal/models"
)

type ComplaintRepository struct {
	DB *sql.DB
}

func (r *ComplaintRepository) CreateComplaint(ctx context.Context, c models.Complaint) error {
	query := `INSERT INTO complaints (id, student_id, subject, message, status) VALUES (?, ?, ?, ?, ?)`
	_, err := r.DB.ExecContext(ctx, query, c.ID, c.StudentID, nullString(c.Subject), nullString(c.Message), c.Status)
	return err
}

func (r *ComplaintRepository) GetComplaintsByStudent(ctx context.Context, studentID string) ([]models.Complaint, error) {
	query := `SELECT id, COALESCE(student_id, ''), COALESCE(subject, ''), COALESCE(message, ''), status, created_at
        FROM complaints WHERE student_id = ? ORDER BY created_at DESC`
	return r.queryComplaints(ctx, query, studentID)
}

func (r *ComplaintRepository) GetAllComplaints(ctx context.Context) ([]models.Complaint, error) {
	query := `SELECT id, COALESCE(student_id, ''), COALESCE(subject, ''), COALESCE(message, ''), status, created_at
        FROM complaints ORDER BY created_at DESC`
	return r.queryComplaints(ctx, query)
}

func (r *ComplaintRepository) UpdateStatus(ctx context.Context, id, status string) error {
	_, err := r.DB.ExecContext(ctx, `UPDATE complaints SET status = ? WHERE id = ?`, status, id)
	return err
}

func (r *ComplaintRepository) DeleteComplaintByID(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM complaints WHERE id = ?`, id)
	return err
}

func (r *ComplaintRepository) queryComplaints(ctx context.Context, query string, args ...any) ([]models.Complaint, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var complaints []models.Complaint
	for rows.Next() {
		var c models.Complaint
		if err := rows.Scan(&c.ID, &c.StudentID, &c.Subject, &c.Message, &c.Status, &c.CreatedAt); err != nil {
			return nil, err
		}
		complaints = append(complaints, c)
	}
	return complaints, rows.Err()
}
