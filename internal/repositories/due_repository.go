package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dinakar-24/sse-pay/internal/models"
)

type DueRepository struct {
	DB *sql.DB
}

func (r *DueRepository) CreateDue(ctx context.Context, d models.Due) error {
	query := `INSERT INTO student_assignments (id, student_id, event_id, description, amount) VALUES (?, ?, ?, ?, ?)`
	_, err := r.DB.ExecContext(ctx, query, d.ID, d.StudentID, nullString(d.EventID), nullString(d.Description), d.Amount)
	return err
}

// CreateForRollSeries assigns an event charge to every student whose roll
// number starts with the given series. Returns the number of dues created.
func (r *DueRepository) CreateForRollSeries(ctx context.Context, eventID, rollSeries, description string, amount float64) (int, error) {
	query := `
        INSERT INTO student_assignments (id, student_id, event_id, description, amount)
        SELECT UUID(), s.id, ?, ?, ?
        FROM students s
        WHERE s.roll_no LIKE CONCAT(?, '%')
          AND NOT EXISTS (
              SELECT 1 FROM student_assignments sa
              WHERE sa.student_id = s.id AND sa.event_id = ?
          )`
	res, err := r.DB.ExecContext(ctx, query, eventID, nullString(description), amount, rollSeries, eventID)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}

func (r *DueRepository) GetDueByID(ctx context.Context, id string) (models.Due, error) {
	query := `
        SELECT sa.id, sa.student_id, COALESCE(sa.event_id, ''), COALESCE(sa.description, ''),
               sa.amount, sa.paid, sa.assigned_at,
               COALESCE(e.title, ''), COALESCE(e.type, '')
        FROM student_assignments sa
        LEFT JOIN events e ON e.id = sa.event_id
        WHERE sa.id = ?`
	var d models.Due
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&d.ID, &d.StudentID, &d.EventID, &d.Description,
		&d.Amount, &d.Paid, &d.AssignedAt,
		&d.EventTitle, &d.EventType,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Due{}, models.ErrDueNotFound
	}
	return d, err
}

func (r *DueRepository) GetDuesByStudent(ctx context.Context, studentID string, paid *bool) ([]models.Due, error) {
	query := `
        SELECT sa.id, sa.student_id, COALESCE(sa.event_id, ''), COALESCE(sa.description, ''),
               sa.amount, sa.paid, sa.assigned_at,
               COALESCE(e.title, ''), COALESCE(e.type, '')
        FROM student_assignments sa
        LEFT JOIN events e ON e.id = sa.event_id
        WHERE sa.student_id = ?`
	args := []any{studentID}
	if paid != nil {
		query += ` AND sa.paid = ?`
		args = append(args, *paid)
	}
	query += ` ORDER BY sa.assigned_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dues []models.Due
	for rows.Next() {
		var d models.Due
		if err := rows.Scan(&d.ID, &d.StudentID, &d.EventID, &d.Description,
			&d.Amount, &d.Paid, &d.AssignedAt, &d.EventTitle, &d.EventType); err != nil {
			return nil, err
		}
		dues = append(dues, d)
	}
	return dues, rows.Err()
}

func (r *DueRepository) GetDuesByEvent(ctx context.Context, eventID string) ([]models.Due, error) {
	query := `
        SELECT id, student_id, COALESCE(event_id, ''), COALESCE(description, ''), amount, paid, assigned_at
        FROM student_assignments WHERE event_id = ? ORDER BY assigned_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dues []models.Due
	for rows.Next() {
		var d models.Due
		if err := rows.Scan(&d.ID, &d.StudentID, &d.EventID, &d.Description, &d.Amount, &d.Paid, &d.AssignedAt); err != nil {
			return nil, err
		}
		dues = append(dues, d)
	}
	return dues, rows.Err()
}

func (r *DueRepository) GetSummaryByStudent(ctx context.Context, studentID string) (models.DueSummary, error) {
	query := `
        SELECT
            COALESCE(SUM(CASE WHEN paid = 0 THEN 1 ELSE 0 END), 0),
            COALESCE(SUM(CASE WHEN paid = 1 THEN 1 ELSE 0 END), 0),
            COALESCE(SUM(CASE WHEN paid = 0 THEN amount ELSE 0 END), 0),
            COALESCE(SUM(CASE WHEN paid = 1 THEN amount ELSE 0 END), 0)
        FROM student_assignments WHERE student_id = ?`
	s := models.DueSummary{StudentID: studentID}
	err := r.DB.QueryRowContext(ctx, query, studentID).Scan(&s.PendingDues, &s.PaidDues, &s.TotalOwed, &s.TotalPaid)
	return s, err
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
