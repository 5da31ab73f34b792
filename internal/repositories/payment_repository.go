package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dinakar-24/sse-pay/internal/models"
)

type PaymentRepository struct {
	DB *sql.DB
}

func (r *PaymentRepository) CreatePayment(ctx context.Context, p models.Payment) error {
	query := `
        INSERT INTO payments (id, student_id, assignment_id, event_id, amount, currency, razorpay_order_id, status)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.DB.ExecContext(ctx, query,
		p.ID, p.StudentID, p.AssignmentID, nullString(p.EventID),
		p.Amount, p.Currency, p.RazorpayOrderID, p.Status)
	return err
}

func (r *PaymentRepository) GetPaymentByID(ctx context.Context, id string) (models.Payment, error) {
	query := `
        SELECT id, student_id, assignment_id, COALESCE(event_id, ''), amount, currency,
               razorpay_order_id, COALESCE(razorpay_payment_id, ''), status, created_at
        FROM payments WHERE id = ?`
	var p models.Payment
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.StudentID, &p.AssignmentID, &p.EventID, &p.Amount, &p.Currency,
		&p.RazorpayOrderID, &p.RazorpayPaymentID, &p.Status, &p.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Payment{}, models.ErrPaymentNotFound
	}
	return p, err
}

// MarkSettled records a verified payment: the payment row receives the
// gateway payment id and the completed status, and the due flips to paid.
// Both updates run in one transaction so a completed payment can never be
// committed alongside an unpaid due.
func (r *PaymentRepository) MarkSettled(ctx context.Context, paymentID, razorpayPaymentID, dueID string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`UPDATE payments SET razorpay_payment_id = ?, status = ? WHERE id = ?`,
		razorpayPaymentID, models.PaymentStatusCompleted, paymentID)
	if err != nil {
		return fmt.Errorf("update payment: %w", err)
	}

	_, err = tx.ExecContext(ctx, `UPDATE student_assignments SET paid = 1 WHERE id = ?`, dueID)
	if err != nil {
		return fmt.Errorf("update due: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit settlement: %v", models.ErrPersistenceInconsistency, err)
	}
	return nil
}

func (r *PaymentRepository) GetPaymentsByStudent(ctx context.Context, studentID string) ([]models.Payment, error) {
	query := `
        SELECT id, student_id, assignment_id, COALESCE(event_id, ''), amount, currency,
               razorpay_order_id, COALESCE(razorpay_payment_id, ''), status, created_at
        FROM payments WHERE student_id = ? ORDER BY created_at DESC`
	return r.queryPayments(ctx, query, studentID)
}

func (r *PaymentRepository) GetPaymentsByEvent(ctx context.Context, eventID string) ([]models.Payment, error) {
	query := `
        SELECT id, student_id, assignment_id, COALESCE(event_id, ''), amount, currency,
               razorpay_order_id, COALESCE(razorpay_payment_id, ''), status, created_at
        FROM payments WHERE event_id = ? ORDER BY created_at DESC`
	return r.queryPayments(ctx, query, eventID)
}

// MarkExpiredPendingFailed fails pending payments older than the cutoff.
// The checkout widget session is long dead by then; the student initiates a
// fresh order instead.
func (r *PaymentRepository) MarkExpiredPendingFailed(ctx context.Context, cutoff time.Time) (int, error) {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE payments SET status = ? WHERE status = ? AND created_at < ?`,
		models.PaymentStatusFailed, models.PaymentStatusPending, cutoff)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}

func (r *PaymentRepository) queryPayments(ctx context.Context, query string, args ...any) ([]models.Payment, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []models.Payment
	for rows.Next() {
		var p models.Payment
		if err := rows.Scan(&p.ID, &p.StudentID, &p.AssignmentID, &p.EventID, &p.Amount, &p.Currency,
			&p.RazorpayOrderID, &p.RazorpayPaymentID, &p.Status, &p.CreatedAt); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}
