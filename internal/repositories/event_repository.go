package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dinakar-24/sse-pay/internal/models"
)

type EventRepository struct {
	DB *sql.DB
}

func (r *EventRepository) CreateEvent(ctx context.Context, e models.Event) error {
	query := `INSERT INTO events (id, title, type, description, amount, created_by) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.DB.ExecContext(ctx, query, e.ID, e.Title, e.Type, nullString(e.Description), e.Amount, nullString(e.CreatedBy))
	return err
}

func (r *EventRepository) GetEventByID(ctx context.Context, id string) (models.Event, error) {
	query := `SELECT id, title, type, COALESCE(description, ''), COALESCE(amount, 0), COALESCE(created_by, ''), created_at
        FROM events WHERE id = ?`
	var e models.Event
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&e.ID, &e.Title, &e.Type, &e.Description, &e.Amount, &e.CreatedBy, &e.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Event{}, models.ErrEventNotFound
	}
	return e, err
}

func (r *EventRepository) GetEvents(ctx context.Context, eventType string) ([]models.Event, error) {
	query := `SELECT id, title, type, COALESCE(description, ''), COALESCE(amount, 0), COALESCE(created_by, ''), created_at FROM events`
	args := []any{}
	if eventType != "" {
		query += ` WHERE type = ?`
		args = append(args, eventType)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(&e.ID, &e.Title, &e.Type, &e.Description, &e.Amount, &e.CreatedBy, &e.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *EventRepository) UpdateEvent(ctx context.Context, e models.Event) error {
	query := `UPDATE events SET title = ?, type = ?, description = ?, amount = ? WHERE id = ?`
	_, err := r.DB.ExecContext(ctx, query, e.Title, e.Type, nullString(e.Description), e.Amount, e.ID)
	return err
}

func (r *EventRepository) DeleteEvent(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	return err
}
