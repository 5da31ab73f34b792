package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/dinakar-24/sse-pay/internal/models"
)

type SessionRepository struct {
	DB *sql.DB
}

func (r *SessionRepository) CreateSession(ctx context.Context, s models.Session) error {
	query := `
        INSERT INTO user_sessions (id, user_id, user_type, refresh_token, device_info, ip_address, user_agent, expires_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.DB.ExecContext(ctx, query,
		s.ID, s.UserID, s.UserType, s.RefreshToken,
		nullString(s.DeviceInfo), nullString(s.IPAddress), nullString(s.UserAgent), s.ExpiresAt)
	return err
}

func (r *SessionRepository) GetSessionByToken(ctx context.Context, refreshToken string) (models.Session, error) {
	query := `
        SELECT id, user_id, user_type, refresh_token, COALESCE(device_info, ''), COALESCE(ip_address, ''),
               COALESCE(user_agent, ''), last_activity, expires_at, created_at
        FROM user_sessions WHERE refresh_token = ?`
	var s models.Session
	err := r.DB.QueryRowContext(ctx, query, refreshToken).Scan(
		&s.ID, &s.UserID, &s.UserType, &s.RefreshToken, &s.DeviceInfo, &s.IPAddress,
		&s.UserAgent, &s.LastActivity, &s.ExpiresAt, &s.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, models.ErrNoRecord
	}
	return s, err
}

func (r *SessionRepository) GetSessionsByUser(ctx context.Context, userID, userType string) ([]models.Session, error) {
	query := `
        SELECT id, user_id, user_type, refresh_token, COALESCE(device_info, ''), COALESCE(ip_address, ''),
               COALESCE(user_agent, ''), last_activity, expires_at, created_at
        FROM user_sessions WHERE user_id = ? AND user_type = ? ORDER BY last_activity DESC`
	rows, err := r.DB.QueryContext(ctx, query, userID, userType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []models.Session
	for rows.Next() {
		var s models.Session
		if err := rows.Scan(&s.ID, &s.UserID, &s.UserType, &s.RefreshToken, &s.DeviceInfo, &s.IPAddress,
			&s.UserAgent, &s.LastActivity, &s.ExpiresAt, &s.CreatedAt); err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

func (r *SessionRepository) TouchSession(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `UPDATE user_sessions SET last_activity = CURRENT_TIMESTAMP WHERE id = ?`, id)
	return err
}

func (r *SessionRepository) DeleteSession(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM user_sessions WHERE id = ?`, id)
	return err
}

func (r *SessionRepository) DeleteSessionByToken(ctx context.Context, refreshToken string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM user_sessions WHERE refresh_token = ?`, refreshToken)
	return err
}

// DeleteExpired removes sessions past their expiry; run by the sweeper.
func (r *SessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM user_sessions WHERE expires_at < ?`, now)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}
