package repositories

import (
	"context"
	"database/sql"
)

type DeviceTokenRepository struct {
	DB *sql.DB
}

func (r *DeviceTokenRepository) SaveToken(ctx context.Context, studentID, token string) error {
	query := `INSERT IGNORE INTO device_tokens (student_id, token) VALUES (?, ?)`
	_, err := r.DB.ExecContext(ctx, query, studentID, token)
	return err
}

func (r *DeviceTokenRepository) GetTokensByStudent(ctx context.Context, studentID string) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT token FROM device_tokens WHERE student_id = ?`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tokens []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		tokens = append(tokens, t)
	}
	return tokens, rows.Err()
}

func (r *DeviceTokenRepository) DeleteToken(ctx context.Context, studentID, token string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM device_tokens WHERE student_id = ? AND token = ?`, studentID, token)
	return err
}
