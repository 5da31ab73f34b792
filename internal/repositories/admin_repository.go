package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dinakar-24/sse-pay/internal/models"
)

type AdminRepository struct {
	DB *sql.DB
}

func (r *AdminRepository) CreateAdmin(ctx context.Context, a models.Admin, passwordHash string) error {
	query := `INSERT INTO admins (id, full_name, email, password_hash, role, dob) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.DB.ExecContext(ctx, query, a.ID, a.FullName, a.Email, passwordHash, a.Role, nullString(a.DOB))
	if isDuplicateEntryError(err) {
		return models.ErrDuplicateEmail
	}
	return err
}

func (r *AdminRepository) GetAdminByID(ctx context.Context, id string) (models.Admin, error) {
	query := `SELECT id, full_name, email, role, COALESCE(dob, ''), created_at FROM admins WHERE id = ?`
	var a models.Admin
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&a.ID, &a.FullName, &a.Email, &a.Role, &a.DOB, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Admin{}, models.ErrAdminNotFound
	}
	return a, err
}

func (r *AdminRepository) GetCredentials(ctx context.Context, email string) (string, string, error) {
	var id, hash string
	err := r.DB.QueryRowContext(ctx, `SELECT id, password_hash FROM admins WHERE email = ?`, email).Scan(&id, &hash)
	if errors.Is(err, sql.ErrNoRows) {
		return "", "", models.ErrAdminNotFound
	}
	return id, hash, err
}

func (r *AdminRepository) GetAdmins(ctx context.Context) ([]models.Admin, error) {
	query := `SELECT id, full_name, email, role, COALESCE(dob, ''), created_at FROM admins ORDER BY created_at`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var admins []models.Admin
	for rows.Next() {
		var a models.Admin
		if err := rows.Scan(&a.ID, &a.FullName, &a.Email, &a.Role, &a.DOB, &a.CreatedAt); err != nil {
			return nil, err
		}
		admins = append(admins, a)
	}
	return admins, rows.Err()
}
