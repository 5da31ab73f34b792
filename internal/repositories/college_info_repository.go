package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dinakar-24/sse-pay/internal/models"
)

type CollegeInfoRepository struct {
	DB *sql.DB
}

func (r *CollegeInfoRepository) GetCollegeInfo(ctx context.Context) (models.CollegeInfo, error) {
	query := `SELECT id, name, address, city, state, pincode, COALESCE(latitude, 0), COALESCE(longitude, 0), created_at
        FROM college_info LIMIT 1`
	var c models.CollegeInfo
	err := r.DB.QueryRowContext(ctx, query).Scan(&c.ID, &c.Name, &c.Address, &c.City, &c.State, &c.Pincode, &c.Latitude, &c.Longitude, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.CollegeInfo{}, models.ErrNoRecord
	}
	return c, err
}

func (r *CollegeInfoRepository) UpsertCollegeInfo(ctx context.Context, c models.CollegeInfo) error {
	query := `
        INSERT INTO college_info (id, name, address, city, state, pincode, latitude, longitude)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)
        ON DUPLICATE KEY UPDATE name = VALUES(name), address = VALUES(address), city = VALUES(city),
            state = VALUES(state), pincode = VALUES(pincode), latitude = VALUES(latitude), longitude = VALUES(longitude)`
	_, err := r.DB.ExecContext(ctx, query, c.ID, c.Name, c.Address, c.City, c.State, c.Pincode, c.Latitude, c.Longitude)
	return err
}
