package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"

	"github.com/dinakar-24/sse-pay/internal/models"
)

type StudentRepository struct {
	DB *sql.DB
}

const studentColumns = `id, name, email, roll_no, COALESCE(roll_series, ''), COALESCE(department, ''),
        COALESCE(section, ''), COALESCE(dob, ''), COALESCE(student_phone, ''), COALESCE(parent_phone, ''), created_at`

func (r *StudentRepository) CreateStudent(ctx context.Context, s models.Student, passwordHash string) error {
	query := `
        INSERT INTO students (id, name, email, roll_no, roll_series, department, section, dob, student_phone, parent_phone, password_hash)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.DB.ExecContext(ctx, query,
		s.ID, s.Name, s.Email, s.RollNo, nullString(s.RollSeries), nullString(s.Department),
		nullString(s.Section), nullString(s.DOB), nullString(s.StudentPhone), nullString(s.ParentPhone), passwordHash)
	if isDuplicateEntryError(err) {
		return models.ErrDuplicateRollNo
	}
	return err
}

func (r *StudentRepository) GetStudentByID(ctx context.Context, id string) (models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = ?`
	return r.scanStudent(r.DB.QueryRowContext(ctx, query, id))
}

func (r *StudentRepository) GetStudentByRollNo(ctx context.Context, rollNo string) (models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE roll_no = ?`
	return r.scanStudent(r.DB.QueryRowContext(ctx, query, rollNo))
}

// GetCredentials returns the student id and password hash for sign-in by
// roll number or email.
func (r *StudentRepository) GetCredentials(ctx context.Context, rollNo, email string) (string, string, error) {
	query := `SELECT id, password_hash FROM students WHERE roll_no = ? OR email = ?`
	var id, hash string
	err := r.DB.QueryRowContext(ctx, query, rollNo, email).Scan(&id, &hash)
	if errors.Is(err, sql.ErrNoRows) {
		return "", "", models.ErrStudentNotFound
	}
	return id, hash, err
}

func (r *StudentRepository) GetStudents(ctx context.Context, rollSeries string) ([]models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students`
	args := []any{}
	if rollSeries != "" {
		query += ` WHERE roll_no LIKE CONCAT(?, '%')`
		args = append(args, rollSeries)
	}
	query += ` ORDER BY roll_no`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []models.Student
	for rows.Next() {
		var s models.Student
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.RollNo, &s.RollSeries, &s.Department,
			&s.Section, &s.DOB, &s.StudentPhone, &s.ParentPhone, &s.CreatedAt); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

func (r *StudentRepository) UpdateStudent(ctx context.Context, s models.Student) error {
	query := `
        UPDATE students SET name = ?, email = ?, roll_no = ?, roll_series = ?, department = ?,
            section = ?, dob = ?, student_phone = ?, parent_phone = ?
        WHERE id = ?`
	_, err := r.DB.ExecContext(ctx, query,
		s.Name, s.Email, s.RollNo, nullString(s.RollSeries), nullString(s.Department),
		nullString(s.Section), nullString(s.DOB), nullString(s.StudentPhone), nullString(s.ParentPhone), s.ID)
	return err
}

func (r *StudentRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	_, err := r.DB.ExecContext(ctx, `UPDATE students SET password_hash = ? WHERE id = ?`, passwordHash, id)
	return err
}

func (r *StudentRepository) DeleteStudent(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM students WHERE id = ?`, id)
	return err
}

func (r *StudentRepository) scanStudent(row *sql.Row) (models.Student, error) {
	var s models.Student
	err := row.Scan(&s.ID, &s.Name, &s.Email, &s.RollNo, &s.RollSeries, &s.Department,
		&s.Section, &s.DOB, &s.StudentPhone, &s.ParentPhone, &s.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Student{}, models.ErrStudentNotFound
	}
	return s, err
}

// isDuplicateEntryError checks for a MySQL/MariaDB unique constraint
// violation so it can be translated into a clear validation response
// instead of a generic 500.
func isDuplicateEntryError(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
