package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"luctreport/models"
	"luctreport/store"
)

type lecturerPostgreSQL struct {
	db *sql.DB
}

const lecturerSelect = `
	SELECT id, name, email, COALESCE(specialization, ''), COALESCE(status, ''),
	       COALESCE(courses_assigned, 0), COALESCE(total_students, 0), COALESCE(rating, 0),
	       COALESCE(workload, ''), COALESCE(availability, ''),
	       COALESCE(to_char(join_date, 'YYYY-MM-DD'), ''),
	       created_at, updated_at
	FROM lecturers`

func scanLecturer(row interface{ Scan(...any) error }) (*models.Lecturer, error) {
	var l models.Lecturer
	err := row.Scan(
		&l.ID, &l.Name, &l.Email, &l.Specialization, &l.Status,
		&l.CoursesAssigned, &l.TotalStudents, &l.Rating,
		&l.Workload, &l.Availability, &l.JoinDate,
		&l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *lecturerPostgreSQL) List(ctx context.Context) ([]models.Lecturer, error) {
	rows, err := r.db.QueryContext(ctx, lecturerSelect+` ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("query lecturers: %w", err)
	}
	defer rows.Close()

	lecturers := make([]models.Lecturer, 0)
	for rows.Next() {
		l, err := scanLecturer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lecturer: %w", err)
		}
		lecturers = append(lecturers, *l)
	}
	return lecturers, rows.Err()
}

func (r *lecturerPostgreSQL) GetByID(ctx context.Context, id int64) (*models.Lecturer, error) {
	l, err := scanLecturer(r.db.QueryRowContext(ctx, lecturerSelect+` WHERE id = $1`, id))
	if err != nil {
		return nil, translate(err, store.ErrLecturerNotFound)
	}
	return l, nil
}

// Create lets the column defaults fill status and workload. An empty availability
// or join date is stored as the default or NULL.
func (r *lecturerPostgreSQL) Create(ctx context.Context, lecturer *models.Lecturer) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO lecturers (name, email, specialization, availability, join_date)
		 VALUES ($1, $2, $3, COALESCE(NULLIF($4, ''), 'Full-time'), NULLIF($5, '')::date)
		 RETURNING id, status, workload, availability, created_at, updated_at`,
		lecturer.Name, lecturer.Email, lecturer.Specialization, lecturer.Availability, lecturer.JoinDate,
	).Scan(&lecturer.ID, &lecturer.Status, &lecturer.Workload, &lecturer.Availability, &lecturer.CreatedAt, &lecturer.UpdatedAt)
	return translate(err, store.ErrLecturerNotFound)
}

func (r *lecturerPostgreSQL) Update(ctx context.Context, lecturer *models.Lecturer) error {
	err := r.db.QueryRowContext(ctx,
		`UPDATE lecturers
		 SET name = $1, email = $2, specialization = $3, status = $4, workload = $5,
		     availability = $6, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $7
		 RETURNING updated_at`,
		lecturer.Name, lecturer.Email, lecturer.Specialization, lecturer.Status,
		lecturer.Workload, lecturer.Availability, lecturer.ID,
	).Scan(&lecturer.UpdatedAt)
	return translate(err, store.ErrLecturerNotFound)
}

// Delete refuses to orphan a course that still references the lecturer
func (r *lecturerPostgreSQL) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM lecturers WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return store.ErrLecturerAssigned
		}
		return translate(err, store.ErrLecturerNotFound)
	}
	return requireAffected(res, store.ErrLecturerNotFound)
}
