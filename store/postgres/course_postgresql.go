package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"luctreport/models"
	"luctreport/store"
)

type coursePostgreSQL struct {
	db *sql.DB
}

const courseSelect = `
	SELECT c.id, c.code, c.name, c.credits, c.level, c.semester,
	       COALESCE(c.status, ''), c.assigned_lecturer_id, l.name,
	       COALESCE(c.students_enrolled, 0), COALESCE(c.rating, 0), COALESCE(c.color, ''),
	       COALESCE(c.modules, '{}'), COALESCE(c.prerequisites, '{}'),
	       c.created_at, c.updated_at
	FROM courses c
	LEFT JOIN lecturers l ON c.assigned_lecturer_id = l.id`

func scanCourse(row interface{ Scan(...any) error }) (*models.Course, error) {
	var (
		c            models.Course
		lecturerID   sql.NullInt64
		lecturerName sql.NullString
		modules      pq.StringArray
		prereqs      pq.StringArray
	)
	err := row.Scan(
		&c.ID, &c.Code, &c.Name, &c.Credits, &c.Level, &c.Semester,
		&c.Status, &lecturerID, &lecturerName,
		&c.StudentsEnrolled, &c.Rating, &c.Color,
		&modules, &prereqs,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if lecturerID.Valid {
		c.AssignedLecturerID = &lecturerID.Int64
	}
	if lecturerName.Valid {
		c.AssignedLecturerName = &lecturerName.String
	}
	c.Modules = nonNil(modules)
	c.Prerequisites = nonNil(prereqs)
	return &c, nil
}

func nonNil(a []string) []string {
	if a == nil {
		return []string{}
	}
	return a
}

func (r *coursePostgreSQL) List(ctx context.Context) ([]models.Course, error) {
	rows, err := r.db.QueryContext(ctx, courseSelect+` ORDER BY c.created_at DESC, c.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("query courses: %w", err)
	}
	defer rows.Close()

	courses := make([]models.Course, 0)
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("scan course: %w", err)
		}
		courses = append(courses, *c)
	}
	return courses, rows.Err()
}

func (r *coursePostgreSQL) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	c, err := scanCourse(r.db.QueryRowContext(ctx, courseSelect+` WHERE c.id = $1`, id))
	if err != nil {
		return nil, translate(err, store.ErrCourseNotFound)
	}
	return c, nil
}

func (r *coursePostgreSQL) Create(ctx context.Context, course *models.Course) error {
	if course.Status == "" {
		course.Status = models.CourseStatusPlanning
	}
	course.Modules = nonNil(course.Modules)
	course.Prerequisites = nonNil(course.Prerequisites)

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO courses (code, name, credits, level, semester, status, color, modules, prerequisites)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id, created_at, updated_at`,
		course.Code, course.Name, course.Credits, course.Level, course.Semester, course.Status,
		course.Color, pq.Array(course.Modules), pq.Array(course.Prerequisites),
	).Scan(&course.ID, &course.CreatedAt, &course.UpdatedAt)
	return translate(err, store.ErrCourseNotFound)
}

// Update replaces the editable fields; assignment and counters are left untouched
func (r *coursePostgreSQL) Update(ctx context.Context, course *models.Course) error {
	err := r.db.QueryRowContext(ctx,
		`UPDATE courses
		 SET code = $1, name = $2, credits = $3, level = $4, semester = $5, status = $6,
		     modules = $7, prerequisites = $8, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $9
		 RETURNING updated_at`,
		course.Code, course.Name, course.Credits, course.Level, course.Semester, course.Status,
		pq.Array(nonNil(course.Modules)), pq.Array(nonNil(course.Prerequisites)), course.ID,
	).Scan(&course.UpdatedAt)
	return translate(err, store.ErrCourseNotFound)
}

func (r *coursePostgreSQL) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return translate(err, store.ErrCourseNotFound)
	}
	return requireAffected(res, store.ErrCourseNotFound)
}

// AssignLecturer locks both rows so concurrent assignments cannot lose a count increment
func (r *coursePostgreSQL) AssignLecturer(ctx context.Context, courseID, lecturerID int64) error {
	return withTransaction(ctx, r.db, func(tx *sql.Tx) error {
		var id int64
		if err := tx.QueryRowContext(ctx, `SELECT id FROM courses WHERE id = $1 FOR UPDATE`, courseID).Scan(&id); err != nil {
			return translate(err, store.ErrCourseNotFound)
		}
		if err := tx.QueryRowContext(ctx, `SELECT id FROM lecturers WHERE id = $1 FOR UPDATE`, lecturerID).Scan(&id); err != nil {
			return translate(err, store.ErrLecturerNotFound)
		}

		if _, err := tx.ExecContext(ctx,
			`UPDATE courses SET assigned_lecturer_id = $1, status = $2, updated_at = CURRENT_TIMESTAMP WHERE id = $3`,
			lecturerID, models.CourseStatusActive, courseID,
		); err != nil {
			return fmt.Errorf("assign lecturer: %w", err)
		}
		if _, err := tx.ExecContext(ctx,
			`UPDATE lecturers SET courses_assigned = courses_assigned + 1, updated_at = CURRENT_TIMESTAMP WHERE id = $1`,
			lecturerID,
		); err != nil {
			return fmt.Errorf("bump courses assigned: %w", err)
		}
		return nil
	})
}

func requireAffected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}
