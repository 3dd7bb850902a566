package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"luctreport/models"
	"luctreport/store"
)

type reportPostgreSQL struct {
	db *sql.DB
}

// Create stores the report; a missing submitter surfaces through the foreign key
func (r *reportPostgreSQL) Create(ctx context.Context, report *models.LecturerReport) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO lecturer_reports (
			faculty_name, class_name, week_of_reporting, date_of_lecture, course_name,
			course_code, lecturer_name, students_present, total_registered_students,
			venue, scheduled_time, topic_taught, learning_outcomes, recommendations, submitted_by
		 ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		 RETURNING id, submitted_at`,
		report.FacultyName, report.ClassName, report.WeekOfReporting, report.DateOfLecture, report.CourseName,
		report.CourseCode, report.LecturerName, report.StudentsPresent, report.TotalRegisteredStudents,
		report.Venue, report.ScheduledTime, report.TopicTaught, report.LearningOutcomes, report.Recommendations,
		report.SubmittedBy,
	).Scan(&report.ID, &report.SubmittedAt)
	return translate(err, store.ErrUserNotFound)
}

func (r *reportPostgreSQL) List(ctx context.Context) ([]models.LecturerReport, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT lr.id, lr.faculty_name, lr.class_name, lr.week_of_reporting,
		       to_char(lr.date_of_lecture, 'YYYY-MM-DD'), lr.course_name, lr.course_code,
		       lr.lecturer_name, lr.students_present, lr.total_registered_students,
		       lr.venue, lr.scheduled_time::text, COALESCE(lr.topic_taught, ''),
		       COALESCE(lr.learning_outcomes, ''), COALESCE(lr.recommendations, ''),
		       lr.submitted_by, u.full_name, lr.submitted_at
		FROM lecturer_reports lr
		JOIN users u ON lr.submitted_by = u.id
		ORDER BY lr.submitted_at DESC, lr.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("query reports: %w", err)
	}
	defer rows.Close()

	reports := make([]models.LecturerReport, 0)
	for rows.Next() {
		var lr models.LecturerReport
		err := rows.Scan(
			&lr.ID, &lr.FacultyName, &lr.ClassName, &lr.WeekOfReporting,
			&lr.DateOfLecture, &lr.CourseName, &lr.CourseCode,
			&lr.LecturerName, &lr.StudentsPresent, &lr.TotalRegisteredStudents,
			&lr.Venue, &lr.ScheduledTime, &lr.TopicTaught,
			&lr.LearningOutcomes, &lr.Recommendations,
			&lr.SubmittedBy, &lr.SubmittedByName, &lr.SubmittedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan report: %w", err)
		}
		reports = append(reports, lr)
	}
	return reports, rows.Err()
}

type ratingPostgreSQL struct {
	db *sql.DB
}

func (r *ratingPostgreSQL) Create(ctx context.Context, rating *models.StudentRating) error {
	if !store.ValidRating(rating.Rating) {
		return fmt.Errorf("rating %d: %w", rating.Rating, store.ErrInvalid)
	}
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO student_ratings (student_id, course_code, course_name, lecturer_name, rating, comment)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, rated_at`,
		rating.StudentID, rating.CourseCode, rating.CourseName, rating.LecturerName, rating.Rating, rating.Comment,
	).Scan(&rating.ID, &rating.RatedAt)
	return translate(err, store.ErrUserNotFound)
}

const ratingSelect = `
	SELECT sr.id, sr.student_id, u.full_name, sr.course_code, sr.course_name,
	       sr.lecturer_name, sr.rating, sr.comment, sr.rated_at
	FROM student_ratings sr
	JOIN users u ON sr.student_id = u.id`

func (r *ratingPostgreSQL) List(ctx context.Context) ([]models.StudentRating, error) {
	return r.query(ctx, ratingSelect+` ORDER BY sr.rated_at DESC, sr.id DESC`)
}

// ListByLecturer matches on the denormalized lecturer name
func (r *ratingPostgreSQL) ListByLecturer(ctx context.Context, lecturerName string) ([]models.StudentRating, error) {
	return r.query(ctx, ratingSelect+` WHERE sr.lecturer_name = $1 ORDER BY sr.rated_at DESC, sr.id DESC`, lecturerName)
}

func (r *ratingPostgreSQL) query(ctx context.Context, query string, args ...any) ([]models.StudentRating, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query ratings: %w", err)
	}
	defer rows.Close()

	ratings := make([]models.StudentRating, 0)
	for rows.Next() {
		var (
			sr      models.StudentRating
			comment sql.NullString
		)
		err := rows.Scan(&sr.ID, &sr.StudentID, &sr.StudentName, &sr.CourseCode, &sr.CourseName,
			&sr.LecturerName, &sr.Rating, &comment, &sr.RatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan rating: %w", err)
		}
		if comment.Valid {
			sr.Comment = &comment.String
		}
		ratings = append(ratings, sr)
	}
	return ratings, rows.Err()
}
