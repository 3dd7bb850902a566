// Package store defines the repository capability shared by the relational and in-memory backends.
package store

import (
	"context"
	"errors"
	"fmt"

	"luctreport/models"
)

var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("record already exists")
	ErrInvalid  = errors.New("record violates a constraint")
)

// Errors naming the missing or blocking record. They match the generic sentinels with errors.Is.
var (
	ErrCourseNotFound   = fmt.Errorf("course: %w", ErrNotFound)
	ErrLecturerNotFound = fmt.Errorf("lecturer: %w", ErrNotFound)
	ErrUserNotFound     = fmt.Errorf("user: %w", ErrNotFound)
	ErrLecturerAssigned = fmt.Errorf("lecturer is assigned to a course: %w", ErrConflict)
)

// Mode tags which backend a Store is
type Mode string

const (
	ModeDatabase Mode = "database"
	ModeMemory   Mode = "memory"
)

// Store aggregates all repositories of one backend
type Store interface {
	Mode() Mode

	Users() UserRepository
	Courses() CourseRepository
	Lecturers() LecturerRepository
	Reports() ReportRepository
	Ratings() RatingRepository

	Ping(ctx context.Context) error
	Close() error
}

// UserRepository is the Credential Store. Create fails with ErrConflict when the
// username or email is taken.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
}

// CourseRepository lists courses newest first, with the assigned lecturer's name resolved.
type CourseRepository interface {
	List(ctx context.Context) ([]models.Course, error)
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	Create(ctx context.Context, course *models.Course) error
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) error
	// AssignLecturer marks the course Active under the lecturer and bumps the lecturer's course count.
	AssignLecturer(ctx context.Context, courseID, lecturerID int64) error
}

type LecturerRepository interface {
	List(ctx context.Context) ([]models.Lecturer, error)
	GetByID(ctx context.Context, id int64) (*models.Lecturer, error)
	Create(ctx context.Context, lecturer *models.Lecturer) error
	Update(ctx context.Context, lecturer *models.Lecturer) error
	Delete(ctx context.Context, id int64) error
}

// ReportRepository is append-only. The submitter id comes from the session claim; only the
// relational backend can refuse it, through its foreign key, with ErrNotFound.
type ReportRepository interface {
	Create(ctx context.Context, report *models.LecturerReport) error
	List(ctx context.Context) ([]models.LecturerReport, error)
}

// RatingRepository is append-only. Create fails with ErrInvalid for ratings outside 1..5.
type RatingRepository interface {
	Create(ctx context.Context, rating *models.StudentRating) error
	List(ctx context.Context) ([]models.StudentRating, error)
	ListByLecturer(ctx context.Context, lecturerName string) ([]models.StudentRating, error)
}

const (
	MinRating = 1
	MaxRating = 5
)

// ValidRating mirrors the check constraint of the student_ratings table
func ValidRating(r int) bool {
	return r >= MinRating && r <= MaxRating
}
