// Package memory is the demo backend used when no database is reachable at startup.
// All collections live for the lifetime of the process.
package memory

import (
	"context"
	"sync"
	"time"

	"luctreport/models"
	"luctreport/store"
)

// Store keeps every collection behind one lock so that cross-collection operations
// (course assignment, lecturer deletion) observe a consistent snapshot.
type Store struct {
	mu sync.RWMutex

	users     []models.User
	courses   []models.Course
	lecturers []models.Lecturer
	reports   []models.LecturerReport
	ratings   []models.StudentRating

	lastID int64
	now    func() time.Time
}

var _ store.Store = (*Store)(nil)

// New returns an empty store
func New() *Store {
	return &Store{now: time.Now}
}

func (s *Store) Mode() store.Mode { return store.ModeMemory }

func (s *Store) Users() store.UserRepository         { return userRepo{s} }
func (s *Store) Courses() store.CourseRepository     { return courseRepo{s} }
func (s *Store) Lecturers() store.LecturerRepository { return lecturerRepo{s} }
func (s *Store) Reports() store.ReportRepository     { return reportRepo{s} }
func (s *Store) Ratings() store.RatingRepository     { return ratingRepo{s} }

func (s *Store) Ping(ctx context.Context) error { return ctx.Err() }
func (s *Store) Close() error                   { return nil }

// nextID must be called with mu held for writing
func (s *Store) nextID() int64 {
	s.lastID++
	return s.lastID
}

// bumpID keeps the counter ahead of explicitly seeded ids; mu must be held
func (s *Store) bumpID(id int64) {
	if id > s.lastID {
		s.lastID = id
	}
}

func (s *Store) userByID(id int64) (int, bool) {
	for i := range s.users {
		if s.users[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

func (s *Store) courseByID(id int64) (int, bool) {
	for i := range s.courses {
		if s.courses[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

func (s *Store) lecturerByID(id int64) (int, bool) {
	for i := range s.lecturers {
		if s.lecturers[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

func cloneStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
