package memory

import (
	"context"

	"luctreport/models"
	"luctreport/store"
)

type courseRepo struct{ s *Store }

// withLecturerName must be called with mu held
func (r courseRepo) withLecturerName(c models.Course) models.Course {
	c.Modules = cloneStrings(c.Modules)
	c.Prerequisites = cloneStrings(c.Prerequisites)
	c.AssignedLecturerName = nil
	if c.AssignedLecturerID != nil {
		id := *c.AssignedLecturerID
		c.AssignedLecturerID = &id
		if i, ok := r.s.lecturerByID(id); ok {
			name := r.s.lecturers[i].Name
			c.AssignedLecturerName = &name
		}
	}
	return c
}

func (r courseRepo) List(_ context.Context) ([]models.Course, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]models.Course, 0, len(r.s.courses))
	for i := len(r.s.courses) - 1; i >= 0; i-- {
		out = append(out, r.withLecturerName(r.s.courses[i]))
	}
	return out, nil
}

func (r courseRepo) GetByID(_ context.Context, id int64) (*models.Course, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	i, ok := r.s.courseByID(id)
	if !ok {
		return nil, store.ErrCourseNotFound
	}
	c := r.withLecturerName(r.s.courses[i])
	return &c, nil
}

func (r courseRepo) Create(_ context.Context, course *models.Course) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, c := range r.s.courses {
		if c.Code == course.Code {
			return store.ErrConflict
		}
	}

	now := r.s.now()
	course.ID = r.s.nextID()
	course.CreatedAt = now
	course.UpdatedAt = now
	if course.Status == "" {
		course.Status = models.CourseStatusPlanning
	}
	course.Modules = cloneStrings(course.Modules)
	course.Prerequisites = cloneStrings(course.Prerequisites)

	stored := *course
	stored.AssignedLecturerName = nil
	r.s.courses = append(r.s.courses, stored)
	return nil
}

// Update replaces the editable fields; assignment, enrollment, rating and color are kept
func (r courseRepo) Update(_ context.Context, course *models.Course) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	i, ok := r.s.courseByID(course.ID)
	if !ok {
		return store.ErrCourseNotFound
	}
	for _, c := range r.s.courses {
		if c.Code == course.Code && c.ID != course.ID {
			return store.ErrConflict
		}
	}

	existing := &r.s.courses[i]
	existing.Code = course.Code
	existing.Name = course.Name
	existing.Credits = course.Credits
	existing.Level = course.Level
	existing.Semester = course.Semester
	existing.Status = course.Status
	existing.Modules = cloneStrings(course.Modules)
	existing.Prerequisites = cloneStrings(course.Prerequisites)
	existing.UpdatedAt = r.s.now()
	return nil
}

func (r courseRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	i, ok := r.s.courseByID(id)
	if !ok {
		return store.ErrCourseNotFound
	}
	r.s.courses = append(r.s.courses[:i], r.s.courses[i+1:]...)
	return nil
}

func (r courseRepo) AssignLecturer(_ context.Context, courseID, lecturerID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	ci, ok := r.s.courseByID(courseID)
	if !ok {
		return store.ErrCourseNotFound
	}
	li, ok := r.s.lecturerByID(lecturerID)
	if !ok {
		return store.ErrLecturerNotFound
	}

	id := lecturerID
	r.s.courses[ci].AssignedLecturerID = &id
	r.s.courses[ci].Status = models.CourseStatusActive
	r.s.courses[ci].UpdatedAt = r.s.now()
	r.s.lecturers[li].CoursesAssigned++
	return nil
}
