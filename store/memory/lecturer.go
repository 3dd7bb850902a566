package memory

import (
	"context"

	"luctreport/models"
	"luctreport/store"
)

type lecturerRepo struct{ s *Store }

func (r lecturerRepo) List(_ context.Context) ([]models.Lecturer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]models.Lecturer, 0, len(r.s.lecturers))
	for i := len(r.s.lecturers) - 1; i >= 0; i-- {
		out = append(out, r.s.lecturers[i])
	}
	return out, nil
}

func (r lecturerRepo) GetByID(_ context.Context, id int64) (*models.Lecturer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	i, ok := r.s.lecturerByID(id)
	if !ok {
		return nil, store.ErrLecturerNotFound
	}
	l := r.s.lecturers[i]
	return &l, nil
}

// Create applies the same column defaults as the lecturers table
func (r lecturerRepo) Create(_ context.Context, lecturer *models.Lecturer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, l := range r.s.lecturers {
		if l.Email == lecturer.Email {
			return store.ErrConflict
		}
	}

	now := r.s.now()
	lecturer.ID = r.s.nextID()
	lecturer.CreatedAt = now
	lecturer.UpdatedAt = now
	if lecturer.Status == "" {
		lecturer.Status = "Available"
	}
	if lecturer.Workload == "" {
		lecturer.Workload = "0%"
	}
	if lecturer.Availability == "" {
		lecturer.Availability = "Full-time"
	}
	r.s.lecturers = append(r.s.lecturers, *lecturer)
	return nil
}

func (r lecturerRepo) Update(_ context.Context, lecturer *models.Lecturer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	i, ok := r.s.lecturerByID(lecturer.ID)
	if !ok {
		return store.ErrLecturerNotFound
	}
	for _, l := range r.s.lecturers {
		if l.Email == lecturer.Email && l.ID != lecturer.ID {
			return store.ErrConflict
		}
	}

	existing := &r.s.lecturers[i]
	existing.Name = lecturer.Name
	existing.Email = lecturer.Email
	existing.Specialization = lecturer.Specialization
	existing.Status = lecturer.Status
	existing.Workload = lecturer.Workload
	existing.Availability = lecturer.Availability
	existing.UpdatedAt = r.s.now()
	return nil
}

func (r lecturerRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	i, ok := r.s.lecturerByID(id)
	if !ok {
		return store.ErrLecturerNotFound
	}
	for _, c := range r.s.courses {
		if c.AssignedLecturerID != nil && *c.AssignedLecturerID == id {
			return store.ErrLecturerAssigned
		}
	}
	r.s.lecturers = append(r.s.lecturers[:i], r.s.lecturers[i+1:]...)
	return nil
}
