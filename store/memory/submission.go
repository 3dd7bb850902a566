package memory

import (
	"context"

	"luctreport/models"
	"luctreport/store"
)

type reportRepo struct{ s *Store }

// Create trusts the submitter id from the session claim; it is not looked up.
func (r reportRepo) Create(_ context.Context, report *models.LecturerReport) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	report.ID = r.s.nextID()
	report.SubmittedAt = r.s.now()
	r.s.reports = append(r.s.reports, *report)
	return nil
}

func (r reportRepo) List(_ context.Context) ([]models.LecturerReport, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]models.LecturerReport, 0, len(r.s.reports))
	for i := len(r.s.reports) - 1; i >= 0; i-- {
		report := r.s.reports[i]
		if ui, ok := r.s.userByID(report.SubmittedBy); ok {
			report.SubmittedByName = r.s.users[ui].FullName
		}
		out = append(out, report)
	}
	return out, nil
}

type ratingRepo struct{ s *Store }

func (r ratingRepo) Create(_ context.Context, rating *models.StudentRating) error {
	if !store.ValidRating(rating.Rating) {
		return store.ErrInvalid
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rating.ID = r.s.nextID()
	rating.RatedAt = r.s.now()
	r.s.ratings = append(r.s.ratings, *rating)
	return nil
}

func (r ratingRepo) List(_ context.Context) ([]models.StudentRating, error) {
	return r.list(func(models.StudentRating) bool { return true }), nil
}

func (r ratingRepo) ListByLecturer(_ context.Context, lecturerName string) ([]models.StudentRating, error) {
	return r.list(func(sr models.StudentRating) bool { return sr.LecturerName == lecturerName }), nil
}

func (r ratingRepo) list(keep func(models.StudentRating) bool) []models.StudentRating {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]models.StudentRating, 0)
	for i := len(r.s.ratings) - 1; i >= 0; i-- {
		rating := r.s.ratings[i]
		if !keep(rating) {
			continue
		}
		if ui, ok := r.s.userByID(rating.StudentID); ok {
			rating.StudentName = r.s.users[ui].FullName
		}
		out = append(out, rating)
	}
	return out
}
