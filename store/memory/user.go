package memory

import (
	"context"

	"luctreport/models"
	"luctreport/store"
)

type userRepo struct{ s *Store }

func (r userRepo) Create(_ context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Username == user.Username || u.Email == user.Email {
			return store.ErrConflict
		}
	}

	user.ID = r.s.nextID()
	user.CreatedAt = r.s.now()
	r.s.users = append(r.s.users, *user)
	return nil
}

func (r userRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	i, ok := r.s.userByID(id)
	if !ok {
		return nil, store.ErrUserNotFound
	}
	u := r.s.users[i]
	return &u, nil
}

func (r userRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// List returns users in registration order
func (r userRepo) List(_ context.Context) ([]models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]models.User, len(r.s.users))
	copy(out, r.s.users)
	return out, nil
}
