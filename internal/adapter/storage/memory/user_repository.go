package memory

import (
	"context"
	"time"

	"github.com/drivelink/drivelink/internal/domain"
	"github.com/drivelink/drivelink/internal/ports"
)

type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) ports.UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) Create(ctx context.Context, input domain.NewUser) (*domain.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == input.Username {
			return nil, domain.ErrDuplicateUsername
		}
		if u.Email == input.Email {
			return nil, domain.ErrDuplicateEmail
		}
	}

	user := &domain.User{
		ID:        s.userIDs.next(),
		Username:  input.Username,
		Email:     input.Email,
		Password:  input.Password,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		CreatedAt: time.Now(),
	}
	s.users[user.ID] = user

	out := *user
	return &out, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	out := *user
	return &out, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == username {
			out := *user
			return &out, nil
		}
	}
	return nil, nil
}
