// Package persistence implements repository interfaces using specific storage backends.
// This is the outermost layer - it implements ports defined in the domain layer.
package persistence

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/BasavarajuVB/User-management-backend/modules/users/domain"
)

// InMemoryRepository implements UserRepository using in-memory storage.
// It enforces the same constraints as the SQL table (NOT NULL columns,
// UNIQUE email, auto-incremented ids that are never reused).
// Useful for testing and development.
type InMemoryRepository struct {
	mu     sync.RWMutex
	users  map[domain.UserID]domain.Profile
	lastID domain.UserID
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		users: make(map[domain.UserID]domain.Profile),
	}
}

// Compile-time interface check.
var _ domain.UserRepository = (*InMemoryRepository)(nil)

func (r *InMemoryRepository) FindAll(ctx context.Context) ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]domain.UserID, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	users := make([]*domain.User, 0, len(ids))
	for _, id := range ids {
		users = append(users, domain.Reconstitute(id, r.users[id]))
	}
	return users, nil
}

func (r *InMemoryRepository) FindByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profile, exists := r.users[id]
	if !exists {
		return nil, domain.ErrUserNotFound
	}
	return domain.Reconstitute(id, profile), nil
}

func (r *InMemoryRepository) ExistsByEmail(ctx context.Context, email domain.Text) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.emailOwner(email) != 0, nil
}

func (r *InMemoryRepository) Create(ctx context.Context, user *domain.User) (domain.UserID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	profile := user.Profile()
	if err := r.checkConstraints(0, profile); err != nil {
		return 0, err
	}

	r.lastID++
	r.users[r.lastID] = profile
	return r.lastID, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.ID()]; !exists {
		return domain.ErrUserNotFound
	}
	profile := user.Profile()
	if err := r.checkConstraints(user.ID(), profile); err != nil {
		return err
	}
	r.users[user.ID()] = profile
	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id domain.UserID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[id]; !exists {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *InMemoryRepository) Ping(ctx context.Context) error {
	return nil
}

// checkConstraints must be called with the write lock held.
func (r *InMemoryRepository) checkConstraints(self domain.UserID, p domain.Profile) error {
	columns := []struct {
		name  string
		value domain.Text
	}{
		{"firstName", p.FirstName},
		{"lastName", p.LastName},
		{"email", p.Email},
		{"department", p.Department},
	}
	for _, c := range columns {
		if c.value.IsNull() {
			return fmt.Errorf("users.%s: %w", c.name, domain.ErrFieldRequired)
		}
	}
	if owner := r.emailOwner(p.Email); owner != 0 && owner != self {
		return domain.ErrEmailTaken
	}
	return nil
}

// emailOwner must be called with the lock held. It returns 0 when no row has the email.
func (r *InMemoryRepository) emailOwner(email domain.Text) domain.UserID {
	for id, profile := range r.users {
		if profile.Email.Equals(email) {
			return id
		}
	}
	return 0
}
