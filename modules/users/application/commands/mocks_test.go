package commands_test

import (
	"context"
	"testing"

	"github.com/BasavarajuVB/User-management-backend/modules/shared/events"
	"github.com/BasavarajuVB/User-management-backend/modules/users/domain"
)

// --- Mocks ---

type mockUserRepository struct {
	findByIDFn      func(ctx context.Context, id domain.UserID) (*domain.User, error)
	existsByEmailFn func(ctx context.Context, email domain.Text) (bool, error)
	createFn        func(ctx context.Context, user *domain.User) (domain.UserID, error)
	updateFn        func(ctx context.Context, user *domain.User) error
	deleteFn        func(ctx context.Context, id domain.UserID) error
}

func (m *mockUserRepository) FindAll(ctx context.Context) ([]*domain.User, error) {
	return nil, nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	return m.findByIDFn(ctx, id)
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email domain.Text) (bool, error) {
	return m.existsByEmailFn(ctx, email)
}

func (m *mockUserRepository) Create(ctx context.Context, user *domain.User) (domain.UserID, error) {
	return m.createFn(ctx, user)
}

func (m *mockUserRepository) Update(ctx context.Context, user *domain.User) error {
	return m.updateFn(ctx, user)
}

func (m *mockUserRepository) Delete(ctx context.Context, id domain.UserID) error {
	return m.deleteFn(ctx, id)
}

func (m *mockUserRepository) Ping(ctx context.Context) error {
	return nil
}

type mockPublisher struct {
	publishFn func(ctx context.Context, event events.Event) error
}

func (m *mockPublisher) Publish(ctx context.Context, event events.Event) error {
	return m.publishFn(ctx, event)
}

// --- Helpers ---

func strPtr(s string) *string { return &s }

func createTestUser(t *testing.T, id domain.UserID) *domain.User {
	t.Helper()

	return domain.Reconstitute(id, domain.Profile{
		FirstName:  domain.TextOf("John"),
		LastName:   domain.TextOf("Doe"),
		Email:      domain.TextOf("john@example.com"),
		Department: domain.TextOf("Engineering"),
	})
}
