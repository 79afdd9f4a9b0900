package persistence

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BasavarajuVB/User-management-backend/modules/users/domain"
)

func newSQLiteRepo(t *testing.T) *SQLRepository {
	t.Helper()
	db, err := sqlx.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	repo := NewSQLRepository(db)
	require.NoError(t, repo.EnsureSchema(context.Background()))
	return repo
}

func TestSQLite_RoundTrip(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()

	id, err := repo.Create(ctx, domain.NewUser(newProfile("Ada", "ada@example.com")))
	require.NoError(t, err)
	assert.Equal(t, domain.UserID(1), id)

	exists, err := repo.ExistsByEmail(ctx, domain.TextOf("ada@example.com"))
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, repo.Update(ctx, domain.Reconstitute(id, newProfile("Augusta", "ada@example.com"))))

	user, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Augusta", user.FirstName().String())

	require.NoError(t, repo.Delete(ctx, id))
	assert.ErrorIs(t, repo.Delete(ctx, id), domain.ErrUserNotFound)

	users, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestSQLite_Constraints(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, domain.NewUser(newProfile("Ada", "ada@example.com")))
	require.NoError(t, err)

	_, err = repo.Create(ctx, domain.NewUser(newProfile("Other", "ada@example.com")))
	assert.ErrorContains(t, err, "UNIQUE constraint failed")

	missing := newProfile("Alan", "alan@example.com")
	missing.Department = domain.NewText(nil)
	_, err = repo.Create(ctx, domain.NewUser(missing))
	assert.ErrorContains(t, err, "NOT NULL constraint failed")
}

func TestSQLite_UpdateMissingRow(t *testing.T) {
	repo := newSQLiteRepo(t)

	err := repo.Update(context.Background(), domain.Reconstitute(5, newProfile("Ada", "ada@example.com")))

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
