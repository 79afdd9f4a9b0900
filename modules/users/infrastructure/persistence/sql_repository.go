package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/BasavarajuVB/User-management-backend/modules/users/domain"
)

// The name columns are camelCase, so they are quoted to survive PostgreSQL's
// identifier folding.
const (
	sqliteSchema = `CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		"firstName" TEXT NOT NULL,
		"lastName" TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		department TEXT NOT NULL
	)`

	postgresSchema = `CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		"firstName" TEXT NOT NULL,
		"lastName" TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		department TEXT NOT NULL
	)`

	selectUsers = `SELECT id, "firstName", "lastName", email, department FROM users`
)

// userRow is the scan target for one row of the users table.
type userRow struct {
	ID         int64          `db:"id"`
	FirstName  sql.NullString `db:"firstName"`
	LastName   sql.NullString `db:"lastName"`
	Email      sql.NullString `db:"email"`
	Department sql.NullString `db:"department"`
}

func (r userRow) toDomain() *domain.User {
	return domain.Reconstitute(domain.UserID(r.ID), domain.Profile{
		FirstName:  fromNullString(r.FirstName),
		LastName:   fromNullString(r.LastName),
		Email:      fromNullString(r.Email),
		Department: fromNullString(r.Department),
	})
}

// SQLRepository implements UserRepository on a database/sql driver through sqlx.
// Queries are written with '?' placeholders and rebound for the driver in use.
type SQLRepository struct {
	db *sqlx.DB
}

// NewSQLRepository creates a SQL-backed user repository.
func NewSQLRepository(db *sqlx.DB) *SQLRepository {
	return &SQLRepository{db: db}
}

// Compile-time interface check.
var _ domain.UserRepository = (*SQLRepository)(nil)

// EnsureSchema creates the users table when it does not exist yet.
func (r *SQLRepository) EnsureSchema(ctx context.Context) error {
	ddl := sqliteSchema
	if r.db.DriverName() == "postgres" {
		ddl = postgresSchema
	}
	if _, err := r.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("failed to create users table: %w", err)
	}
	return nil
}

func (r *SQLRepository) FindAll(ctx context.Context) ([]*domain.User, error) {
	var rows []userRow
	if err := r.db.SelectContext(ctx, &rows, selectUsers+" ORDER BY id"); err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}

	users := make([]*domain.User, len(rows))
	for i, row := range rows {
		users[i] = row.toDomain()
	}
	return users, nil
}

func (r *SQLRepository) FindByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	var row userRow
	err := r.db.GetContext(ctx, &row, r.db.Rebind(selectUsers+" WHERE id = ?"), id.Int64())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return row.toDomain(), nil
}

func (r *SQLRepository) ExistsByEmail(ctx context.Context, email domain.Text) (bool, error) {
	var count int
	err := r.db.GetContext(ctx, &count, r.db.Rebind(`SELECT COUNT(*) FROM users WHERE email = ?`), toNullString(email))
	if err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return count > 0, nil
}

func (r *SQLRepository) Create(ctx context.Context, user *domain.User) (domain.UserID, error) {
	query := r.db.Rebind(`INSERT INTO users ("firstName", "lastName", email, department)
		VALUES (?, ?, ?, ?) RETURNING id`)

	var id int64
	err := r.db.QueryRowxContext(ctx, query,
		toNullString(user.FirstName()),
		toNullString(user.LastName()),
		toNullString(user.Email()),
		toNullString(user.Department()),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert user: %w", err)
	}
	return domain.UserID(id), nil
}

func (r *SQLRepository) Update(ctx context.Context, user *domain.User) error {
	query := r.db.Rebind(`UPDATE users
		SET "firstName" = ?, "lastName" = ?, email = ?, department = ?
		WHERE id = ?`)

	result, err := r.db.ExecContext(ctx, query,
		toNullString(user.FirstName()),
		toNullString(user.LastName()),
		toNullString(user.Email()),
		toNullString(user.Department()),
		user.ID().Int64(),
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return requireAffected(result)
}

func (r *SQLRepository) Delete(ctx context.Context, id domain.UserID) error {
	result, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM users WHERE id = ?`), id.Int64())
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return requireAffected(result)
}

func (r *SQLRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func requireAffected(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func toNullString(t domain.Text) sql.NullString {
	v, ok := t.Value()
	return sql.NullString{String: v, Valid: ok}
}

func fromNullString(s sql.NullString) domain.Text {
	if !s.Valid {
		return domain.NewText(nil)
	}
	return domain.TextOf(s.String)
}
