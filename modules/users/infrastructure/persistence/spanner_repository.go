package persistence

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/BasavarajuVB/User-management-backend/modules/users/domain"
)

// SpannerRepository implements UserRepository using Cloud Spanner.
//
// The schema is provisioned out of band:
//
//	CREATE SEQUENCE UserIdSequence OPTIONS (sequence_kind = 'bit_reversed_positive');
//	CREATE TABLE Users (
//	  Id         INT64 NOT NULL DEFAULT (GET_NEXT_SEQUENCE_VALUE(SEQUENCE UserIdSequence)),
//	  FirstName  STRING(MAX) NOT NULL,
//	  LastName   STRING(MAX) NOT NULL,
//	  Email      STRING(MAX) NOT NULL,
//	  Department STRING(MAX) NOT NULL,
//	) PRIMARY KEY (Id);
//	CREATE UNIQUE INDEX UsersByEmail ON Users(Email);
type SpannerRepository struct {
	client *spanner.Client
}

// NewSpannerRepository creates a new Spanner-backed user repository.
func NewSpannerRepository(client *spanner.Client) *SpannerRepository {
	return &SpannerRepository{client: client}
}

// Compile-time interface check.
var _ domain.UserRepository = (*SpannerRepository)(nil)

var spannerUserColumns = []string{"Id", "FirstName", "LastName", "Email", "Department"}

func (r *SpannerRepository) FindAll(ctx context.Context) ([]*domain.User, error) {
	stmt := spanner.Statement{
		SQL: `SELECT Id, FirstName, LastName, Email, Department FROM Users ORDER BY Id`,
	}

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	users := []*domain.User{}
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to query users: %w", err)
		}

		user, err := scanSpannerUser(row)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func (r *SpannerRepository) FindByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	row, err := r.client.Single().ReadRow(ctx, "Users", spanner.Key{id.Int64()}, spannerUserColumns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to read user: %w", err)
	}
	return scanSpannerUser(row)
}

func (r *SpannerRepository) ExistsByEmail(ctx context.Context, email domain.Text) (bool, error) {
	stmt := spanner.Statement{
		SQL:    `SELECT 1 FROM Users@{FORCE_INDEX=UsersByEmail} WHERE Email = @email LIMIT 1`,
		Params: map[string]interface{}{"email": toSpannerString(email)},
	}

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	_, err := iter.Next()
	if err == iterator.Done {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return true, nil
}

func (r *SpannerRepository) Create(ctx context.Context, user *domain.User) (domain.UserID, error) {
	stmt := spanner.Statement{
		SQL: `INSERT INTO Users (FirstName, LastName, Email, Department)
		      VALUES (@firstName, @lastName, @email, @department)
		      THEN RETURN Id`,
		Params: profileParams(user),
	}

	var id int64
	_, err := r.client.ReadWriteTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		iter := txn.Query(ctx, stmt)
		defer iter.Stop()

		row, err := iter.Next()
		if err != nil {
			return err
		}
		return row.Columns(&id)
	})
	if err != nil {
		return 0, fmt.Errorf("failed to insert user: %w", err)
	}
	return domain.UserID(id), nil
}

func (r *SpannerRepository) Update(ctx context.Context, user *domain.User) error {
	params := profileParams(user)
	params["id"] = user.ID().Int64()
	stmt := spanner.Statement{
		SQL: `UPDATE Users
		      SET FirstName = @firstName, LastName = @lastName, Email = @email, Department = @department
		      WHERE Id = @id`,
		Params: params,
	}
	return r.execDML(ctx, stmt, "update")
}

func (r *SpannerRepository) Delete(ctx context.Context, id domain.UserID) error {
	stmt := spanner.Statement{
		SQL:    `DELETE FROM Users WHERE Id = @id`,
		Params: map[string]interface{}{"id": id.Int64()},
	}
	return r.execDML(ctx, stmt, "delete")
}

func (r *SpannerRepository) Ping(ctx context.Context) error {
	iter := r.client.Single().Query(ctx, spanner.Statement{SQL: `SELECT 1`})
	defer iter.Stop()

	if _, err := iter.Next(); err != nil && err != iterator.Done {
		return fmt.Errorf("failed to ping spanner: %w", err)
	}
	return nil
}

// execDML runs a single DML statement and maps zero affected rows to ErrUserNotFound.
func (r *SpannerRepository) execDML(ctx context.Context, stmt spanner.Statement, op string) error {
	var affected int64
	_, err := r.client.ReadWriteTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		n, err := txn.Update(ctx, stmt)
		affected = n
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to %s user: %w", op, err)
	}
	if affected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func profileParams(user *domain.User) map[string]interface{} {
	return map[string]interface{}{
		"firstName":  toSpannerString(user.FirstName()),
		"lastName":   toSpannerString(user.LastName()),
		"email":      toSpannerString(user.Email()),
		"department": toSpannerString(user.Department()),
	}
}

func toSpannerString(t domain.Text) spanner.NullString {
	v, ok := t.Value()
	return spanner.NullString{StringVal: v, Valid: ok}
}

func fromSpannerString(s spanner.NullString) domain.Text {
	if !s.Valid {
		return domain.NewText(nil)
	}
	return domain.TextOf(s.StringVal)
}

func scanSpannerUser(row *spanner.Row) (*domain.User, error) {
	var id int64
	var firstName, lastName, email, department spanner.NullString

	if err := row.Columns(&id, &firstName, &lastName, &email, &department); err != nil {
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}

	return domain.Reconstitute(domain.UserID(id), domain.Profile{
		FirstName:  fromSpannerString(firstName),
		LastName:   fromSpannerString(lastName),
		Email:      fromSpannerString(email),
		Department: fromSpannerString(department),
	}), nil
}
