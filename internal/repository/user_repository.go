package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/adoptafacil/internal/domain"
	apperrors "github.com/spec-kit/adoptafacil/pkg/util/errorutil"
)

//go:generate mockgen -package mockrepository -source=user_repository.go -destination=mock/user_repository.go

// UserRepository defines persistence access for platform users.
type UserRepository interface {
	// Save inserts the user when ID is zero and updates it otherwise.
	Save(ctx context.Context, user *domain.User) error
	FindAll(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
}

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &userRepository{pool: pool}
}

func (r *userRepository) Save(ctx context.Context, user *domain.User) error {
	if user.ID == 0 {
		return r.insert(ctx, user)
	}
	return r.update(ctx, user)
}

func (r *userRepository) insert(ctx context.Context, user *domain.User) error {
	const query = `
        INSERT INTO "user" (email, password, full_name, registration_date, last_login, status)
        VALUES ($1, $2, $3, COALESCE($4::timestamptz, NOW()), $5, $6)
        RETURNING id_user, registration_date`

	var registered *time.Time
	if !user.RegistrationDate.IsZero() {
		registered = &user.RegistrationDate
	}

	err := r.pool.QueryRow(ctx, query,
		user.Email,
		user.Password,
		user.FullName,
		registered,
		user.LastLogin,
		user.Status.String(),
	).Scan(&user.ID, &user.RegistrationDate)
	if err != nil {
		return mapError(err, "user")
	}
	user.RegistrationDate = user.RegistrationDate.UTC()
	return nil
}

func (r *userRepository) update(ctx context.Context, user *domain.User) error {
	const query = `
        UPDATE "user" SET email=$1, password=$2, full_name=$3, last_login=$4, status=$5
        WHERE id_user=$6`

	cmd, err := r.pool.Exec(ctx, query,
		user.Email,
		user.Password,
		user.FullName,
		user.LastLogin,
		user.Status.String(),
		user.ID,
	)
	if err != nil {
		return mapError(err, "user")
	}
	if cmd.RowsAffected() == 0 {
		return apperrors.NewNotFound("user", map[string]any{"id": user.ID})
	}
	return nil
}

func (r *userRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	const query = `
        SELECT id_user, email, password, full_name, registration_date, last_login, status
        FROM "user" ORDER BY id_user`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, mapError(err, "user")
	}
	defer rows.Close()

	result := make([]domain.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *user)
	}
	return result, mapError(rows.Err(), "user")
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	const query = `
        SELECT id_user, email, password, full_name, registration_date, last_login, status
        FROM "user" WHERE id_user=$1`

	user, err := scanUser(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}
	return user, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var (
		user   domain.User
		status string
	)
	if err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Password,
		&user.FullName,
		&user.RegistrationDate,
		&user.LastLogin,
		&status,
	); err != nil {
		return nil, mapError(err, "user")
	}
	parsed, err := domain.ParseUserStatus(status)
	if err != nil {
		return nil, err
	}
	user.Status = parsed
	user.RegistrationDate = user.RegistrationDate.UTC()
	if user.LastLogin != nil {
		t := user.LastLogin.UTC()
		user.LastLogin = &t
	}
	return &user, nil
}
