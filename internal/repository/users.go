package repository

import (
	"context"
	"database/sql"

	"github.com/costmanager/backend/internal/models"
)

// UserRepository exposes the user ledger operations the services
// depend on. The increment is a single atomic statement; callers
// never read-modify-write the total.
type UserRepository interface {
	FindByID(ctx context.Context, id int64) (*models.User, error)
	Exists(ctx context.Context, id int64) (bool, error)
	IncrementTotal(ctx context.Context, id int64, delta float64) error
}

type PostgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserRepository(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	err := r.db.QueryRowContext(ctx, `
		SELECT id, first_name, last_name, total
		FROM users
		WHERE id = $1
	`, id).Scan(&user.ID, &user.FirstName, &user.LastName, &user.Total)

	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *PostgresUserRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)
	`, id).Scan(&exists)
	return exists, err
}

// IncrementTotal adds delta to the user's running total. Zero rows
// affected means the user does not exist, which keeps the
// existence check and the ledger update in one atomic statement.
func (r *PostgresUserRepository) IncrementTotal(ctx context.Context, id int64, delta float64) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE users SET total = total + $1 WHERE id = $2
	`, delta, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
