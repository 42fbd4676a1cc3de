package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tradesim-dev/tradesim/internal/models"
)

type usersRepo struct{ pool *pgxpool.Pool }

func (r *usersRepo) Create(ctx context.Context, username, passwordHash string) (models.User, error) {
	id := uuid.NewString()
	_, err := r.pool.Exec(ctx,
		`INSERT INTO users(id, username, password_hash, cash) VALUES($1,$2,$3,$4)`,
		id, username, passwordHash, models.DefaultCash,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return models.User{}, models.ErrUsernameTaken
		}
		return models.User{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *usersRepo) GetByID(ctx context.Context, id string) (models.User, error) {
	var u models.User
	err := r.pool.QueryRow(ctx,
		`SELECT id, username, password_hash, cash, created_at, updated_at FROM users WHERE id=$1`, id,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Cash, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

func (r *usersRepo) GetByUsername(ctx context.Context, username string) (models.User, error) {
	var u models.User
	err := r.pool.QueryRow(ctx,
		`SELECT id, username, password_hash, cash, created_at, updated_at FROM users WHERE lower(username)=lower($1)`, username,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Cash, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

func (r *usersRepo) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE users SET password_hash=$2, updated_at=now() WHERE id=$1`,
		id, passwordHash,
	)
	return err
}
