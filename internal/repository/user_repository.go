package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/pharmacy/internal/domain"
	"github.com/nikolayk812/pharmacy/internal/port"
)

const uniqueViolationCode = "23505"

type userRepository struct {
	db DBTX
}

func NewUser(pool *pgxpool.Pool) port.UserRepository {
	return &userRepository{db: pool}
}

func NewUserWithTx(tx pgx.Tx) port.UserRepository {
	return &userRepository{db: tx}
}

func (r *userRepository) CreateUser(ctx context.Context, user domain.User) (domain.User, error) {
	var u domain.User

	row := r.db.QueryRow(ctx,
		`INSERT INTO users (name, email, phone, password_hash)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		user.Name, user.Email, user.Phone, user.PasswordHash)

	if err := row.Scan(&user.ID, &user.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return u, fmt.Errorf("row.Scan: %w", domain.ErrEmailTaken)
		}
		return u, fmt.Errorf("row.Scan: %w", err)
	}

	return user, nil
}

func (r *userRepository) GetUser(ctx context.Context, userID int64) (domain.User, error) {
	return r.getUser(ctx, `id = $1`, userID)
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.getUser(ctx, `email = $1`, email)
}

func (r *userRepository) getUser(ctx context.Context, where string, arg any) (domain.User, error) {
	var u domain.User

	row := r.db.QueryRow(ctx,
		`SELECT id, name, email, phone, password_hash, created_at FROM users WHERE `+where, arg)

	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.PasswordHash, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return u, fmt.Errorf("row.Scan: %w", domain.ErrUserNotFound)
		}
		return u, fmt.Errorf("row.Scan: %w", err)
	}

	return u, nil
}
