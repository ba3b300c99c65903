package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ndanilova/calendar-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	db DB
}

func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) GetByLogin(ctx context.Context, login string) (model.User, error) {
	var user model.User
	query := `SELECT idusers, login, password_hash, email, firstname, lastname, created_at
			  FROM users WHERE login = $1`

	err := r.db.QueryRow(ctx, query, login).Scan(
		&user.ID, &user.Login, &user.PasswordHash, &user.Email,
		&user.FirstName, &user.LastName, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by login: %w", err)
	}

	return user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (model.User, error) {
	var user model.User
	query := `SELECT idusers, login, password_hash, email, firstname, lastname, created_at
			  FROM users WHERE idusers = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID, &user.Login, &user.PasswordHash, &user.Email,
		&user.FirstName, &user.LastName, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	query := `INSERT INTO users (login, password_hash, email, firstname, lastname)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING idusers, login, password_hash, email, firstname, lastname, created_at`

	var savedUser model.User
	err := r.db.QueryRow(ctx, query,
		user.Login, user.PasswordHash, user.Email, user.FirstName, user.LastName,
	).Scan(
		&savedUser.ID, &savedUser.Login, &savedUser.PasswordHash, &savedUser.Email,
		&savedUser.FirstName, &savedUser.LastName, &savedUser.CreatedAt,
	)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return savedUser, nil
}
