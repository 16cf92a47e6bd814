package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

const userColumns = `id, name, username, email, password_hash, created_at, updated_at`

// CreateUser inserts a new owner. Duplicate email and username are
// reported as distinct domain errors so the caller can show a usable
// message.
func (s *PostgresStore) CreateUser(ctx context.Context, user User) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (id, name, username, email, password_hash)
		VALUES ($1, $2, $3, $4, $5)
	`, user.ID, user.Name, user.Username, user.Email, user.PasswordHash)
	if isUniqueViolation(err, "users_email_key") {
		return ErrEmailTaken
	}
	if isUniqueViolation(err, "users_username_key") {
		return ErrUsernameTaken
	}
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetUserByID(ctx context.Context, userID string) (User, error) {
	return s.scanUser(s.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id=$1`, userID))
}

func (s *PostgresStore) GetUserByEmail(ctx context.Context, email string) (User, error) {
	return s.scanUser(s.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email=$1`, email))
}

// GetUserByUsername resolves a public username to its owner.
func (s *PostgresStore) GetUserByUsername(ctx context.Context, username string) (User, error) {
	return s.scanUser(s.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE username=$1`, username))
}

func (s *PostgresStore) scanUser(row *sql.Row) (User, error) {
	var user User
	err := row.Scan(&user.ID, &user.Name, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, fmt.Errorf("scan user: %w", err)
	}
	return user, nil
}
