// Package account provides email/password registration and login for
// portfolio owners.
package account

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"folio/api/internal/store"
	"folio/api/internal/util"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidInput       = errors.New("invalid input")
)

var usernamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{2,31}$`)

// Service provides owner registration and password authentication.
type Service struct {
	store UserStore
}

// UserStore defines the storage interface for accounts. Registration
// also seeds the owner's content document, so the content side of the
// store is part of the contract.
type UserStore interface {
	CreateUser(ctx context.Context, user store.User) error
	GetUserByEmail(ctx context.Context, email string) (store.User, error)
	GetUserByID(ctx context.Context, id string) (store.User, error)
	CreateDefault(ctx context.Context, ownerID string) error
}

// NewService creates a new account service
func NewService(userStore UserStore) *Service {
	return &Service{store: userStore}
}

// RegisterRequest contains registration parameters
type RegisterRequest struct {
	Name     string
	Username string
	Email    string
	Password string
}

// Register creates a new owner account and seeds its content document
// with the schema default template.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (store.User, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Username = strings.ToLower(strings.TrimSpace(req.Username))
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if req.Name == "" || req.Username == "" || req.Email == "" || req.Password == "" {
		return store.User{}, fmt.Errorf("%w: name, username, email, and password are required", ErrInvalidInput)
	}
	if !usernamePattern.MatchString(req.Username) {
		return store.User{}, fmt.Errorf("%w: username must be 3-32 lowercase letters, digits, - or _", ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return store.User{}, fmt.Errorf("%w: malformed email address", ErrInvalidInput)
	}
	if len(req.Password) < 8 {
		return store.User{}, fmt.Errorf("%w: password must be at least 8 characters", ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return store.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := store.User{
		ID:           util.NewID("usr"),
		Name:         req.Name,
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return store.User{}, err
	}
	if err := s.store.CreateDefault(ctx, user.ID); err != nil {
		return store.User{}, fmt.Errorf("seed default content: %w", err)
	}
	return user, nil
}

// Login authenticates an owner by email and password.
func (s *Service) Login(ctx context.Context, email, password string) (store.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return store.User{}, ErrInvalidCredentials
	}

	user, err := s.store.GetUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return store.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return store.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return store.User{}, ErrInvalidCredentials
	}
	return user, nil
}
