package store

import "errors"

// Domain errors surfaced to callers. The app layer maps these onto HTTP
// status codes; nothing here is transport-aware.
var (
	ErrNotFound      = errors.New("not found")
	ErrOwnerConflict = errors.New("owner already has a content document")
	ErrEmailTaken    = errors.New("email already registered")
	ErrUsernameTaken = errors.New("username already taken")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrMissingOwner  = errors.New("target owner is required")
)
