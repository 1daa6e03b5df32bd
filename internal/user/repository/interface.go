package repository

import (
	"context"

	"lldap-gateway/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	// GetPasswordHash returns the stored bcrypt hash of username.
	// ErrNotFound if the user does not exist.
	GetPasswordHash(ctx context.Context, username string) (string, error)
	// ListGroupNames returns the display names of the groups username belongs to.
	ListGroupNames(ctx context.Context, username string) ([]string, error)
	List(ctx context.Context, opts ListOptions) ([]model.User, error)
	// EnsureSchema creates the tables if they are missing.
	EnsureSchema(ctx context.Context) error
}
