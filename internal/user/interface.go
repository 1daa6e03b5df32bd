package user

import (
	"context"

	"lldap-gateway/internal/model"
)

// UseCase is the authentication backend: credential checks, group lookup and
// the directory listing. Implementations must be safe for concurrent use.
//
//go:generate mockery --name UseCase
type UseCase interface {
	// Bind returns nil when the password belongs to the user, ErrInvalidCredentials
	// when it does not, and a *errors.BackendError when the store failed.
	Bind(ctx context.Context, ip BindInput) error
	GetUserGroups(ctx context.Context, username string) ([]string, error)
	ListUsers(ctx context.Context, ip ListUsersInput) ([]model.User, error)
}
