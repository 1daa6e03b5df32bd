package auth

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Authorize binds the credentials, reads the user's groups and signs a token.
	// Bind failures of any cause are *errors.AuthenticationError; a failed group
	// lookup is *errors.BackendError.
	Authorize(ctx context.Context, ip AuthorizeInput) (AuthorizeOutput, error)
}
