package scope

import "time"

const (
	// TokenExpirationDuration is the lifetime of an issued token.
	TokenExpirationDuration = 24 * time.Hour

	// MinSecretKeyLen is the shortest accepted signing secret.
	MinSecretKeyLen = 32
)
