package scope

import "errors"

var (
	// ErrInvalidToken is returned for any malformed, tampered or wrongly signed token.
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken is returned for a correctly signed token whose exp is not in the future.
	ErrExpiredToken = errors.New("expired token")
	// ErrSecretTooShort is returned by New when the secret is below MinSecretKeyLen.
	ErrSecretTooShort = errors.New("scope: secret key is too short")
)
