package scope

import (
	"fmt"
	"time"
)

// Manager signs and verifies tokens.
// Implementations are safe for concurrent use.
type Manager interface {
	// Verify checks the signature, then the expiry, and returns the claims.
	// Group membership is the caller's policy.
	Verify(token string) (Payload, error)
	// CreateToken stamps exp = now + TokenExpirationDuration and signs payload with HS512.
	CreateToken(payload Payload) (string, error)
}

// Option configures a Manager.
type Option func(*implManager)

// WithClock replaces time.Now as the source of issuance and expiry times.
func WithClock(clock func() time.Time) Option {
	return func(m *implManager) {
		m.clock = clock
	}
}

// New builds a Manager from the configured secret.
func New(secretKey string, opts ...Option) (Manager, error) {
	if len(secretKey) < MinSecretKeyLen {
		return nil, fmt.Errorf("%w: need at least %d characters, got %d", ErrSecretTooShort, MinSecretKeyLen, len(secretKey))
	}
	m := &implManager{
		key:   []byte(secretKey),
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}
