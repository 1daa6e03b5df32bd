package scope

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Payload is the claim set carried by a token.
// Only ExpiresAt of the registered claims is used, serialized as "exp".
type Payload struct {
	jwt.RegisteredClaims
	User   string   `json:"user"`
	Groups []string `json:"groups"`
}

// implManager implements Manager. The key is never mutated after New.
type implManager struct {
	key   []byte
	clock func() time.Time
}

// Context key types.
type (
	PayloadCtxKey struct{}
)
