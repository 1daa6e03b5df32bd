package scope

import (
	"fmt"
	"slices"

	"github.com/golang-jwt/jwt/v5"
)

var parser = jwt.NewParser(
	jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}),
	jwt.WithoutClaimsValidation(),
	jwt.WithStrictDecoding(),
)

func (m *implManager) Verify(token string) (Payload, error) {
	if token == "" {
		return Payload{}, fmt.Errorf("%w: token is empty", ErrInvalidToken)
	}

	var payload Payload
	_, err := parser.ParseWithClaims(token, &payload, func(*jwt.Token) (interface{}, error) {
		return m.key, nil
	})
	if err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	// a token is still valid in the second it expires
	if payload.ExpiresAt == nil || payload.ExpiresAt.Before(m.clock()) {
		return Payload{}, ErrExpiredToken
	}

	return payload, nil
}

func (m *implManager) CreateToken(payload Payload) (string, error) {
	payload.RegisteredClaims = jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(m.clock().Add(TokenExpirationDuration)),
	}
	payload.Groups = normalizeGroups(payload.Groups)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, payload).SignedString(m.key)
	if err != nil {
		return "", fmt.Errorf("scope.CreateToken: %w", err)
	}
	return token, nil
}

// InGroup reports whether name is one of the payload's groups.
func (p Payload) InGroup(name string) bool {
	return slices.Contains(p.Groups, name)
}

func normalizeGroups(groups []string) []string {
	out := make([]string, 0, len(groups))
	out = append(out, groups...)
	slices.Sort(out)
	return slices.Compact(out)
}
