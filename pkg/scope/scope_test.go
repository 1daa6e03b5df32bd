package scope

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newTestManager(t *testing.T, now time.Time) Manager {
	t.Helper()
	m, err := New(testSecret, WithClock(fixedClock(now)))
	require.NoError(t, err)
	return m
}

func TestNew(t *testing.T) {
	_, err := New("short")
	assert.True(t, errors.Is(err, ErrSecretTooShort))

	m, err := New(testSecret)
	require.NoError(t, err)
	assert.NotNil(t, m)
}

func TestCreateToken_RoundTrip(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	m := newTestManager(t, now)

	token, err := m.CreateToken(Payload{User: "alice", Groups: []string{"lldap_admin", "ops", "lldap_admin"}})
	require.NoError(t, err)

	payload, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", payload.User)
	assert.Equal(t, []string{"lldap_admin", "ops"}, payload.Groups)
	assert.Equal(t, now.Add(TokenExpirationDuration).Unix(), payload.ExpiresAt.Unix())
}

func TestCreateToken_WireFormat(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	m := newTestManager(t, now)

	token, err := m.CreateToken(Payload{User: "alice", Groups: []string{"lldap_admin"}})
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	header, err := base64.RawURLEncoding.DecodeString(parts[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{"alg":"HS512","typ":"JWT"}`, string(header))

	body, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)
	var claims map[string]any
	require.NoError(t, json.Unmarshal(body, &claims))
	assert.Equal(t, "alice", claims["user"])
	assert.Equal(t, []any{"lldap_admin"}, claims["groups"])
	assert.Equal(t, float64(now.Add(24*time.Hour).Unix()), claims["exp"])
	assert.Len(t, claims, 3)
}

func TestVerify_TamperSensitivity(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	m := newTestManager(t, now)

	token, err := m.CreateToken(Payload{User: "alice", Groups: []string{"lldap_admin"}})
	require.NoError(t, err)
	headerLen := strings.Index(token, ".") + 1

	for i := headerLen; i < len(token); i++ {
		if token[i] == '.' {
			continue
		}
		for bit := 0; bit < 6; bit++ {
			tampered := []byte(token)
			tampered[i] ^= 1 << bit
			if string(tampered) == token {
				continue
			}

			_, err := m.Verify(string(tampered))
			if !errors.Is(err, ErrInvalidToken) {
				t.Fatalf("flip bit %d at %d: got %v, want ErrInvalidToken", bit, i, err)
			}
		}
	}
}

func TestVerify_ExpiryDominance(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	issuer := newTestManager(t, now.Add(-25*time.Hour))
	verifier := newTestManager(t, now)

	token, err := issuer.CreateToken(Payload{User: "alice", Groups: []string{"lldap_admin"}})
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Equal(t, ErrExpiredToken, err)
}

func TestVerify_ExpiryBoundary(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	token, err := newTestManager(t, now).CreateToken(Payload{User: "alice"})
	require.NoError(t, err)

	tcs := map[string]struct {
		at      time.Duration
		wantErr error
	}{
		"second before exp": {at: TokenExpirationDuration - time.Second},
		"at exp":            {at: TokenExpirationDuration},
		"just after exp":    {at: TokenExpirationDuration + time.Millisecond, wantErr: ErrExpiredToken},
		"second after exp":  {at: TokenExpirationDuration + time.Second, wantErr: ErrExpiredToken},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			_, err := newTestManager(t, now.Add(tc.at)).Verify(token)
			assert.Equal(t, tc.wantErr, err)
		})
	}
}

func TestVerify_MissingExp(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"user":   "alice",
		"groups": []string{"lldap_admin"},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = newTestManager(t, time.Now()).Verify(token)
	assert.Equal(t, ErrExpiredToken, err)
}

func TestVerify_RejectsOtherAlgorithms(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	m := newTestManager(t, now)
	claims := jwt.MapClaims{
		"exp":    now.Add(time.Hour).Unix(),
		"user":   "alice",
		"groups": []string{"lldap_admin"},
	}

	hs256, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tcs := map[string]string{
		"hs256":      hs256,
		"none":       none,
		"empty":      "",
		"garbage":    "not-a-jwt",
		"other key":  mustSign(t, "ffffffffffffffffffffffffffffffff", claims),
		"two parts":  "a.b",
		"bad base64": "###.###.###",
	}
	for name, token := range tcs {
		t.Run(name, func(t *testing.T) {
			_, err := m.Verify(token)
			assert.True(t, errors.Is(err, ErrInvalidToken), "got %v", err)
		})
	}
}

func TestVerify_SignatureCheckedBeforeExpiry(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	token := mustSign(t, "ffffffffffffffffffffffffffffffff", jwt.MapClaims{
		"exp":  now.Add(-time.Hour).Unix(),
		"user": "alice",
	})

	_, err := newTestManager(t, now).Verify(token)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestPayload_InGroup(t *testing.T) {
	p := Payload{Groups: []string{"ops", "lldap_admin"}}
	assert.True(t, p.InGroup("lldap_admin"))
	assert.False(t, p.InGroup("lldap_password_manager"))
	assert.False(t, Payload{}.InGroup("lldap_admin"))
}

func TestContext(t *testing.T) {
	ctx := context.Background()
	_, ok := GetUserFromContext(ctx)
	assert.False(t, ok)

	ctx = SetPayloadToContext(ctx, Payload{User: "alice"})
	user, ok := GetUserFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "alice", user)
}

func mustSign(t *testing.T, key string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(key))
	require.NoError(t, err)
	return token
}
