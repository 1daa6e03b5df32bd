package middleware

import (
	"errors"
	"strings"

	"lldap-gateway/internal/auth"
	pkgErrors "lldap-gateway/pkg/errors"
	"lldap-gateway/pkg/log"
	"lldap-gateway/pkg/metrics"
	"lldap-gateway/pkg/response"
	"lldap-gateway/pkg/scope"

	"github.com/gin-gonic/gin"
)

const (
	bearerPrefix = "Bearer "

	// PayloadKey is the gin context key of the verified scope.Payload.
	PayloadKey = "payload"
)

// Auth admits requests carrying a valid, unexpired bearer token of a member of requiredGroup.
// Checks run in that order and the first failure decides the 401 body.
func (m Middleware) Auth(requiredGroup string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			m.reject(c, "", auth.MessageMissingBearer, metrics.AuthMissing)
			c.Header("WWW-Authenticate", "Bearer")
			response.AbortWithError(c, pkgErrors.NewAuthenticationError(auth.MessageMissingBearer), nil)
			return
		}

		payload, err := m.scopeManager.Verify(token)
		if err != nil {
			msg, result := auth.MessageInvalidJWT, metrics.AuthInvalid
			if errors.Is(err, scope.ErrExpiredToken) {
				msg, result = auth.MessageExpiredJWT, metrics.AuthExpired
			}
			m.l.Debugf(ctx, "internal.middleware.Auth.Verify: %v", err)
			m.reject(c, "", msg, result)
			response.AbortWithError(c, pkgErrors.NewAuthenticationError(msg), nil)
			return
		}

		if !payload.InGroup(requiredGroup) {
			msg := auth.MessageNotInGroup(requiredGroup)
			m.reject(c, payload.User, msg, metrics.AuthForbidden)
			response.AbortWithError(c, pkgErrors.NewAuthenticationError(msg), nil)
			return
		}

		m.metrics.AuthDecision(metrics.AuthAdmitted)
		m.l.Debugf(ctx, "internal.middleware.Auth: authorized token for user %s", payload.User)

		ctx = scope.SetPayloadToContext(ctx, payload)
		ctx = log.WithFields(ctx, m.l, "user", payload.User)
		c.Request = c.Request.WithContext(ctx)
		c.Set(PayloadKey, payload)

		c.Next()
	}
}

func (m Middleware) reject(c *gin.Context, user, reason, result string) {
	m.security.LogAuthorizationFailure(c.Request.Context(), user, c.Request.URL.Path, reason)
	m.metrics.AuthDecision(result)
}

// bearerToken extracts the credentials of a Bearer Authorization header.
func bearerToken(header string) (string, bool) {
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(bearerPrefix):])
	return token, token != ""
}
