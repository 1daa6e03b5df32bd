package middleware

import (
	"net/http"
	"strings"

	"lldap-gateway/internal/auth"
	"lldap-gateway/pkg/errors"
	"lldap-gateway/pkg/metrics"
	"lldap-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/net/http/httpguts"
)

// CookieBridge copies the token cookie into an Authorization: Bearer header
// when the request has no Authorization header of its own.
// A cookie that cannot form a valid header value ends the request with 400,
// whether or not a header was sent.
func (m Middleware) CookieBridge() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := rawCookieValue(c.Request.Header.Values("Cookie"), auth.TokenCookieName)
		if !ok {
			c.Next()
			return
		}

		header := bearerPrefix + token
		if !httpguts.ValidHeaderFieldValue(header) {
			m.security.LogInvalidInput(c.Request.Context(), c.Request.URL.Path, auth.MessageInvalidCookie)
			m.metrics.AuthDecision(metrics.AuthBadCookie)
			response.AbortWithError(c, errors.NewHTTPError(http.StatusBadRequest, auth.MessageInvalidCookie), nil)
			return
		}

		if c.GetHeader("Authorization") == "" {
			c.Request.Header.Set("Authorization", header)
		}
		c.Next()
	}
}

// rawCookieValue finds name in raw Cookie header lines. Unlike http.Request.Cookie
// it keeps values with bytes that are not valid in a cookie, so they can be rejected.
func rawCookieValue(lines []string, name string) (string, bool) {
	for _, line := range lines {
		for _, part := range strings.Split(line, ";") {
			part = strings.Trim(part, " \t")
			if part == "" {
				continue
			}
			k, v, _ := strings.Cut(part, "=")
			if strings.Trim(k, " \t") != name {
				continue
			}
			if len(v) > 1 && v[0] == '"' && v[len(v)-1] == '"' {
				v = v[1 : len(v)-1]
			}
			return v, true
		}
	}
	return "", false
}
