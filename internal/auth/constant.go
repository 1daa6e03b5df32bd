package auth

import "time"

const (
	// TokenCookieName carries the token on requests to /api.
	TokenCookieName = "token"
	// UserIDCookieName is informational for the web UI and never trusted.
	UserIDCookieName = "user_id"
	// TokenCookiePath scopes the token cookie to the protected API.
	TokenCookiePath = "/api"
	// CookieMaxAge matches the token lifetime.
	CookieMaxAge = 24 * time.Hour
)
