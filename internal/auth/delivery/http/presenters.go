package http

import (
	"net/http"
	"net/url"

	"lldap-gateway/internal/auth"
)

const maxBodyBytes = 4096

type authorizeReq struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password"`
}

func (r authorizeReq) toInput() auth.AuthorizeInput {
	return auth.AuthorizeInput{
		Username: r.Name,
		Password: r.Password,
	}
}

func (h *Handler) newTokenCookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     auth.TokenCookieName,
		Value:    token,
		Path:     auth.TokenCookiePath,
		Domain:   h.cookieCfg.Domain,
		MaxAge:   int(auth.CookieMaxAge.Seconds()),
		Secure:   h.cookieCfg.Secure,
		HttpOnly: true,
	}
}

// newUserIDCookie query-escapes the username, http.SetCookie would otherwise
// drop every byte that is not allowed in a cookie value.
func (h *Handler) newUserIDCookie(username string) *http.Cookie {
	return &http.Cookie{
		Name:   auth.UserIDCookieName,
		Value:  url.QueryEscape(username),
		Domain: h.cookieCfg.Domain,
		MaxAge: int(auth.CookieMaxAge.Seconds()),
		Secure: h.cookieCfg.Secure,
	}
}
