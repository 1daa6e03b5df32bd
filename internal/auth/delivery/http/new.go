package http

import (
	"lldap-gateway/internal/auth"
	"lldap-gateway/pkg/discord"
	"lldap-gateway/pkg/log"
)

// CookieConfig holds the optional attributes of the issued cookies.
type CookieConfig struct {
	Domain string
	Secure bool
}

type Handler struct {
	l         log.Logger
	uc        auth.UseCase
	discord   discord.IDiscord
	cookieCfg CookieConfig
}

func New(l log.Logger, uc auth.UseCase, d discord.IDiscord, cookieCfg CookieConfig) *Handler {
	return &Handler{
		l:         l,
		uc:        uc,
		discord:   d,
		cookieCfg: cookieCfg,
	}
}
