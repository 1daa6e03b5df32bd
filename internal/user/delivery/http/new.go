package http

import (
	"lldap-gateway/internal/user"
	"lldap-gateway/pkg/discord"
	"lldap-gateway/pkg/log"
)

type Handler struct {
	l       log.Logger
	uc      user.UseCase
	discord discord.IDiscord
}

func New(l log.Logger, uc user.UseCase, d discord.IDiscord) *Handler {
	return &Handler{
		l:       l,
		uc:      uc,
		discord: d,
	}
}
