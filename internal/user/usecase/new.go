package usecase

import (
	"lldap-gateway/internal/user"
	"lldap-gateway/internal/user/repository"
	pkgLog "lldap-gateway/pkg/log"
)

type usecase struct {
	l     pkgLog.Logger
	repo  repository.Repository
	admin user.AdminConfig
}

func New(l pkgLog.Logger, repo repository.Repository, admin user.AdminConfig) user.UseCase {
	return &usecase{
		l:     l,
		repo:  repo,
		admin: admin,
	}
}
