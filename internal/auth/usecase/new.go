package usecase

import (
	"lldap-gateway/internal/auth"
	"lldap-gateway/internal/user"
	"lldap-gateway/pkg/log"
	"lldap-gateway/pkg/metrics"
	"lldap-gateway/pkg/scope"
)

type usecase struct {
	l            log.Logger
	userUC       user.UseCase
	scopeManager scope.Manager
	metrics      *metrics.Metrics
	security     *auth.SecurityLogger
}

// New wires the token issuer. m may be nil.
func New(l log.Logger, userUC user.UseCase, scopeManager scope.Manager, m *metrics.Metrics) auth.UseCase {
	return &usecase{
		l:            l,
		userUC:       userUC,
		scopeManager: scopeManager,
		metrics:      m,
		security:     auth.NewSecurityLogger(l),
	}
}
