package middleware

import (
	"lldap-gateway/internal/auth"
	"lldap-gateway/pkg/log"
	"lldap-gateway/pkg/metrics"
	"lldap-gateway/pkg/scope"
)

type Middleware struct {
	l            log.Logger
	scopeManager scope.Manager
	metrics      *metrics.Metrics
	security     *auth.SecurityLogger
}

// New builds the middleware set. m may be nil.
func New(l log.Logger, scopeManager scope.Manager, m *metrics.Metrics) Middleware {
	return Middleware{
		l:            l,
		scopeManager: scopeManager,
		metrics:      m,
		security:     auth.NewSecurityLogger(l),
	}
}
