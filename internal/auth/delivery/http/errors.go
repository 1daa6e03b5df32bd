package http

import (
	"context"
	"errors"
	"net/http"

	pkgErrors "lldap-gateway/pkg/errors"
)

func (h *Handler) mapError(err error) error {
	var (
		authErr    *pkgErrors.AuthenticationError
		backendErr *pkgErrors.BackendError
	)
	switch {
	case errors.As(err, &authErr):
		return authErr
	case errors.As(err, &backendErr):
		return backendErr
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "Request cancelled")
	default:
		// unknown errors reach Recovery and become a 500
		panic(err)
	}
}
