package http

import (
	"errors"
	"net/http"

	"lldap-gateway/internal/model"
	pkgErrors "lldap-gateway/pkg/errors"
)

func (h *Handler) mapError(err error) error {
	var backendErr *pkgErrors.BackendError
	switch {
	case errors.As(err, &backendErr):
		return backendErr
	case errors.Is(err, model.ErrInvalidFilter), errors.Is(err, model.ErrUnknownFilterField):
		return pkgErrors.NewValidationError(http.StatusBadRequest, "filters", err.Error())
	default:
		// unknown errors reach Recovery and become a 500
		panic(err)
	}
}
