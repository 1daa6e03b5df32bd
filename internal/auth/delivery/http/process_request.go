package http

import (
	"net/http"
	"strings"

	pkgErrors "lldap-gateway/pkg/errors"

	"github.com/friendsofgo/errors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func (h *Handler) processAuthorizeRequest(c *gin.Context) (authorizeReq, error) {
	var req authorizeReq

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "internal.auth.delivery.http.processAuthorizeRequest.ShouldBindJSON: %v", err)
		return authorizeReq{}, bindError(err)
	}

	return req, nil
}

// bindError turns a failed bind into a 400. Tag failures name the field.
func bindError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return pkgErrors.NewValidationError(http.StatusBadRequest, strings.ToLower(verrs[0].Field()), "is required")
	}
	return pkgErrors.NewValidationError(http.StatusBadRequest, "body", err.Error())
}
