package http

import (
	"net/http"

	"lldap-gateway/pkg/errors"

	"github.com/gin-gonic/gin"
)

func (h *Handler) processListUsersRequest(c *gin.Context) (listUsersReq, error) {
	var req listUsersReq

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "internal.user.delivery.http.processListUsersRequest.ShouldBindJSON: %v", err)
		return listUsersReq{}, errors.NewValidationError(http.StatusBadRequest, "body", err.Error())
	}

	return req, nil
}
