package http

import (
	"lldap-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// ListUsers lists directory users matching an optional filter.
// @Summary List users
// @Description Returns users ordered by user_id. Requires a token of a member of lldap_admin, sent as a bearer header or the token cookie.
// @Tags User
// @Accept json
// @Produce json
// @Param body body listUsersReq true "Filter"
// @Success 200 {array} userItemResp
// @Failure 400 {string} string "Malformed request or filter"
// @Failure 401 {string} string "Invalid JWT, Expired JWT or missing group"
// @Failure 500 {string} string "Database error"
// @Security BearerAuth
// @Router /api/users [POST]
func (h *Handler) ListUsers(c *gin.Context) {
	req, err := h.processListUsersRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	usrs, err := h.uc.ListUsers(c.Request.Context(), req.toInput())
	if err != nil {
		h.l.Errorf(c.Request.Context(), "internal.user.delivery.http.ListUsers.ListUsers: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListUsersResp(usrs))
}
