package http

import (
	"net/http"

	"lldap-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// Authorize exchanges a username and password for a signed token.
// @Summary Issue a token
// @Description Binds the credentials, then returns an HS512 JWT valid for 24 hours. The token is also set as an HttpOnly cookie scoped to /api, next to an informational user_id cookie.
// @Tags Auth
// @Accept json
// @Produce plain
// @Param body body authorizeReq true "Credentials"
// @Success 200 {string} string "Token"
// @Failure 400 {string} string "Malformed request"
// @Failure 401 {string} string "Authentication error"
// @Failure 500 {string} string "Group lookup failed"
// @Router /authorize [POST]
func (h *Handler) Authorize(c *gin.Context) {
	req, err := h.processAuthorizeRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	out, err := h.uc.Authorize(c.Request.Context(), req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	http.SetCookie(c.Writer, h.newTokenCookie(out.Token))
	http.SetCookie(c.Writer, h.newUserIDCookie(out.Username))
	response.Text(c, out.Token)
}
