package http

import "github.com/gin-gonic/gin"

// RegisterRoutes registers the token issuing route. It is public.
func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.POST("/authorize", h.Authorize)
}
