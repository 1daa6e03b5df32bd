package http

import "github.com/gin-gonic/gin"

// RegisterRoutes registers the user routes on the protected API group.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/users", h.ListUsers)
}
