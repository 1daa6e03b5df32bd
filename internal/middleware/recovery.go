package middleware

import (
	"lldap-gateway/pkg/discord"
	"lldap-gateway/pkg/log"
	"lldap-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panic into a 500 and reports it to Discord when d is set.
// A response that was already started is left as is and only logged.
func Recovery(l log.Logger, d discord.IDiscord) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			l.Errorf(c.Request.Context(), "internal.middleware.Recovery: %v | %s %s | request_id=%s",
				rec, c.Request.Method, c.Request.URL.Path, c.GetString(RequestIDKey))

			if c.Writer.Written() {
				c.Abort()
				return
			}
			response.PanicError(c, rec, d)
			c.Abort()
		}()
		c.Next()
	}
}
