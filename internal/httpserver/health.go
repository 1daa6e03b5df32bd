package httpserver

import (
	"net/http"

	"lldap-gateway/pkg/errors"
	"lldap-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

const serviceName = "lldap-gateway"

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check that the service can reach its database
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is healthy"
// @Failure 503 {string} string "Database unreachable"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	if err := srv.pingDB(c); err != nil {
		srv.l.Errorf(c.Request.Context(), "internal.httpserver.healthCheck: %v", err)
		response.Error(c, errors.NewHTTPError(http.StatusServiceUnavailable, "Database connection failed"), nil)
		return
	}

	response.OK(c, gin.H{
		"status":   "healthy",
		"service":  serviceName,
		"postgres": "connected",
	})
}

// readyCheck handles readiness check requests
// @Summary Readiness Check
// @Description Check if the service is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is ready"
// @Failure 503 {string} string "Service is not ready"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	if err := srv.pingDB(c); err != nil {
		response.Error(c, errors.NewHTTPError(http.StatusServiceUnavailable, "Database connection not available"), nil)
		return
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"service": serviceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the service is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"service": serviceName,
	})
}

func (srv *HTTPServer) pingDB(c *gin.Context) error {
	if srv.db == nil {
		return errors.NewHTTPError(http.StatusServiceUnavailable, "no database")
	}
	return srv.db.PingContext(c.Request.Context())
}
