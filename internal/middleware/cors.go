package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSConfig holds the configuration for CORS middleware.
type CORSConfig struct {
	// AllowedOrigins lists exact origins, "*.domain" wildcards or "*".
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
	ExposedHeaders []string

	// AllowCredentials lets browsers send the token cookie cross-origin.
	// The matched origin is echoed back instead of "*" when it is set.
	AllowCredentials bool

	// MaxAge is the preflight cache lifetime in seconds.
	MaxAge int
}

// DefaultCORSConfig returns the gateway's CORS policy for the given origins.
// With no origins, no cross-origin access is granted.
func DefaultCORSConfig(origins []string) CORSConfig {
	return CORSConfig{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Authorization", "Accept", RequestIDHeader},
		ExposedHeaders:   []string{RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           86400,
	}
}

// CORS handles Cross-Origin Resource Sharing and answers preflight requests.
func CORS(config CORSConfig) gin.HandlerFunc {
	methods := strings.Join(config.AllowedMethods, ", ")
	headers := strings.Join(config.AllowedHeaders, ", ")
	exposed := strings.Join(config.ExposedHeaders, ", ")

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		allowed := isOriginAllowed(origin, config.AllowedOrigins)

		if allowed {
			c.Writer.Header().Add("Vary", "Origin")
			if config.AllowCredentials || !containsWildcard(config.AllowedOrigins) {
				c.Header("Access-Control-Allow-Origin", origin)
			} else {
				c.Header("Access-Control-Allow-Origin", "*")
			}
			if config.AllowCredentials {
				c.Header("Access-Control-Allow-Credentials", "true")
			}
		}

		if c.Request.Method == http.MethodOptions && c.GetHeader("Access-Control-Request-Method") != "" {
			if allowed {
				if methods != "" {
					c.Header("Access-Control-Allow-Methods", methods)
				}
				if headers != "" {
					c.Header("Access-Control-Allow-Headers", headers)
				}
				if config.MaxAge > 0 {
					c.Header("Access-Control-Max-Age", strconv.Itoa(config.MaxAge))
				}
			}
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		if allowed && exposed != "" {
			c.Header("Access-Control-Expose-Headers", exposed)
		}

		c.Next()
	}
}

func containsWildcard(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}

// isOriginAllowed matches origin against exact entries, "*" and "*.domain" suffixes.
func isOriginAllowed(origin string, allowedOrigins []string) bool {
	if origin == "" {
		return false
	}
	for _, allowed := range allowedOrigins {
		switch {
		case allowed == "*", allowed == origin:
			return true
		case strings.HasPrefix(allowed, "*."):
			if strings.HasSuffix(origin, allowed[1:]) {
				return true
			}
		}
	}
	return false
}
