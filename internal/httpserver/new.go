package httpserver

import (
	"context"
	"database/sql"
	"errors"
	"time"

	authHTTP "lldap-gateway/internal/auth/delivery/http"
	"lldap-gateway/internal/user"
	"lldap-gateway/pkg/discord"
	"lldap-gateway/pkg/log"
	"lldap-gateway/pkg/metrics"
	"lldap-gateway/pkg/scope"

	"github.com/gin-gonic/gin"
)

// pinger is the part of *sql.DB the readiness check needs.
type pinger interface {
	PingContext(ctx context.Context) error
}

// HTTPServer represents the HTTP server with all dependencies.
// New() only wires dependencies and validates them; Run() serves.
type HTTPServer struct {
	// Server configuration
	gin          *gin.Engine
	l            log.Logger
	host         string
	port         int
	readTimeout  time.Duration
	writeTimeout time.Duration
	corsOrigins  []string

	// Database
	postgresDB *sql.DB
	db         pinger

	// Auth & security
	scopeManager scope.Manager
	admin        user.AdminConfig
	cookie       authHTTP.CookieConfig

	// Monitoring & notification
	metrics *metrics.Metrics
	discord discord.IDiscord
}

// Config is the constructor input for HTTPServer.
type Config struct {
	// Server configuration
	Host         string
	Port         int
	Mode         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	CORSOrigins  []string

	// Database
	PostgresDB *sql.DB

	// Auth & security
	ScopeManager scope.Manager
	Admin        user.AdminConfig
	Cookie       authHTTP.CookieConfig

	// Monitoring & notification. Both optional.
	Metrics *metrics.Metrics
	Discord discord.IDiscord
}

// New creates a new HTTPServer. It does not start listening.
func New(l log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	srv := &HTTPServer{
		gin:          gin.New(),
		l:            l,
		host:         cfg.Host,
		port:         cfg.Port,
		readTimeout:  cfg.ReadTimeout,
		writeTimeout: cfg.WriteTimeout,
		corsOrigins:  cfg.CORSOrigins,

		postgresDB: cfg.PostgresDB,

		scopeManager: cfg.ScopeManager,
		admin:        cfg.Admin,
		cookie:       cfg.Cookie,

		metrics: cfg.Metrics,
		discord: cfg.Discord,
	}
	if cfg.PostgresDB != nil {
		srv.db = cfg.PostgresDB
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate ensures all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("PostgresDB is required")
	}
	if srv.scopeManager == nil {
		return errors.New("ScopeManager is required")
	}
	if srv.admin.Username == "" || srv.admin.Password == "" {
		return errors.New("admin credentials are required")
	}

	return nil
}
