package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"lldap-gateway/config"
	"lldap-gateway/pkg/log"

	_ "github.com/lib/pq" // PostgreSQL driver
)

const (
	defaultConnectTimeout  = 5 * time.Second
	defaultMaxIdleConns    = 10
	defaultMaxOpenConns    = 50
	defaultConnMaxLifetime = 30 * time.Minute
	defaultConnMaxIdleTime = 5 * time.Minute
)

// DSN renders cfg as a lib/pq key/value connection string.
func DSN(cfg config.PostgresConfig) string {
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		quoteValue(cfg.Host), cfg.Port, quoteValue(cfg.User), quoteValue(cfg.Password), quoteValue(cfg.DBName), sslMode)
}

// quoteValue escapes a value for the key/value DSN format.
func quoteValue(v string) string {
	out := make([]byte, 0, len(v)+2)
	out = append(out, '\'')
	for i := 0; i < len(v); i++ {
		if v[i] == '\'' || v[i] == '\\' {
			out = append(out, '\\')
		}
		out = append(out, v[i])
	}
	return string(append(out, '\''))
}

// Connect opens the pool and pings the database before returning it.
func Connect(ctx context.Context, l log.Logger, cfg config.PostgresConfig) (*sql.DB, error) {
	l.Infof(ctx, "Connecting to PostgreSQL at %s:%d/%s (SSL mode: %s)", cfg.Host, cfg.Port, cfg.DBName, cfg.SSLMode)

	db, err := sql.Open("postgres", DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open PostgreSQL connection: %w", err)
	}

	db.SetMaxIdleConns(defaultMaxIdleConns)
	db.SetMaxOpenConns(defaultMaxOpenConns)
	db.SetConnMaxLifetime(defaultConnMaxLifetime)
	db.SetConnMaxIdleTime(defaultConnMaxIdleTime)

	connectCtx, cancel := context.WithTimeout(ctx, defaultConnectTimeout)
	defer cancel()

	if err := db.PingContext(connectCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping PostgreSQL: %w", err)
	}

	return db, nil
}

// Disconnect closes the pool.
func Disconnect(ctx context.Context, l log.Logger, db *sql.DB) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		l.Errorf(ctx, "config.postgre.Disconnect: %v", err)
		return
	}
	l.Info(ctx, "PostgreSQL disconnected")
}
