package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	userRepo "lldap-gateway/internal/user/repository/postgre"
	userUC "lldap-gateway/internal/user/usecase"
)

const shutdownTimeout = 30 * time.Second

// Run prepares the schema, serves HTTP and blocks until SIGINT or SIGTERM,
// then drains in-flight requests.
func (srv *HTTPServer) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo := userRepo.New(srv.l, srv.postgresDB)
	if err := repo.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	srv.mapHandlers(userUC.New(srv.l, repo, srv.admin))

	httpSrv := &http.Server{
		Addr:         net.JoinHostPort(srv.host, strconv.Itoa(srv.port)),
		Handler:      srv.gin,
		ReadTimeout:  srv.readTimeout,
		WriteTimeout: srv.writeTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	srv.l.Infof(ctx, "HTTP server started on %s", httpSrv.Addr)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	srv.l.Info(context.Background(), "Shutting down HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP server shutdown: %w", err)
	}
	srv.l.Info(shutdownCtx, "HTTP server stopped")

	return nil
}
