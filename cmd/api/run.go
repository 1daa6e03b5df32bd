package main

import (
	"context"
	"fmt"

	"lldap-gateway/config"
	"lldap-gateway/config/postgre"
	authHTTP "lldap-gateway/internal/auth/delivery/http"
	"lldap-gateway/internal/httpserver"
	"lldap-gateway/internal/user"
	"lldap-gateway/pkg/discord"
	"lldap-gateway/pkg/log"
	"lldap-gateway/pkg/metrics"
	"lldap-gateway/pkg/scope"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type runFlags struct {
	verbose bool
	port    int
}

func (f *runFlags) bind(fs *pflag.FlagSet) {
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log at debug level")
	fs.IntVarP(&f.port, "port", "p", 0, "HTTP port, overrides HTTP_PORT")
}

// apply lets explicitly set flags override the environment.
func (f *runFlags) apply(fs *pflag.FlagSet, cfg *config.Config) {
	if f.verbose {
		cfg.Logger.Level = "debug"
	}
	if fs.Changed("port") {
		cfg.HTTPServer.Port = f.port
	}
}

func newRunCmd() *cobra.Command {
	flags := &runFlags{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Serve the gateway",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.loadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}
	flags.bind(cmd.Flags())
	return cmd
}

// loadConfig validates only once the flags are applied, so --port can
// replace an unusable HTTP_PORT.
func (f *runFlags) loadConfig(fs *pflag.FlagSet) (*config.Config, error) {
	cfg, err := config.Parse()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	f.apply(fs, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(ctx context.Context, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
		Service:      "lldap-gateway",
		Environment:  cfg.Environment.Name,
	})

	// Initialize token manager
	scopeManager, err := scope.New(cfg.JWT.SecretKey)
	if err != nil {
		return fmt.Errorf("failed to initialize token manager: %w", err)
	}

	// Initialize PostgreSQL
	postgresDB, err := postgre.Connect(ctx, logger, cfg.Postgres)
	if err != nil {
		return err
	}
	defer postgre.Disconnect(ctx, logger, postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// Initialize Discord, optional
	var discordClient discord.IDiscord
	if cfg.Discord.Enabled() {
		discordClient, err = discord.New(logger, cfg.Discord.WebhookID, cfg.Discord.WebhookToken)
		if err != nil {
			return fmt.Errorf("failed to initialize Discord: %w", err)
		}
		defer discordClient.Close()
	} else {
		logger.Info(ctx, "Discord webhook not configured, bug reports disabled")
	}

	// Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Host:         cfg.HTTPServer.Host,
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		ReadTimeout:  cfg.HTTPServer.ReadTimeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,
		CORSOrigins:  cfg.HTTPServer.CORSOrigins,

		// Database Configuration
		PostgresDB: postgresDB,

		// Authentication & Security Configuration
		ScopeManager: scopeManager,
		Admin: user.AdminConfig{
			Username: cfg.Admin.Username,
			Password: cfg.Admin.Password,
		},
		Cookie: authHTTP.CookieConfig{
			Domain: cfg.Cookie.Domain,
			Secure: cfg.Cookie.Secure,
		},

		// Monitoring & Notification Configuration
		Metrics: metrics.NewDefault(),
		Discord: discordClient,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize HTTP server: %w", err)
	}

	return httpServer.Run()
}
