package discord

import (
	"context"
	"errors"
	"time"

	"lldap-gateway/pkg/log"
)

// IDiscord reports unexpected server failures to a Discord channel.
type IDiscord interface {
	ReportBug(ctx context.Context, message string) error
	Close() error
}

var errWebhookRequired = errors.New("discord: webhook id and token are required")

// New creates a webhook client. Both id and token must be set.
func New(l log.Logger, id, token string, opts ...Option) (IDiscord, error) {
	if id == "" || token == "" {
		return nil, errWebhookRequired
	}
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &discordImpl{
		l:       l,
		webhook: webhookInfo{id: id, token: token},
		config:  cfg,
		client:  newHTTPClient(cfg.Timeout),
	}, nil
}

// Option tweaks Config.
type Option func(*Config)

// WithBaseURL points the client at another webhook host.
func WithBaseURL(u string) Option {
	return func(c *Config) { c.BaseURL = u }
}

// WithRetry overrides the retry policy.
func WithRetry(count int, delay time.Duration) Option {
	return func(c *Config) {
		c.RetryCount = count
		c.RetryDelay = delay
	}
}
