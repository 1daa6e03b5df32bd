package discord

import (
	"net/http"
	"time"

	"lldap-gateway/pkg/log"
)

// Config holds the delivery settings of the webhook client.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	RetryCount int
	RetryDelay time.Duration
	Username   string
}

type webhookInfo struct {
	id    string
	token string
}

type discordImpl struct {
	l       log.Logger
	webhook webhookInfo
	config  Config
	client  *http.Client
}

type Embed struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Color       int    `json:"color,omitempty"`
	Timestamp   string `json:"timestamp,omitempty"`
}

type WebhookPayload struct {
	Content  string  `json:"content,omitempty"`
	Username string  `json:"username,omitempty"`
	Embeds   []Embed `json:"embeds,omitempty"`
}
