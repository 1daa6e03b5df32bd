package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     30 * time.Second,
		},
	}
}

// DefaultConfig returns the production settings.
func DefaultConfig() Config {
	return Config{
		BaseURL:    defaultBaseURL,
		Timeout:    DefaultTimeout,
		RetryCount: DefaultRetryCount,
		RetryDelay: DefaultRetryDelay,
		Username:   DefaultUsername,
	}
}

func (d *discordImpl) webhookURL() string {
	return fmt.Sprintf(webhookURLTemplate, d.config.BaseURL, d.webhook.id, d.webhook.token)
}

func (d *discordImpl) Close() error {
	d.client.CloseIdleConnections()
	return nil
}

// ReportBug posts message as a red embed, truncated to the embed description limit.
func (d *discordImpl) ReportBug(ctx context.Context, message string) error {
	if len(message) > ReportBugDescLen-6 {
		message = message[:ReportBugDescLen-9] + "..."
	}
	return d.sendWithRetry(ctx, &WebhookPayload{
		Username: d.config.Username,
		Embeds: []Embed{{
			Title:       ReportBugTitle,
			Description: fmt.Sprintf("```%s```", message),
			Color:       ColorError,
			Timestamp:   time.Now().Format(time.RFC3339),
		}},
	})
}

func (d *discordImpl) sendWithRetry(ctx context.Context, payload *WebhookPayload) error {
	var lastErr error

	for attempt := 0; attempt <= d.config.RetryCount; attempt++ {
		if attempt > 0 {
			if d.l != nil {
				d.l.Infof(ctx, "pkg.discord.sendWithRetry: retrying attempt %d/%d", attempt, d.config.RetryCount)
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(d.config.RetryDelay):
			}
		}

		err := d.sendRequest(ctx, payload)
		if err == nil {
			return nil
		}

		lastErr = err
		if d.l != nil {
			d.l.Warnf(ctx, "pkg.discord.sendWithRetry: attempt %d failed: %v", attempt+1, err)
		}
	}

	return fmt.Errorf("failed after %d attempts, last error: %w", d.config.RetryCount+1, lastErr)
}

func (d *discordImpl) sendRequest(ctx context.Context, payload *WebhookPayload) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.webhookURL(), bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", UserAgent)

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("discord webhook returned status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}
