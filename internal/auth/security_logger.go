package auth

import (
	"context"
	"time"

	"lldap-gateway/pkg/log"
)

// SecurityEventType represents the type of security event
type SecurityEventType string

const (
	SecurityEventAuthenticationFailure SecurityEventType = "authentication_failure"
	SecurityEventAuthorizationFailure  SecurityEventType = "authorization_failure"
	SecurityEventInvalidInput          SecurityEventType = "invalid_input"
)

// SecurityEvent represents a security-relevant event
type SecurityEvent struct {
	Type      SecurityEventType `json:"type"`
	User      string            `json:"user,omitempty"`
	Path      string            `json:"path,omitempty"`
	Reason    string            `json:"reason"`
	Timestamp time.Time         `json:"timestamp"`
}

// SecurityLogger logs security-relevant events. Passwords and tokens are never logged.
type SecurityLogger struct {
	logger log.Logger
	clock  func() time.Time
}

// NewSecurityLogger creates a new SecurityLogger
func NewSecurityLogger(logger log.Logger) *SecurityLogger {
	return &SecurityLogger{
		logger: logger,
		clock:  time.Now,
	}
}

// LogAuthenticationFailure logs a rejected bind.
func (sl *SecurityLogger) LogAuthenticationFailure(ctx context.Context, user, reason string) SecurityEvent {
	event := SecurityEvent{
		Type:      SecurityEventAuthenticationFailure,
		User:      user,
		Reason:    reason,
		Timestamp: sl.clock(),
	}
	sl.logger.Warnf(ctx, "SECURITY: Authentication failure - user=%s reason=%s", event.User, event.Reason)
	return event
}

// LogAuthorizationFailure logs a request the auth gate turned away.
func (sl *SecurityLogger) LogAuthorizationFailure(ctx context.Context, user, path, reason string) SecurityEvent {
	event := SecurityEvent{
		Type:      SecurityEventAuthorizationFailure,
		User:      user,
		Path:      path,
		Reason:    reason,
		Timestamp: sl.clock(),
	}
	sl.logger.Warnf(ctx, "SECURITY: Authorization failure - user=%s path=%s reason=%s", event.User, event.Path, event.Reason)
	return event
}

// LogInvalidInput logs a request rejected before authentication, such as a malformed cookie.
func (sl *SecurityLogger) LogInvalidInput(ctx context.Context, path, reason string) SecurityEvent {
	event := SecurityEvent{
		Type:      SecurityEventInvalidInput,
		Path:      path,
		Reason:    reason,
		Timestamp: sl.clock(),
	}
	sl.logger.Warnf(ctx, "SECURITY: Invalid input - path=%s reason=%s", event.Path, event.Reason)
	return event
}
