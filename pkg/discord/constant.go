package discord

import "time"

const (
	defaultBaseURL     = "https://discord.com/api/webhooks"
	webhookURLTemplate = "%s/%s/%s"

	ColorError = 15158332

	MaxTitleLen      = 256
	ReportBugDescLen = 4096
)

const (
	DefaultTimeout    = 30 * time.Second
	DefaultRetryCount = 3
	DefaultRetryDelay = 1 * time.Second
)

const (
	DefaultUsername = "LLDAP Gateway"
	UserAgent       = "LLDAP-Gateway/1.0"
	ReportBugTitle  = "LLDAP Gateway Error Report"
)
