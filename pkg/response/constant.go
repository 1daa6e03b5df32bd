package response

const (
	DefaultStackTraceDepth = 32
	DefaultErrorMessage    = "Something went wrong"
	DiscordMaxMessageLen   = 4000
)
