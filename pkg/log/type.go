package log

import (
	"io"

	"go.uber.org/zap"
)

// ZapConfig holds configuration for the Zap logger.
type ZapConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool

	// Service, when set, is attached to every entry as "service".
	Service string
	// Environment, when set, is attached to every entry as "env".
	Environment string
	// Output defaults to os.Stderr.
	Output io.Writer
}

// zapLogger implements Logger.
type zapLogger struct {
	sugarLogger *zap.SugaredLogger
	cfg         *ZapConfig
}

type loggerKey struct{}
