package response

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"runtime"
	"strings"

	"lldap-gateway/pkg/discord"
	"lldap-gateway/pkg/errors"

	"github.com/gin-gonic/gin"
)

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Text sends 200 text/plain with body.
func Text(c *gin.Context, body string) {
	c.String(http.StatusOK, body)
}

func parseError(err error, c *gin.Context, d discord.IDiscord) (int, string) {
	switch parsedErr := err.(type) {
	case *errors.AuthenticationError:
		return http.StatusUnauthorized, parsedErr.Message
	case *errors.BackendError:
		if d != nil {
			sendDiscordMessageAsync(d, buildInternalServerErrorDataForReportBug(c, parsedErr.Error(), nil))
		}
		return http.StatusInternalServerError, parsedErr.Message
	case *errors.ValidationError:
		return http.StatusBadRequest, parsedErr.Error()
	case *errors.HTTPError:
		statusCode := parsedErr.StatusCode
		if statusCode == 0 {
			statusCode = http.StatusBadRequest
		}
		return statusCode, parsedErr.Message
	default:
		if d != nil && err != nil {
			sendDiscordMessageAsync(d, buildInternalServerErrorDataForReportBug(c, err.Error(), captureStackTrace()))
		}
		return http.StatusInternalServerError, DefaultErrorMessage
	}
}

// Error renders err as a text/plain response with the status of its kind.
func Error(c *gin.Context, err error, d discord.IDiscord) {
	statusCode, msg := parseError(err, c, d)
	c.String(statusCode, msg)
}

// AbortWithError is Error for middlewares: it also stops the handler chain.
func AbortWithError(c *gin.Context, err error, d discord.IDiscord) {
	Error(c, err, d)
	c.Abort()
}

// PanicError handles panic recovery and sends error response.
func PanicError(c *gin.Context, err any, d discord.IDiscord) {
	var e error
	switch v := err.(type) {
	case nil:
		e = fmt.Errorf("panic with nil value")
	case error:
		e = v
	default:
		e = fmt.Errorf("%v", v)
	}
	statusCode, msg := parseError(e, c, d)
	// a panicking handler never gets to pick its status
	if statusCode != http.StatusInternalServerError {
		statusCode, msg = http.StatusInternalServerError, DefaultErrorMessage
	}
	c.String(statusCode, msg)
}

func captureStackTrace() []string {
	var pcs [DefaultStackTraceDepth]uintptr
	n := runtime.Callers(2, pcs[:])
	if n == 0 {
		return nil
	}
	var stackTrace []string
	for _, pc := range pcs[:n] {
		f := runtime.FuncForPC(pc)
		if f != nil {
			file, line := f.FileLine(pc)
			stackTrace = append(stackTrace, fmt.Sprintf("%s:%d %s", file, line, f.Name()))
		}
	}
	return stackTrace
}

func sendDiscordMessageAsync(d discord.IDiscord, message string) {
	if d == nil || message == "" {
		return
	}
	go func() {
		for _, msg := range splitMessageForDiscord(message) {
			if err := d.ReportBug(context.Background(), msg); err != nil {
				log.Printf("pkg.response.sendDiscordMessageAsync.ReportBug: %v\n", err)
			}
		}
	}()
}

func splitMessageForDiscord(message string) []string {
	var chunks []string
	var current string
	lines := strings.Split(message, "\n")
	for _, line := range lines {
		line += "\n"
		if len(current)+len(line) > DiscordMaxMessageLen {
			if current != "" {
				chunks = append(chunks, strings.TrimSuffix(current, "\n"))
				current = ""
			}
			for len(line) > DiscordMaxMessageLen {
				chunks = append(chunks, line[:DiscordMaxMessageLen])
				line = line[DiscordMaxMessageLen:]
			}
		}
		current += line
	}
	if current != "" {
		chunks = append(chunks, strings.TrimSuffix(current, "\n"))
	}
	return chunks
}
