package response

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

// redactedHeaders never leave the process in bug reports.
var redactedHeaders = map[string]bool{
	"Authorization": true,
	"Cookie":        true,
}

// buildInternalServerErrorDataForReportBug formats the request and error for Discord.
// Bodies are omitted: /authorize carries passwords.
func buildInternalServerErrorDataForReportBug(c *gin.Context, errString string, backtrace []string) string {
	if c == nil || c.Request == nil {
		return fmt.Sprintf("Error   : %s\n", errString)
	}

	var sb strings.Builder
	sb.WriteString("=============== LLDAP GATEWAY ERROR ================\n")
	sb.WriteString(fmt.Sprintf("Route   : %s\n", c.Request.URL.Path))
	sb.WriteString(fmt.Sprintf("Method  : %s\n", c.Request.Method))
	if id := c.GetString("request_id"); id != "" {
		sb.WriteString(fmt.Sprintf("Request : %s\n", id))
	}
	sb.WriteString("----------------------------------------------------\n")

	if len(c.Request.Header) > 0 {
		sb.WriteString("Headers :\n")
		for key, values := range c.Request.Header {
			if redactedHeaders[key] {
				sb.WriteString(fmt.Sprintf("    %s: [redacted]\n", key))
				continue
			}
			sb.WriteString(fmt.Sprintf("    %s: %s\n", key, strings.Join(values, ", ")))
		}
		sb.WriteString("----------------------------------------------------\n")
	}

	sb.WriteString(fmt.Sprintf("Error   : %s\n", errString))

	if len(backtrace) > 0 {
		sb.WriteString("\nBacktrace:\n")
		for i, line := range backtrace {
			sb.WriteString(fmt.Sprintf("[%d]: %s\n", i, line))
		}
	}

	sb.WriteString("====================================================\n")
	return sb.String()
}
