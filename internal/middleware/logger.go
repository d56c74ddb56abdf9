package middleware

import (
	"fmt"
	"io"
	"time"

	"github.com/gin-gonic/gin"
)

// NewRequestLogger creates an access log middleware writing one plain line per
// request to out. Requests to skipPaths are not logged.
func NewRequestLogger(out io.Writer, skipPaths ...string) gin.HandlerFunc {
	return gin.LoggerWithConfig(gin.LoggerConfig{
		Formatter: formatRequestLog,
		Output:    out,
		SkipPaths: skipPaths,
	})
}

// formatRequestLog renders a log line without ANSI color codes
func formatRequestLog(param gin.LogFormatterParams) string {
	var requestID string
	if param.Request != nil {
		requestID = param.Request.Header.Get(RequestIDHeader)
	}

	line := fmt.Sprintf("%s | %3d | %13v | %15s | %-7s %q | request_id=%s",
		param.TimeStamp.Format(time.RFC3339),
		param.StatusCode,
		param.Latency,
		param.ClientIP,
		param.Method,
		param.Path,
		requestID,
	)
	if param.ErrorMessage != "" {
		line += " | " + param.ErrorMessage
	}
	return line + "\n"
}
