package server

import (
	"strings"
	"time"

	"auction-dashboard/utils"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware logs incoming requests with timing. Fragment polling
// is frequent, so those requests only log at debug level unless they fail.
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	fields := map[string]any{
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"status":     c.Writer.Status(),
		"latency":    time.Since(start).String(),
		"request_id": c.GetString(RequestIDKey),
	}
	if strings.HasPrefix(c.FullPath(), "/fragments/") && c.Writer.Status() < 400 {
		utils.Debug("HTTP Request", fields)
		return
	}
	utils.Info("HTTP Request", fields)
}

// RequestIDKey is the gin context key holding the request correlation id
const RequestIDKey = "request_id"

// RequestIDMiddleware tags every request with a correlation id, reusing the
// caller's X-Request-ID when present
func RequestIDMiddleware(c *gin.Context) {
	id := c.GetHeader("X-Request-ID")
	if id == "" {
		id = utils.NewCorrelationID()
	}
	c.Set(RequestIDKey, id)
	c.Header("X-Request-ID", id)
	c.Next()
}
