package server

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/worthyretail/xray/internal/contract"
)

const (
	traceIDKey    = "trace_id"
	traceIDHeader = "X-Trace-ID"
)

// TraceIDMiddleware tags every request with a trace id, reusing the caller's when present.
func TraceIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader(traceIDHeader)
		if traceID == "" {
			traceID = uuid.New().String()
		}
		c.Set(traceIDKey, traceID)
		c.Writer.Header().Set(traceIDHeader, traceID)
		c.Next()
	}
}

// RequestLogger logs and measures each request after it completes.
func RequestLogger(metrics *Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		elapsed := time.Since(start)
		status := c.Writer.Status()
		metrics.ObserveRequest(c.Request.Method, route, strconv.Itoa(status), elapsed)

		contract.Logger().Debugw("Handled request",
			"method", c.Request.Method,
			"route", route,
			"status", status,
			"latency", elapsed,
			"trace_id", c.GetString(traceIDKey),
		)
	}
}
