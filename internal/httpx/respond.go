package httpx

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Envelope wraps every successful payload. trace_id and timestamp are emitted
// per response and never persisted.
// swagger:model Envelope
type Envelope struct {
	Order            any    `json:"order"`
	Timestamp        string `json:"timestamp"`
	TraceID          string `json:"trace_id"`
	HTTPResponseCode int    `json:"http_response_code"`
}

// ErrorEnvelope is the failure counterpart of Envelope.
// swagger:model ErrorEnvelope
type ErrorEnvelope struct {
	Error            string `json:"error"`
	Timestamp        string `json:"timestamp"`
	TraceID          string `json:"trace_id"`
	HTTPResponseCode int    `json:"http_response_code"`
}

// OK writes a success envelope around order (a wire order, a slice of them,
// or nil for an explicit "no order" result).
func OK(c *gin.Context, code int, order any) {
	c.JSON(code, Envelope{
		Order:            order,
		Timestamp:        time.Now().UTC().Format(time.RFC3339Nano),
		TraceID:          traceID(c),
		HTTPResponseCode: code,
	})
}

// Fail writes an error envelope and stops further handlers.
func Fail(c *gin.Context, code int, msg string) {
	c.AbortWithStatusJSON(code, ErrorEnvelope{
		Error:            msg,
		Timestamp:        time.Now().UTC().Format(time.RFC3339Nano),
		TraceID:          traceID(c),
		HTTPResponseCode: code,
	})
}

func traceID(c *gin.Context) string {
	if rid, ok := c.Get("rid"); ok {
		if s, ok := rid.(string); ok && s != "" {
			return s
		}
	}
	return uuid.NewString()
}
