package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pradiptarana/checkout-api/internal/notifications"
	"github.com/pradiptarana/checkout-api/internal/payments"
)

// HandlerConfig groups the collaborator clients the handlers depend on.
// The clients are constructed once at startup and are read-only afterwards.
type HandlerConfig struct {
	Snap      payments.SnapAPI
	Messaging notifications.MessagingAPI
}

const requestIDKey = "request_id"

// RequestID makes sure every request carries an X-Request-Id, generating
// one when the caller did not send it. The id is echoed in the response and
// attached to log fields.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Writer.Header().Set("X-Request-Id", id)
		c.Next()
	}
}
