package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/pradiptarana/checkout-api/internal/metrics"
	"github.com/pradiptarana/checkout-api/internal/notifications"
)

type notifyRequest struct {
	Token        string         `json:"token"`
	OrderDetails map[string]any `json:"orderDetails"`
}

// RegisterNotifyRoutes registers the push-notification endpoint.
//
// The endpoint is deliberately permissive: neither the device token nor
// orderDetails.id is checked before use. A missing token is rejected by the
// provider, and a missing id renders its zero value into the display text.
func RegisterNotifyRoutes(r *gin.Engine, cfg HandlerConfig) {
	sender := notifications.NewSender(cfg.Messaging)

	r.POST("/api/notify", func(c *gin.Context) {
		ctx := c.Request.Context()

		var req notifyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}

		orderID := req.OrderDetails["id"]

		log.WithFields(log.Fields{
			"request_id": c.GetString(requestIDKey),
			"order_id":   orderID,
		}).Info("sending payment notification")

		resp, err := sender.SendPaymentSuccess(ctx, req.Token, orderID)
		if err != nil {
			metrics.NotificationsSent.WithLabelValues("error").Inc()
			log.WithFields(log.Fields{
				"request_id": c.GetString(requestIDKey),
				"order_id":   orderID,
			}).WithError(err).Error("notification send failed")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}

		metrics.NotificationsSent.WithLabelValues("ok").Inc()
		c.JSON(http.StatusOK, gin.H{"success": true, "response": resp})
	})
}
