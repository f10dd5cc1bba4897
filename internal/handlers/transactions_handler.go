package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/pradiptarana/checkout-api/internal/checkout"
	"github.com/pradiptarana/checkout-api/internal/metrics"
	"github.com/pradiptarana/checkout-api/internal/payments"
)

// createTransactionRequest keeps items untyped so that malformed entries
// are rejected by checkout validation, not by JSON binding. Item-level
// failures must surface as 500, and typed binding would turn them into
// 400s.
type createTransactionRequest struct {
	Items any `json:"items"`
}

// RegisterTransactionRoutes registers the transaction-token endpoint.
func RegisterTransactionRoutes(r *gin.Engine, cfg HandlerConfig) {
	gateway := payments.NewGateway(cfg.Snap)

	r.POST("/create-transaction", func(c *gin.Context) {
		var req createTransactionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		tx, err := checkout.BuildTransaction(req.Items)
		if err != nil {
			if errors.Is(err, checkout.ErrEmptyItems) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			// item-level validation failures are reported as processing
			// errors; callers rely on the 500 here
			c.JSON(http.StatusInternalServerError, gin.H{"error": errorMessage(err)})
			return
		}

		log.WithFields(log.Fields{
			"request_id":   c.GetString(requestIDKey),
			"order_id":     tx.OrderID,
			"gross_amount": tx.GrossAmount,
			"item_count":   len(tx.Items),
		}).Info("snap parameter prepared")

		token, err := gateway.CreateToken(tx)
		if err != nil {
			metrics.TransactionTokens.WithLabelValues("error").Inc()
			log.WithFields(log.Fields{
				"request_id": c.GetString(requestIDKey),
				"order_id":   tx.OrderID,
			}).WithError(err).Error("snap token request failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": errorMessage(err)})
			return
		}

		metrics.TransactionTokens.WithLabelValues("ok").Inc()
		metrics.GrossAmount.Observe(float64(tx.GrossAmount))
		log.WithFields(log.Fields{
			"request_id": c.GetString(requestIDKey),
			"order_id":   tx.OrderID,
			"token":      token,
		}).Info("transaction token issued")

		c.JSON(http.StatusOK, gin.H{"token": token})
	})
}

// errorMessage returns the error's message, or a generic fallback when the
// error carries none.
func errorMessage(err error) string {
	if err == nil || err.Error() == "" {
		return "failed to create transaction token"
	}
	return err.Error()
}
