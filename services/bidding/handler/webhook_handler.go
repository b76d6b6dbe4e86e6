package handler

import (
	"errors"
	"io"
	"net/http"

	"bid-engine/internal/biddingerrors"
	"bid-engine/internal/gateway"
	"bid-engine/services/bidding/helpers"
	"bid-engine/utils"

	"github.com/gin-gonic/gin"
)

const maxWebhookBody = 64 << 10

// WebhookParser verifies and decodes a gateway webhook payload
type WebhookParser interface {
	ParseWebhook(payload []byte, signature string) (gateway.Event, error)
}

type WebhookHandler struct {
	parser  WebhookParser
	service PaymentServiceInterface
}

func NewWebhookHandler(parser WebhookParser, service PaymentServiceInterface) *WebhookHandler {
	return &WebhookHandler{parser: parser, service: service}
}

// StripeWebhookHandler handles POST /webhooks/stripe
func (h *WebhookHandler) StripeWebhookHandler(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		helpers.HandleBindError(c, "StripeWebhookHandler", err)
		return
	}

	evt, err := h.parser.ParseWebhook(payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		helpers.WriteError(c, err)
		utils.Warn("StripeWebhookHandler: rejected webhook", map[string]any{"error": err.Error()})
		return
	}

	err = h.service.IngestWebhook(c.Request.Context(), evt)
	switch {
	case errors.Is(err, biddingerrors.ErrNotFound):
		// unknown intents are dropped, a retry would not find them either
		utils.Warn("StripeWebhookHandler: no payment for event", map[string]any{
			"event_id":  evt.ID,
			"type":      evt.Type,
			"intent_id": evt.IntentID,
		})
	case err != nil:
		helpers.WriteError(c, err)
		utils.Error("StripeWebhookHandler: failed to apply event", map[string]any{
			"event_id": evt.ID,
			"type":     evt.Type,
			"error":    err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"received": true}, "event acknowledged")
	helpers.LogSuccess("StripeWebhookHandler", "event acknowledged", map[string]any{
		"event_id": evt.ID,
		"type":     evt.Type,
	})
}
