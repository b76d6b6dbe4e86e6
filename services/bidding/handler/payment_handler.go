package handler

import (
	"context"
	"net/http"

	"bid-engine/internal/gateway"
	model "bid-engine/internal/models"
	"bid-engine/services/bidding/helpers"
	"bid-engine/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=payment_handler.go -destination=mock_payment_handler.go -package=handler

type PaymentServiceInterface interface {
	CreateIntent(ctx context.Context, bidID string, requester model.Actor) (model.Payment, error)
	ConfirmStatus(ctx context.Context, paymentID string, requester model.Actor) (model.Payment, error)
	GetPaymentForBid(ctx context.Context, bidID string, actor model.Actor) (model.Payment, error)
	IngestWebhook(ctx context.Context, evt gateway.Event) error
}

type PaymentHandler struct {
	service PaymentServiceInterface
}

func NewPaymentHandler(service PaymentServiceInterface) *PaymentHandler {
	return &PaymentHandler{service: service}
}

// CreateIntentHandler handles POST /bids/:bid_id/payment-intent
func (h *PaymentHandler) CreateIntentHandler(c *gin.Context) {
	bidID := c.Param("bid_id")
	actor := helpers.ActorFrom(c)

	payment, err := h.service.CreateIntent(c.Request.Context(), bidID, actor)
	if err != nil {
		helpers.WriteError(c, err)
		utils.Warn("CreateIntentHandler: checkout failed", map[string]any{
			"bid_id":  bidID,
			"user_id": actor.ID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewPaymentResponse(payment), "payment intent ready")
	helpers.LogSuccess("CreateIntentHandler", "payment intent ready", map[string]any{
		"bid_id":     bidID,
		"payment_id": payment.PaymentID,
		"status":     payment.Status,
	})
}

// GetPaymentHandler handles GET /bids/:bid_id/payment
func (h *PaymentHandler) GetPaymentHandler(c *gin.Context) {
	bidID := c.Param("bid_id")
	payment, err := h.service.GetPaymentForBid(c.Request.Context(), bidID, helpers.ActorFrom(c))
	if err != nil {
		helpers.WriteError(c, err)
		utils.Warn("GetPaymentHandler: error retrieving payment", map[string]any{"bid_id": bidID, "error": err.Error()})
		return
	}

	// the client secret is only handed out at checkout
	resp := helpers.NewPaymentResponse(payment)
	resp.ClientSecret = ""
	utils.JSONResponse(c, http.StatusOK, resp, "payment retrieved successfully")
}

// ConfirmPaymentHandler handles POST /payments/:payment_id/confirm
func (h *PaymentHandler) ConfirmPaymentHandler(c *gin.Context) {
	paymentID := c.Param("payment_id")
	actor := helpers.ActorFrom(c)

	payment, err := h.service.ConfirmStatus(c.Request.Context(), paymentID, actor)
	if err != nil {
		helpers.WriteError(c, err)
		utils.Warn("ConfirmPaymentHandler: status confirmation failed", map[string]any{
			"payment_id": paymentID,
			"user_id":    actor.ID,
			"error":      err.Error(),
		})
		return
	}

	resp := helpers.NewPaymentResponse(payment)
	resp.ClientSecret = ""
	utils.JSONResponse(c, http.StatusOK, resp, "payment status confirmed")
	helpers.LogSuccess("ConfirmPaymentHandler", "payment status confirmed", map[string]any{
		"payment_id": paymentID,
		"status":     payment.Status,
	})
}
