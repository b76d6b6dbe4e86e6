package server

import (
	"net/http"

	"bid-engine/internal/metrics"
	model "bid-engine/internal/models"
	handler "bid-engine/services/bidding/handler"
	"bid-engine/services/bidding/helpers"
	"bid-engine/utils"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(
	biddingService handler.BiddingServiceInterface,
	paymentService handler.PaymentServiceInterface,
	webhooks handler.WebhookParser,
) *gin.Engine {
	if err := helpers.RegisterValidators(); err != nil {
		utils.Fatal("failed to register request validators", map[string]any{"error": err.Error()})
	}

	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging
	router.Use(metrics.Middleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", metrics.Handler())

	biddingHandler := handler.NewBiddingHandler(biddingService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	webhookHandler := handler.NewWebhookHandler(webhooks, paymentService)

	// signed by the gateway, no user identity
	router.POST("/webhooks/stripe", webhookHandler.StripeWebhookHandler)

	operator := RequireRole(model.RoleHotel, model.RoleAdmin)

	bids := router.Group("/bids", RequireIdentity)
	{
		bids.POST("", biddingHandler.CreateBidHandler)
		bids.GET("/:bid_id", biddingHandler.GetBidHandler)
		bids.PATCH("/:bid_id/status", operator, biddingHandler.UpdateStatusHandler)
		bids.PATCH("/:bid_id/payout", operator, biddingHandler.UpdatePayoutHandler)
		bids.POST("/:bid_id/payment-intent", paymentHandler.CreateIntentHandler)
		bids.GET("/:bid_id/payment", paymentHandler.GetPaymentHandler)
	}

	payments := router.Group("/payments", RequireIdentity)
	{
		payments.POST("/:payment_id/confirm", paymentHandler.ConfirmPaymentHandler)
	}

	listings := router.Group("/listings", RequireIdentity)
	{
		listings.GET("/:listing_id/bids", operator, biddingHandler.GetBidsByListingHandler)
		listings.GET("/:listing_id/availability", biddingHandler.GetAvailabilityHandler)
	}

	users := router.Group("/users", RequireIdentity)
	{
		users.GET("/:user_id/bids", biddingHandler.GetBidsByUserHandler)
	}

	return router
}
