package handler

import (
	"context"
	"net/http"
	"time"

	"bid-engine/internal/availability"
	bidding "bid-engine/internal/biddingService"
	model "bid-engine/internal/models"
	"bid-engine/services/bidding/helpers"
	"bid-engine/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=bidding_handler.go -destination=mock_bidding_handler.go -package=handler

type BiddingServiceInterface interface {
	CreateBid(ctx context.Context, in bidding.CreateBidInput) (bidding.CreateBidResult, error)
	UpdateStatus(ctx context.Context, bidID string, actor model.Actor, status model.BidStatus, reason string) (model.Bid, error)
	UpdatePayout(ctx context.Context, bidID string, actor model.Actor, upd model.PayoutUpdate) (model.Bid, error)
	GetBid(ctx context.Context, bidID string, actor model.Actor) (model.Bid, error)
	ListBidsByListing(ctx context.Context, listingID string, actor model.Actor) ([]model.Bid, error)
	ListBidsByBidder(ctx context.Context, bidderID string, actor model.Actor) ([]model.Bid, error)
	CheckAvailability(ctx context.Context, listingID string, checkIn, checkOut time.Time) (availability.Result, error)
}

type BiddingHandler struct {
	service BiddingServiceInterface
}

func NewBiddingHandler(service BiddingServiceInterface) *BiddingHandler {
	return &BiddingHandler{service: service}
}

// CreateBidHandler handles POST /bids
func (h *BiddingHandler) CreateBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateBidHandler", err)
		return
	}

	// binding already checked the format
	checkIn, _ := model.ParseDay(req.CheckInDate)
	checkOut, _ := model.ParseDay(req.CheckOutDate)
	actor := helpers.ActorFrom(c)

	result, err := h.service.CreateBid(c.Request.Context(), bidding.CreateBidInput{
		ListingID:   req.ListingID,
		Bidder:      actor,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		BidPerNight: req.BidPerNight,
	})
	if err != nil {
		helpers.WriteError(c, err)
		utils.Error("CreateBidHandler: failed to create bid", map[string]any{
			"handler":    "CreateBidHandler",
			"listing_id": req.ListingID,
			"user_id":    actor.ID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewBidResponse(result.Bid), result.Message)
	helpers.LogSuccess("CreateBidHandler", "bid recorded successfully", map[string]any{
		"bid_id":     result.Bid.BidID,
		"listing_id": result.Bid.ListingID,
		"user_id":    actor.ID,
		"status":     result.Bid.Status,
	})
}

// GetBidHandler handles GET /bids/:bid_id
func (h *BiddingHandler) GetBidHandler(c *gin.Context) {
	bidID := c.Param("bid_id")
	bid, err := h.service.GetBid(c.Request.Context(), bidID, helpers.ActorFrom(c))
	if err != nil {
		helpers.WriteError(c, err)
		utils.Warn("GetBidHandler: error retrieving bid", map[string]any{"bid_id": bidID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewBidResponse(bid), "bid retrieved successfully")
}

// UpdateStatusHandler handles PATCH /bids/:bid_id/status
func (h *BiddingHandler) UpdateStatusHandler(c *gin.Context) {
	var req helpers.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateStatusHandler", err)
		return
	}

	bidID := c.Param("bid_id")
	actor := helpers.ActorFrom(c)
	bid, err := h.service.UpdateStatus(c.Request.Context(), bidID, actor, model.BidStatus(req.Status), req.RejectionReason)
	if err != nil {
		helpers.WriteError(c, err)
		utils.Warn("UpdateStatusHandler: failed to update bid status", map[string]any{
			"bid_id":  bidID,
			"user_id": actor.ID,
			"status":  req.Status,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewBidResponse(bid), "bid status updated successfully")
	helpers.LogSuccess("UpdateStatusHandler", "bid status updated", map[string]any{
		"bid_id":  bidID,
		"user_id": actor.ID,
		"status":  bid.Status,
	})
}

// UpdatePayoutHandler handles PATCH /bids/:bid_id/payout
func (h *BiddingHandler) UpdatePayoutHandler(c *gin.Context) {
	var req helpers.UpdatePayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdatePayoutHandler", err)
		return
	}

	bidID := c.Param("bid_id")
	actor := helpers.ActorFrom(c)
	bid, err := h.service.UpdatePayout(c.Request.Context(), bidID, actor, model.PayoutUpdate{
		PayoutMethod:  req.PayoutMethod,
		IsPaidToHotel: req.IsPaidToHotel,
		PayoutNotes:   req.PayoutNotes,
	})
	if err != nil {
		helpers.WriteError(c, err)
		utils.Warn("UpdatePayoutHandler: failed to update payout", map[string]any{
			"bid_id":  bidID,
			"user_id": actor.ID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewBidResponse(bid), "payout updated successfully")
	helpers.LogSuccess("UpdatePayoutHandler", "payout updated", map[string]any{
		"bid_id":           bidID,
		"is_paid_to_hotel": bid.IsPaidToHotel,
	})
}

// GetBidsByListingHandler handles GET /listings/:listing_id/bids
func (h *BiddingHandler) GetBidsByListingHandler(c *gin.Context) {
	listingID := c.Param("listing_id")
	bids, err := h.service.ListBidsByListing(c.Request.Context(), listingID, helpers.ActorFrom(c))
	if err != nil {
		helpers.WriteError(c, err)
		utils.Warn("GetBidsByListingHandler: error retrieving bids", map[string]any{"listing_id": listingID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewBidResponses(bids), "bids retrieved successfully")
	helpers.LogSuccess("GetBidsByListingHandler", "bids retrieved successfully", map[string]any{
		"listing_id": listingID,
		"count":      len(bids),
	})
}

// GetBidsByUserHandler handles GET /users/:user_id/bids
func (h *BiddingHandler) GetBidsByUserHandler(c *gin.Context) {
	userID := c.Param("user_id")
	bids, err := h.service.ListBidsByBidder(c.Request.Context(), userID, helpers.ActorFrom(c))
	if err != nil {
		helpers.WriteError(c, err)
		utils.Warn("GetBidsByUserHandler: error retrieving bids", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewBidResponses(bids), "bids retrieved successfully")
	helpers.LogSuccess("GetBidsByUserHandler", "bids retrieved successfully", map[string]any{
		"user_id":    userID,
		"bids_count": len(bids),
	})
}

// GetAvailabilityHandler handles GET /listings/:listing_id/availability
func (h *BiddingHandler) GetAvailabilityHandler(c *gin.Context) {
	var q helpers.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		helpers.HandleBindError(c, "GetAvailabilityHandler", err)
		return
	}

	listingID := c.Param("listing_id")
	checkIn, _ := model.ParseDay(q.CheckIn)
	checkOut, _ := model.ParseDay(q.CheckOut)

	res, err := h.service.CheckAvailability(c.Request.Context(), listingID, checkIn, checkOut)
	if err != nil {
		helpers.WriteError(c, err)
		utils.Warn("GetAvailabilityHandler: availability check failed", map[string]any{"listing_id": listingID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewAvailabilityResponse(listingID, checkIn, checkOut, res), "availability retrieved successfully")
}
