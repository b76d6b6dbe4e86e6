package helpers

import (
	"time"

	"bid-engine/internal/availability"
	model "bid-engine/internal/models"

	"github.com/shopspring/decimal"
)

// Request/Response DTOs
type PlaceBidRequest struct {
	ListingID    string          `json:"listing_id" binding:"required"`
	CheckInDate  string          `json:"check_in_date" binding:"required,calendar_date"`
	CheckOutDate string          `json:"check_out_date" binding:"required,calendar_date"`
	BidPerNight  decimal.Decimal `json:"bid_per_night" binding:"money"`
}

type UpdateStatusRequest struct {
	Status          string `json:"status" binding:"required,oneof=ACCEPTED REJECTED"`
	RejectionReason string `json:"rejection_reason" binding:"max=500"`
}

type UpdatePayoutRequest struct {
	PayoutMethod  *string `json:"payout_method" binding:"omitempty,max=64"`
	IsPaidToHotel *bool   `json:"is_paid_to_hotel"`
	PayoutNotes   *string `json:"payout_notes" binding:"omitempty,max=1000"`
}

type AvailabilityQuery struct {
	CheckIn  string `form:"check_in" binding:"required,calendar_date"`
	CheckOut string `form:"check_out" binding:"required,calendar_date"`
}

type BidResponse struct {
	BidID              string  `json:"bid_id"`
	ListingID          string  `json:"listing_id"`
	BidderID           string  `json:"bidder_id"`
	CheckInDate        string  `json:"check_in_date"`
	CheckOutDate       string  `json:"check_out_date"`
	BidPerNight        string  `json:"bid_per_night"`
	TotalNights        int     `json:"total_nights"`
	TotalAmount        string  `json:"total_amount"`
	Status             string  `json:"status"`
	RejectionReason    string  `json:"rejection_reason,omitempty"`
	PlatformCommission *string `json:"platform_commission"`
	PayableToHotel     *string `json:"payable_to_hotel"`
	PayoutMethod       string  `json:"payout_method,omitempty"`
	IsPaidToHotel      bool    `json:"is_paid_to_hotel"`
	PaidToHotelAt      *string `json:"paid_to_hotel_at"`
	PayoutNotes        string  `json:"payout_notes,omitempty"`
	CreatedAt          string  `json:"created_at"`
}

type PaymentResponse struct {
	PaymentID     string  `json:"payment_id"`
	BidID         string  `json:"bid_id"`
	Amount        string  `json:"amount"`
	Currency      string  `json:"currency"`
	Status        string  `json:"status"`
	IntentID      string  `json:"intent_id"`
	ClientSecret  string  `json:"client_secret,omitempty"`
	AuthorizedAt  *string `json:"authorized_at"`
	CapturedAt    *string `json:"captured_at"`
	CancelledAt   *string `json:"cancelled_at"`
	FailedAt      *string `json:"failed_at"`
	FailureReason string  `json:"failure_reason,omitempty"`
}

type AvailabilityResponse struct {
	ListingID      string  `json:"listing_id"`
	CheckInDate    string  `json:"check_in_date"`
	CheckOutDate   string  `json:"check_out_date"`
	IsOverbooked   bool    `json:"is_overbooked"`
	OverbookedDate *string `json:"overbooked_date"`
	AvailableSlots int     `json:"available_slots"`
}

func NewBidResponse(b model.Bid) BidResponse {
	return BidResponse{
		BidID:              b.BidID,
		ListingID:          b.ListingID,
		BidderID:           b.BidderID,
		CheckInDate:        b.CheckInDate.Format(model.DateLayout),
		CheckOutDate:       b.CheckOutDate.Format(model.DateLayout),
		BidPerNight:        b.BidPerNight.StringFixed(2),
		TotalNights:        b.TotalNights,
		TotalAmount:        b.TotalAmount.StringFixed(2),
		Status:             string(b.Status),
		RejectionReason:    b.RejectionReason,
		PlatformCommission: money(b.PlatformCommission),
		PayableToHotel:     money(b.PayableToHotel),
		PayoutMethod:       b.PayoutMethod,
		IsPaidToHotel:      b.IsPaidToHotel,
		PaidToHotelAt:      timestamp(b.PaidToHotelAt),
		PayoutNotes:        b.PayoutNotes,
		CreatedAt:          b.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func NewBidResponses(bids []model.Bid) []BidResponse {
	out := make([]BidResponse, 0, len(bids))
	for _, b := range bids {
		out = append(out, NewBidResponse(b))
	}
	return out
}

func NewPaymentResponse(p model.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:     p.PaymentID,
		BidID:         p.BidID,
		Amount:        p.Amount.StringFixed(2),
		Currency:      p.Currency,
		Status:        string(p.Status),
		IntentID:      p.IntentID,
		ClientSecret:  p.ClientSecret,
		AuthorizedAt:  timestamp(p.AuthorizedAt),
		CapturedAt:    timestamp(p.CapturedAt),
		CancelledAt:   timestamp(p.CancelledAt),
		FailedAt:      timestamp(p.FailedAt),
		FailureReason: p.FailureReason,
	}
}

func NewAvailabilityResponse(listingID string, checkIn, checkOut time.Time, r availability.Result) AvailabilityResponse {
	resp := AvailabilityResponse{
		ListingID:      listingID,
		CheckInDate:    checkIn.Format(model.DateLayout),
		CheckOutDate:   checkOut.Format(model.DateLayout),
		IsOverbooked:   r.IsOverbooked,
		AvailableSlots: r.AvailableSlots,
	}
	if r.OverbookedDate != nil {
		d := r.OverbookedDate.Format(model.DateLayout)
		resp.OverbookedDate = &d
	}
	return resp
}

func money(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.StringFixed(2)
	return &s
}

func timestamp(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}
