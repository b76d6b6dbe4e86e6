package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ListingStatus is the publication state of a listing
type ListingStatus string

const (
	ListingDraft  ListingStatus = "DRAFT"
	ListingLive   ListingStatus = "LIVE"
	ListingPaused ListingStatus = "PAUSED"
)

// BidStatus is the lifecycle state of a bid
type BidStatus string

const (
	BidPending  BidStatus = "PENDING"
	BidAccepted BidStatus = "ACCEPTED"
	BidRejected BidStatus = "REJECTED"
)

// PaymentStatus is the lifecycle state of the payment attached to a bid
type PaymentStatus string

const (
	PaymentPending        PaymentStatus = "PENDING"
	PaymentRequiresAction PaymentStatus = "REQUIRES_ACTION"
	PaymentAuthorized     PaymentStatus = "AUTHORIZED"
	PaymentCaptured       PaymentStatus = "CAPTURED"
	PaymentCancelled      PaymentStatus = "CANCELLED"
	PaymentFailed         PaymentStatus = "FAILED"
	PaymentExpired        PaymentStatus = "EXPIRED"
)

// IsSettled reports whether money has been secured for the payment
func (s PaymentStatus) IsSettled() bool {
	return s == PaymentAuthorized || s == PaymentCaptured
}

// IsInFlight reports whether a gateway intent is still awaiting the buyer
func (s PaymentStatus) IsInFlight() bool {
	return s == PaymentPending || s == PaymentRequiresAction
}

// HoldsInventory reports whether a bid with this payment occupies its nights
func (s PaymentStatus) HoldsInventory() bool {
	return s.IsInFlight() || s.IsSettled()
}

// AllowsNewIntent reports whether checkout may point the payment at a fresh gateway intent
func (s PaymentStatus) AllowsNewIntent() bool {
	return s == PaymentFailed || s == PaymentCancelled || s == PaymentExpired
}

// Listing represents a bookable property with a finite per-day inventory
type Listing struct {
	ListingID              string          `json:"listing_id"`
	OwnerID                string          `json:"owner_id"`
	OwnerEmail             string          `json:"owner_email"`
	Title                  string          `json:"title"`
	Status                 ListingStatus   `json:"status"`
	MinimumBid             decimal.Decimal `json:"minimum_bid"`
	RetailPrice            decimal.Decimal `json:"retail_price"`
	MaxInventory           int             `json:"max_inventory"`
	BlackoutDates          []time.Time     `json:"blackout_dates"`
	AutoAcceptAboveMinimum bool            `json:"auto_accept_above_minimum"`
}

// Bid represents a bidder's proposed nightly price for a date range on a listing.
// The stay covers the half-open range [CheckInDate, CheckOutDate).
type Bid struct {
	BidID           string          `json:"bid_id"`
	ListingID       string          `json:"listing_id"`
	BidderID        string          `json:"bidder_id"`
	BidderEmail     string          `json:"bidder_email"`
	CheckInDate     time.Time       `json:"check_in_date"`
	CheckOutDate    time.Time       `json:"check_out_date"`
	BidPerNight     decimal.Decimal `json:"bid_per_night"`
	TotalNights     int             `json:"total_nights"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	Status          BidStatus       `json:"status"`
	RejectionReason string          `json:"rejection_reason,omitempty"`

	PlatformCommission *decimal.Decimal `json:"platform_commission,omitempty"`
	PayableToHotel     *decimal.Decimal `json:"payable_to_hotel,omitempty"`

	PayoutMethod  string     `json:"payout_method,omitempty"`
	IsPaidToHotel bool       `json:"is_paid_to_hotel"`
	PaidToHotelAt *time.Time `json:"paid_to_hotel_at,omitempty"`
	PayoutNotes   string     `json:"payout_notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Covers reports whether the bid occupies the given calendar day
func (b Bid) Covers(day time.Time) bool {
	return !day.Before(b.CheckInDate) && day.Before(b.CheckOutDate)
}

// Payment tracks the gateway charge for an accepted bid. One per bid.
type Payment struct {
	PaymentID     string          `json:"payment_id"`
	BidID         string          `json:"bid_id"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Status        PaymentStatus   `json:"status"`
	IntentID      string          `json:"intent_id"`
	ClientSecret  string          `json:"client_secret,omitempty"`
	AuthorizedAt  *time.Time      `json:"authorized_at,omitempty"`
	CapturedAt    *time.Time      `json:"captured_at,omitempty"`
	CancelledAt   *time.Time      `json:"cancelled_at,omitempty"`
	FailedAt      *time.Time      `json:"failed_at,omitempty"`
	FailureReason string          `json:"failure_reason,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// PaymentTransition describes a status change reported by the gateway
type PaymentTransition struct {
	Status        PaymentStatus
	At            time.Time
	FailureReason string
}

// PayoutUpdate carries optional payout fields; nil means unchanged
type PayoutUpdate struct {
	PayoutMethod  *string
	IsPaidToHotel *bool
	PayoutNotes   *string
}
