// Package availability computes per-day remaining capacity of a listing
// against its already-accepted bids.
package availability

import (
	model "bid-engine/internal/models"
	"context"
	"fmt"
	"time"
)

// Result of checking a date range against a listing's inventory
type Result struct {
	IsOverbooked   bool       `json:"is_overbooked"`
	OverbookedDate *time.Time `json:"overbooked_date,omitempty"`
	// AvailableSlots is the smallest remaining capacity of any night in the range
	AvailableSlots int `json:"available_slots"`
}

// Counter is the storage query the checker runs once per night
type Counter interface {
	CountClaimedBidsOnDay(ctx context.Context, listingID string, day time.Time, excludeBidID string) (int, error)
}

// Checker is stateless; every call reads the current accepted bids from storage
type Checker struct {
	counter Counter
}

// NewChecker creates a new availability checker
func NewChecker(counter Counter) *Checker {
	return &Checker{counter: counter}
}

// Check walks every night in [checkIn, checkOut) and stops at the first night whose
// claimed count has reached maxInventory. A bid claims a night once it is ACCEPTED and
// its checkout has started; bids accepted but never checked out do not hold stock. excludeBidID, when set, is never
// counted, so a bid can be re-checked against everyone but itself.
func (c *Checker) Check(ctx context.Context, listingID string, maxInventory int, checkIn, checkOut time.Time, excludeBidID string) (Result, error) {
	res := Result{AvailableSlots: maxInventory}

	var walkErr error
	model.EachNight(checkIn, checkOut, func(day time.Time) bool {
		count, err := c.counter.CountClaimedBidsOnDay(ctx, listingID, day, excludeBidID)
		if err != nil {
			walkErr = fmt.Errorf("availability: count claimed bids on %s: %w", day.Format(model.DateLayout), err)
			return false
		}
		if count >= maxInventory {
			d := day
			res = Result{IsOverbooked: true, OverbookedDate: &d, AvailableSlots: 0}
			return false
		}
		if slots := maxInventory - count; slots < res.AvailableSlots {
			res.AvailableSlots = slots
		}
		return true
	})
	if walkErr != nil {
		return Result{}, walkErr
	}
	return res, nil
}
