package repository

import (
	model "bid-engine/internal/models"
	"time"
)

// applyPayout sets payout fields. paidToHotelAt is stamped only on the false->true edge
// and cleared when the flag goes back to false.
func applyPayout(b model.Bid, upd model.PayoutUpdate, now time.Time) model.Bid {
	if upd.PayoutMethod != nil {
		b.PayoutMethod = *upd.PayoutMethod
	}
	if upd.PayoutNotes != nil {
		b.PayoutNotes = *upd.PayoutNotes
	}
	if upd.IsPaidToHotel != nil {
		switch {
		case *upd.IsPaidToHotel && !b.IsPaidToHotel:
			stamp := now
			b.PaidToHotelAt = &stamp
		case !*upd.IsPaidToHotel:
			b.PaidToHotelAt = nil
		}
		b.IsPaidToHotel = *upd.IsPaidToHotel
	}
	b.UpdatedAt = now
	return b
}

// overlapsPending reports whether existing is a PENDING bid by the same bidder on the
// same listing whose dates touch fresh's, boundaries included
func overlapsPending(existing, fresh model.Bid) bool {
	if existing.ListingID != fresh.ListingID || existing.BidderID != fresh.BidderID || existing.Status != model.BidPending {
		return false
	}
	return !fresh.CheckInDate.After(existing.CheckOutDate) && !fresh.CheckOutDate.Before(existing.CheckInDate)
}

// replaceIntent points an existing payment at a fresh gateway intent and resets it to PENDING
func replaceIntent(existing, fresh model.Payment) model.Payment {
	existing.Amount = fresh.Amount
	existing.Currency = fresh.Currency
	existing.IntentID = fresh.IntentID
	existing.ClientSecret = fresh.ClientSecret
	existing.Status = model.PaymentPending
	existing.FailureReason = ""
	existing.FailedAt = nil
	existing.CancelledAt = nil
	existing.UpdatedAt = fresh.UpdatedAt
	return existing
}

// applyTransition returns p moved to t.Status. A captured payment is final; any other
// target is refused and reported as unchanged.
func applyTransition(p model.Payment, t model.PaymentTransition) (model.Payment, bool) {
	if p.Status == model.PaymentCaptured && t.Status != model.PaymentCaptured {
		return p, false
	}

	at := t.At
	switch t.Status {
	case model.PaymentCaptured:
		if p.CapturedAt == nil {
			p.CapturedAt = &at
		}
	case model.PaymentAuthorized:
		if p.AuthorizedAt == nil {
			p.AuthorizedAt = &at
		}
	case model.PaymentCancelled:
		p.CancelledAt = &at
	case model.PaymentFailed:
		p.FailedAt = &at
		p.FailureReason = t.FailureReason
	}
	p.Status = t.Status
	p.UpdatedAt = at
	return p, true
}
