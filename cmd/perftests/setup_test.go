package perftests

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"bid-engine/internal/availability"
	bidding "bid-engine/internal/biddingService"
	"bid-engine/internal/gateway"
	model "bid-engine/internal/models"
	"bid-engine/internal/notification"
	payment "bid-engine/internal/paymentService"
	repository "bid-engine/internal/repository"

	"github.com/shopspring/decimal"
)

var seasonStart = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

// stubGateway issues intents without a network round trip
type stubGateway struct {
	seq int64
}

func (g *stubGateway) CreateIntent(context.Context, gateway.CreateIntentParams) (gateway.Intent, error) {
	id := fmt.Sprintf("pi_%d", atomic.AddInt64(&g.seq, 1))
	return gateway.Intent{ID: id, ClientSecret: id + "_secret", Status: gateway.IntentRequiresPaymentMethod}, nil
}

func (g *stubGateway) RetrieveIntent(_ context.Context, id string) (gateway.Intent, error) {
	return gateway.Intent{ID: id, Status: gateway.IntentSucceeded}, nil
}

func (g *stubGateway) ParseWebhook([]byte, string) (gateway.Event, error) {
	return gateway.Event{}, nil
}

type discardNotifier struct{}

func (discardNotifier) Send(context.Context, notification.Kind, string, map[string]string) {}

// setupServices creates the store and services with numListings auto-accepting listings
func setupServices(numListings, maxInventory int) (*repository.MemoryRepo, *bidding.BiddingService, *payment.PaymentService) {
	repo := repository.NewMemoryRepo()
	checker := availability.NewChecker(repo)
	bids := bidding.NewBiddingService(repo, checker, discardNotifier{})
	payments := payment.NewPaymentService(repo, bids, checker, &stubGateway{}, discardNotifier{}, "usd")

	for i := 0; i < numListings; i++ {
		repo.AddListing(model.Listing{
			ListingID:              listingID(i),
			OwnerID:                fmt.Sprintf("hotel_%d", i),
			OwnerEmail:             fmt.Sprintf("hotel_%d@example.com", i),
			Title:                  fmt.Sprintf("Load test room %d", i),
			Status:                 model.ListingLive,
			MinimumBid:             decimal.NewFromInt(50),
			RetailPrice:            decimal.NewFromInt(120),
			MaxInventory:           maxInventory,
			AutoAcceptAboveMinimum: true,
		})
	}
	return repo, bids, payments
}

func listingID(i int) string {
	return fmt.Sprintf("listing_%d", i)
}

func guest(id string) model.Actor {
	return model.Actor{ID: id, Email: id + "@example.com", Role: model.RoleGuest}
}
