package integrationtests

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"bid-engine/internal/availability"
	bidding "bid-engine/internal/biddingService"
	"bid-engine/internal/gateway"
	model "bid-engine/internal/models"
	"bid-engine/internal/notification"
	payment "bid-engine/internal/paymentService"
	"bid-engine/internal/repository"
	"bid-engine/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v81/webhook"
)

const webhookSecret = "whsec_integration"

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeGateway hands out sequential intents and reports whatever status a test sets.
// Webhook verification is done by the real Stripe implementation.
type fakeGateway struct {
	*gateway.StripeGateway

	mu       sync.Mutex
	next     int
	statuses map[string]gateway.IntentStatus
	created  []gateway.CreateIntentParams
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		StripeGateway: gateway.NewStripeGateway("sk_test_integration", webhookSecret),
		statuses:      map[string]gateway.IntentStatus{},
	}
}

func (g *fakeGateway) CreateIntent(_ context.Context, p gateway.CreateIntentParams) (gateway.Intent, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	id := fmt.Sprintf("pi_test_%d", g.next)
	g.statuses[id] = gateway.IntentRequiresPaymentMethod
	g.created = append(g.created, p)
	return gateway.Intent{ID: id, ClientSecret: id + "_secret", Status: gateway.IntentRequiresPaymentMethod}, nil
}

func (g *fakeGateway) RetrieveIntent(_ context.Context, id string) (gateway.Intent, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return gateway.Intent{ID: id, Status: g.statuses[id]}, nil
}

func (g *fakeGateway) setStatus(id string, s gateway.IntentStatus) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.statuses[id] = s
}

func (g *fakeGateway) intentsCreated() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.created)
}

type recordingSender struct {
	mu   sync.Mutex
	msgs []notification.Message
}

func (r *recordingSender) Deliver(msg notification.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, msg)
	return nil
}

// TestEnv is a fully wired API over an in-memory store
type TestEnv struct {
	Router     *gin.Engine
	Repo       *repository.MemoryRepo
	Gateway    *fakeGateway
	sender     *recordingSender
	dispatcher *notification.Dispatcher
}

// SetupTestRouter wires the real services behind the router with the given listings
func SetupTestRouter(t *testing.T, listings ...model.Listing) *TestEnv {
	t.Helper()

	repo := repository.NewMemoryRepo()
	for _, l := range listings {
		repo.AddListing(l)
	}

	sender := &recordingSender{}
	dispatcher := notification.NewDispatcher(sender, 2)
	t.Cleanup(dispatcher.Close)

	gw := newFakeGateway()
	checker := availability.NewChecker(repo)
	bids := bidding.NewBiddingService(repo, checker, dispatcher)
	payments := payment.NewPaymentService(repo, bids, checker, gw, dispatcher, "usd")

	return &TestEnv{
		Router:     server.SetupRouter(bids, payments, gw),
		Repo:       repo,
		Gateway:    gw,
		sender:     sender,
		dispatcher: dispatcher,
	}
}

// Notifications stops the dispatcher and returns every delivered message.
// Call it once, after the last request.
func (e *TestEnv) Notifications() []notification.Message {
	e.dispatcher.Close()
	e.sender.mu.Lock()
	defer e.sender.mu.Unlock()
	return append([]notification.Message(nil), e.sender.msgs...)
}

func countSubjects(msgs []notification.Message, prefix string) int {
	n := 0
	for _, m := range msgs {
		if strings.HasPrefix(m.Subject, prefix) {
			n++
		}
	}
	return n
}

// Caller identity headers as set by the auth proxy
func asGuest(id string) map[string]string {
	return map[string]string{server.HeaderUserID: id, server.HeaderUserEmail: id + "@example.com", server.HeaderUserRole: "guest"}
}

func asHotel(id string) map[string]string {
	return map[string]string{server.HeaderUserID: id, server.HeaderUserEmail: id + "@hotel.example", server.HeaderUserRole: "hotel"}
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response envelope
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any, headers map[string]string) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}

// SendWebhook posts a Stripe-signed payment_intent event for intentID
func SendWebhook(t *testing.T, router *gin.Engine, eventID, eventType, intentID string) *httptest.ResponseRecorder {
	t.Helper()

	payload := fmt.Sprintf(`{"id":%q,"object":"event","type":%q,"data":{"object":{"id":%q,"object":"payment_intent"}}}`,
		eventID, eventType, intentID)
	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   []byte(payload),
		Secret:    webhookSecret,
		Timestamp: time.Now(),
	})

	_, w := ExecuteRequestAndParse(t, router, "POST", "/webhooks/stripe", signed.Payload, map[string]string{
		"Stripe-Signature": signed.Header,
	})
	return w
}

// SendWebhookWithBadSignature posts an event whose signature cannot verify
func SendWebhookWithBadSignature(t *testing.T, env *TestEnv) *httptest.ResponseRecorder {
	t.Helper()
	_, w := ExecuteRequestAndParse(t, env.Router, "POST", "/webhooks/stripe",
		`{"id":"evt_forged","type":"payment_intent.succeeded"}`,
		map[string]string{"Stripe-Signature": "t=1,v1=forged"})
	return w
}

func data(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	d, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("response has no data object: %v", resp)
	}
	return d
}

func day(s string) time.Time {
	d, err := model.ParseDay(s)
	if err != nil {
		panic(err)
	}
	return d
}

func harbourRoom(maxInventory int, autoAccept bool) model.Listing {
	return model.Listing{
		ListingID:              "listing1",
		OwnerID:                "hotel1",
		OwnerEmail:             "hotel1@hotel.example",
		Title:                  "Harbour Inn Double Room",
		Status:                 model.ListingLive,
		MinimumBid:             decimal.NewFromInt(40),
		RetailPrice:            decimal.NewFromInt(90),
		MaxInventory:           maxInventory,
		BlackoutDates:          []time.Time{day("2026-12-25")},
		AutoAcceptAboveMinimum: autoAccept,
	}
}
