package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bid-engine/internal/availability"
	bidding "bid-engine/internal/biddingService"
	"bid-engine/internal/biddingerrors"
	model "bid-engine/internal/models"
	"bid-engine/services/bidding/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var (
	guest = model.Actor{ID: "guest1", Email: "guest1@example.com", Role: model.RoleGuest}
	hotel = model.Actor{ID: "hotel1", Email: "owner@hotel.example", Role: model.RoleHotel}
)

func day(s string) time.Time {
	d, err := model.ParseDay(s)
	if err != nil {
		panic(err)
	}
	return d
}

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestRouter returns a gin engine whose requests run as the given actor
func newTestRouter(t *testing.T, actor model.Actor) *gin.Engine {
	t.Helper()
	require.NoError(t, helpers.RegisterValidators())

	router := gin.New()
	router.Use(func(c *gin.Context) {
		helpers.SetActor(c, actor)
		c.Next()
	})
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	return doRequestWithHeaders(t, router, method, path, body, nil)
}

func doRequestWithHeader(t *testing.T, router *gin.Engine, path, body, key, value string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	return doRequestWithHeaders(t, router, http.MethodPost, path, body, map[string]string{key: value})
}

func doRequestWithHeaders(t *testing.T, router *gin.Engine, method, path string, body any, headers map[string]string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	switch v := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(v))
	default:
		raw, err := json.Marshal(v)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func sampleBid(status model.BidStatus) model.Bid {
	return model.Bid{
		BidID:        uuid.NewString(),
		ListingID:    "listing1",
		BidderID:     guest.ID,
		BidderEmail:  guest.Email,
		CheckInDate:  day("2026-01-01"),
		CheckOutDate: day("2026-01-03"),
		BidPerNight:  decimal.RequireFromString("120.50"),
		TotalNights:  2,
		TotalAmount:  decimal.RequireFromString("241"),
		Status:       status,
		CreatedAt:    time.Date(2025, 12, 1, 9, 0, 0, 0, time.UTC),
	}
}

// Test CreateBidHandler
func TestCreateBidHandler(t *testing.T) {
	t.Parallel()

	validBody := helpers.PlaceBidRequest{
		ListingID:    "listing1",
		CheckInDate:  "2026-01-01",
		CheckOutDate: "2026-01-03",
		BidPerNight:  decimal.RequireFromString("120.5"),
	}

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func(m *MockBiddingServiceInterface)
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name:        "success_pending",
			requestBody: validBody,
			mockSetup: func(m *MockBiddingServiceInterface) {
				m.EXPECT().CreateBid(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, in bidding.CreateBidInput) (bidding.CreateBidResult, error) {
						require.Equal(t, "listing1", in.ListingID)
						require.Equal(t, guest, in.Bidder)
						require.Equal(t, day("2026-01-01"), in.CheckIn)
						require.Equal(t, day("2026-01-03"), in.CheckOut)
						require.Equal(t, "120.50", in.BidPerNight.StringFixed(2))
						return bidding.CreateBidResult{
							Bid:     sampleBid(model.BidPending),
							Message: "Bid submitted and awaiting review by the hotel",
						}, nil
					})
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "awaiting review",
			validateData: func(t *testing.T, data map[string]any) {
				_, err := uuid.Parse(data["bid_id"].(string))
				require.NoError(t, err, "BidID should be a valid UUID")
				require.Equal(t, "PENDING", data["status"])
				require.Equal(t, "2026-01-01", data["check_in_date"])
				require.Equal(t, "120.50", data["bid_per_night"])
				require.Equal(t, "241.00", data["total_amount"])
				require.Equal(t, float64(2), data["total_nights"])
				require.Nil(t, data["platform_commission"])
			},
		},
		{
			name:        "success_auto_accepted",
			requestBody: validBody,
			mockSetup: func(m *MockBiddingServiceInterface) {
				m.EXPECT().CreateBid(gomock.Any(), gomock.Any()).Return(bidding.CreateBidResult{
					Bid:     sampleBid(model.BidAccepted),
					Message: "Bid accepted automatically; complete checkout to secure your stay",
				}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "accepted automatically",
			validateData: func(t *testing.T, data map[string]any) {
				require.Equal(t, "ACCEPTED", data["status"])
			},
		},
		{
			name:           "invalid_json",
			requestBody:    `{invalid json}`,
			mockSetup:      func(m *MockBiddingServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "missing_listing_id",
			requestBody: helpers.PlaceBidRequest{
				CheckInDate: "2026-01-01", CheckOutDate: "2026-01-03", BidPerNight: decimal.NewFromInt(100),
			},
			mockSetup:      func(m *MockBiddingServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "malformed_date",
			requestBody: helpers.PlaceBidRequest{
				ListingID: "listing1", CheckInDate: "01/01/2026", CheckOutDate: "2026-01-03", BidPerNight: decimal.NewFromInt(100),
			},
			mockSetup:      func(m *MockBiddingServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "zero_amount",
			requestBody: helpers.PlaceBidRequest{
				ListingID: "listing1", CheckInDate: "2026-01-01", CheckOutDate: "2026-01-03", BidPerNight: decimal.Zero,
			},
			mockSetup:      func(m *MockBiddingServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "negative_amount",
			requestBody: helpers.PlaceBidRequest{
				ListingID: "listing1", CheckInDate: "2026-01-01", CheckOutDate: "2026-01-03", BidPerNight: decimal.NewFromInt(-10),
			},
			mockSetup:      func(m *MockBiddingServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "sub_cent_amount",
			requestBody:    `{"listing_id":"listing1","check_in_date":"2026-01-01","check_out_date":"2026-01-04","bid_per_night":33.335}`,
			mockSetup:      func(m *MockBiddingServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "missing_amount",
			requestBody:    `{"listing_id":"listing1","check_in_date":"2026-01-01","check_out_date":"2026-01-03"}`,
			mockSetup:      func(m *MockBiddingServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:        "numeric_amount_kept_exact",
			requestBody: `{"listing_id":"listing1","check_in_date":"2026-01-01","check_out_date":"2026-01-03","bid_per_night":99.9}`,
			mockSetup: func(m *MockBiddingServiceInterface) {
				m.EXPECT().CreateBid(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, in bidding.CreateBidInput) (bidding.CreateBidResult, error) {
						require.True(t, in.BidPerNight.Equal(decimal.RequireFromString("99.90")))
						return bidding.CreateBidResult{Bid: sampleBid(model.BidPending), Message: "Bid submitted and awaiting review by the hotel"}, nil
					})
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "awaiting review",
		},
		{
			name:        "service_bid_too_low",
			requestBody: validBody,
			mockSetup: func(m *MockBiddingServiceInterface) {
				m.EXPECT().CreateBid(gomock.Any(), gomock.Any()).Return(bidding.CreateBidResult{}, biddingerrors.ErrBidTooLow)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request",
		},
		{
			name:        "service_duplicate_pending",
			requestBody: validBody,
			mockSetup: func(m *MockBiddingServiceInterface) {
				m.EXPECT().CreateBid(gomock.Any(), gomock.Any()).Return(bidding.CreateBidResult{}, biddingerrors.ErrDuplicatePendingBid)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "pending bid already exists",
		},
		{
			name:        "service_listing_not_found",
			requestBody: validBody,
			mockSetup: func(m *MockBiddingServiceInterface) {
				m.EXPECT().CreateBid(gomock.Any(), gomock.Any()).Return(bidding.CreateBidResult{}, biddingerrors.ErrListingNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "listing not found",
		},
		{
			name:        "service_listing_not_live",
			requestBody: validBody,
			mockSetup: func(m *MockBiddingServiceInterface) {
				m.EXPECT().CreateBid(gomock.Any(), gomock.Any()).Return(bidding.CreateBidResult{}, biddingerrors.ErrListingNotLive)
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedMsg:    "not allowed in current state",
		},
		{
			name:        "service_generic_error",
			requestBody: validBody,
			mockSetup: func(m *MockBiddingServiceInterface) {
				m.EXPECT().CreateBid(gomock.Any(), gomock.Any()).Return(bidding.CreateBidResult{}, errors.New("database failure"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			mockService := NewMockBiddingServiceInterface(ctrl)
			tc.mockSetup(mockService)

			router := newTestRouter(t, guest)
			router.POST("/bids", NewBiddingHandler(mockService).CreateBidHandler)

			w, resp := doRequest(t, router, http.MethodPost, "/bids", tc.requestBody)

			require.Equal(t, tc.expectedStatus, w.Code)
			require.Contains(t, resp["message"], tc.expectedMsg)
			if tc.validateData != nil {
				tc.validateData(t, resp["data"].(map[string]any))
			}
		})
	}
}

// Test GetBidHandler
func TestGetBidHandler(t *testing.T) {
	t.Parallel()

	bid := sampleBid(model.BidAccepted)
	commission := decimal.RequireFromString("16.05")
	payable := decimal.RequireFromString("224.95")
	bid.PlatformCommission = &commission
	bid.PayableToHotel = &payable

	tests := []struct {
		name           string
		bidID          string
		mockSetup      func(m *MockBiddingServiceInterface)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:  "success",
			bidID: bid.BidID,
			mockSetup: func(m *MockBiddingServiceInterface) {
				m.EXPECT().GetBid(gomock.Any(), bid.BidID, guest).Return(bid, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "bid retrieved successfully",
		},
		{
			name:  "not_found",
			bidID: "missing",
			mockSetup: func(m *MockBiddingServiceInterface) {
				m.EXPECT().GetBid(gomock.Any(), "missing", guest).Return(model.Bid{}, biddingerrors.ErrBidNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "bid not found",
		},
		{
			name:  "forbidden",
			bidID: bid.BidID,
			mockSetup: func(m *MockBiddingServiceInterface) {
				m.EXPECT().GetBid(gomock.Any(), bid.BidID, guest).Return(model.Bid{}, biddingerrors.ErrNotBidOwner)
			},
			expectedStatus: http.StatusForbidden,
			expectedMsg:    "forbidden",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			mockService := NewMockBiddingServiceInterface(ctrl)
			tc.mockSetup(mockService)

			router := newTestRouter(t, guest)
			router.GET("/bids/:bid_id", NewBiddingHandler(mockService).GetBidHandler)

			w, resp := doRequest(t, router, http.MethodGet, "/bids/"+tc.bidID, nil)

			require.Equal(t, tc.expectedStatus, w.Code)
			require.Contains(t, resp["message"], tc.expectedMsg)
			if w.Code == http.StatusOK {
				data := resp["data"].(map[string]any)
				require.Equal(t, "16.05", data["platform_commission"])
				require.Equal(t, "224.95", data["payable_to_hotel"])
			}
		})
	}
}

// Test UpdateStatusHandler
func TestUpdateStatusHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func(m *MockBiddingServiceInterface)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:        "accept",
			requestBody: helpers.UpdateStatusRequest{Status: "ACCEPTED"},
			mockSetup: func(m *MockBiddingServiceInterface) {
				m.EXPECT().UpdateStatus(gomock.Any(), "bid1", hotel, model.BidAccepted, "").Return(sampleBid(model.BidAccepted), nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "bid status updated successfully",
		},
		{
			name:        "reject_with_reason",
			requestBody: helpers.UpdateStatusRequest{Status: "REJECTED", RejectionReason: "fully booked"},
			mockSetup: func(m *MockBiddingServiceInterface) {
				b := sampleBid(model.BidRejected)
				b.RejectionReason = "fully booked"
				m.EXPECT().UpdateStatus(gomock.Any(), "bid1", hotel, model.BidRejected, "fully booked").Return(b, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "bid status updated successfully",
		},
		{
			name:           "unknown_status",
			requestBody:    map[string]string{"status": "PENDING"},
			mockSetup:      func(m *MockBiddingServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:        "not_pending",
			requestBody: helpers.UpdateStatusRequest{Status: "ACCEPTED"},
			mockSetup: func(m *MockBiddingServiceInterface) {
				m.EXPECT().UpdateStatus(gomock.Any(), "bid1", hotel, model.BidAccepted, "").Return(model.Bid{}, biddingerrors.ErrBidNotPending)
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedMsg:    "not allowed in current state",
		},
		{
			name:        "not_operator",
			requestBody: helpers.UpdateStatusRequest{Status: "REJECTED"},
			mockSetup: func(m *MockBiddingServiceInterface) {
				m.EXPECT().UpdateStatus(gomock.Any(), "bid1", hotel, model.BidRejected, "").Return(model.Bid{}, biddingerrors.ErrNotOperator)
			},
			expectedStatus: http.StatusForbidden,
			expectedMsg:    "forbidden",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			mockService := NewMockBiddingServiceInterface(ctrl)
			tc.mockSetup(mockService)

			router := newTestRouter(t, hotel)
			router.PATCH("/bids/:bid_id/status", NewBiddingHandler(mockService).UpdateStatusHandler)

			w, resp := doRequest(t, router, http.MethodPatch, "/bids/bid1/status", tc.requestBody)

			require.Equal(t, tc.expectedStatus, w.Code)
			require.Contains(t, resp["message"], tc.expectedMsg)
		})
	}
}

// Test UpdatePayoutHandler
func TestUpdatePayoutHandler(t *testing.T) {
	t.Parallel()

	paidAt := time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func(m *MockBiddingServiceInterface)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:        "mark_paid",
			requestBody: `{"is_paid_to_hotel":true,"payout_method":"bank_transfer"}`,
			mockSetup: func(m *MockBiddingServiceInterface) {
				m.EXPECT().UpdatePayout(gomock.Any(), "bid1", hotel, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, _ model.Actor, upd model.PayoutUpdate) (model.Bid, error) {
						require.NotNil(t, upd.IsPaidToHotel)
						require.True(t, *upd.IsPaidToHotel)
						require.Equal(t, "bank_transfer", *upd.PayoutMethod)
						require.Nil(t, upd.PayoutNotes)

						b := sampleBid(model.BidAccepted)
						b.IsPaidToHotel = true
						b.PaidToHotelAt = &paidAt
						b.PayoutMethod = "bank_transfer"
						return b, nil
					})
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "payout updated successfully",
		},
		{
			name:        "payment_not_settled",
			requestBody: `{"is_paid_to_hotel":true}`,
			mockSetup: func(m *MockBiddingServiceInterface) {
				m.EXPECT().UpdatePayout(gomock.Any(), "bid1", hotel, gomock.Any()).Return(model.Bid{}, biddingerrors.ErrPaymentNotSettled)
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedMsg:    "not allowed in current state",
		},
		{
			name:           "invalid_json",
			requestBody:    `{"is_paid_to_hotel":"yes"}`,
			mockSetup:      func(m *MockBiddingServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			mockService := NewMockBiddingServiceInterface(ctrl)
			tc.mockSetup(mockService)

			router := newTestRouter(t, hotel)
			router.PATCH("/bids/:bid_id/payout", NewBiddingHandler(mockService).UpdatePayoutHandler)

			w, resp := doRequest(t, router, http.MethodPatch, "/bids/bid1/payout", tc.requestBody)

			require.Equal(t, tc.expectedStatus, w.Code)
			require.Contains(t, resp["message"], tc.expectedMsg)
			if w.Code == http.StatusOK {
				data := resp["data"].(map[string]any)
				require.Equal(t, true, data["is_paid_to_hotel"])
				require.Equal(t, paidAt.Format(time.RFC3339), data["paid_to_hotel_at"])
			}
		})
	}
}

// Test GetBidsByListingHandler and GetBidsByUserHandler
func TestListBidsHandlers(t *testing.T) {
	t.Parallel()

	bids := []model.Bid{sampleBid(model.BidPending), sampleBid(model.BidAccepted)}

	t.Run("by_listing", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		mockService := NewMockBiddingServiceInterface(ctrl)
		mockService.EXPECT().ListBidsByListing(gomock.Any(), "listing1", hotel).Return(bids, nil)

		router := newTestRouter(t, hotel)
		router.GET("/listings/:listing_id/bids", NewBiddingHandler(mockService).GetBidsByListingHandler)

		w, resp := doRequest(t, router, http.MethodGet, "/listings/listing1/bids", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Len(t, resp["data"].([]any), 2)
	})

	t.Run("by_listing_not_operator", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		mockService := NewMockBiddingServiceInterface(ctrl)
		mockService.EXPECT().ListBidsByListing(gomock.Any(), "listing1", hotel).Return(nil, biddingerrors.ErrNotOperator)

		router := newTestRouter(t, hotel)
		router.GET("/listings/:listing_id/bids", NewBiddingHandler(mockService).GetBidsByListingHandler)

		w, _ := doRequest(t, router, http.MethodGet, "/listings/listing1/bids", nil)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("by_user_empty", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		mockService := NewMockBiddingServiceInterface(ctrl)
		mockService.EXPECT().ListBidsByBidder(gomock.Any(), guest.ID, guest).Return([]model.Bid{}, nil)

		router := newTestRouter(t, guest)
		router.GET("/users/:user_id/bids", NewBiddingHandler(mockService).GetBidsByUserHandler)

		w, resp := doRequest(t, router, http.MethodGet, "/users/guest1/bids", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Empty(t, resp["data"])
	})

	t.Run("by_other_user", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		mockService := NewMockBiddingServiceInterface(ctrl)
		mockService.EXPECT().ListBidsByBidder(gomock.Any(), "someone", guest).Return(nil, biddingerrors.ErrNotBidOwner)

		router := newTestRouter(t, guest)
		router.GET("/users/:user_id/bids", NewBiddingHandler(mockService).GetBidsByUserHandler)

		w, _ := doRequest(t, router, http.MethodGet, "/users/someone/bids", nil)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

// Test GetAvailabilityHandler
func TestGetAvailabilityHandler(t *testing.T) {
	t.Parallel()

	conflict := day("2026-01-02")

	tests := []struct {
		name           string
		query          string
		mockSetup      func(m *MockBiddingServiceInterface)
		expectedStatus int
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name:  "available",
			query: "?check_in=2026-01-01&check_out=2026-01-04",
			mockSetup: func(m *MockBiddingServiceInterface) {
				m.EXPECT().CheckAvailability(gomock.Any(), "listing1", day("2026-01-01"), day("2026-01-04")).
					Return(availability.Result{AvailableSlots: 2}, nil)
			},
			expectedStatus: http.StatusOK,
			validateData: func(t *testing.T, data map[string]any) {
				require.Equal(t, false, data["is_overbooked"])
				require.Nil(t, data["overbooked_date"])
				require.Equal(t, float64(2), data["available_slots"])
			},
		},
		{
			name:  "overbooked",
			query: "?check_in=2026-01-01&check_out=2026-01-04",
			mockSetup: func(m *MockBiddingServiceInterface) {
				m.EXPECT().CheckAvailability(gomock.Any(), "listing1", gomock.Any(), gomock.Any()).
					Return(availability.Result{IsOverbooked: true, OverbookedDate: &conflict}, nil)
			},
			expectedStatus: http.StatusOK,
			validateData: func(t *testing.T, data map[string]any) {
				require.Equal(t, true, data["is_overbooked"])
				require.Equal(t, "2026-01-02", data["overbooked_date"])
				require.Equal(t, float64(0), data["available_slots"])
			},
		},
		{
			name:           "missing_dates",
			query:          "?check_in=2026-01-01",
			mockSetup:      func(m *MockBiddingServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:  "reversed_dates",
			query: "?check_in=2026-01-04&check_out=2026-01-01",
			mockSetup: func(m *MockBiddingServiceInterface) {
				m.EXPECT().CheckAvailability(gomock.Any(), "listing1", gomock.Any(), gomock.Any()).
					Return(availability.Result{}, biddingerrors.ErrInvalidDates)
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			mockService := NewMockBiddingServiceInterface(ctrl)
			tc.mockSetup(mockService)

			router := newTestRouter(t, guest)
			router.GET("/listings/:listing_id/availability", NewBiddingHandler(mockService).GetAvailabilityHandler)

			w, resp := doRequest(t, router, http.MethodGet, "/listings/listing1/availability"+tc.query, nil)

			require.Equal(t, tc.expectedStatus, w.Code)
			if tc.validateData != nil {
				tc.validateData(t, resp["data"].(map[string]any))
			}
		})
	}
}
