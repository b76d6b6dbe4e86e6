package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"sync"

	"bid-engine/internal/biddingerrors"
	model "bid-engine/internal/models"
	"bid-engine/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, biddingerrors.ErrInvalidSignature):
		return http.StatusBadRequest, "invalid webhook signature"
	case errors.Is(err, biddingerrors.ErrOverbooked):
		return http.StatusConflict, "inventory no longer available"
	case errors.Is(err, biddingerrors.ErrDuplicatePendingBid):
		return http.StatusConflict, "pending bid already exists for these dates"
	case errors.Is(err, biddingerrors.ErrValidation):
		return http.StatusBadRequest, "invalid request"
	case errors.Is(err, biddingerrors.ErrListingNotFound):
		return http.StatusNotFound, "listing not found"
	case errors.Is(err, biddingerrors.ErrBidNotFound):
		return http.StatusNotFound, "bid not found"
	case errors.Is(err, biddingerrors.ErrPaymentNotFound):
		return http.StatusNotFound, "payment not found"
	case errors.Is(err, biddingerrors.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, biddingerrors.ErrForbidden):
		return http.StatusForbidden, "forbidden"
	case errors.Is(err, biddingerrors.ErrConflict):
		return http.StatusConflict, "conflict"
	case errors.Is(err, biddingerrors.ErrInvalidState):
		return http.StatusUnprocessableEntity, "operation not allowed in current state"
	case errors.Is(err, biddingerrors.ErrGateway):
		return http.StatusBadGateway, "payment gateway error"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// WriteError sends the mapped error response. Overbooking conflicts carry the
// conflicting date so the client can retry with different dates.
func WriteError(c *gin.Context, err error) {
	status, message := MapErrorToHTTP(err)

	var overbooked *biddingerrors.OverbookedError
	if errors.As(err, &overbooked) {
		utils.JSONErrorWithDetails(c, status, err, message, map[string]any{
			"conflict_date": overbooked.Date.Format(model.DateLayout),
		})
		return
	}

	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterValidators adds the custom binding tags used by the request DTOs. The outcome of
// the first call is returned on every call.
func RegisterValidators() error {
	registerOnce.Do(func() {
		registerErr = registerValidators(binding.Validator.Engine())
	})
	return registerErr
}

func registerValidators(engine any) error {
	v, ok := engine.(*validator.Validate)
	if !ok {
		return errors.New("helpers: gin validator engine is not go-playground/validator")
	}

	// decimals are validated through their string form
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})

	if err := v.RegisterValidation("calendar_date", func(fl validator.FieldLevel) bool {
		_, err := model.ParseDay(fl.Field().String())
		return err == nil
	}); err != nil {
		return err
	}
	return v.RegisterValidation("money", func(fl validator.FieldLevel) bool {
		return IsMoney(fl.Field().String())
	})
}

// IsMoney reports whether s is a positive amount with at most two decimal places
func IsMoney(s string) bool {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return false
	}
	return d.IsPositive() && d.Equal(d.Round(2))
}
