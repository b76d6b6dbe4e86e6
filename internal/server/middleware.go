package server

import (
	"errors"
	"net/http"
	"strings"
	"time"

	model "bid-engine/internal/models"
	"bid-engine/services/bidding/helpers"
	"bid-engine/utils"

	"github.com/gin-gonic/gin"
)

// Headers set by the upstream auth proxy
const (
	HeaderUserID    = "X-User-ID"
	HeaderUserEmail = "X-User-Email"
	HeaderUserRole  = "X-User-Role"
)

var (
	errMissingIdentity = errors.New("missing user identity")
	errRoleNotAllowed  = errors.New("role not allowed for this operation")
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

// RequireIdentity reads the caller from the auth proxy headers and rejects anonymous requests
func RequireIdentity(c *gin.Context) {
	id := strings.TrimSpace(c.GetHeader(HeaderUserID))
	if id == "" {
		utils.JSONError(c, http.StatusUnauthorized, errMissingIdentity, "authentication required")
		c.Abort()
		return
	}

	role := model.Role(strings.ToLower(strings.TrimSpace(c.GetHeader(HeaderUserRole))))
	switch role {
	case model.RoleGuest, model.RoleHotel, model.RoleAdmin:
	case "":
		role = model.RoleGuest
	default:
		utils.JSONError(c, http.StatusUnauthorized, errMissingIdentity, "unknown role")
		c.Abort()
		return
	}

	helpers.SetActor(c, model.Actor{
		ID:    id,
		Email: strings.TrimSpace(c.GetHeader(HeaderUserEmail)),
		Role:  role,
	})
	c.Next()
}

// RequireRole allows only callers holding one of roles
func RequireRole(roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := helpers.ActorFrom(c)
		for _, r := range roles {
			if actor.Role == r {
				c.Next()
				return
			}
		}
		utils.JSONError(c, http.StatusForbidden, errRoleNotAllowed, "forbidden")
		c.Abort()
	}
}
