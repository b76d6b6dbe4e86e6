package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a new random (v4) identifier for bids and payments
func GenerateID() string {
	return uuid.NewString()
}
