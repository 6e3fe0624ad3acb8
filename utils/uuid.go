package utils

import (
	"github.com/google/uuid"
)

// NewCorrelationID returns a random identifier used to tag banners and tick log lines
func NewCorrelationID() string {
	return uuid.NewString()
}
