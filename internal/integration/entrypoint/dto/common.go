// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/korven/backend/internal/domain/valueobject"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// MessageResponse represents a generic message response.
type MessageResponse struct {
	Message string `json:"message"`
}

// Money renders an amount as a fixed two-decimal string.
func Money(d decimal.Decimal) string {
	return valueobject.FormatMoney(d)
}

// MoneyPtr renders an optional amount, keeping nil as null.
func MoneyPtr(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := Money(*d)
	return &s
}

// Date renders a calendar day as YYYY-MM-DD.
func Date(t time.Time) string {
	return valueobject.FormatDate(t)
}
