// Package error defines domain-specific errors for the Korven backend.
package error

import "errors"

// Sale domain errors.
var (
	// ErrSaleNotFound is returned when a sale is not found or not visible to the caller.
	ErrSaleNotFound = errors.New("sale not found")

	// ErrEmptySale is returned when a sale has no line items.
	ErrEmptySale = errors.New("sale must contain at least one item")

	// ErrInvalidQuantity is returned when a line quantity is not positive.
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")

	// ErrInvalidDateRange is returned when a listing range ends before it starts.
	ErrInvalidDateRange = errors.New("invalid date range")
)

// SaleErrorCode defines error codes for sale errors.
// Format: SAL-XXYYYY where XX is the error kind and YYYY is specific error.
type SaleErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeEmptySale        SaleErrorCode = "SAL-010001"
	ErrCodeInvalidQuantity  SaleErrorCode = "SAL-010002"
	ErrCodeInvalidDateRange SaleErrorCode = "SAL-010003"

	// Not found errors (02XXXX)
	ErrCodeSaleNotFound        SaleErrorCode = "SAL-020001"
	ErrCodeSaleProductNotFound SaleErrorCode = "SAL-020002"
)

// SaleError represents a sale error with code and message.
type SaleError struct {
	Code    SaleErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SaleError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SaleError) Unwrap() error {
	return e.Err
}

// Kind returns the error kind encoded in the code.
func (e *SaleError) Kind() ErrorKind {
	return kindFromCode(string(e.Code))
}

// NewSaleError creates a new SaleError with the given code and message.
func NewSaleError(code SaleErrorCode, message string, err error) *SaleError {
	return &SaleError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
