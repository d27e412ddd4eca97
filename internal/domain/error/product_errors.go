// Package error defines domain-specific errors for the Korven backend.
package error

import "errors"

// Product domain errors.
var (
	// ErrProductNotFound is returned when a product is not found in the business.
	ErrProductNotFound = errors.New("product not found")

	// ErrMissingProductFields is returned when required product fields are blank.
	ErrMissingProductFields = errors.New("missing required product fields")

	// ErrInvalidProductPrice is returned when price or cost is negative.
	ErrInvalidProductPrice = errors.New("price and cost must not be negative")

	// ErrProductNameExists is returned when the business already sells a product with that name.
	ErrProductNameExists = errors.New("product name already exists")
)

// ProductErrorCode defines error codes for product errors.
// Format: PRD-XXYYYY where XX is the error kind and YYYY is specific error.
type ProductErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingProductFields ProductErrorCode = "PRD-010001"
	ErrCodeInvalidProductPrice  ProductErrorCode = "PRD-010002"

	// Not found errors (02XXXX)
	ErrCodeProductNotFound         ProductErrorCode = "PRD-020001"
	ErrCodeProductCategoryNotFound ProductErrorCode = "PRD-020002"

	// Conflict errors (03XXXX)
	ErrCodeProductNameExists ProductErrorCode = "PRD-030001"
)

// ProductError represents a product error with code and message.
type ProductError struct {
	Code    ProductErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ProductError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ProductError) Unwrap() error {
	return e.Err
}

// Kind returns the error kind encoded in the code.
func (e *ProductError) Kind() ErrorKind {
	return kindFromCode(string(e.Code))
}

// NewProductError creates a new ProductError with the given code and message.
func NewProductError(code ProductErrorCode, message string, err error) *ProductError {
	return &ProductError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
