// Package error defines domain-specific errors for the Korven backend.
package error

import "errors"

// Business and membership domain errors.
var (
	// ErrBusinessNotFound is returned when a business does not exist.
	ErrBusinessNotFound = errors.New("business not found")

	// ErrMissingBusinessFields is returned when required business fields are blank.
	ErrMissingBusinessFields = errors.New("missing required business fields")

	// ErrInvalidJoinCode is returned when no business accepts the given join code.
	ErrInvalidJoinCode = errors.New("invalid join code")

	// ErrMembershipNotFound is returned when a user has no membership in the business.
	ErrMembershipNotFound = errors.New("membership not found")

	// ErrInvalidMembershipStatus is returned for unknown membership statuses.
	ErrInvalidMembershipStatus = errors.New("invalid membership status")

	// ErrInvalidMembershipRole is returned for unknown membership roles.
	ErrInvalidMembershipRole = errors.New("invalid membership role")

	// ErrAlreadyMember is returned when joining a business the user already belongs to.
	ErrAlreadyMember = errors.New("user is already a member of this business")

	// ErrCannotChangeOwnMembership is returned when an owner edits their own membership.
	ErrCannotChangeOwnMembership = errors.New("owners cannot change their own membership")

	// ErrNoBusinessAccess is returned when the caller has no membership in the business.
	ErrNoBusinessAccess = errors.New("no access to business")

	// ErrInactiveMembership is returned when the caller's membership is inactive.
	ErrInactiveMembership = errors.New("membership is inactive")

	// ErrOwnerRequired is returned when an operation requires the OWNER role.
	ErrOwnerRequired = errors.New("operation requires owner role")
)

// BusinessErrorCode defines error codes for business errors.
// Format: BIZ-XXYYYY where XX is the error kind and YYYY is specific error.
type BusinessErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingBusinessFields   BusinessErrorCode = "BIZ-010001"
	ErrCodeInvalidMembershipStatus BusinessErrorCode = "BIZ-010002"
	ErrCodeInvalidMembershipRole   BusinessErrorCode = "BIZ-010003"
	ErrCodeCannotChangeOwn         BusinessErrorCode = "BIZ-010004"

	// Not found errors (02XXXX)
	ErrCodeBusinessNotFound   BusinessErrorCode = "BIZ-020001"
	ErrCodeInvalidJoinCode    BusinessErrorCode = "BIZ-020002"
	ErrCodeMembershipNotFound BusinessErrorCode = "BIZ-020003"

	// Conflict errors (03XXXX)
	ErrCodeAlreadyMember BusinessErrorCode = "BIZ-030001"

	// Access errors (05XXXX)
	ErrCodeNoBusinessAccess   BusinessErrorCode = "BIZ-050001"
	ErrCodeInactiveMembership BusinessErrorCode = "BIZ-050002"
	ErrCodeOwnerRequired      BusinessErrorCode = "BIZ-050003"
)

// BusinessError represents a business error with code and message.
type BusinessError struct {
	Code    BusinessErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BusinessError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BusinessError) Unwrap() error {
	return e.Err
}

// Kind returns the error kind encoded in the code.
func (e *BusinessError) Kind() ErrorKind {
	return kindFromCode(string(e.Code))
}

// NewBusinessError creates a new BusinessError with the given code and message.
func NewBusinessError(code BusinessErrorCode, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
