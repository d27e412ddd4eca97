// Package error defines domain-specific errors for the Korven backend.
package error

import "errors"

// User account domain errors.
var (
	// ErrMissingUserFields is returned when a profile or password change leaves a required field blank.
	ErrMissingUserFields = errors.New("missing required user fields")

	// ErrWrongCurrentPassword is returned when the current password does not match.
	ErrWrongCurrentPassword = errors.New("current password is incorrect")

	// ErrForeignAccount is returned when a caller acts on an account that is not theirs.
	ErrForeignAccount = errors.New("account belongs to another user")

	// ErrUserNotVisible is returned when the caller shares no business with the user.
	ErrUserNotVisible = errors.New("user is not visible to caller")
)

// UserErrorCode defines error codes for user account errors.
// Format: USR-XXYYYY where XX is the error kind and YYYY is specific error.
type UserErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingUserFields    UserErrorCode = "USR-010001"
	ErrCodeWrongCurrentPassword UserErrorCode = "USR-010002"
	ErrCodeUserWeakPassword     UserErrorCode = "USR-010003"
	ErrCodeUserInvalidEmail     UserErrorCode = "USR-010004"

	// Not found errors (02XXXX)
	ErrCodeUserAccountNotFound UserErrorCode = "USR-020001"

	// Conflict errors (03XXXX)
	ErrCodeUserEmailTaken UserErrorCode = "USR-030001"

	// Access errors (05XXXX)
	ErrCodeForeignAccount UserErrorCode = "USR-050001"
	ErrCodeUserNotVisible UserErrorCode = "USR-050002"
)

// UserError represents a user account error with code and message.
type UserError struct {
	Code    UserErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *UserError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *UserError) Unwrap() error {
	return e.Err
}

// Kind returns the error kind encoded in the code.
func (e *UserError) Kind() ErrorKind {
	return kindFromCode(string(e.Code))
}

// NewUserError creates a new UserError with the given code and message.
func NewUserError(code UserErrorCode, message string, err error) *UserError {
	return &UserError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
