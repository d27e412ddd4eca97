// Package error defines domain-specific errors for the Korven backend.
package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal does not exist in the business.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrMissingGoalFields is returned when required goal fields are blank.
	ErrMissingGoalFields = errors.New("missing required goal fields")

	// ErrInvalidGoalPeriod is returned when the period start is after the period end.
	ErrInvalidGoalPeriod = errors.New("period start must not be after period end")

	// ErrInvalidRevenueTarget is returned when a category target is zero or negative.
	ErrInvalidRevenueTarget = errors.New("revenue target must be greater than zero")

	// ErrInvalidTotalRevenueGoal is returned when the total revenue goal is negative.
	ErrInvalidTotalRevenueGoal = errors.New("total revenue goal must not be negative")

	// ErrDuplicateCategoryTarget is returned when a category is targeted twice in one goal.
	ErrDuplicateCategoryTarget = errors.New("category listed more than once")

	// ErrGoalCategoryNotFound is returned when a target references an unknown category.
	ErrGoalCategoryNotFound = errors.New("category not found")

	// ErrCategoryNotInBusiness is returned when a target references another business's category.
	ErrCategoryNotInBusiness = errors.New("category does not belong to business")

	// ErrGoalPeriodOverlap is returned when a goal period intersects another goal of the business.
	ErrGoalPeriodOverlap = errors.New("goal period overlaps an existing goal")

	// ErrGoalPeriodFinished is returned when editing a goal whose period has ended.
	ErrGoalPeriodFinished = errors.New("goal period has finished")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is the error kind and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingGoalFields       GoalErrorCode = "GOL-010001"
	ErrCodeInvalidGoalPeriod       GoalErrorCode = "GOL-010002"
	ErrCodeInvalidRevenueTarget    GoalErrorCode = "GOL-010003"
	ErrCodeInvalidTotalRevenueGoal GoalErrorCode = "GOL-010004"
	ErrCodeDuplicateCategoryTarget GoalErrorCode = "GOL-010005"

	// Not found errors (02XXXX)
	ErrCodeGoalNotFound         GoalErrorCode = "GOL-020001"
	ErrCodeGoalCategoryNotFound GoalErrorCode = "GOL-020002"
	ErrCodeCategoryNotInBiz     GoalErrorCode = "GOL-020003"

	// Conflict errors (03XXXX)
	ErrCodeGoalPeriodOverlap GoalErrorCode = "GOL-030001"

	// State errors (04XXXX)
	ErrCodeGoalPeriodFinished GoalErrorCode = "GOL-040001"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// Kind returns the error kind encoded in the code.
func (e *GoalError) Kind() ErrorKind {
	return kindFromCode(string(e.Code))
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
