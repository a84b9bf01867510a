package apperrors

import "errors"

// Category sentinels. Domain errors unwrap to one of these so a single
// errors.Is check covers the whole category.
var (
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
)

// Content domain errors. The not-found variants unwrap to
// ErrResourceNotFound so one errors.Is check covers the whole category.
var (
	ErrProgramNotFound      = NewResourceNotFoundError("program not found")
	ErrCoachNotFound        = NewResourceNotFoundError("coach not found")
	ErrTestimonialNotFound  = NewResourceNotFoundError("testimonial not found")
	ErrGalleryImageNotFound = NewResourceNotFoundError("gallery image not found")
	ErrEventNotFound        = NewResourceNotFoundError("event not found")
	ErrHeroNotFound         = NewResourceNotFoundError("hero content not found")
	ErrImageRequired        = NewValidationError("image is required")
	ErrInvalidRating        = NewValidationError("rating must be between 1 and 5")
)

// Subscription errors
var (
	ErrSubscriptionNotFound = NewResourceNotFoundError("subscription not found")
	ErrAlreadySubscribed    = NewAlreadyExistsError("email already subscribed")
)

// User errors
var (
	ErrUserNotFound       = NewResourceNotFoundError("user not found")
	ErrEmailAlreadyExists = NewAlreadyExistsError("email already exists")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewAlreadyExistsError creates a new custom error for duplicate resources with a message
func NewAlreadyExistsError(message string) error {
	return &CustomError{
		Err:     ErrResourceAlreadyExists,
		Message: message,
	}
}

// NewValidationError creates a new custom error for failed input validation
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}
