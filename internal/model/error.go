package model

import "errors"

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON      = "INVALID_JSON"
	ErrCodeInvalidNutrition = "INVALID_NUTRITION"
	ErrCodeInvalidCategory  = "INVALID_CATEGORY"
	ErrCodeInvalidLevel     = "INVALID_LEVEL"
	ErrCodeFoodNotFound     = "FOOD_NOT_FOUND"
	ErrCodeContentNotFound  = "CONTENT_NOT_FOUND"
	ErrCodeMalformedCatalog = "MALFORMED_CATALOG"
	ErrCodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeRateLimited      = "RATE_LIMITED"
	ErrCodeUnauthorised     = "UNAUTHORIZED"
	ErrCodeInternalError    = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Is matches any DomainError carrying the same code, so wrapped and
// detail-enriched errors still compare equal to the sentinels below.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrInvalidNutrition = NewDomainError(ErrCodeInvalidNutrition, "Nutritional values must be finite, non-negative, and sugars cannot exceed carbohydrates")
	ErrInvalidCategory  = NewDomainError(ErrCodeInvalidCategory, "Unknown food category")
	ErrInvalidLevel     = NewDomainError(ErrCodeInvalidLevel, "Unknown education level")
	ErrFoodNotFound     = NewDomainError(ErrCodeFoodNotFound, "Food not found")
	ErrContentNotFound  = NewDomainError(ErrCodeContentNotFound, "Education content not found")
	ErrMalformedCatalog = NewDomainError(ErrCodeMalformedCatalog, "Catalog document is malformed")
)

// CodeOf returns the domain error code carried by err, or ErrCodeInternalError.
func CodeOf(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ErrCodeInternalError
}
