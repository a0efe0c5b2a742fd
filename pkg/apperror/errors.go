package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Reason is a machine-readable code a client can branch on without parsing
// the message text.
type Reason string

const (
	ReasonValidation          Reason = "VALIDATION"
	ReasonInvalidQty          Reason = "INVALID_QTY"
	ReasonExceedsStock        Reason = "EXCEEDS_STOCK"
	ReasonMissingProduct      Reason = "MISSING_PRODUCT"
	ReasonDiscountCapExceeded Reason = "DISCOUNT_CAP_EXCEEDED"
	ReasonIndexOutOfRange     Reason = "INDEX_OUT_OF_RANGE"
	ReasonEmptyLedger         Reason = "EMPTY_LEDGER"
	ReasonMissingHeaderFields Reason = "MISSING_HEADER_FIELDS"
	ReasonUpstreamUnavailable Reason = "UPSTREAM_UNAVAILABLE"
	ReasonStaleData           Reason = "STALE_DATA"
)

// AppError represents an application error with HTTP status code
type AppError struct {
	Code    int          `json:"code"`
	Reason  Reason       `json:"reason,omitempty"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError represents a validation error for a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Is matches two AppErrors by reason so sentinel comparisons via errors.Is
// work even when the message carries instance detail (limits, counts).
func (e *AppError) Is(target error) bool {
	var other *AppError
	if !errors.As(target, &other) {
		return false
	}
	if e.Reason != "" || other.Reason != "" {
		return e.Reason == other.Reason
	}
	return e.Code == other.Code && e.Message == other.Message
}

// Common errors
var (
	ErrNotFound       = &AppError{Code: http.StatusNotFound, Message: "Resource not found"}
	ErrBadRequest     = &AppError{Code: http.StatusBadRequest, Message: "Bad request"}
	ErrInternalServer = &AppError{Code: http.StatusInternalServerError, Message: "Internal server error"}

	ErrInvalidQty      = &AppError{Code: http.StatusBadRequest, Reason: ReasonInvalidQty, Message: "Quantity must be greater than zero"}
	ErrMissingProduct  = &AppError{Code: http.StatusBadRequest, Reason: ReasonMissingProduct, Message: "Select a product before adding the line"}
	ErrIndexOutOfRange = &AppError{Code: http.StatusBadRequest, Reason: ReasonIndexOutOfRange, Message: "Line item index out of range"}
	ErrEmptyLedger     = &AppError{Code: http.StatusBadRequest, Reason: ReasonEmptyLedger, Message: "Add at least one item before submitting the bill"}
)

// NewAppError creates a new application error
func NewAppError(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(fieldErrors []FieldError) *AppError {
	return &AppError{
		Code:    http.StatusUnprocessableEntity,
		Reason:  ReasonValidation,
		Message: "Validation failed",
		Errors:  fieldErrors,
	}
}

// NewNotFoundError creates a not found error with a custom message
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Message: resource + " not found",
	}
}

// NewBadRequestError creates a bad request error with a custom message
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

// NewExceedsStockError reports a quantity above the available stock figure.
func NewExceedsStockError(available int) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Reason:  ReasonExceedsStock,
		Message: fmt.Sprintf("Only %d items left in stock", available),
	}
}

// NewDiscountCapError reports a manual discount above the per-unit cap.
func NewDiscountCapError(maxRs float64) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Reason:  ReasonDiscountCapExceeded,
		Message: fmt.Sprintf("Manual discount exceeds the allowed maximum of %.2f", maxRs),
	}
}

// NewMissingHeaderFieldsError lists the header fields still required before
// the bill can be submitted.
func NewMissingHeaderFieldsError(fields []string) *AppError {
	fieldErrors := make([]FieldError, 0, len(fields))
	for _, f := range fields {
		fieldErrors = append(fieldErrors, FieldError{Field: f, Message: "required"})
	}
	return &AppError{
		Code:    http.StatusBadRequest,
		Reason:  ReasonMissingHeaderFields,
		Message: "Please fill bill header: " + strings.Join(fields, ", "),
		Errors:  fieldErrors,
	}
}

// NewUpstreamError wraps a failed collaborator round-trip. There is no
// automatic retry; the caller surfaces it once and returns to idle.
func NewUpstreamError(op string, err error) *AppError {
	return &AppError{
		Code:    http.StatusBadGateway,
		Reason:  ReasonUpstreamUnavailable,
		Message: fmt.Sprintf("%s failed: %v", op, err),
	}
}

// NewStaleDataError marks a response that lost the race against a newer
// request for the same region and must be discarded.
func NewStaleDataError(region string) *AppError {
	return &AppError{
		Code:    http.StatusConflict,
		Reason:  ReasonStaleData,
		Message: fmt.Sprintf("Stale response for %s discarded", region),
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError converts an error to AppError if possible
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
	}
}
