// Package errors defines application-level errors carrying an HTTP status,
// a business code and an Arabic user-facing message.
package errors

import (
	"net/http"

	"mandoob/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Invoice-related errors
	ErrInvoiceNotFound = NewBaseError(
		http.StatusNotFound,
		"INVOICE_NOT_FOUND",
		"الفاتورة غير موجودة",
		"",
	)

	ErrInvoiceAlreadyArchived = NewBaseError(
		http.StatusConflict,
		"INVOICE_ALREADY_ARCHIVED",
		"الفاتورة مؤرشفة بالفعل",
		"",
	)

	ErrInvalidInvoiceStatus = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INVOICE_STATUS",
		"حالة الفاتورة غير صالحة",
		"",
	)

	// Driver-related errors
	ErrDriverNotFound = NewBaseError(
		http.StatusNotFound,
		"DRIVER_NOT_FOUND",
		"المندوب غير موجود",
		"",
	)

	ErrInvalidAvailability = NewBaseError(
		http.StatusBadRequest,
		"INVALID_AVAILABILITY",
		"حالة المندوب غير صالحة",
		"",
	)

	// Stock-related errors
	ErrStockItemNotFound = NewBaseError(
		http.StatusNotFound,
		"STOCK_ITEM_NOT_FOUND",
		"الصنف غير موجود",
		"",
	)

	ErrNegativeQuantity = NewBaseError(
		http.StatusBadRequest,
		"NEGATIVE_QUANTITY",
		"الكمية لا يمكن أن تكون سالبة",
		"",
	)

	// Assistant-related errors
	ErrAssistantBusy = NewBaseError(
		http.StatusTooManyRequests,
		"ASSISTANT_BUSY",
		"يوجد طلب قيد المعالجة، يرجى الانتظار",
		"",
	)

	ErrEmptyQuestion = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_QUESTION",
		"السؤال فارغ",
		"",
	)

	// Settings-related errors
	ErrUnknownTheme = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_THEME",
		"السمة غير معروفة",
		"",
	)
)

// NewSlotError wraps a durable-slot fault as an internal error.
func NewSlotError(err error, details string) *BaseError {
	base := NewBaseError(
		http.StatusInternalServerError,
		"SLOT_ERROR",
		"تعذر الوصول إلى وحدة التخزين",
		details,
	)
	if err != nil {
		base.details = base.details + ": " + err.Error()
	}

	return base
}
