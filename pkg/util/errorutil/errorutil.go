package errorutil

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Error codes exposed to API clients.
const (
	CodeInvalidEnumValue      = "INVALID_ENUM_VALUE"
	CodeMissingRequiredField  = "MISSING_REQUIRED_FIELD"
	CodeInvalidValue          = "INVALID_VALUE"
	CodeConstraintViolation   = "CONSTRAINT_VIOLATION"
	CodeReferentialIntegrity  = "REFERENTIAL_INTEGRITY_VIOLATION"
	CodeStorageUnavailable    = "STORAGE_UNAVAILABLE"
	CodeNotFound              = "NOT_FOUND"
	CodeInvalidPayload        = "INVALID_PAYLOAD"
	CodeInternalError         = "INTERNAL_ERROR"
	internalErrorMessage      = "internal server error"
	storageUnavailableMessage = "storage unavailable"
)

// Sentinels for errors.Is checks. A DomainError matches a sentinel when the codes are equal.
var (
	ErrInvalidEnumValue     = &DomainError{Code: CodeInvalidEnumValue}
	ErrMissingRequiredField = &DomainError{Code: CodeMissingRequiredField}
	ErrInvalidValue         = &DomainError{Code: CodeInvalidValue}
	ErrConstraintViolation  = &DomainError{Code: CodeConstraintViolation}
	ErrReferentialIntegrity = &DomainError{Code: CodeReferentialIntegrity}
	ErrStorageUnavailable   = &DomainError{Code: CodeStorageUnavailable}
	ErrNotFound             = &DomainError{Code: CodeNotFound}
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Code
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is reports whether target is a DomainError carrying the same code.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

// NewInvalidEnumValue reports text that is not a member of an enumeration.
func NewInvalidEnumValue(field, value string, allowed []string) error {
	return NewDomainError(CodeInvalidEnumValue,
		fmt.Sprintf("invalid value %q for %s", value, field),
		http.StatusBadRequest,
		map[string]any{"field": field, "value": value, "allowed": allowed})
}

// NewMissingRequiredField reports absent required fields.
func NewMissingRequiredField(fields ...string) error {
	return NewDomainError(CodeMissingRequiredField,
		fmt.Sprintf("missing required field(s): %v", fields),
		http.StatusBadRequest,
		map[string]any{"fields": fields})
}

func NewInvalidValue(message string, details map[string]any) error {
	return NewDomainError(CodeInvalidValue, message, http.StatusBadRequest, details)
}

func NewInvalidPayload(message string, details map[string]any) error {
	return NewDomainError(CodeInvalidPayload, message, http.StatusBadRequest, details)
}

// NewConstraintViolation reports a uniqueness violation on the named constraint.
func NewConstraintViolation(constraint string, err error) error {
	return &DomainError{
		Code:       CodeConstraintViolation,
		Message:    fmt.Sprintf("unique constraint %s violated", constraint),
		HTTPStatus: http.StatusConflict,
		Details:    map[string]any{"constraint": constraint},
		Err:        err,
	}
}

// NewReferentialIntegrity reports a reference to a record that does not exist.
func NewReferentialIntegrity(constraint string, err error) error {
	return &DomainError{
		Code:       CodeReferentialIntegrity,
		Message:    fmt.Sprintf("referenced record does not exist (%s)", constraint),
		HTTPStatus: http.StatusUnprocessableEntity,
		Details:    map[string]any{"constraint": constraint},
		Err:        err,
	}
}

func NewStorageUnavailable(err error) error {
	return &DomainError{
		Code:       CodeStorageUnavailable,
		Message:    storageUnavailableMessage,
		HTTPStatus: http.StatusServiceUnavailable,
		Err:        err,
	}
}

func NewNotFound(resource string, details map[string]any) error {
	if details == nil {
		details = map[string]any{}
	}
	return &DomainError{
		Code:       CodeNotFound,
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
		Details:    details,
	}
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       CodeInternalError,
		Message:    internalErrorMessage,
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		if domainErr.HTTPStatus == 0 {
			copied := *domainErr
			copied.HTTPStatus = statusForCode(domainErr.Code)
			return &copied
		}
		return domainErr
	}
	if errors.Is(err, context.DeadlineExceeded) {
		de, _ := NewStorageUnavailable(err).(*DomainError)
		return de
	}
	de, _ := NewInternalError(err).(*DomainError)
	return de
}

func statusForCode(code string) int {
	switch code {
	case CodeInvalidEnumValue, CodeMissingRequiredField, CodeInvalidValue, CodeInvalidPayload:
		return http.StatusBadRequest
	case CodeConstraintViolation:
		return http.StatusConflict
	case CodeReferentialIntegrity:
		return http.StatusUnprocessableEntity
	case CodeNotFound:
		return http.StatusNotFound
	case CodeStorageUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
