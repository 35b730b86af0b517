package failure

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a Failure independently of its transport code.
type Kind string

const (
	KindBadRequest     Kind = "bad_request"
	KindNotFound       Kind = "not_found"
	KindValidation     Kind = "validation"
	KindPrecondition   Kind = "precondition"
	KindState          Kind = "state"
	KindConflict       Kind = "conflict"
	KindInternal       Kind = "internal"
	KindUnimplemented  Kind = "unimplemented"
	KindLimitExceeded  Kind = "limit_exceeded"
	KindServiceUnready Kind = "service_unready"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

var InvalidPageParam = &Failure{Code: http.StatusBadRequest, Kind: KindBadRequest, Message: "invalid page parameter"}
var InvalidLimitParam = &Failure{Code: http.StatusBadRequest, Kind: KindBadRequest, Message: "invalid limit parameter"}

// Error returns the error message.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Kind:    KindBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Kind:    KindBadRequest,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Kind:    KindInternal,
			Message: err.Error(),
		}
	}

	return nil
}

// Unimplemented returns a new Failure with code for unimplemented method.
func Unimplemented(methodName string) error {
	return &Failure{
		Code:    http.StatusNotImplemented,
		Kind:    KindUnimplemented,
		Message: methodName,
	}
}

// NotFound returns a new Failure for an unknown room, reservation, task or line id.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Kind:    KindNotFound,
		Message: entityName,
	}
}

// NotFoundf is NotFound with a formatted message.
func NotFoundf(format string, args ...any) error {
	return NotFound(fmt.Sprintf(format, args...))
}

// Validation returns a new Failure for a missing or malformed input field.
func Validation(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Kind:    KindValidation,
		Message: msg,
	}
}

// Validationf is Validation with a formatted message.
func Validationf(format string, args ...any) error {
	return Validation(fmt.Sprintf(format, args...))
}

// Precondition returns a new Failure for an operation attempted before its prerequisites hold.
func Precondition(msg string) error {
	return &Failure{
		Code:    http.StatusPreconditionFailed,
		Kind:    KindPrecondition,
		Message: msg,
	}
}

// Preconditionf is Precondition with a formatted message.
func Preconditionf(format string, args ...any) error {
	return Precondition(fmt.Sprintf(format, args...))
}

// State returns a new Failure for an illegal state machine transition.
func State(msg string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Kind:    KindState,
		Message: msg,
	}
}

// Statef is State with a formatted message.
func Statef(format string, args ...any) error {
	return State(fmt.Sprintf(format, args...))
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Kind:    KindConflict,
		Message: message,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetKind returns the kind of an error interface, KindInternal for foreign errors.
func GetKind(err error) Kind {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Kind
	}

	return KindInternal
}

func IsNotFound(err error) bool {
	return err != nil && GetKind(err) == KindNotFound
}

func IsValidation(err error) bool {
	return err != nil && GetKind(err) == KindValidation
}

func IsPrecondition(err error) bool {
	return err != nil && GetKind(err) == KindPrecondition
}

func IsState(err error) bool {
	return err != nil && GetKind(err) == KindState
}
