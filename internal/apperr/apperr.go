// Package apperr carries the connector's error taxonomy and its mapping to
// HTTP responses.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	Invalid  Kind = "invalid"
	NotFound Kind = "not_found"
	Skip     Kind = "skip"
	Internal Kind = "internal"
)

const (
	CodeInvalidOperation = "InvalidOperation"
	CodeObjectNotFound   = "ObjectNotFound"
	CodeInvalidInput     = "InvalidInput"
	CodeGeneral          = "General"
)

type AppError struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

func InvalidErr(code, msg string) *AppError {
	return &AppError{Kind: Invalid, Code: code, Message: msg}
}

func NotFoundErr(msg string) *AppError {
	return &AppError{Kind: NotFound, Code: CodeObjectNotFound, Message: msg}
}

// SkipErr is an acknowledged no-op, never a failure.
func SkipErr(msg string) *AppError {
	return &AppError{Kind: Skip, Message: msg}
}

// InternalErr is a transient failure; callers answer 5xx so the sender retries.
func InternalErr(msg string) *AppError {
	return &AppError{Kind: Internal, Code: CodeGeneral, Message: msg}
}

func Wrap(err error, msg string) *AppError {
	if err == nil {
		return nil
	}
	if ae, ok := As(err); ok {
		return ae
	}
	return &AppError{Kind: Internal, Code: CodeGeneral, Message: msg, Err: err}
}

func As(err error) (*AppError, bool) {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

func IsKind(err error, kind Kind) bool {
	ae, ok := As(err)
	return ok && ae.Kind == kind
}

func IsSkip(err error) bool { return IsKind(err, Skip) }

// HTTPStatus maps not-found to 400 as well: the caller treats it as a
// permanent client fault for that event.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if ae, ok := As(err); ok {
		switch ae.Kind {
		case Skip:
			return http.StatusOK
		case Invalid, NotFound:
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}

// ErrorBody is the platform-facing error shape.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func Body(err error) ErrorBody {
	if ae, ok := As(err); ok && ae.Kind != Internal {
		return ErrorBody{Code: ae.Code, Message: ae.Message}
	}
	return ErrorBody{Code: CodeGeneral, Message: "internal error"}
}
