package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// Kind classifies a failed call so callers can branch without
// inspecting HTTP details.
type Kind string

// Failure kinds
const (
	KindAuth       Kind = "auth"
	KindNotFound   Kind = "not_found"
	KindValidation Kind = "validation"
	KindNetwork    Kind = "network"
	KindCanceled   Kind = "canceled"
	KindUnexpected Kind = "unexpected"
)

// Error is the single failure type returned by every client operation.
// Message is safe to show to the user.
type Error struct {
	Err     error
	Fields  map[string]string
	Kind    Kind
	Message string
	Status  int
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Status != 0 {
		return fmt.Sprintf("%s error (status %d)", e.Kind, e.Status)
	}
	return fmt.Sprintf("%s error", e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation builds a local validation failure. No request is sent when
// one of these is returned.
func Validation(message string, fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Message: message, Fields: fields}
}

// KindOf returns the failure kind of err. Errors that did not come from
// this package are reported as KindUnexpected, nil as "".
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	if errors.Is(err, context.Canceled) {
		return KindCanceled
	}
	return KindUnexpected
}

// IsKind reports whether err is a failure of the given kind
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// UserMessage maps a failure to the text a front end should show.
// Canceled operations map to "" and should be dropped silently.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		if errors.Is(err, context.Canceled) {
			return ""
		}
		return "An unexpected error occurred. Please try again."
	}

	switch apiErr.Kind {
	case KindCanceled:
		return ""
	case KindNetwork:
		return "Unable to connect to the server. Please check your internet connection."
	case KindAuth:
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return "Your session has expired. Please sign in again."
	case KindNotFound:
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return "The requested item was not found."
	case KindValidation:
		msg := apiErr.Message
		if msg == "" {
			msg = "Please check your input and try again."
		}
		if details := fieldDetails(apiErr.Fields); details != "" {
			return msg + " (" + details + ")"
		}
		return msg
	default:
		return "An unexpected error occurred. Please try again."
	}
}

// fieldDetails форматирует ошибки полей в стабильном порядке
func fieldDetails(fields map[string]string) string {
	if len(fields) == 0 {
		return ""
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+fields[k])
	}
	return strings.Join(parts, "; ")
}

// kindForStatus переводит HTTP статус в Kind
func kindForStatus(status int) Kind {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return KindAuth
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusBadRequest, http.StatusConflict, http.StatusUnprocessableEntity:
		return KindValidation
	default:
		return KindUnexpected
	}
}

// transportError классифицирует ошибку http.Client.Do.
// Отмена контекста вызывающим отличается от сетевого таймаута.
func transportError(ctx context.Context, err error) *Error {
	if errors.Is(ctx.Err(), context.Canceled) || errors.Is(err, context.Canceled) {
		return &Error{Kind: KindCanceled, Message: "request canceled", Err: err}
	}
	return &Error{
		Kind:    KindNetwork,
		Message: "Unable to connect to the server. Please check your internet connection.",
		Err:     err,
	}
}
