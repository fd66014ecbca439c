package client

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an API failure.
type Kind int

const (
	// KindTransient covers 5xx responses and transport failures. The caller
	// may retry by re-issuing the action.
	KindTransient Kind = iota
	// KindValidation is a rejected request (400).
	KindValidation
	// KindNotFound is an unknown id (404).
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	default:
		return "transient"
	}
}

// APIError is returned for every failed call.
type APIError struct {
	Kind       Kind
	StatusCode int // 0 for transport failures
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s error (%d): %s", e.Kind, e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error { return e.Err }

func kindFor(status int) Kind {
	switch {
	case status == http.StatusNotFound:
		return KindNotFound
	case status >= 400 && status < 500:
		return KindValidation
	default:
		return KindTransient
	}
}

func isKind(err error, k Kind) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Kind == k
}

// IsValidation reports whether err is a rejected request.
func IsValidation(err error) bool { return isKind(err, KindValidation) }

// IsNotFound reports whether err is an unknown id.
func IsNotFound(err error) bool { return isKind(err, KindNotFound) }

// IsTransient reports whether err is a server or transport failure.
func IsTransient(err error) bool { return isKind(err, KindTransient) }
