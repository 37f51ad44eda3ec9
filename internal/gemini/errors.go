package gemini

import (
	"fmt"
	"strings"
)

// ErrorKind classifies gateway failures so callers can decide how to surface
// them.
type ErrorKind string

const (
	// KindMissingCredential means no valid API key was available. No network
	// call was made.
	KindMissingCredential ErrorKind = "missing_credential"

	// KindTransient is a rate-limit or overload signal from the provider.
	// The scan path retries these before giving up.
	KindTransient ErrorKind = "transient"

	// KindPermanent is any other provider-side failure. Never retried.
	KindPermanent ErrorKind = "permanent"

	// KindInvalidFormat means the response text was not parseable JSON.
	KindInvalidFormat ErrorKind = "invalid_format"
)

// Error is a classified gateway failure.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// transientMarkers are the provider error fragments that indicate a failure
// expected to resolve itself on retry.
var transientMarkers = []string{
	"429",
	"quota",
	"503",
	"high demand",
	"unavailable",
}

// IsTransientMessage reports whether an error description looks like a
// rate-limit or overload signal. Matching is case-insensitive substring.
func IsTransientMessage(msg string) bool {
	lower := strings.ToLower(msg)
	for _, marker := range transientMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// classify wraps a generation error with the right kind.
func classify(err error) *Error {
	if IsTransientMessage(err.Error()) {
		return &Error{Kind: KindTransient, Message: "límite de cuota o alta demanda en el servicio", Err: err}
	}
	return &Error{Kind: KindPermanent, Message: "error del servicio de IA", Err: err}
}
