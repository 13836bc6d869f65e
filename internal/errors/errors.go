// Package errors provides structured error types for docdraft.
// These errors carry the operation that failed and a category that callers
// use for logging decisions.
package errors

import (
	"errors"
	"fmt"
)

// Op describes an operation, usually as "package.function".
type Op string

// Kind categorizes the type of error.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindInvalid
	KindIO
	KindConfig
	KindCredentialMissing
	KindProvider
	KindEmptyResponse
	KindTimeout
	KindExport
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindInvalid:
		return "invalid"
	case KindIO:
		return "I/O error"
	case KindConfig:
		return "configuration error"
	case KindCredentialMissing:
		return "credential missing"
	case KindProvider:
		return "provider error"
	case KindEmptyResponse:
		return "empty response"
	case KindTimeout:
		return "timeout"
	case KindExport:
		return "export error"
	default:
		return "unknown error"
	}
}

// Error is the structured error type for docdraft.
type Error struct {
	Op      Op     // Operation that failed
	Kind    Kind   // Category of error
	Err     error  // Underlying error
	Context string // Additional context
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Context, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// E creates a new Error. Arguments can be:
// - Op: the operation name
// - Kind: the error kind
// - string: context message
// - error: the underlying error
func E(args ...interface{}) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case string:
			e.Context = a
		case error:
			e.Err = a
		}
	}
	if e.Err == nil {
		e.Err = errors.New(e.Context)
		e.Context = ""
	}
	return e
}

// Is reports whether err is of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// GetKind returns the Kind of an error.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Provider errors

func CredentialMissing(op Op) error {
	return E(op, KindCredentialMissing, "no API key configured for the generation provider")
}

func ProviderFailed(op Op, err error) error {
	return E(op, KindProvider, "provider request failed", err)
}

func ProviderTimeout(op Op, err error) error {
	return E(op, KindTimeout, "provider request timed out", err)
}

func EmptyResponse(op Op) error {
	return E(op, KindEmptyResponse, "provider returned no text")
}

// Session errors

func SessionNotFound(id int64) error {
	return E(Op("session.Get"), KindNotFound, fmt.Sprintf("session %d not found", id))
}

// Config errors

func ConfigLoadFailed(path string, err error) error {
	return E(Op("config.Load"), KindConfig, fmt.Sprintf("failed to load config from %s", path), err)
}

func ConfigSaveFailed(path string, err error) error {
	return E(Op("config.Save"), KindConfig, fmt.Sprintf("failed to save config to %s", path), err)
}

func ConfigInvalid(reason string) error {
	return E(Op("config.Validate"), KindInvalid, reason)
}

// Export errors

func ExportFailed(path string, err error) error {
	return E(Op("export.Write"), KindExport, fmt.Sprintf("failed to export document to %s", path), err)
}
