package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrFetch                = errors.New("source de locale inaccessible")
	ErrParse                = errors.New("document de locale invalide")
	ErrConflict             = errors.New("locale déjà soumise")
	ErrReferenceUnavailable = errors.New("locale de référence indisponible")
)

// FetchError reports a locale source that could not be reached or read.
type FetchError struct {
	Locale string
	Source string
	Err    error
}

func (e *FetchError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("fetch %s (%s): %v", e.Locale, e.Source, ErrFetch)
	}
	return fmt.Sprintf("fetch %s (%s): %v", e.Locale, e.Source, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

func (e *FetchError) Is(target error) bool { return target == ErrFetch }

// ParseError reports a document whose structure does not match the CSL
// locale schema.
type ParseError struct {
	Locale string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("parse %s: %s", e.Locale, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParse }

// ConflictError is returned when the same locale code is aggregated twice.
type ConflictError struct {
	Locale string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("aggregate %s: %v", e.Locale, ErrConflict)
}

func (e *ConflictError) Is(target error) bool { return target == ErrConflict }

// Code returns a stable short code for a domain error, or "" when err does not
// belong to the domain taxonomy. Codes are used as message IDs by the report.
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrReferenceUnavailable):
		return "reference_unavailable"
	case errors.Is(err, ErrFetch):
		return "fetch_failed"
	case errors.Is(err, ErrParse):
		return "parse_failed"
	case errors.Is(err, ErrConflict):
		return "conflict"
	default:
		return ""
	}
}
