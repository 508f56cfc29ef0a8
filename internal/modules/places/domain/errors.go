package domain

import (
	"context"
	"errors"
)

var (
	// ErrInvalidQuery is returned for empty or whitespace-only search text.
	ErrInvalidQuery = errors.New("invalid search query")
	// ErrInvalidFilter is returned for an empty filter category.
	ErrInvalidFilter = errors.New("invalid filter")
	// ErrNoResultsFound is part of the public taxonomy but no operation returns it:
	// an empty result set is a valid outcome.
	ErrNoResultsFound = errors.New("no results found")
)

const (
	KindInvalidQuery  = "invalid_query"
	KindInvalidFilter = "invalid_filter"
	KindNoResults     = "no_results"
	KindCancelled     = "cancelled"
	KindTimeout       = "timeout"
	KindUnknown       = "unknown"
)

// UserMessage returns the text shown to people for err.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidQuery):
		return "Invalid search query"
	case errors.Is(err, ErrInvalidFilter):
		return "Please select a valid filter"
	case errors.Is(err, ErrNoResultsFound):
		return "No restaurants found matching your criteria"
	default:
		return err.Error()
	}
}

// Kind returns a stable machine-readable code for err.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidQuery):
		return KindInvalidQuery
	case errors.Is(err, ErrInvalidFilter):
		return KindInvalidFilter
	case errors.Is(err, ErrNoResultsFound):
		return KindNoResults
	case errors.Is(err, context.Canceled):
		return KindCancelled
	case errors.Is(err, context.DeadlineExceeded):
		return KindTimeout
	default:
		return KindUnknown
	}
}
