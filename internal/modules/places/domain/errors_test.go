package domain

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestUserMessage(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err      error
		expected string
	}{
		{nil, ""},
		{ErrInvalidQuery, "Invalid search query"},
		{ErrInvalidFilter, "Please select a valid filter"},
		{ErrNoResultsFound, "No restaurants found matching your criteria"},
		{fmt.Errorf("wrapped: %w", ErrInvalidQuery), "Invalid search query"},
		{errors.New("connection refused"), "connection refused"},
	}

	for _, tc := range cases {
		if got := UserMessage(tc.err); got != tc.expected {
			t.Fatalf("UserMessage(%v) = %q, expected %q", tc.err, got, tc.expected)
		}
	}
}

func TestKind(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err      error
		expected string
	}{
		{nil, ""},
		{ErrInvalidQuery, KindInvalidQuery},
		{ErrInvalidFilter, KindInvalidFilter},
		{ErrNoResultsFound, KindNoResults},
		{context.Canceled, KindCancelled},
		{fmt.Errorf("fetch: %w", context.DeadlineExceeded), KindTimeout},
		{errors.New("boom"), KindUnknown},
	}

	for _, tc := range cases {
		if got := Kind(tc.err); got != tc.expected {
			t.Fatalf("Kind(%v) = %q, expected %q", tc.err, got, tc.expected)
		}
	}
}
