package engine

import (
	"fmt"
	"strings"
)

// splitArgs splits a comma-separated parameter string into exactly want
// arguments, rejecting missing or empty fields (spec.md §3:
// MalformedParams).
func splitArgs(params string, want int) ([]string, error) {
	if params == "" {
		return nil, fmt.Errorf("missing params, want %d: %w", want, ErrMalformedParams)
	}
	args := strings.Split(params, ",")
	if len(args) != want {
		return nil, fmt.Errorf("got %d params, want %d: %w", len(args), want, ErrMalformedParams)
	}
	for i, a := range args {
		if a == "" {
			return nil, fmt.Errorf("empty param at position %d: %w", i, ErrMalformedParams)
		}
	}
	return args, nil
}
