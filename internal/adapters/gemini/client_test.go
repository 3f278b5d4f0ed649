package gemini

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"google.golang.org/genai"

	"github.com/amitlokhande0/Nearby-StaysFinder-Agent/internal/domain"
)

func TestNew_RequiresKey(t *testing.T) {
	if _, err := New(context.Background(), "", "gemini-2.5-flash", 2); err == nil {
		t.Fatalf("expected error for empty API key")
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		in   error
		want error
	}{
		{"deadline", context.DeadlineExceeded, domain.ErrTimeout},
		{"canceled", context.Canceled, domain.ErrTimeout},
		{"401", genai.APIError{Code: 401, Message: "bad key"}, domain.ErrUnauthorized},
		{"403", genai.APIError{Code: 403, Message: "forbidden"}, domain.ErrUnauthorized},
		{"429", genai.APIError{Code: 429, Message: "quota"}, domain.ErrRateLimited},
		{"500", genai.APIError{Code: 500, Message: "boom"}, domain.ErrUpstream},
		{"wrapped 429", fmt.Errorf("call: %w", genai.APIError{Code: 429}), domain.ErrRateLimited},
		{"plain network", errors.New("connection refused"), domain.ErrUpstream},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := classify(tc.in)
			if !errors.Is(got, tc.want) {
				t.Fatalf("classify(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestOutcomeLabel(t *testing.T) {
	cases := map[string]error{
		"unauthorized": domain.ErrUnauthorized,
		"rate_limited": domain.ErrRateLimited,
		"timeout":      domain.ErrTimeout,
		"upstream":     domain.ErrUpstream,
	}
	for want, err := range cases {
		if got := outcomeLabel(fmt.Errorf("x: %w", err)); got != want {
			t.Fatalf("outcomeLabel(%v) = %q, want %q", err, got, want)
		}
	}
}
