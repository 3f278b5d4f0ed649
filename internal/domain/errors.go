package domain

import "errors"

// Error taxonomy. Upstream errors are surfaced as-is and never retried;
// only parse failures go through the retry loop, and ErrParseFailure is
// what remains once that budget is spent.
var (
	ErrEmptyLocation = errors.New("stays: location must not be empty")

	ErrUnauthorized = errors.New("stays: model rejected the API key")
	ErrRateLimited  = errors.New("stays: model quota or rate limit exceeded")
	ErrTimeout      = errors.New("stays: model call timed out")
	ErrUpstream     = errors.New("stays: model call failed")

	ErrParseFailure = errors.New("stays: model output unparseable after retries")
)
