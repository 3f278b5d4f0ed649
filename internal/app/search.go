package app

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/amitlokhande0/Nearby-StaysFinder-Agent/internal/adapters/observability"
	"github.com/amitlokhande0/Nearby-StaysFinder-Agent/internal/domain"
)

// maxAttempts bounds the parse-failure retry loop: one initial call
// plus two retries with the stricter prompt.
const maxAttempts = 3

type SearchService struct {
	gen     domain.StayGenerator
	timeout time.Duration
}

func NewSearchService(g domain.StayGenerator, timeout time.Duration) *SearchService {
	return &SearchService{gen: g, timeout: timeout}
}

// Search runs the full chain for one user action: normalize the
// request, prompt the model, sanitize and decode the response, and map
// the listings leniently.
//
// Retry policy: only malformed output is retried; upstream failures
// (network, auth, quota, timeout) abort immediately. Malformed elements
// inside an otherwise valid array are dropped, not fatal — the whole
// batch is rejected only when nothing parses. An empty array is a valid
// zero-listing result, never an error.
func (s *SearchService) Search(ctx context.Context, req domain.SearchRequest) (domain.SearchResult, error) {
	if err := req.Normalize(); err != nil {
		return domain.SearchResult{}, err
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		prompt := buildPrompt(req)
		if attempt > 1 {
			prompt = buildRetryPrompt(req)
			observability.ObserveParseRetry()
		}

		raw, err := s.generate(ctx, prompt)
		if err != nil {
			return domain.SearchResult{}, err
		}

		var elems []map[string]any
		if err := json.Unmarshal([]byte(sanitizeResponse(raw)), &elems); err != nil {
			lastErr = err
			log.Warn().Err(err).Int("attempt", attempt).Msg("model output failed JSON decode")
			continue
		}

		listings, dropped := mapListings(elems)
		if dropped > 0 {
			observability.ObserveDroppedListings(dropped)
			log.Warn().Int("dropped", dropped).Int("kept", len(listings)).Msg("dropped malformed listings")
		}
		if len(listings) == 0 && len(elems) > 0 {
			// Parsed as JSON but nothing usable in it; same retry
			// path as a decode failure.
			lastErr = fmt.Errorf("all %d elements malformed", len(elems))
			log.Warn().Int("attempt", attempt).Int("elements", len(elems)).Msg("no usable listings in model output")
			continue
		}

		if len(listings) > req.MaxResults {
			listings = listings[:req.MaxResults]
		}
		return domain.SearchResult{Location: req.Location, Listings: listings}, nil
	}

	return domain.SearchResult{}, fmt.Errorf("%w: %v", domain.ErrParseFailure, lastErr)
}

// generate runs one model call under the configured wall-clock bound so
// a hung upstream cannot block the UI indefinitely.
func (s *SearchService) generate(ctx context.Context, prompt string) (string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	return s.gen.Generate(ctx, prompt)
}
