package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"github.com/amitlokhande0/Nearby-StaysFinder-Agent/internal/adapters/observability"
	"github.com/amitlokhande0/Nearby-StaysFinder-Agent/internal/domain"
)

// generationTemperature leans deterministic so repeated searches for
// the same location stay comparable and parse consistently.
const generationTemperature float32 = 0.2

const maxOutputTokens int32 = 8192

// Client implements domain.StayGenerator on the Gemini API. One
// Generate call is one upstream request: failures are classified, never
// retried here — the retry budget belongs to the parse loop above.
type Client struct {
	gc    *genai.Client
	model string
	rl    *rate.Limiter
}

func New(ctx context.Context, key, model string, rps int) (*Client, error) {
	if key == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}
	if rps <= 0 {
		rps = 2
	}
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  key,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Client{
		gc:    gc,
		model: model,
		rl:    rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	// client-side rate limiting
	if err := c.rl.Wait(ctx); err != nil {
		return "", classify(err)
	}

	cfg := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr[float32](generationTemperature),
		MaxOutputTokens:  maxOutputTokens,
		ResponseMIMEType: "application/json",
	}

	start := time.Now()
	resp, err := c.gc.Models.GenerateContent(ctx, c.model, genai.Text(prompt), cfg)
	if err != nil {
		kerr := classify(err)
		observability.ObserveModel(c.model, outcomeLabel(kerr), time.Since(start))
		return "", kerr
	}
	observability.ObserveModel(c.model, "ok", time.Since(start))

	txt := extractText(resp)
	if txt == "" {
		return "", fmt.Errorf("%w: empty candidate content", domain.ErrUpstream)
	}
	return txt, nil
}

// extractText pulls the first non-empty text part out of the response
// candidates.
func extractText(resp *genai.GenerateContentResponse) string {
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part != nil && part.Text != "" {
				return part.Text
			}
		}
	}
	return ""
}

// classify maps SDK and context errors onto the domain taxonomy so the
// presentation layer can report each kind distinctly.
func classify(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %v", domain.ErrTimeout, err)
	}
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
		case http.StatusTooManyRequests:
			return fmt.Errorf("%w: %v", domain.ErrRateLimited, err)
		}
	}
	return fmt.Errorf("%w: %v", domain.ErrUpstream, err)
}

func outcomeLabel(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, domain.ErrRateLimited):
		return "rate_limited"
	case errors.Is(err, domain.ErrTimeout):
		return "timeout"
	default:
		return "upstream"
	}
}
