package domain

import "context"

// StayGenerator is the outbound port to the generative model. One call
// sends one prompt and returns the raw response text; no retries happen
// at this layer. Implementations classify failures into the sentinel
// errors in errors.go.
type StayGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
