package utils

import "context"

const (
	DefaultMaxTokens   = 2048
	DefaultTemperature = 0.7

	PlannerSystemPrompt = "You are Travelstar, an expert travel planner. Always answer using exactly the section headings you are asked for."
)

// CompletionClientInterface sends one prompt to a hosted chat-completion model
// and returns the generated text. Implementations map provider failures onto
// ErrInferenceAuth, ErrRateLimited, ErrInferenceTransport and ErrEmptyResponse.
type CompletionClientInterface interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Model() string
}
