package utils

import (
	"context"
	"errors"
	"fmt"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"net/http"
	"strings"
	"time"
)

const DefaultGeminiModel = "gemini-1.5-flash"

// GeminiCompletionClient implements CompletionClientInterface using Google's Gemini models
type GeminiCompletionClient struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

func NewGeminiCompletionClient(ctx context.Context, apiKey, model string, timeout time.Duration) (*GeminiCompletionClient, error) {
	if model == "" {
		model = DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiCompletionClient{
		client:  client,
		model:   model,
		timeout: timeout,
	}, nil
}

func (c *GeminiCompletionClient) Model() string { return c.model }

func (c *GeminiCompletionClient) Close() error {
	return c.client.Close()
}

func (c *GeminiCompletionClient) Generate(ctx context.Context, prompt string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(DefaultTemperature)
	m.SetMaxOutputTokens(DefaultMaxTokens)
	m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(PlannerSystemPrompt)}}

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", classifyGeminiError(err)
	}

	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
		// first candidate with content wins
		if sb.Len() > 0 {
			break
		}
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", ErrEmptyResponse
	}

	return text, nil
}

func classifyGeminiError(err error) error {
	var blocked *genai.BlockedError
	if errors.As(err, &blocked) {
		return fmt.Errorf("%w: %v", ErrEmptyResponse, err)
	}

	var gErr *googleapi.Error
	if errors.As(err, &gErr) {
		// Gemini answers a bad API key with 400 INVALID_ARGUMENT
		if gErr.Code == http.StatusBadRequest && strings.Contains(strings.ToLower(gErr.Message), "api key") {
			return fmt.Errorf("%w: %v", ErrInferenceAuth, err)
		}
		return classifyStatus(gErr.Code, err)
	}

	return fmt.Errorf("%w: %v", ErrInferenceTransport, err)
}
