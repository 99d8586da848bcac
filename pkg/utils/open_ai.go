package utils

import (
	"context"
	"errors"
	"fmt"
	openai "github.com/sashabaranov/go-openai"
	"net/http"
	"strings"
	"time"
)

const (
	HuggingFaceRouterURL = "https://router.huggingface.co/v1"
	DefaultChatModel     = "meta-llama/Meta-Llama-3-8B-Instruct"
)

// OpenAICompletionClient talks to any OpenAI-compatible chat completion API.
// With the default base URL it targets the Hugging Face inference router.
type OpenAICompletionClient struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

func NewOpenAICompletionClient(token, baseURL, model string, timeout time.Duration) *OpenAICompletionClient {
	cfg := openai.DefaultConfig(token)
	if baseURL == "" {
		baseURL = HuggingFaceRouterURL
	}
	cfg.BaseURL = strings.TrimRight(baseURL, "/")
	if model == "" {
		model = DefaultChatModel
	}

	return &OpenAICompletionClient{
		client:  openai.NewClientWithConfig(cfg),
		model:   model,
		timeout: timeout,
	}
}

func (c *OpenAICompletionClient) Model() string { return c.model }

func (c *OpenAICompletionClient) Generate(ctx context.Context, prompt string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: PlannerSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   DefaultMaxTokens,
		Temperature: DefaultTemperature,
	})
	if err != nil {
		return "", classifyOpenAIError(err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", ErrEmptyResponse
	}

	return text, nil
}

func classifyOpenAIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return classifyStatus(apiErr.HTTPStatusCode, err)
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return classifyStatus(reqErr.HTTPStatusCode, err)
	}

	return fmt.Errorf("%w: %v", ErrInferenceTransport, err)
}

func classifyStatus(code int, err error) error {
	switch code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %v", ErrInferenceAuth, err)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %v", ErrRateLimited, err)
	default:
		return fmt.Errorf("%w: %v", ErrInferenceTransport, err)
	}
}
