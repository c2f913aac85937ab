package assistant

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/borgmon/rise-ease/pkg/models"
	"github.com/go-resty/resty/v2"
)

// ErrNoChoices is returned when the completion API answers without a message
var ErrNoChoices = errors.New("completion response has no choices")

// Turn is one (role, content) pair sent to the completion API
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Completer produces the next assistant turn for a conversation
type Completer interface {
	Complete(ctx context.Context, turns []Turn) (string, error)
}

// ClientConfig configures the completion API client
type ClientConfig struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Client talks to an OpenAI-compatible chat completions endpoint
type Client struct {
	HTTP  *resty.Client
	Model string
}

// completionRequest matches the JSON body of POST /chat/completions
type completionRequest struct {
	Model    string `json:"model"`
	Messages []Turn `json:"messages"`
}

// completionResponse captures the fields we read from the reply
type completionResponse struct {
	Choices []struct {
		Message Turn `json:"message"`
	} `json:"choices"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// APIError is returned for non-2xx answers from the completion API
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("completion API returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("completion API returned status %d: %s", e.StatusCode, e.Message)
}

// NewClient creates a completion client
func NewClient(cfg ClientConfig) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = models.DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = models.DefaultModel
	}

	r := resty.New()
	r.SetBaseURL(cfg.BaseURL)
	r.SetHeader("Content-Type", "application/json")
	r.SetHeader("Accept", "application/json")
	if cfg.APIKey != "" {
		r.SetAuthToken(cfg.APIKey)
	}
	if cfg.Timeout > 0 {
		r.SetTimeout(cfg.Timeout)
	}

	return &Client{
		HTTP:  r,
		Model: cfg.Model,
	}
}

// NewClientFromConfig creates a completion client from the app configuration
func NewClientFromConfig(config *models.Config) *Client {
	return NewClient(ClientConfig{
		BaseURL: config.BaseURL,
		APIKey:  config.APIKey,
		Model:   config.Model,
	})
}

// Complete sends the turns and returns the content of the first choice
func (c *Client) Complete(ctx context.Context, turns []Turn) (string, error) {
	resp, err := c.HTTP.R().
		SetContext(ctx).
		SetBody(completionRequest{Model: c.Model, Messages: turns}).
		SetResult(&completionResponse{}).
		SetError(&errorResponse{}).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}

	if resp.IsError() {
		apiErr := &APIError{StatusCode: resp.StatusCode()}
		if body, ok := resp.Error().(*errorResponse); ok {
			apiErr.Message = body.Error.Message
		}
		return "", apiErr
	}

	result, ok := resp.Result().(*completionResponse)
	if !ok || len(result.Choices) == 0 {
		return "", ErrNoChoices
	}

	return result.Choices[0].Message.Content, nil
}
