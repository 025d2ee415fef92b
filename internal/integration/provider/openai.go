package provider

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/avkozlov/analyzer-backend/internal/config"
	"github.com/avkozlov/analyzer-backend/internal/entity"
	pkghttp "github.com/avkozlov/analyzer-backend/pkg/http"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

const (
	openAIBaseURL           = "https://api.openai.com"
	chatCompletionsEndpoint = "/v1/chat/completions"
)

// OpenAIConnector invokes the OpenAI chat completions API. It is stateless:
// one outbound request per Complete call.
type OpenAIConnector struct {
	config    config.ProviderConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewOpenAIConnector(cfg config.ProviderConfig, logger *zap.Logger) *OpenAIConnector {
	baseURL := cfg.Url
	if baseURL == "" {
		baseURL = openAIBaseURL
	}

	return &OpenAIConnector{
		connector: newBaseConnector(cfg.HTTPClientConfig, baseURL, logger,
			pkghttp.WithAuthToken(cfg.OpenAIAPIKey),
		),
		config: cfg,
		logger: logger,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model               string        `json:"model"`
	Messages            []chatMessage `json:"messages"`
	MaxCompletionTokens int           `json:"max_completion_tokens,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Complete sends a single prompt and returns the raw completion text.
func (c *OpenAIConnector) Complete(ctx context.Context, prompt string) (string, error) {
	ctxzap.Info(ctx, "requesting completion from OpenAI",
		zap.String("model", c.config.OpenAIModel),
		zap.Int("prompt_length", len(prompt)),
	)

	req := &chatCompletionRequest{
		Model: c.config.OpenAIModel,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
		MaxCompletionTokens: c.config.MaxTokens,
	}

	var resp chatCompletionResponse
	if err := doWithRetry(ctx, c.connector, &c.config, http.MethodPost, chatCompletionsEndpoint, req, &resp); err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: response contains no choices", entity.ErrUpstream)
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("%w: empty completion text", entity.ErrUpstream)
	}

	ctxzap.Info(ctx, "completion received", zap.Int("completion_length", len(text)))

	return text, nil
}
