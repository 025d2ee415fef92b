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
	anthropicBaseURL  = "https://api.anthropic.com"
	messagesEndpoint  = "/v1/messages"
	anthropicVersion  = "2023-06-01"
	anthropicAuthName = "x-api-key"
)

// AnthropicConnector invokes the Anthropic messages API. It is stateless:
// one outbound request per Complete call.
type AnthropicConnector struct {
	config    config.ProviderConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewAnthropicConnector(cfg config.ProviderConfig, logger *zap.Logger) *AnthropicConnector {
	baseURL := cfg.Url
	if baseURL == "" {
		baseURL = anthropicBaseURL
	}

	return &AnthropicConnector{
		connector: newBaseConnector(cfg.HTTPClientConfig, baseURL, logger,
			pkghttp.WithStaticHeader(anthropicAuthName, cfg.AnthropicAPIKey),
			pkghttp.WithStaticHeader("anthropic-version", anthropicVersion),
		),
		config: cfg,
		logger: logger,
	}
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	Messages  []anthropicMessage `json:"messages"`
}

type messagesResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

// Complete sends a single prompt and returns the raw completion text.
func (c *AnthropicConnector) Complete(ctx context.Context, prompt string) (string, error) {
	ctxzap.Info(ctx, "requesting completion from Anthropic",
		zap.String("model", c.config.AnthropicModel),
		zap.Int("prompt_length", len(prompt)),
	)

	req := &messagesRequest{
		Model:     c.config.AnthropicModel,
		MaxTokens: c.config.MaxTokens,
		Messages: []anthropicMessage{
			{Role: "user", Content: prompt},
		},
	}

	var resp messagesResponse
	if err := doWithRetry(ctx, c.connector, &c.config, http.MethodPost, messagesEndpoint, req, &resp); err != nil {
		return "", fmt.Errorf("messages request: %w", err)
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", fmt.Errorf("%w: response contains no text blocks", entity.ErrUpstream)
	}

	ctxzap.Info(ctx, "completion received", zap.Int("completion_length", len(text)))

	return text, nil
}
