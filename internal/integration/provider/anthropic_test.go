package provider

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avkozlov/analyzer-backend/internal/config"
	"github.com/avkozlov/analyzer-backend/internal/entity"
	"go.uber.org/zap"
)

func TestAnthropicComplete(t *testing.T) {
	var gotKey, gotVersion, gotPath string
	var gotReq messagesRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-api-key")
		gotVersion = r.Header.Get("anthropic-version")
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("Failed to decode request body: %v", err)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"content": [
			{"type": "text", "text": "part one "},
			{"type": "thinking", "text": "ignored"},
			{"type": "text", "text": "part two"}
		]}`))
	}))
	defer server.Close()

	conn := NewAnthropicConnector(testProviderConfig(config.ProviderAnthropic, server.URL), zap.NewNop())

	text, err := conn.Complete(context.Background(), "solve this")
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}

	if text != "part one part two" {
		t.Errorf("Expected concatenated text blocks, got %q", text)
	}
	if gotKey != "test-anthropic-key" {
		t.Errorf("Unexpected x-api-key header: %q", gotKey)
	}
	if gotVersion != "2023-06-01" {
		t.Errorf("Unexpected anthropic-version header: %q", gotVersion)
	}
	if gotPath != "/v1/messages" {
		t.Errorf("Unexpected path: %q", gotPath)
	}
	if gotReq.MaxTokens != 256 {
		t.Errorf("Unexpected max_tokens: %d", gotReq.MaxTokens)
	}
	if len(gotReq.Messages) != 1 || gotReq.Messages[0].Role != "user" {
		t.Errorf("Unexpected messages: %+v", gotReq.Messages)
	}
}

func TestAnthropicCompleteErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": {"type": "api_error", "message": "overloaded"}}`))
	}))
	defer server.Close()

	conn := NewAnthropicConnector(testProviderConfig(config.ProviderAnthropic, server.URL), zap.NewNop())

	_, err := conn.Complete(context.Background(), "solve this")
	if !errors.Is(err, entity.ErrUpstream) {
		t.Errorf("Expected ErrUpstream for provider error status, got %v", err)
	}
}

func TestAnthropicCompleteNoTextBlocks(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"content": [{"type": "tool_use"}]}`))
	}))
	defer server.Close()

	conn := NewAnthropicConnector(testProviderConfig(config.ProviderAnthropic, server.URL), zap.NewNop())

	_, err := conn.Complete(context.Background(), "solve this")
	if !errors.Is(err, entity.ErrUpstream) {
		t.Errorf("Expected ErrUpstream when the response has no text blocks, got %v", err)
	}
}
