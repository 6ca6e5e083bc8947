package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"nextplay-automation/pkg/openai"
)

func TestConfigValidate(t *testing.T) {
	t.Run("Missing API Key", func(t *testing.T) {
		cfg := openai.Config{}
		if err := cfg.Validate(); err == nil {
			t.Errorf("expected error for missing API key")
		}
	})

	t.Run("Defaults Applied", func(t *testing.T) {
		cfg := openai.Config{APIKey: "test-key"}
		if err := cfg.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Model != openai.DefaultModel {
			t.Errorf("expected default model, got %s", cfg.Model)
		}
		if cfg.BaseURL != openai.DefaultBaseURL {
			t.Errorf("expected default base URL, got %s", cfg.BaseURL)
		}
		if cfg.HTTPClient == nil {
			t.Errorf("expected default HTTP client")
		}
	})
}

func TestGenerateText(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("Authorization") != "Bearer test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req map[string]any
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		// Read mock command from the last message
		msgs := req["messages"].([]any)
		last := msgs[len(msgs)-1].(map[string]any)
		if last["content"] == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"id": "chatcmpl-test",
			"choices": [
				{ "index": 0, "message": { "role": "assistant", "content": "mocked reply" }, "finish_reason": "stop" }
			],
			"usage": { "prompt_tokens": 12, "completion_tokens": 7, "total_tokens": 19 }
		}`))
	}))
	defer ts.Close()

	client, err := openai.New(openai.Config{APIKey: "test-api-key", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error building client: %v", err)
	}

	t.Run("Success Flow", func(t *testing.T) {
		resp, err := client.GenerateText(context.Background(), &openai.Request{
			System:   "You are a sales assistant",
			Messages: []openai.Message{{Role: "user", Text: "Hello world"}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text != "mocked reply" {
			t.Errorf("unexpected text: %s", resp.Text)
		}
		if resp.Usage.TotalTokens != 19 {
			t.Errorf("unexpected usage: %+v", resp.Usage)
		}
	})

	t.Run("API Error Surfaces", func(t *testing.T) {
		_, err := client.GenerateText(context.Background(), &openai.Request{
			Messages: []openai.Message{{Role: "user", Text: "cause_500"}},
		})
		if err == nil {
			t.Errorf("expected error for API failure")
		}
	})

	t.Run("Model", func(t *testing.T) {
		if client.Model() != openai.DefaultModel {
			t.Errorf("expected default model, got %s", client.Model())
		}
	})
}
