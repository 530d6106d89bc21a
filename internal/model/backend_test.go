// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package model

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/project-ascent/pkg/types"
)

func TestAnthropicBackend_Complete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/v1/messages"))
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "claude-test", body["model"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"msg_1","type":"message","role":"assistant","model":"claude-test",
			"content":[{"type":"text","text":"{\"refinedText\":\"ok\"}"}],
			"stop_reason":"end_turn","usage":{"input_tokens":1,"output_tokens":1}}`))
	}))
	defer srv.Close()

	b := NewAnthropicBackend("test-key", "claude-test", srv.URL, 256)
	out, err := b.Complete(context.Background(), "system", "prompt")
	require.NoError(t, err)
	assert.Equal(t, `{"refinedText":"ok"}`, out)
}

func TestAnthropicBackend_Classification(t *testing.T) {
	tests := []struct {
		name   string
		status int
		typ    string
		want   Kind
	}{
		{"unauthorized", 401, "authentication_error", KindAuth},
		{"forbidden", 403, "permission_error", KindAuth},
		{"billing", 400, "billing_error", KindQuota},
		{"rate limit", 429, "rate_limit_error", KindRateLimited},
		{"overloaded", 529, "overloaded_error", KindUnknown},
		{"server", 500, "api_error", KindUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				w.Write([]byte(`{"type":"error","error":{"type":"` + tt.typ + `","message":"nope"}}`))
			}))
			defer srv.Close()

			b := NewAnthropicBackend("k", "m", srv.URL, 256)
			_, err := b.Complete(context.Background(), "", "prompt")
			require.Error(t, err)

			var out types.RefinedText
			err = NewClient(b).Invoke(context.Background(), refineRequest(t), &out)
			assert.Equal(t, tt.want, KindOf(err))
		})
	}
}

func TestOpenAIBackend_Complete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "gpt-test", body["model"])
		assert.Len(t, body["messages"], 2)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"c1","object":"chat.completion","created":1,"model":"gpt-test",
			"choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":"{\"refinedText\":\"ok\"}"}}]}`))
	}))
	defer srv.Close()

	b := NewOpenAIBackend("test-key", "gpt-test", srv.URL, 256)
	out, err := b.Complete(context.Background(), "system", "prompt")
	require.NoError(t, err)
	assert.Equal(t, `{"refinedText":"ok"}`, out)
}

func TestOpenAIBackend_Classification(t *testing.T) {
	tests := []struct {
		name   string
		status int
		code   string
		want   Kind
	}{
		{"invalid key", 401, "invalid_api_key", KindAuth},
		{"quota", 429, "insufficient_quota", KindQuota},
		{"rate limit", 429, "rate_limit_exceeded", KindRateLimited},
		{"server", 500, "server_error", KindUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				w.Write([]byte(`{"error":{"message":"nope","type":"x","param":null,"code":"` + tt.code + `"}}`))
			}))
			defer srv.Close()

			b := NewOpenAIBackend("k", "m", srv.URL, 256)
			var out types.RefinedText
			err := NewClient(b).Invoke(context.Background(), refineRequest(t), &out)
			assert.Equal(t, tt.want, KindOf(err))
		})
	}
}

func TestNewBackend(t *testing.T) {
	_, err := NewBackend(types.AIConfig{})
	assert.ErrorIs(t, err, ErrNoAPIKey)

	b, err := NewBackend(types.AIConfig{APIKey: "k"})
	require.NoError(t, err)
	assert.IsType(t, &AnthropicBackend{}, b)
	assert.Equal(t, DefaultAnthropicModel, b.(*AnthropicBackend).model)

	b, err = NewBackend(types.AIConfig{APIKey: "k", Provider: types.ProviderOpenAI})
	require.NoError(t, err)
	assert.Equal(t, DefaultOpenAIModel, b.(*OpenAIBackend).model)

	_, err = NewBackend(types.AIConfig{APIKey: "k", Provider: "gemini"})
	assert.ErrorContains(t, err, "unknown AI provider")
}

func TestNormalizeOpenAIBaseURL(t *testing.T) {
	assert.Equal(t, "", normalizeOpenAIBaseURL(" "))
	assert.Equal(t, "https://gw.example/v1/", normalizeOpenAIBaseURL("https://gw.example"))
	assert.Equal(t, "https://gw.example/v1/", normalizeOpenAIBaseURL("https://gw.example/v1/"))
}
