// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package model

import (
	"errors"
	"fmt"
	"net/http"

	anthropicoption "github.com/anthropics/anthropic-sdk-go/option"
	openaioption "github.com/openai/openai-go/v2/option"

	"github.com/pdiddy/project-ascent/pkg/types"
)

const (
	DefaultAnthropicModel = "claude-haiku-4-5-20251001"
	DefaultOpenAIModel    = "gpt-4o-mini"
	DefaultMaxTokens      = 4096
)

// ErrNoAPIKey is returned by NewBackend when no key is configured.
var ErrNoAPIKey = errors.New("AI provider api key is empty")

// NewBackend builds the backend selected by cfg.Provider. An empty provider
// selects Anthropic.
func NewBackend(cfg types.AIConfig) (Backend, error) {
	if cfg.APIKey == "" {
		return nil, ErrNoAPIKey
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	var httpClient *http.Client
	if cfg.Timeout > 0 {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	switch cfg.Provider {
	case types.ProviderAnthropic, "":
		m := cfg.Model
		if m == "" {
			m = DefaultAnthropicModel
		}
		var opts []anthropicoption.RequestOption
		if httpClient != nil {
			opts = append(opts, anthropicoption.WithHTTPClient(httpClient))
		}
		return NewAnthropicBackend(cfg.APIKey, m, cfg.BaseURL, maxTokens, opts...), nil
	case types.ProviderOpenAI:
		m := cfg.Model
		if m == "" {
			m = DefaultOpenAIModel
		}
		var opts []openaioption.RequestOption
		if httpClient != nil {
			opts = append(opts, openaioption.WithHTTPClient(httpClient))
		}
		return NewOpenAIBackend(cfg.APIKey, m, cfg.BaseURL, maxTokens, opts...), nil
	default:
		return nil, fmt.Errorf("unknown AI provider %q", cfg.Provider)
	}
}
