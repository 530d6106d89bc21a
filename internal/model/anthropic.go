// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package model

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicBackend calls the Claude Messages API.
type AnthropicBackend struct {
	client    anthropic.Client
	model     string
	maxTokens int64
}

// NewAnthropicBackend builds a backend with SDK retries disabled; the
// retry policy above the client owns retrying.
func NewAnthropicBackend(apiKey, model, baseURL string, maxTokens int, opts ...option.RequestOption) *AnthropicBackend {
	all := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		all = append(all, option.WithBaseURL(strings.TrimRight(baseURL, "/")+"/"))
	}
	all = append(all, opts...)
	return &AnthropicBackend{
		client:    anthropic.NewClient(all...),
		model:     model,
		maxTokens: int64(maxTokens),
	}
}

// Complete sends one user message and returns the text of the reply.
func (b *AnthropicBackend) Complete(ctx context.Context, system, prompt string) (string, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(b.model),
		MaxTokens: b.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}

	msg, err := b.client.Messages.New(ctx, params)
	if err != nil {
		return "", classifyAnthropic(err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return "", classified(KindEmptyResult, errors.New("no text content in Claude API response"))
	}
	return sb.String(), nil
}

// anthropicErrorBody is the error envelope of the Claude API.
type anthropicErrorBody struct {
	Error struct {
		Type string `json:"type"`
	} `json:"error"`
}

func classifyAnthropic(err error) error {
	var apiErr *anthropic.Error
	if !errors.As(err, &apiErr) {
		return classified(KindUnknown, fmt.Errorf("calling Claude API: %w", err))
	}

	var body anthropicErrorBody
	_ = json.Unmarshal([]byte(apiErr.RawJSON()), &body)

	kind := KindUnknown
	switch {
	case apiErr.StatusCode == http.StatusUnauthorized, apiErr.StatusCode == http.StatusForbidden,
		body.Error.Type == "authentication_error", body.Error.Type == "permission_error":
		kind = KindAuth
	case apiErr.StatusCode == http.StatusPaymentRequired, body.Error.Type == "billing_error":
		kind = KindQuota
	case apiErr.StatusCode == http.StatusTooManyRequests, body.Error.Type == "rate_limit_error":
		kind = KindRateLimited
	}
	return classified(kind, fmt.Errorf("Claude API returned %d: %w", apiErr.StatusCode, err))
}
