// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package model

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/openai/openai-go/v2/shared"
)

// OpenAIBackend calls the Chat Completions API of OpenAI or any compatible
// gateway.
type OpenAIBackend struct {
	client    openai.Client
	model     string
	maxTokens int64
}

// NewOpenAIBackend builds a backend with SDK retries disabled. baseURL may
// be an OpenAI-compatible endpoint with or without the /v1 suffix.
func NewOpenAIBackend(apiKey, model, baseURL string, maxTokens int, opts ...option.RequestOption) *OpenAIBackend {
	all := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if normalized := normalizeOpenAIBaseURL(baseURL); normalized != "" {
		all = append(all, option.WithBaseURL(normalized))
	}
	all = append(all, opts...)
	return &OpenAIBackend{
		client:    openai.NewClient(all...),
		model:     model,
		maxTokens: int64(maxTokens),
	}
}

// Complete requests a JSON-object completion and returns its content.
func (b *OpenAIBackend) Complete(ctx context.Context, system, prompt string) (string, error) {
	var messages []openai.ChatCompletionMessageParamUnion
	if system != "" {
		messages = append(messages, openai.SystemMessage(system))
	}
	messages = append(messages, openai.UserMessage(prompt))

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(b.model),
		Messages: messages,
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
	}
	if b.maxTokens > 0 {
		params.MaxCompletionTokens = openai.Int(b.maxTokens)
	}

	resp, err := b.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", classifyOpenAI(err)
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", classified(KindEmptyResult, errors.New("empty completion from OpenAI API"))
	}
	return resp.Choices[0].Message.Content, nil
}

func classifyOpenAI(err error) error {
	var apiErr *openai.Error
	if !errors.As(err, &apiErr) {
		return classified(KindUnknown, fmt.Errorf("calling OpenAI API: %w", err))
	}

	kind := KindUnknown
	switch {
	case apiErr.StatusCode == http.StatusUnauthorized, apiErr.StatusCode == http.StatusForbidden,
		apiErr.Code == "invalid_api_key":
		kind = KindAuth
	case apiErr.Code == "insufficient_quota", apiErr.StatusCode == http.StatusPaymentRequired:
		kind = KindQuota
	case apiErr.StatusCode == http.StatusTooManyRequests:
		kind = KindRateLimited
	}
	return classified(kind, fmt.Errorf("OpenAI API returned %d: %w", apiErr.StatusCode, err))
}

func normalizeOpenAIBaseURL(raw string) string {
	base := strings.TrimRight(strings.TrimSpace(raw), "/")
	if base == "" {
		return ""
	}
	if !strings.HasSuffix(base, "/v1") {
		base += "/v1"
	}
	return base + "/"
}
