// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package model sends filled prompt templates to the generation service and
// decodes the replies into typed results. A Client performs exactly one
// round trip per Invoke; retrying is the caller's concern.
package model

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/pdiddy/project-ascent/internal/prompt"
)

// Backend abstracts the generation service so tests can supply a mock.
// Complete returns the raw text of the model reply. Implementations report
// upstream failures through classified so the client can tag them.
type Backend interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// BackendFunc adapts a function to Backend.
type BackendFunc func(ctx context.Context, system, prompt string) (string, error)

func (f BackendFunc) Complete(ctx context.Context, system, prompt string) (string, error) {
	return f(ctx, system, prompt)
}

// Emptier is implemented by results that can be semantically empty (zero
// ideas, blank text).
type Emptier interface {
	IsEmpty() bool
}

// Client decodes backend replies against a prompt.Schema.
type Client struct {
	backend Backend
}

// NewClient returns a Client over backend.
func NewClient(backend Backend) *Client {
	return &Client{backend: backend}
}

// Invoke sends req to the backend once and decodes the reply into out,
// which must be a pointer. Every failure is an *Error.
func (c *Client) Invoke(ctx context.Context, req prompt.Request, out any) error {
	raw, err := c.backend.Complete(ctx, req.System, req.Text)
	if err != nil {
		return upstream(req.Flow, err)
	}

	fields, err := decodeObject(raw)
	if err != nil {
		return &Error{Kind: KindSchemaMismatch, Flow: req.Flow, Message: "invalid JSON response from model", Err: err}
	}
	if missing := missingKeys(fields, req.Schema.Required); len(missing) > 0 {
		return &Error{
			Kind:    KindSchemaMismatch,
			Flow:    req.Flow,
			Message: fmt.Sprintf("%s: missing required keys %s", req.Schema.Name, strings.Join(missing, ", ")),
		}
	}

	data, _ := json.Marshal(fields)
	if err := json.Unmarshal(data, out); err != nil {
		return &Error{Kind: KindSchemaMismatch, Flow: req.Flow, Message: fmt.Sprintf("reply does not match %s", req.Schema.Name), Err: err}
	}

	if e, ok := out.(Emptier); ok && e.IsEmpty() {
		return &Error{Kind: KindEmptyResult, Flow: req.Flow, Message: "model returned an empty result"}
	}
	return nil
}

func upstream(flow prompt.Flow, err error) error {
	var me *Error
	if errors.As(err, &me) {
		if me.Flow == "" {
			me.Flow = flow
		}
		return me
	}
	var ue *upstreamError
	if errors.As(err, &ue) {
		return &Error{Kind: ue.kind, Flow: flow, Err: ue.err}
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return &Error{Kind: KindUnknown, Flow: flow, Message: "request cancelled", Err: err}
	}
	return &Error{Kind: KindUnknown, Flow: flow, Err: err}
}

// decodeObject parses a reply into a JSON object. Replies wrapped in a
// Markdown code fence, or with prose around the object, are accepted.
func decodeObject(raw string) (map[string]json.RawMessage, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```JSON")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var fields map[string]json.RawMessage
	err := json.Unmarshal([]byte(cleaned), &fields)
	if err == nil && fields != nil {
		return fields, nil
	}

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start >= 0 && end > start {
		if err2 := json.Unmarshal([]byte(cleaned[start:end+1]), &fields); err2 == nil && fields != nil {
			return fields, nil
		}
	}
	if err == nil {
		err = errors.New("reply is not a JSON object")
	}
	return nil, err
}

func missingKeys(fields map[string]json.RawMessage, required []string) []string {
	var missing []string
	for _, k := range required {
		v, ok := fields[k]
		if !ok || string(v) == "null" {
			missing = append(missing, k)
		}
	}
	return missing
}
