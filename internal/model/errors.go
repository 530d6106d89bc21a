// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package model

import (
	"errors"
	"fmt"

	"github.com/pdiddy/project-ascent/internal/prompt"
)

// Kind classifies a failed invocation. Callers switch on Kind to decide
// whether to retry and which message to show; they never inspect message
// text.
type Kind string

const (
	KindSchemaMismatch Kind = "SchemaMismatch"
	KindAuth           Kind = "AuthError"
	KindQuota          Kind = "QuotaExceeded"
	KindRateLimited    Kind = "RateLimited"
	KindEmptyResult    Kind = "EmptyResult"
	KindUnknown        Kind = "Unknown"
)

// Upstream reports whether the generation service itself produced the
// failure.
func (k Kind) Upstream() bool {
	switch k {
	case KindAuth, KindQuota, KindRateLimited, KindUnknown:
		return true
	}
	return false
}

// Retryable reports whether another attempt may succeed.
func (k Kind) Retryable() bool {
	switch k {
	case KindAuth, KindQuota, KindSchemaMismatch:
		return false
	}
	return true
}

// Error is the only error type returned by Client.Invoke.
type Error struct {
	Kind    Kind
	Flow    prompt.Flow
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Flow == "" {
		return fmt.Sprintf("%s: %s", e.Kind, msg)
	}
	return fmt.Sprintf("%s: %s: %s", e.Flow, e.Kind, msg)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the Kind carried by err, or KindUnknown when err is not a
// classified *Error. KindOf(nil) is the empty Kind.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var me *Error
	if errors.As(err, &me) {
		return me.Kind
	}
	return KindUnknown
}

// Retryable reports whether err may be retried.
func Retryable(err error) bool {
	return KindOf(err).Retryable()
}

// upstreamError is produced by backends to carry a classification up to
// the client. The client folds it into an *Error with the flow attached.
type upstreamError struct {
	kind Kind
	err  error
}

func (u *upstreamError) Error() string { return u.err.Error() }
func (u *upstreamError) Unwrap() error { return u.err }

// classified wraps err with kind for Client.Invoke to pick up.
func classified(kind Kind, err error) error {
	return &upstreamError{kind: kind, err: err}
}
