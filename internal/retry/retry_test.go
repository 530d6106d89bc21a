// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/project-ascent/internal/model"
)

// recordWaits replaces the backoff timer with one that fires at once and
// records the requested durations.
func recordWaits(t *testing.T) *[]time.Duration {
	t.Helper()
	var waits []time.Duration
	old := after
	after = func(d time.Duration) <-chan time.Time {
		waits = append(waits, d)
		ch := make(chan time.Time, 1)
		ch <- time.Now()
		return ch
	}
	t.Cleanup(func() { after = old })
	return &waits
}

func unknownErr(msg string) error {
	return &model.Error{Kind: model.KindUnknown, Message: msg}
}

func TestDo_ExhaustsAfterMaxAttempts(t *testing.T) {
	waits := recordWaits(t)

	var states []State
	p := Default()
	p.Observer = func(tr Transition) {
		if tr.Wait == 0 {
			states = append(states, tr.State)
		}
	}

	calls := 0
	attempts, err := p.Do(context.Background(), func(_ context.Context, attempt int) error {
		calls++
		return unknownErr("boom " + string(rune('0'+attempt)))
	})

	require.Error(t, err)
	assert.Equal(t, 3, attempts)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []time.Duration{1000 * time.Millisecond, 2000 * time.Millisecond}, *waits)
	assert.Contains(t, err.Error(), "boom 3")
	assert.Equal(t, []State{Attempting, Attempting, Attempting, Exhausted}, states)
}

func TestDo_NonRetryableShortCircuits(t *testing.T) {
	tests := []struct {
		name string
		kind model.Kind
	}{
		{"auth", model.KindAuth},
		{"quota", model.KindQuota},
		{"schema mismatch", model.KindSchemaMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			waits := recordWaits(t)
			want := &model.Error{Kind: tt.kind, Message: "stop"}

			calls := 0
			attempts, err := Default().Do(context.Background(), func(context.Context, int) error {
				calls++
				return want
			})

			assert.Equal(t, 1, attempts)
			assert.Equal(t, 1, calls)
			assert.Same(t, want, err)
			assert.Empty(t, *waits)
		})
	}
}

func TestDo_SucceedsAfterRetry(t *testing.T) {
	waits := recordWaits(t)

	var last Transition
	p := Default()
	p.Observer = func(tr Transition) { last = tr }

	attempts, err := p.Do(context.Background(), func(_ context.Context, attempt int) error {
		if attempt < 2 {
			return &model.Error{Kind: model.KindRateLimited}
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
	assert.Equal(t, []time.Duration{time.Second}, *waits)
	assert.Equal(t, Succeeded, last.State)
}

func TestDo_SingleAttempt(t *testing.T) {
	waits := recordWaits(t)
	calls := 0
	attempts, err := SingleAttempt.Do(context.Background(), func(context.Context, int) error {
		calls++
		return unknownErr("once")
	})
	assert.Equal(t, 1, attempts)
	assert.Equal(t, 1, calls)
	assert.ErrorContains(t, err, "once")
	assert.Empty(t, *waits)
}

func TestDo_CancelledDuringBackoff(t *testing.T) {
	old := BaseDelay
	BaseDelay = time.Hour
	defer func() { BaseDelay = old }()

	ctx, cancel := context.WithCancel(context.Background())
	attempts, err := Default().Do(ctx, func(context.Context, int) error {
		cancel()
		return unknownErr("x")
	})
	assert.Equal(t, 1, attempts)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDo_ZeroBoundMakesOneAttempt(t *testing.T) {
	calls := 0
	attempts, err := Policy{}.Do(context.Background(), func(context.Context, int) error {
		calls++
		return errors.New("plain")
	})
	assert.Equal(t, 1, attempts)
	assert.Equal(t, 1, calls)
	assert.EqualError(t, err, "plain")
}
