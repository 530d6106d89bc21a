// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package retry runs an operation under a bounded-attempt policy with
// linear backoff. Errors whose model.Kind is not retryable end the run at
// once.
package retry

import (
	"context"
	"time"

	"github.com/pdiddy/project-ascent/internal/model"
)

// State is the position of a run in the policy state machine.
type State string

const (
	Attempting State = "Attempting"
	Succeeded  State = "Succeeded"
	Exhausted  State = "Exhausted"
)

const DefaultMaxAttempts = 3

// BaseDelay is the default backoff unit. Tests override this to avoid real
// sleeps.
var BaseDelay = time.Second

// after is the backoff timer; tests replace it to record waits.
var after = time.After

// Transition describes one step of a run, passed to Policy.Observer.
type Transition struct {
	State   State
	Attempt int
	// Wait is the backoff about to be slept before the next attempt.
	Wait time.Duration
	Err  error
}

// Policy bounds the attempts of an operation.
type Policy struct {
	MaxAttempts int
	// Delay is the backoff unit; the wait after attempt n is Delay*n.
	// Zero uses BaseDelay.
	Delay time.Duration
	// Observer, when set, receives every transition.
	Observer func(Transition)
}

// SingleAttempt performs one call and surfaces its error directly.
var SingleAttempt = Policy{MaxAttempts: 1}

// Default returns the idea generation policy: 3 attempts, 1s linear backoff.
func Default() Policy {
	return Policy{MaxAttempts: DefaultMaxAttempts}
}

// Do runs op until it succeeds, fails with a non-retryable error, or the
// attempt bound is reached. It returns the number of attempts made and the
// last error.
func (p Policy) Do(ctx context.Context, op func(ctx context.Context, attempt int) error) (int, error) {
	maxAttempts := p.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 1
	}
	delay := p.Delay
	if delay <= 0 {
		delay = BaseDelay
	}

	var lastErr error
	attempt := 0
	for attempt < maxAttempts {
		attempt++
		p.notify(Transition{State: Attempting, Attempt: attempt})

		err := op(ctx, attempt)
		if err == nil {
			p.notify(Transition{State: Succeeded, Attempt: attempt})
			return attempt, nil
		}
		lastErr = err

		if !model.Retryable(err) || attempt == maxAttempts {
			break
		}

		wait := delay * time.Duration(attempt)
		p.notify(Transition{State: Attempting, Attempt: attempt, Wait: wait, Err: err})
		select {
		case <-ctx.Done():
			lastErr = ctx.Err()
			p.notify(Transition{State: Exhausted, Attempt: attempt, Err: lastErr})
			return attempt, lastErr
		case <-after(wait):
		}
	}

	p.notify(Transition{State: Exhausted, Attempt: attempt, Err: lastErr})
	return attempt, lastErr
}

func (p Policy) notify(t Transition) {
	if p.Observer != nil {
		p.Observer(t)
	}
}
