// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package plagiarism is a stand-in similarity checker. It produces a random
// score after a simulated delay; no text leaves the process.
package plagiarism

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/pdiddy/project-ascent/internal/validate"
)

const (
	// DefaultDelay simulates the latency of a real checking service.
	DefaultDelay = 2 * time.Second

	minScore = 5
	maxScore = 34

	// HighThreshold is the score above which text is flagged.
	HighThreshold = 20
)

// Result is the outcome of one check.
type Result struct {
	Score int  `json:"score"`
	High  bool `json:"high"`
}

// Message is the advice shown next to the score.
func (r Result) Message() string {
	if r.High {
		return "A score above 20% may indicate potential plagiarism. Please review your text and sources carefully."
	}
	return "The similarity score is within an acceptable range. Good job on maintaining originality!"
}

// Checker scores text. The zero value is not usable; use New.
type Checker struct {
	delay time.Duration

	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a Checker that waits delay per check. A nil rng uses a
// randomly seeded source.
func New(delay time.Duration, rng *rand.Rand) *Checker {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Checker{delay: delay, rng: rng}
}

// Check validates text, waits the simulated delay and returns a score in
// [5, 34].
func (c *Checker) Check(ctx context.Context, text string) (Result, error) {
	if err := validate.PlagiarismText(text); err != nil {
		return Result{}, err
	}

	if c.delay > 0 {
		t := time.NewTimer(c.delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		case <-t.C:
		}
	}

	c.mu.Lock()
	score := minScore + c.rng.IntN(maxScore-minScore+1)
	c.mu.Unlock()
	return Result{Score: score, High: score > HighThreshold}, nil
}
