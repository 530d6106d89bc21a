// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package assistant runs the AI-backed flows: each flow validates its
// input, fills its prompt template and invokes the model. Only idea
// generation retries; every other flow makes a single attempt.
package assistant

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/project-ascent/internal/metrics"
	"github.com/pdiddy/project-ascent/internal/model"
	"github.com/pdiddy/project-ascent/internal/prompt"
	"github.com/pdiddy/project-ascent/internal/retry"
	"github.com/pdiddy/project-ascent/internal/validate"
	"github.com/pdiddy/project-ascent/pkg/types"
)

// Service runs the flows against one model backend.
type Service struct {
	client     *model.Client
	ideaPolicy retry.Policy
	log        *zap.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger; the default discards.
func WithLogger(log *zap.Logger) Option {
	return func(s *Service) { s.log = log }
}

// WithIdeaPolicy overrides the retry policy of idea generation.
func WithIdeaPolicy(p retry.Policy) Option {
	return func(s *Service) { s.ideaPolicy = p }
}

// New returns a Service over backend.
func New(backend model.Backend, opts ...Option) *Service {
	s := &Service{
		client:     model.NewClient(backend),
		ideaPolicy: retry.Default(),
		log:        zap.NewNop(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// GenerateIdeas returns normalized project ideas for a student profile.
// Upstream failures other than auth and quota errors are retried.
func (s *Service) GenerateIdeas(ctx context.Context, req types.IdeaRequest) ([]types.ProjectIdea, error) {
	var out types.IdeaList
	if err := run(ctx, s, prompt.FlowIdeas, req, validate.Ideas(req), s.ideaPolicy, &out); err != nil {
		return nil, err
	}
	return NormalizeIdeas(out.ProjectIdeas), nil
}

// ChapterOutline drafts the chapter outline of a final-year report.
func (s *Service) ChapterOutline(ctx context.Context, req types.OutlineRequest) (types.ChapterOutline, error) {
	var out types.ChapterOutline
	if err := run(ctx, s, prompt.FlowChapterOutline, req, validate.Outline(req), retry.SingleAttempt, &out); err != nil {
		return types.ChapterOutline{}, err
	}
	if n := len(out.Chapters); n != ExpectedChapters {
		s.log.Warn("chapter outline has unexpected length",
			zap.Int("chapters", n), zap.Int("expected", ExpectedChapters))
	}
	return out, nil
}

// ExpectedChapters is the chapter count the outline prompt asks for.
const ExpectedChapters = 6

// ProposalOutline drafts a proposal introduction and chapter outline.
func (s *Service) ProposalOutline(ctx context.Context, req types.ProposalOutlineRequest) (types.ProposalOutline, error) {
	var out types.ProposalOutline
	if err := run(ctx, s, prompt.FlowProposalOutline, req, validate.ProposalOutline(req), retry.SingleAttempt, &out); err != nil {
		return types.ProposalOutline{}, err
	}
	return out, nil
}

// FullProposal drafts all seven proposal sections.
func (s *Service) FullProposal(ctx context.Context, req types.FullProposalRequest) (types.FullProposalDraft, error) {
	var out types.FullProposalDraft
	if err := run(ctx, s, prompt.FlowFullProposal, req, validate.FullProposal(req), retry.SingleAttempt, &out); err != nil {
		return types.FullProposalDraft{}, err
	}
	return out, nil
}

// Refine rewrites text in a formal academic register.
func (s *Service) Refine(ctx context.Context, req types.RefineRequest) (types.RefinedText, error) {
	var out types.RefinedText
	if err := run(ctx, s, prompt.FlowRefine, req, validate.Refine(req), retry.SingleAttempt, &out); err != nil {
		return types.RefinedText{}, err
	}
	return out, nil
}

// Citations suggests topics to cite, search keywords and example references.
func (s *Service) Citations(ctx context.Context, req types.CitationRequest) (types.CitationSuggestions, error) {
	var out types.CitationSuggestions
	if err := run(ctx, s, prompt.FlowCitations, req, validate.Citations(req), retry.SingleAttempt, &out); err != nil {
		return types.CitationSuggestions{}, err
	}
	return out, nil
}

// run is the shared pipeline. A validation failure returns before any
// prompt is built.
func run(ctx context.Context, s *Service, flow prompt.Flow, input any, invalid error, policy retry.Policy, out any) error {
	log := s.log.With(zap.String("flow", string(flow)))
	start := time.Now()

	if invalid != nil {
		metrics.FlowInvocationsTotal.WithLabelValues(string(flow), "invalid").Inc()
		log.Debug("input rejected", zap.Error(invalid))
		return invalid
	}

	req, err := prompt.Build(flow, input)
	if err != nil {
		return err
	}

	policy.Observer = chainObserver(policy.Observer, func(tr retry.Transition) {
		switch {
		case tr.State == retry.Attempting && tr.Wait == 0:
			metrics.FlowAttemptsTotal.WithLabelValues(string(flow)).Inc()
			log.Debug("invoking model", zap.Int("attempt", tr.Attempt))
		case tr.State == retry.Attempting:
			log.Warn("attempt failed, retrying",
				zap.Int("attempt", tr.Attempt),
				zap.Duration("wait", tr.Wait),
				zap.String("kind", string(model.KindOf(tr.Err))),
				zap.Error(tr.Err))
		}
	})

	attempts, err := policy.Do(ctx, func(ctx context.Context, _ int) error {
		return s.client.Invoke(ctx, req, out)
	})
	metrics.FlowDuration.WithLabelValues(string(flow)).Observe(time.Since(start).Seconds())

	if err != nil {
		kind := model.KindOf(err)
		metrics.FlowInvocationsTotal.WithLabelValues(string(flow), string(kind)).Inc()
		log.Error("flow failed",
			zap.Int("attempts", attempts),
			zap.String("kind", string(kind)),
			zap.Error(err))
		return exhausted(flow, attempts, policy, err)
	}

	metrics.FlowInvocationsTotal.WithLabelValues(string(flow), "ok").Inc()
	log.Info("flow completed", zap.Int("attempts", attempts), zap.Duration("elapsed", time.Since(start)))
	return nil
}

// ErrIdeasExhausted is reported when idea generation used every attempt
// without a descriptive error.
var ErrIdeasExhausted = errors.New("failed to generate project ideas after multiple attempts")

// exhausted shapes the error surfaced when a multi-attempt run ends. The
// last error is kept so its kind survives for message mapping.
func exhausted(flow prompt.Flow, attempts int, policy retry.Policy, err error) error {
	if policy.MaxAttempts <= 1 || attempts < policy.MaxAttempts || flow != prompt.FlowIdeas {
		return err
	}
	var me *model.Error
	if errors.As(err, &me) && me.Message == "" && me.Err == nil {
		return &model.Error{Kind: me.Kind, Flow: flow, Message: ErrIdeasExhausted.Error(), Err: ErrIdeasExhausted}
	}
	return err
}

func chainObserver(a, b func(retry.Transition)) func(retry.Transition) {
	if a == nil {
		return b
	}
	return func(tr retry.Transition) {
		a(tr)
		b(tr)
	}
}
