// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package draft persists the single generated proposal draft and renders it
// for export.
package draft

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/pdiddy/project-ascent/internal/kv"
	"github.com/pdiddy/project-ascent/pkg/types"
)

// Key is the fixed storage key of the draft.
const Key = "projectAscentProposalDraft"

// Store keeps at most one draft. Saving overwrites; there is no history.
type Store struct {
	kv  kv.Store
	log *zap.Logger

	mu     sync.RWMutex
	cached types.FullProposalDraft
	exists bool
}

// Open returns a Store over backend and performs the initial Load, so
// Exists and Cached reflect what was persisted before.
func Open(ctx context.Context, backend kv.Store, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Store{kv: backend, log: log}
	if _, _, err := s.Load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Save serializes d and writes it under Key, replacing any previous draft.
func (s *Store) Save(ctx context.Context, d types.FullProposalDraft) error {
	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("marshaling draft: %w", err)
	}
	if err := s.kv.Set(ctx, Key, string(data)); err != nil {
		return fmt.Errorf("saving draft: %w", err)
	}

	s.mu.Lock()
	s.cached, s.exists = d, true
	s.mu.Unlock()
	s.log.Debug("draft saved")
	return nil
}

// errNullDraft marks a stored JSON null.
var errNullDraft = errors.New("draft is null")

// Load reads the persisted draft. A value that cannot be decoded, or a JSON
// null, is removed and reported as absent.
func (s *Store) Load(ctx context.Context) (types.FullProposalDraft, bool, error) {
	raw, ok, err := s.kv.Get(ctx, Key)
	if err != nil {
		return types.FullProposalDraft{}, false, fmt.Errorf("loading draft: %w", err)
	}

	var d types.FullProposalDraft
	if ok {
		if err := decodeDraft(raw, &d); err != nil {
			s.log.Warn("discarding unreadable draft", zap.Error(err))
			if rmErr := s.kv.Remove(ctx, Key); rmErr != nil {
				return types.FullProposalDraft{}, false, fmt.Errorf("removing unreadable draft: %w", rmErr)
			}
			d, ok = types.FullProposalDraft{}, false
		}
	}

	s.mu.Lock()
	s.cached, s.exists = d, ok
	s.mu.Unlock()
	return d, ok, nil
}

func decodeDraft(raw string, d *types.FullProposalDraft) error {
	var p *types.FullProposalDraft
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return err
	}
	if p == nil {
		return errNullDraft
	}
	*d = *p
	return nil
}

// Clear removes the persisted draft.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.kv.Remove(ctx, Key); err != nil {
		return fmt.Errorf("clearing draft: %w", err)
	}
	s.mu.Lock()
	s.cached, s.exists = types.FullProposalDraft{}, false
	s.mu.Unlock()
	s.log.Debug("draft cleared")
	return nil
}

// Exists reports whether a draft was present at the last Open, Load, Save
// or Clear.
func (s *Store) Exists() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.exists
}

// Cached returns the draft as of the last store operation.
func (s *Store) Cached() (types.FullProposalDraft, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cached, s.exists
}
