// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package settings stores user preferences.
package settings

import (
	"context"
	"fmt"

	"github.com/pdiddy/project-ascent/internal/kv"
)

// ThemeKey is the fixed storage key of the theme preference.
const ThemeKey = "projectAscentTheme"

// Theme is the colour scheme preference.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// Valid reports whether t is a known theme.
func (t Theme) Valid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	}
	return false
}

// Store reads and writes preferences through a kv.Store.
type Store struct {
	kv kv.Store
}

func New(backend kv.Store) *Store {
	return &Store{kv: backend}
}

// Theme returns the saved theme. A missing or unknown value reads as
// ThemeSystem.
func (s *Store) Theme(ctx context.Context) (Theme, error) {
	v, ok, err := s.kv.Get(ctx, ThemeKey)
	if err != nil {
		return ThemeSystem, fmt.Errorf("reading theme: %w", err)
	}
	t := Theme(v)
	if !ok || !t.Valid() {
		return ThemeSystem, nil
	}
	return t, nil
}

// SetTheme saves t.
func (s *Store) SetTheme(ctx context.Context, t Theme) error {
	if !t.Valid() {
		return fmt.Errorf("invalid theme %q: want light, dark or system", t)
	}
	if err := s.kv.Set(ctx, ThemeKey, string(t)); err != nil {
		return fmt.Errorf("saving theme: %w", err)
	}
	return nil
}
