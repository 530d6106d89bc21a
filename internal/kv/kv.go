// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package kv is the persistence port behind drafts and preferences: a flat
// string-to-string store under fixed keys. Backends are safe for concurrent
// use.
package kv

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdiddy/project-ascent/pkg/types"
)

// Store is a string key-value store.
type Store interface {
	// Get returns the value of key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
	Close() error
}

const (
	appDir     = "project-ascent"
	fileName   = "state.yaml"
	sqliteName = "state.db"
)

// DefaultDir returns the directory holding persisted state, under the user
// config directory.
func DefaultDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating user config directory: %w", err)
	}
	return filepath.Join(dir, appDir), nil
}

// Open returns the backend selected by cfg. An empty backend selects the
// file store.
func Open(ctx context.Context, cfg types.StoreConfig) (Store, error) {
	switch cfg.Backend {
	case types.StoreMemory:
		return NewMemory(), nil
	case types.StoreFile, "":
		path, err := pathOrDefault(cfg.Path, fileName)
		if err != nil {
			return nil, err
		}
		return NewFile(path)
	case types.StoreSQLite:
		path, err := pathOrDefault(cfg.Path, sqliteName)
		if err != nil {
			return nil, err
		}
		return NewSQLite(path)
	case types.StoreRedis:
		if cfg.RedisURL == "" {
			return nil, fmt.Errorf("store backend redis requires redis_url")
		}
		return NewRedis(ctx, cfg.RedisURL, cfg.Namespace)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}

func pathOrDefault(path, name string) (string, error) {
	if path != "" {
		return path, nil
	}
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}
