// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package kv

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/project-ascent/pkg/types"
)

// exerciseStore runs the behaviour every backend must share.
func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	_, ok, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "k", "v1"))
	require.NoError(t, s.Set(ctx, "k", "v2"))
	v, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v2", v)

	require.NoError(t, s.Set(ctx, "multi", "line one\nline \"two\": {}"))
	v, _, err = s.Get(ctx, "multi")
	require.NoError(t, err)
	assert.Equal(t, "line one\nline \"two\": {}", v)

	require.NoError(t, s.Remove(ctx, "k"))
	_, ok, err = s.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Remove(ctx, "never-set"))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, s.Set(ctx, fmt.Sprintf("c%d", i), "x"))
		}(i)
	}
	wg.Wait()
	for i := 0; i < 8; i++ {
		_, ok, err := s.Get(ctx, fmt.Sprintf("c%d", i))
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestMemory(t *testing.T) {
	exerciseStore(t, NewMemory())
}

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.yaml")
	s, err := NewFile(path)
	require.NoError(t, err)
	exerciseStore(t, s)
}

func TestFile_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.yaml")
	ctx := context.Background()

	a, err := NewFile(path)
	require.NoError(t, err)
	require.NoError(t, a.Set(ctx, "projectAscentTheme", "dark"))

	b, err := NewFile(path)
	require.NoError(t, err)
	v, ok, err := b.Get(ctx, "projectAscentTheme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", v)
}

func TestFile_CorruptDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- not\n- a map\n"), 0o600))

	s, err := NewFile(path)
	require.NoError(t, err)
	_, _, err = s.Get(context.Background(), "k")
	assert.ErrorContains(t, err, "parsing")
}

func TestSQLite(t *testing.T) {
	s, err := NewSQLite(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	defer s.Close()
	exerciseStore(t, s)
}

func TestSQLite_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")
	ctx := context.Background()

	a, err := NewSQLite(path)
	require.NoError(t, err)
	require.NoError(t, a.Set(ctx, "k", "v"))
	require.NoError(t, a.Close())

	b, err := NewSQLite(path)
	require.NoError(t, err)
	defer b.Close()
	v, ok, err := b.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestRedis(t *testing.T) {
	url := os.Getenv("PROJECT_ASCENT_TEST_REDIS_URL")
	if url == "" {
		t.Skip("PROJECT_ASCENT_TEST_REDIS_URL not set")
	}
	s, err := NewRedis(context.Background(), url, "test-"+t.Name())
	require.NoError(t, err)
	defer s.Close()
	exerciseStore(t, s)
}

func TestRedis_BadURL(t *testing.T) {
	_, err := NewRedis(context.Background(), "not a url", "")
	assert.ErrorContains(t, err, "invalid redis url")
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	tests := []struct {
		name string
		cfg  types.StoreConfig
		want any
	}{
		{"memory", types.StoreConfig{Backend: types.StoreMemory}, &Memory{}},
		{"file", types.StoreConfig{Backend: types.StoreFile, Path: filepath.Join(dir, "a.yaml")}, &File{}},
		{"default is file", types.StoreConfig{Path: filepath.Join(dir, "b.yaml")}, &File{}},
		{"sqlite", types.StoreConfig{Backend: types.StoreSQLite, Path: filepath.Join(dir, "c.db")}, &SQLite{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Open(ctx, tt.cfg)
			require.NoError(t, err)
			defer s.Close()
			assert.IsType(t, tt.want, s)
		})
	}

	_, err := Open(ctx, types.StoreConfig{Backend: types.StoreRedis})
	assert.ErrorContains(t, err, "redis_url")

	_, err = Open(ctx, types.StoreConfig{Backend: "etcd"})
	assert.ErrorContains(t, err, "unknown store backend")
}
