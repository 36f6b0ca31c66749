package watcher_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hostcache/internal/adapters/fs"
	"go.trai.ch/hostcache/internal/adapters/watcher"
)

func TestDigestCache_Changed(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.ts")
	b := filepath.Join(dir, "b.ts")
	require.NoError(t, os.WriteFile(a, []byte("export const a = 1;"), 0o600))
	require.NoError(t, os.WriteFile(b, []byte("export const b = 1;"), 0o600))

	cache := watcher.NewDigestCache(fs.NewHasher())
	cache.Seed([]string{a, b})
	assert.Equal(t, 2, cache.Len())

	assert.Empty(t, cache.Changed([]string{a, b}), "touch without edits is not a change")

	require.NoError(t, os.WriteFile(a, []byte("export const a = 2;"), 0o600))
	assert.Equal(t, []string{a}, cache.Changed([]string{a, b}))
	assert.Empty(t, cache.Changed([]string{a}), "new digest is remembered")
}

func TestDigestCache_NewAndRemoved(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.ts")
	require.NoError(t, os.WriteFile(a, []byte("x"), 0o600))

	cache := watcher.NewDigestCache(fs.NewHasher())

	assert.Equal(t, []string{a}, cache.Changed([]string{a}), "unknown file counts as changed")

	require.NoError(t, os.Remove(a))
	assert.Equal(t, []string{a}, cache.Changed([]string{a}))
	assert.Equal(t, 0, cache.Len())
}
