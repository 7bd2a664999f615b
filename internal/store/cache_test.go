package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCachedListInvalidatedByWrites(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	inner, err := NewFilesystem(dir)
	require.NoError(t, err)
	s := NewCached(inner)

	require.NoError(t, s.Create(ctx, "a.md", nil))
	names, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.md"}, names)

	// A file created behind the cache's back stays invisible until a
	// mutating operation flushes the listing.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hidden.txt"), nil, 0o644))
	names, err = s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.md"}, names)

	require.NoError(t, s.Create(ctx, "b.md", nil))
	names, err = s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.md", "b.md", "hidden.txt"}, names)
}

func TestCachedMutationsPassThrough(t *testing.T) {
	ctx := context.Background()
	inner, err := NewFilesystem(t.TempDir())
	require.NoError(t, err)
	s := NewCached(inner)

	require.NoError(t, s.Create(ctx, "doc.txt", []byte("v1")))
	require.NoError(t, s.Write(ctx, "doc.txt", []byte("v2")))

	got, err := s.Read(ctx, "doc.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), got)

	require.NoError(t, s.Rename(ctx, "doc.txt", "doc2.txt"))
	require.NoError(t, s.Delete(ctx, "doc2.txt"))

	names, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)
}
