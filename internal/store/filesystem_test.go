package store

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (Store, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := NewFilesystem(dir)
	require.NoError(t, err)
	return s, dir
}

func TestFilesystemCreateReadRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	content := []byte("# Hi\n\nsome content")
	require.NoError(t, s.Create(ctx, "about.md", content))

	got, err := s.Read(ctx, "about.md")
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestFilesystemCreateCollision(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	require.NoError(t, s.Create(ctx, "about.md", nil))
	err := s.Create(ctx, "about.md", []byte("other"))
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestFilesystemReadMissing(t *testing.T) {
	s, _ := newTestStore(t)
	_, err := s.Read(context.Background(), "nope.txt")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFilesystemListSortedAndFresh(t *testing.T) {
	ctx := context.Background()
	s, dir := newTestStore(t)

	require.NoError(t, s.Create(ctx, "b.txt", nil))
	require.NoError(t, s.Create(ctx, "a.md", nil))

	names, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.md", "b.txt"}, names)

	// Files created behind the store's back show up on the next scan.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c.pdf"), nil, 0o644))
	names, err = s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.md", "b.txt", "c.pdf"}, names)
}

func TestFilesystemListSkipsDirectories(t *testing.T) {
	ctx := context.Background()
	s, dir := newTestStore(t)

	require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0o755))
	require.NoError(t, s.Create(ctx, "a.md", nil))

	names, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.md"}, names)
}

func TestFilesystemWriteUpserts(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	require.NoError(t, s.Write(ctx, "notes.txt", []byte("v1")))
	require.NoError(t, s.Write(ctx, "notes.txt", []byte("v2")))

	got, err := s.Read(ctx, "notes.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), got)
}

func TestFilesystemRename(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	require.NoError(t, s.Create(ctx, "old.md", []byte("body")))
	require.NoError(t, s.Rename(ctx, "old.md", "new.md"))

	got, err := s.Read(ctx, "new.md")
	require.NoError(t, err)
	assert.Equal(t, []byte("body"), got)

	_, err = s.Read(ctx, "old.md")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFilesystemRenameCollision(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	require.NoError(t, s.Create(ctx, "a.md", []byte("a")))
	require.NoError(t, s.Create(ctx, "b.md", []byte("b")))

	assert.ErrorIs(t, s.Rename(ctx, "a.md", "b.md"), ErrAlreadyExists)
	assert.ErrorIs(t, s.Rename(ctx, "missing.md", "c.md"), ErrNotFound)
}

func TestFilesystemDelete(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	require.NoError(t, s.Create(ctx, "gone.txt", nil))
	require.NoError(t, s.Delete(ctx, "gone.txt"))

	names, err := s.List(ctx)
	require.NoError(t, err)
	assert.NotContains(t, names, "gone.txt")

	assert.ErrorIs(t, s.Delete(ctx, "gone.txt"), ErrNotFound)
}

func TestFilesystemSaveUpload(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	require.NoError(t, s.SaveUpload(ctx, "photo.png", strings.NewReader("pngbytes")))
	got, err := s.Read(ctx, "photo.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("pngbytes"), got)

	err = s.SaveUpload(ctx, "photo.png", strings.NewReader("again"))
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestFilesystemRejectsEscapingNames(t *testing.T) {
	ctx := context.Background()
	s, dir := newTestStore(t)

	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(dir), "outside.txt"), []byte("x"), 0o644))

	for _, name := range []string{"../outside.txt", "a/b.txt", "..", ".", "", "a\x00b.txt"} {
		_, err := s.Read(ctx, name)
		assert.Error(t, err, "read %q", name)

		err = s.Create(ctx, name, nil)
		assert.Error(t, err, "create %q", name)
	}
}
