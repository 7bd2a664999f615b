package credentials

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestFile(t *testing.T) *File {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "users.conf"))
}

func TestAppendThenVerify(t *testing.T) {
	f := newTestFile(t)

	require.NoError(t, f.Append("alice", "s3cret"))

	assert.True(t, f.Verify("alice", "s3cret"))
	assert.False(t, f.Verify("alice", "wrong"))
	assert.False(t, f.Verify("nobody", "anything"))
}

func TestAppendDuplicate(t *testing.T) {
	f := newTestFile(t)

	require.NoError(t, f.Append("alice", "one"))
	assert.ErrorIs(t, f.Append("alice", "two"), ErrUserExists)

	// The original password still verifies.
	assert.True(t, f.Verify("alice", "one"))
}

func TestLoadMissingFile(t *testing.T) {
	f := newTestFile(t)

	users, err := f.Load()
	require.NoError(t, err)
	assert.Empty(t, users)
	assert.False(t, f.Verify("anyone", "anything"))
}

func TestRewriteKeepsFileWellFormed(t *testing.T) {
	f := newTestFile(t)

	require.NoError(t, f.Append("bob", "pw1"))
	require.NoError(t, f.Append("alice", "pw2"))
	require.NoError(t, f.Append("carol", "pw3"))

	raw, err := os.ReadFile(f.path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
	require.Len(t, lines, 3)

	// One entry per line, sorted by username, hash intact.
	var names []string
	for _, line := range lines {
		name, hash, ok := strings.Cut(line, ":")
		require.True(t, ok, "malformed line %q", line)
		assert.True(t, strings.HasPrefix(hash, "$2"), "not a bcrypt hash: %q", hash)
		names = append(names, name)
	}
	assert.Equal(t, []string{"alice", "bob", "carol"}, names)
}

func TestVerifyAgainstExternallyWrittenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.conf")
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte("dave:"+string(hash)+"\n"), 0o644))

	f := New(path)
	assert.True(t, f.Verify("dave", "hunter2"))
	assert.False(t, f.Verify("dave", "hunter3"))
}

func TestLoadSkipsCommentsAndBlanks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.conf")
	content := "# managed by filecms\n\nalice:$2a$04$abcdefghijklmnopqrstuv\nmalformed-line\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	users, err := New(path).Load()
	require.NoError(t, err)
	assert.Len(t, users, 1)
	assert.Contains(t, users, "alice")
}
