// Package credentials implements the flat-file credential store: one
// "username:bcrypt-hash" entry per line, re-read on every lookup so edits
// made outside the process are picked up immediately.
package credentials

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// ErrUserExists is returned by Append when the username is already present.
var ErrUserExists = errors.New("username already exists")

// File is a credential store backed by a single flat file. A missing file
// behaves as an empty store until the first Append creates it.
type File struct {
	path string

	// mu serializes Append's read-hash-rewrite cycle. Lookups are
	// deliberately unsynchronized; they read a complete snapshot because
	// rewrites are atomic (temp file + rename).
	mu sync.Mutex
}

// New returns a credential store backed by the file at path.
func New(path string) *File {
	return &File{path: path}
}

// Load reads the entire credential file and returns the username-to-hash
// mapping. The file is parsed on every call; nothing is cached.
func (f *File) Load() (map[string]string, error) {
	file, err := os.Open(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("open credentials: %w", err)
	}
	defer file.Close()

	users := make(map[string]string)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		username, hash, ok := strings.Cut(line, ":")
		if !ok || username == "" {
			continue
		}
		users[username] = hash
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read credentials: %w", err)
	}
	return users, nil
}

// Verify reports whether password matches the stored hash for username.
// Unknown usernames and load failures report false; Verify never returns
// an error. The comparison is bcrypt's, which is constant-time against
// the hash.
func (f *File) Verify(username, password string) bool {
	users, err := f.Load()
	if err != nil {
		return false
	}
	hash, ok := users[username]
	if !ok {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// Append registers a new user. It fails with ErrUserExists on duplicates,
// hashes the password with bcrypt, and rewrites the whole file atomically
// so the store stays well-formed after every registration.
func (f *File) Append(username, password string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	users, err := f.Load()
	if err != nil {
		return err
	}
	if _, ok := users[username]; ok {
		return ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	users[username] = string(hash)

	return f.rewrite(users)
}

// rewrite serializes the full mapping sorted by username and replaces the
// file via temp-file-and-rename.
func (f *File) rewrite(users map[string]string) error {
	names := make([]string, 0, len(users))
	for name := range users {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		b.WriteString(name)
		b.WriteByte(':')
		b.WriteString(users[name])
		b.WriteByte('\n')
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create credentials dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".users-*")
	if err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	if _, err := tmp.WriteString(b.String()); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write credentials: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write credentials: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace credentials: %w", err)
	}
	return nil
}
