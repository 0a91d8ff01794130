// Package fs stores keys as files in a directory, optionally versioned with Git.
package fs

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/base32"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/eisen/pkg/core"
	"github.com/aretw0/eisen/pkg/git"
)

// FileExt is the extension of every key file.
const FileExt = ".snap"

const (
	// maxNameLen keeps key file names under the usual 255-byte NAME_MAX.
	maxNameLen = 240
	// hashedPrefix starts hashed names; '-' is outside the base32hex alphabet.
	hashedPrefix = "h-"
)

var errBadHeader = errors.New("malformed key file")

// Uppercase-free alphabet so that two keys never map to names that a
// case-insensitive filesystem would treat as the same file.
var keyEncoding = base32.HexEncoding.WithPadding(base32.NoPadding)

// Storage implements core.Storage using one file per key.
type Storage struct {
	Path   string
	git    *git.Client
	config Config

	mu            sync.RWMutex
	watcherActive bool
	lastWrite     *time.Time
}

// Config holds the configuration for the filesystem storage.
type Config struct {
	Path         string
	AutoInit     bool // create the directory when missing
	Versioned    bool // commit every write to a git repository in Path
	ReadOnly     bool
	Logger       *slog.Logger
	ErrorHandler func(error) // receives watcher errors; optional
}

// NewStorage creates a new filesystem-backed storage.
func NewStorage(config Config) *Storage {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	return &Storage{
		Path:   config.Path,
		git:    git.NewClient(config.Path, git.DefaultLockName, config.Logger),
		config: config,
	}
}

// Initialize ensures the directory exists (and the git repository, when versioned).
func (s *Storage) Initialize(ctx context.Context) error {
	if s.config.AutoInit && !s.config.ReadOnly {
		if err := os.MkdirAll(s.Path, 0755); err != nil {
			return fmt.Errorf("failed to create storage directory: %w", err)
		}
	}

	info, err := os.Stat(s.Path)
	if err != nil {
		return fmt.Errorf("storage path unavailable: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("storage path is not a directory: %s", s.Path)
	}

	if !s.config.Versioned || s.config.ReadOnly {
		return nil
	}
	if !git.IsInstalled() {
		return fmt.Errorf("git is not installed")
	}
	if !s.git.IsRepo() {
		if err := s.git.Init(); err != nil {
			return fmt.Errorf("failed to git init: %w", err)
		}
		if err := s.ensureIgnore(); err != nil {
			return fmt.Errorf("failed to ensure .gitignore: %w", err)
		}
	}
	return nil
}

// ensureIgnore keeps the lock and temp files out of the history.
func (s *Storage) ensureIgnore() error {
	entries := []string{git.DefaultLockName, TempFilePrefix + "*"}
	return os.WriteFile(filepath.Join(s.Path, ".gitignore"), []byte(strings.Join(entries, "\n")+"\n"), 0644)
}

// FileName returns the file name that holds key. Keys whose encoded name
// would exceed maxNameLen get a fixed-length hashed name instead, and their
// file starts with a header carrying the key.
func FileName(key string) string {
	encoded := strings.ToLower(keyEncoding.EncodeToString([]byte(key))) + FileExt
	if len(encoded) <= maxNameLen {
		return encoded
	}
	sum := sha256.Sum256([]byte(key))
	return hashedPrefix + hex.EncodeToString(sum[:]) + FileExt
}

// KeyFromFileName reverses FileName. It reports false for foreign files and
// for hashed names, whose key is only known from the file content.
func KeyFromFileName(name string) (string, bool) {
	if !strings.HasSuffix(name, FileExt) || isHashedName(name) {
		return "", false
	}
	raw, err := keyEncoding.DecodeString(strings.ToUpper(strings.TrimSuffix(name, FileExt)))
	if err != nil {
		return "", false
	}
	return string(raw), true
}

func isHashedName(name string) bool {
	return strings.HasPrefix(name, hashedPrefix) && strings.HasSuffix(name, FileExt)
}

// encodeFile returns the bytes stored for key: the value itself, or for
// hashed names "<len(key)>\n" + key + value.
func encodeFile(key string, value []byte) []byte {
	if !isHashedName(FileName(key)) {
		return value
	}
	header := strconv.Itoa(len(key)) + "\n" + key
	return append([]byte(header), value...)
}

// decodeHeader splits the content of a hashed file into its key and value.
func decodeHeader(data []byte) (string, []byte, error) {
	nl := bytes.IndexByte(data, '\n')
	if nl < 0 {
		return "", nil, errBadHeader
	}
	n, err := strconv.Atoi(string(data[:nl]))
	if err != nil || n < 0 || n > len(data)-nl-1 {
		return "", nil, errBadHeader
	}
	rest := data[nl+1:]
	return string(rest[:n]), rest[n:], nil
}

// readEntry reads the key and value stored in the file called name.
func (s *Storage) readEntry(name string) (string, []byte, error) {
	data, err := os.ReadFile(filepath.Join(s.Path, name))
	if err != nil {
		return "", nil, err
	}
	if !isHashedName(name) {
		key, ok := KeyFromFileName(name)
		if !ok {
			return "", nil, errBadHeader
		}
		return key, data, nil
	}
	key, value, err := decodeHeader(data)
	if err != nil {
		return "", nil, err
	}
	if FileName(key) != name {
		return "", nil, errBadHeader
	}
	return key, value, nil
}

// Get reads the value of key.
func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	stored, value, err := s.readEntry(FileName(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, core.ErrKeyNotFound
		}
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if stored != key {
		return nil, core.ErrKeyNotFound
	}
	return value, nil
}

// Set writes value atomically and, when versioned, commits it.
//
// Workflow:
//  1. Reject the write in read-only mode.
//  2. Write to a temp file and rename it over the key file.
//  3. (If versioned) 'git add' and 'git commit' when the file changed.
func (s *Storage) Set(ctx context.Context, key string, value []byte) error {
	if s.config.ReadOnly {
		return core.ErrReadOnly
	}

	filename := FileName(key)
	if err := writeFileAtomic(filepath.Join(s.Path, filename), encodeFile(key, value), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	s.recordWrite()

	if !s.config.Versioned {
		return nil
	}
	return s.commit(filename, "update "+key, false)
}

// Delete removes key. A missing key is not an error.
func (s *Storage) Delete(ctx context.Context, key string) error {
	if s.config.ReadOnly {
		return core.ErrReadOnly
	}

	filename := FileName(key)
	if err := os.Remove(filepath.Join(s.Path, filename)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove %s: %w", key, err)
	}
	s.recordWrite()

	if !s.config.Versioned {
		return nil
	}
	return s.commit(filename, "delete "+key, true)
}

func (s *Storage) commit(filename, msg string, removed bool) error {
	unlock, err := s.git.Lock()
	if err != nil {
		return fmt.Errorf("failed to acquire git lock: %w", err)
	}
	defer unlock()

	if removed {
		err = s.git.Rm(filename)
	} else {
		err = s.git.Add(filename)
	}
	if err != nil {
		return fmt.Errorf("failed to stage %s: %w", filename, err)
	}

	status, err := s.git.Status(filename)
	if err != nil {
		return fmt.Errorf("failed to git status: %w", err)
	}
	if status == "" {
		return nil
	}

	if err := s.git.Commit(msg); err != nil {
		return fmt.Errorf("failed to git commit: %w", err)
	}
	return nil
}

// Keys lists the stored keys starting with prefix, sorted.
func (s *Storage) Keys(ctx context.Context, prefix string) ([]string, error) {
	entries, err := os.ReadDir(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list storage: %w", err)
	}

	var keys []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		key, ok := s.keyOf(e.Name())
		if !ok || !strings.HasPrefix(key, prefix) {
			continue
		}
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys, nil
}

// keyOf returns the key held by the file called name.
func (s *Storage) keyOf(name string) (string, bool) {
	if !isHashedName(name) {
		return KeyFromFileName(name)
	}
	key, _, err := s.readEntry(name)
	if err != nil {
		s.config.Logger.Debug("skipping unreadable key file", "file", name, "error", err)
		return "", false
	}
	return key, true
}

// History returns the commits that touched key, newest first.
// It is empty when versioning is disabled.
func (s *Storage) History(ctx context.Context, key string, limit int) ([]string, error) {
	if !s.config.Versioned || !s.git.IsRepo() {
		return nil, nil
	}
	return s.git.Log(FileName(key), limit)
}

var (
	_ core.Storage   = (*Storage)(nil)
	_ core.Watchable = (*Storage)(nil)
)
