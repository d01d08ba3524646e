// Package cache implements a content-addressed, file-backed store for
// computed artifacts (summaries and synthesized audio) plus the persisted
// news snapshot. Entry existence is the cache-hit signal: every artifact
// lives at a path derived deterministically from its key, no index needed.
package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/newsbreeze/pkg/domain"
)

// namespaces for cached artifacts
const (
	NamespaceSummaries = "summaries"
	NamespaceAudio     = "audio"
)

const snapshotFile = "news_cache.json"

// ErrNotFound indicates the requested cache entry does not exist
var ErrNotFound = errors.New("cache entry not found")

// ReadError indicates an I/O failure reading an existing entry. Callers
// treat it as a cache miss and recompute.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string { return fmt.Sprintf("cache read %s: %v", e.Path, e.Err) }
func (e *ReadError) Unwrap() error { return e.Err }

// WriteError indicates an I/O failure persisting an entry. Callers treat it
// as "computed but not cached" rather than failing the request.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string { return fmt.Sprintf("cache write %s: %v", e.Path, e.Err) }
func (e *WriteError) Unwrap() error { return e.Err }

// Config holds cache store configuration
type Config struct {
	Dir      string        // root for summaries and the snapshot file
	AudioDir string        // synthesized audio, served directly over HTTP
	Expiry   time.Duration // 0 keeps entries forever
}

// Store maps (namespace, key) pairs to files on disk
type Store struct {
	dir      string
	audioDir string
	expiry   time.Duration
}

// NewStore creates the store and all required cache roots. Directory
// creation is idempotent, safe to call on every startup.
func NewStore(cfg Config) (*Store, error) {
	s := &Store{dir: cfg.Dir, audioDir: cfg.AudioDir, expiry: cfg.Expiry}
	for _, dir := range []string{cfg.Dir, filepath.Join(cfg.Dir, NamespaceSummaries), cfg.AudioDir} {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("create cache dir %s: %w", dir, err)
		}
	}
	return s, nil
}

// SummaryEntry is the persisted record for a cached summary
type SummaryEntry struct {
	Summary   string    `json:"summary"`
	Timestamp time.Time `json:"timestamp"`
	URL       string    `json:"url,omitempty"`
}

// Path returns the deterministic location for a key in the given namespace
func (s *Store) Path(namespace, key string) string {
	switch namespace {
	case NamespaceAudio:
		return filepath.Join(s.audioDir, key+".wav")
	case NamespaceSummaries:
		return filepath.Join(s.dir, NamespaceSummaries, key+".json")
	default:
		return filepath.Join(s.dir, namespace, key)
	}
}

// Has reports whether an entry exists for the key. Expired entries are
// evicted here and reported as absent.
func (s *Store) Has(namespace, key string) bool {
	if !validKey(key) {
		return false
	}
	path := s.Path(namespace, key)
	fi, err := os.Stat(path)
	if err != nil {
		return false
	}
	if s.expired(fi) {
		s.evict(path)
		return false
	}
	return true
}

// Get returns the raw artifact for the key, ErrNotFound if absent
func (s *Store) Get(namespace, key string) ([]byte, error) {
	if !validKey(key) {
		return nil, ErrNotFound
	}
	path := s.Path(namespace, key)
	fi, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, &ReadError{Path: path, Err: err}
	}
	if s.expired(fi) {
		s.evict(path)
		return nil, ErrNotFound
	}
	data, err := os.ReadFile(path) //nolint:gosec // path derived from validated key
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	return data, nil
}

// Put writes the artifact atomically: a temp file in the target directory is
// renamed into place on completion, so a concurrent reader never observes a
// truncated entry. Double-writes of the same key are benign because keys are
// content-addressed.
func (s *Store) Put(namespace, key string, data []byte) error {
	if !validKey(key) {
		return &WriteError{Path: key, Err: fmt.Errorf("invalid cache key")}
	}
	path := s.Path(namespace, key)

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+key+".tmp-*")
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return &WriteError{Path: path, Err: err}
	}
	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return &WriteError{Path: path, Err: err}
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

// GetSummary loads and decodes a cached summary record
func (s *Store) GetSummary(key string) (*SummaryEntry, error) {
	data, err := s.Get(NamespaceSummaries, key)
	if err != nil {
		return nil, err
	}
	var entry SummaryEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, &ReadError{Path: s.Path(NamespaceSummaries, key), Err: err}
	}
	return &entry, nil
}

// PutSummary encodes and stores a summary record
func (s *Store) PutSummary(key string, entry SummaryEntry) error {
	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return &WriteError{Path: s.Path(NamespaceSummaries, key), Err: err}
	}
	return s.Put(NamespaceSummaries, key, data)
}

// SaveSnapshot persists the current news snapshot, write-after-fetch
func (s *Store) SaveSnapshot(snap *domain.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return &WriteError{Path: filepath.Join(s.dir, snapshotFile), Err: err}
	}
	return s.Put("", snapshotFile, data)
}

// LoadSnapshot reads the persisted news snapshot, ErrNotFound if none saved
func (s *Store) LoadSnapshot() (*domain.Snapshot, error) {
	path := filepath.Join(s.dir, snapshotFile)
	data, err := os.ReadFile(path) //nolint:gosec // fixed well-known file
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, &ReadError{Path: path, Err: err}
	}
	var snap domain.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	return &snap, nil
}

// AudioDir returns the directory holding synthesized audio files
func (s *Store) AudioDir() string { return s.audioDir }

// Size returns the total size in bytes of all cached artifacts
func (s *Store) Size() int64 {
	var total int64
	for _, dir := range []string{s.dir, s.audioDir} {
		_ = filepath.WalkDir(dir, func(_ string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil //nolint:nilerr // best-effort accounting
			}
			if fi, ferr := d.Info(); ferr == nil {
				total += fi.Size()
			}
			return nil
		})
	}
	return total
}

func (s *Store) expired(fi fs.FileInfo) bool {
	return s.expiry > 0 && time.Since(fi.ModTime()) > s.expiry
}

func (s *Store) evict(path string) {
	if err := os.Remove(path); err != nil {
		lgr.Printf("[WARN] failed to evict expired cache entry %s: %v", path, err)
	}
}

// validKey rejects keys that could escape the cache directories. Keys are
// fingerprints or voice-qualified fingerprints, never user-controlled paths.
func validKey(key string) bool {
	return key != "" && key != "." && key != ".." && !strings.ContainsAny(key, "/\\")
}
