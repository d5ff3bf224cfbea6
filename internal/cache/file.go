package cache

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// FileStore persists one JSON file per key in a directory. It is the
// closest server-side analog to the browser-local store the cache layer
// was designed around: reads fail open, writes fail silently.
type FileStore struct {
	dir    string
	logger *zap.Logger
}

func NewFileStore(dir string, logger *zap.Logger) *FileStore {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Warn("Failed to create cache directory", zap.String("dir", dir), zap.Error(err))
	}
	return &FileStore{dir: dir, logger: logger}
}

func (s *FileStore) Get(_ context.Context, key string) (Entry, bool) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return Entry{}, false
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		// Undecodable entries are treated as absent.
		s.logger.Debug("Discarding malformed cache file",
			zap.String("key", key),
			zap.Error(err))
		return Entry{}, false
	}

	return entry, true
}

func (s *FileStore) Set(_ context.Context, key string, entry Entry) {
	data, err := json.Marshal(entry)
	if err != nil {
		s.logger.Warn("Failed to encode cache entry", zap.String("key", key), zap.Error(err))
		return
	}

	if err := os.WriteFile(s.path(key), data, 0o644); err != nil {
		s.logger.Warn("Failed to persist cache entry", zap.String("key", key), zap.Error(err))
	}
}

// path maps a cache key to a file name, replacing separators that are not
// filesystem safe.
func (s *FileStore) path(key string) string {
	name := strings.NewReplacer("/", "-", string(os.PathSeparator), "-").Replace(key)
	return filepath.Join(s.dir, name+".json")
}
