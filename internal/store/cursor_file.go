package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-delta-sync/internal/logger"
)

// fileCursorStore is the file-backed [CursorStore] backend. All cursors live
// in a single JSON object keyed by collection name. Writes go through a
// temporary file followed by a rename so that a crash mid-write never leaves
// a corrupt cursor file behind.
type fileCursorStore struct {
	path   string
	logger *logger.Logger

	mu      sync.RWMutex
	loaded  bool
	cursors map[string]int64
}

// NewFileCursorStore constructs a [CursorStore] persisting cursors to the
// JSON file at path. The file is created on the first Set.
func NewFileCursorStore(path string, logger *logger.Logger) CursorStore {
	return &fileCursorStore{
		path:    path,
		logger:  logger,
		cursors: make(map[string]int64),
	}
}

// Get returns the persisted cursor for the collection. A collection without
// a stored cursor, or a cursor file that does not exist yet, reports 0.
func (f *fileCursorStore) Get(ctx context.Context, collection string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.load(ctx); err != nil {
		return 0, err
	}

	return f.cursors[collection], nil
}

// Set stores the cursor for the collection and persists the whole cursor map
// atomically.
func (f *fileCursorStore) Set(ctx context.Context, collection string, version int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.load(ctx); err != nil {
		return err
	}

	f.cursors[collection] = version

	return f.persist(ctx)
}

// load reads the cursor file into memory once. Subsequent calls are no-ops.
func (f *fileCursorStore) load(ctx context.Context) error {
	if f.loaded {
		return nil
	}

	log := logger.FromContext(ctx)

	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			f.loaded = true
			return nil
		}
		log.Err(err).
			Str("func", "fileCursorStore.load").
			Str("path", f.path).
			Msg("failed to read cursor file")
		return fmt.Errorf("read cursor file: %w", err)
	}

	cursors := make(map[string]int64)
	if err = json.Unmarshal(data, &cursors); err != nil {
		log.Err(err).
			Str("func", "fileCursorStore.load").
			Str("path", f.path).
			Msg("failed to decode cursor file")
		return fmt.Errorf("decode cursor file: %w", err)
	}

	f.cursors = cursors
	f.loaded = true

	return nil
}

// persist writes the in-memory cursor map to disk via a temp file + rename.
func (f *fileCursorStore) persist(ctx context.Context) error {
	log := logger.FromContext(ctx)

	dir := filepath.Dir(f.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Err(err).
				Str("func", "fileCursorStore.persist").
				Str("path", f.path).
				Msg("failed to create cursor directory")
			return fmt.Errorf("create cursor dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(f.cursors, "", "  ")
	if err != nil {
		return fmt.Errorf("encode cursors: %w", err)
	}

	tmp := f.path + ".tmp"
	if err = os.WriteFile(tmp, payload, 0o600); err != nil {
		log.Err(err).
			Str("func", "fileCursorStore.persist").
			Str("path", f.path).
			Msg("failed to write cursor temp file")
		return fmt.Errorf("write cursor file: %w", err)
	}

	if err = os.Rename(tmp, f.path); err != nil {
		log.Err(err).
			Str("func", "fileCursorStore.persist").
			Str("path", f.path).
			Msg("failed to rename cursor temp file")
		return fmt.Errorf("rename cursor file: %w", err)
	}

	return nil
}
