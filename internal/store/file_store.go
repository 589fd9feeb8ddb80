package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/alexisbeaulieu97/palettegen/internal/config"
	"github.com/alexisbeaulieu97/palettegen/internal/logger"
	palerrors "github.com/alexisbeaulieu97/palettegen/pkg/errors"
)

// Store saves and restores snapshots. Load reports false when there is no
// usable saved state.
type Store interface {
	Save(Snapshot) error
	Load() (Snapshot, bool)
}

// FileStore keeps the snapshot in a single JSON file.
type FileStore struct {
	path string
	log  *logger.Logger
	mu   sync.Mutex
}

// NewFileStore returns a store backed by path. The parent directory is
// created on first save.
func NewFileStore(path string, log *logger.Logger) *FileStore {
	return &FileStore{path: path, log: log.With("component", "store")}
}

// Path returns the backing file location.
func (s *FileStore) Path() string {
	return s.path
}

// Save writes the snapshot atomically.
func (s *FileStore) Save(snap Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return palerrors.NewPersistenceError("save", s.path, fmt.Errorf("create state directory: %w", err))
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return palerrors.NewPersistenceError("save", s.path, fmt.Errorf("marshal state: %w", err))
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return palerrors.NewPersistenceError("save", s.path, fmt.Errorf("write temporary file: %w", err))
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return palerrors.NewPersistenceError("save", s.path, fmt.Errorf("rename temporary file: %w", err))
	}

	s.log.Debug("state saved")
	return nil
}

// Load reads the snapshot. Missing, unreadable, corrupt or invalid files all
// report false so callers start from defaults.
func (s *FileStore) Load() (Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.log.Error(err, "read saved state")
		}
		return Snapshot{}, false
	}

	snap, err := Decode(data)
	if err != nil {
		s.log.With("path", s.path).Warn(fmt.Sprintf("ignoring saved state: %v", err))
		return Snapshot{}, false
	}

	return snap, true
}

// Decode parses and validates a serialized snapshot, filling in defaults
// for missing fields.
func Decode(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("parse state: %w", err)
	}

	if err := config.GetValidator().Struct(snap); err != nil {
		return Snapshot{}, fmt.Errorf("validate state: %w", err)
	}

	def := Default()
	if snap.Palette == nil {
		snap.Palette = def.Palette
	}
	if snap.LockedColors == nil {
		snap.LockedColors = def.LockedColors
	}
	if snap.ColorMode == "" {
		snap.ColorMode = def.ColorMode
	}
	if snap.CodeFormat == "" {
		snap.CodeFormat = def.CodeFormat
	}
	if snap.History == nil {
		snap.History = def.History
	}
	if snap.Language == "" {
		snap.Language = def.Language
	}

	return snap, nil
}
