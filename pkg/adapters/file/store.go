package file

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/dpda/pkg/domain"
	"github.com/cockroachdb/errors"
)

const (
	ext       = ".json"
	tmpPrefix = ".tmp-"
)

// Store implements ports.RunStore on the local filesystem, one JSON file
// per session.
type Store struct {
	BasePath string
}

// New creates a Store rooted at basePath, ".dpda/sessions" when empty.
func New(basePath string) *Store {
	if basePath == "" {
		basePath = filepath.Join(".dpda", "sessions")
	}
	return &Store{BasePath: basePath}
}

// path maps a session ID to its file. IDs that are empty, start with a dot
// or contain a path separator are rejected; hidden names are left to
// temporary files.
func (s *Store) path(sessionID string) (string, error) {
	if sessionID == "" || strings.HasPrefix(sessionID, ".") || strings.ContainsAny(sessionID, `/\`) {
		return "", errors.Wrapf(domain.ErrInvalidSessionID, "%q", sessionID)
	}
	return filepath.Join(s.BasePath, sessionID+ext), nil
}

// Save writes the run state to a temporary file and renames it over the
// session file, so readers never see a partial write.
func (s *Store) Save(ctx context.Context, sessionID string, state *domain.RunState) error {
	destPath, err := s.path(sessionID)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.BasePath, 0o755); err != nil {
		return errors.Wrap(err, "failed to ensure session directory")
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal run state")
	}

	tmpFile, err := os.CreateTemp(s.BasePath, tmpPrefix+sessionID+"-*")
	if err != nil {
		return errors.Wrap(err, "failed to create temp file")
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return errors.Wrap(err, "failed to write temp file")
	}
	if err := tmpFile.Sync(); err != nil {
		return errors.Wrap(err, "failed to fsync temp file")
	}
	// Windows cannot rename an open file.
	if err := tmpFile.Close(); err != nil {
		return errors.Wrap(err, "failed to close temp file")
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		return errors.Wrap(err, "failed to move session file into place")
	}
	return nil
}

// Load reads the session file.
func (s *Store) Load(ctx context.Context, sessionID string) (*domain.RunState, error) {
	filePath, err := s.path(sessionID)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(domain.ErrSessionNotFound, "session %s", sessionID)
		}
		return nil, errors.Wrap(err, "failed to read session file")
	}

	var state domain.RunState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal run state")
	}
	return &state, nil
}

// Delete removes the session file. A missing file is not an error.
func (s *Store) Delete(ctx context.Context, sessionID string) error {
	filePath, err := s.path(sessionID)
	if err != nil {
		return err
	}
	if err := os.Remove(filePath); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "failed to delete session file")
	}
	return nil
}

// List returns the IDs of the stored sessions in lexical order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.BasePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, errors.Wrap(err, "failed to list sessions")
	}

	sessions := []string{}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != ext || strings.HasPrefix(name, ".") {
			continue
		}
		sessions = append(sessions, strings.TrimSuffix(name, ext))
	}
	sort.Strings(sessions)
	return sessions, nil
}
