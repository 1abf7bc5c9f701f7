// repository/file.go
package repository

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/hisaab-app/hisaab-backend/models"
)

// FileGroupStore implements GroupStore on a JSON file, the closest analog
// to the original's browser local storage. Useful for single-machine
// deployments with no database around.
type FileGroupStore struct {
	Path string
}

// NewFileGroupStore creates a new FileGroupStore
func NewFileGroupStore(path string) *FileGroupStore {
	return &FileGroupStore{Path: path}
}

// Load reads and decodes the snapshot file. A missing or unreadable file
// yields an empty group list.
func (r *FileGroupStore) Load() []models.Group {
	data, err := os.ReadFile(r.Path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Error().Err(err).Str("path", r.Path).Msg("failed to read group snapshot, starting from empty state")
		}
		return []models.Group{}
	}
	return DecodeGroups(data)
}

// Save writes the serialized group list to a temp file and renames it into
// place, so a crash mid-write can't leave a truncated snapshot.
func (r *FileGroupStore) Save(groups []models.Group) error {
	data, err := EncodeGroups(groups)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(r.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	tmp := r.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, r.Path)
}
