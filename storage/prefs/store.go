package prefs

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/vamsidulam/exameval/core/session"
)

// fileStore persists session prefs as a small JSON file, the console's
// analog of the browser's local storage. Single-writer by assumption.
type fileStore struct {
	path string
}

var _ session.Store = (*fileStore)(nil)

func NewFileStore(path string) session.Store {
	return &fileStore{path: path}
}

func (s *fileStore) Load() (session.Prefs, error) {
	var p session.Prefs
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return p, nil // first run
		}
		return p, errors.Wrapf(err, "reading %s", s.path)
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return session.Prefs{}, errors.Wrapf(err, "parsing %s", s.path)
	}
	return p, nil
}

func (s *fileStore) Save(p session.Prefs) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return errors.Wrapf(err, "creating %s", dir)
		}
	}
	// token material: keep it out of other users' reach
	return errors.Wrapf(os.WriteFile(s.path, data, 0o600), "writing %s", s.path)
}
