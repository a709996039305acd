package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"frontdesk/internal/domain/ledger"
	"frontdesk/internal/pkg/errs"
)

var (
	ErrReadFailed  = errs.New("reading ledger snapshot failed")
	ErrWriteFailed = errs.New("writing ledger snapshot failed")
	ErrCorrupt     = errs.New("ledger snapshot is corrupt")
)

// FileStore persists the ledger snapshot as a single JSON document. Writes
// go through a temp file and rename so a crash never leaves a half-written
// snapshot behind.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the snapshot. A missing file means no prior state: it returns
// (nil, nil) and the caller bootstraps an empty ledger.
func (s *FileStore) Load() (*ledger.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errs.Mark(err, ErrReadFailed)
	}

	var snap ledger.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, errs.Mark(err, ErrCorrupt)
	}
	return &snap, nil
}

func (s *FileStore) Save(snap *ledger.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return errs.Mark(err, ErrWriteFailed)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return errs.Mark(err, ErrWriteFailed)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errs.Mark(err, ErrWriteFailed)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errs.Mark(err, ErrWriteFailed)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return errs.Mark(err, ErrWriteFailed)
	}
	return nil
}
