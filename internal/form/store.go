package form

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/consoleforeveryone/rental-api/internal/entity"
)

// StoredDraft bundles everything the wizard persists between sessions as
// one value, so the step index can never survive a cleared draft.
type StoredDraft struct {
	Draft *entity.InquiryDraft `json:"draft"`
	Step  Step                 `json:"step"`
}

// DraftStore is the local persistence behind the wizard. Load returns
// (nil, nil) when nothing is stored.
type DraftStore interface {
	Load() (*StoredDraft, error)
	Save(*StoredDraft) error
	Clear() error
}

// FileDraftStore keeps the draft in a single JSON file. Writes go through
// a temp file and rename so a crash never leaves a half-written draft.
type FileDraftStore struct {
	path string
}

func NewFileDraftStore(path string) *FileDraftStore {
	return &FileDraftStore{path: path}
}

func (s *FileDraftStore) Load() (*StoredDraft, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var stored StoredDraft
	if err := json.Unmarshal(data, &stored); err != nil {
		// A corrupt draft is treated as no draft rather than blocking
		// the form.
		return nil, nil
	}
	return &stored, nil
}

func (s *FileDraftStore) Save(stored *StoredDraft) error {
	data, err := json.Marshal(stored)
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func (s *FileDraftStore) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// MemoryDraftStore is the in-process store used in tests.
type MemoryDraftStore struct {
	stored *StoredDraft
}

func NewMemoryDraftStore() *MemoryDraftStore {
	return &MemoryDraftStore{}
}

func (s *MemoryDraftStore) Load() (*StoredDraft, error) {
	return s.stored, nil
}

func (s *MemoryDraftStore) Save(stored *StoredDraft) error {
	copied := *stored
	s.stored = &copied
	return nil
}

func (s *MemoryDraftStore) Clear() error {
	s.stored = nil
	return nil
}
