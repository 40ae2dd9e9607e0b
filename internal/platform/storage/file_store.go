package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileSlotStore keeps one JSON file per slot under the data directory.
type FileSlotStore struct {
	dir string
}

func NewFileSlotStore(dataDir string) *FileSlotStore {
	return &FileSlotStore{dir: filepath.Join(dataDir, "slots")}
}

func (s *FileSlotStore) slotPath(slot string) string {
	return filepath.Join(s.dir, slot+".json")
}

func (s *FileSlotStore) Load(_ context.Context, slot string, v any) error {
	payload, err := os.ReadFile(s.slotPath(slot))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read slot %s: %w", slot, err)
	}
	// A corrupt slot falls back to the caller's default rather than failing.
	_ = json.Unmarshal(payload, v)
	return nil
}

func (s *FileSlotStore) Save(_ context.Context, slot string, v any) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create slots dir: %w", err)
	}
	payload, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal slot %s: %w", slot, err)
	}
	if err := os.WriteFile(s.slotPath(slot), payload, 0o644); err != nil {
		return fmt.Errorf("write slot %s: %w", slot, err)
	}
	return nil
}

func (s *FileSlotStore) Delete(_ context.Context, slot string) error {
	if err := os.Remove(s.slotPath(slot)); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("delete slot %s: %w", slot, err)
	}
	return nil
}
