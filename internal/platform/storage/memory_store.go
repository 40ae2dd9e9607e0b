package storage

import (
	"context"
	"encoding/json"
	"fmt"
)

// MemorySlotStore holds slots in process memory. It backs the
// session-scoped last-section slot and doubles as the test substitute
// for the durable stores.
type MemorySlotStore struct {
	slots map[string][]byte

	// Saves counts Save calls per slot so tests can assert that every
	// mutation persisted.
	Saves map[string]int
}

func NewMemorySlotStore() *MemorySlotStore {
	return &MemorySlotStore{
		slots: make(map[string][]byte),
		Saves: make(map[string]int),
	}
}

func (s *MemorySlotStore) Load(_ context.Context, slot string, v any) error {
	payload, ok := s.slots[slot]
	if !ok {
		return nil
	}
	_ = json.Unmarshal(payload, v)
	return nil
}

func (s *MemorySlotStore) Save(_ context.Context, slot string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal slot %s: %w", slot, err)
	}
	s.slots[slot] = payload
	s.Saves[slot]++
	return nil
}

func (s *MemorySlotStore) Delete(_ context.Context, slot string) error {
	delete(s.slots, slot)
	return nil
}
