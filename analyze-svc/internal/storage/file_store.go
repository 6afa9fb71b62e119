package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"

	"review-insights/analyze-svc/internal/domain"
)

// FileStore serves records from the pipeline's output file, indexed by
// restaurant id. The file is read at start and again on Reload.
type FileStore struct {
	Path string

	mu   sync.RWMutex
	byID map[int]json.RawMessage
}

func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{Path: path}
	if _, err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *FileStore) GetAnalysis(id int) (*domain.Analysis, error) {
	s.mu.RLock()
	payload, ok := s.byID[id]
	s.mu.RUnlock()
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &domain.Analysis{RestaurantID: id, Payload: payload}, nil
}

// Reload re-reads the file and returns the ids whose payload was added or
// changed, in ascending order.
func (s *FileStore) Reload() ([]int, error) {
	raw, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read analysis file: %w", err)
	}
	byID, err := indexPayloads(raw)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	var changed []int
	for id, payload := range byID {
		if old, ok := s.byID[id]; !ok || !bytes.Equal(old, payload) {
			changed = append(changed, id)
		}
	}
	sort.Ints(changed)
	s.byID = byID
	return changed, nil
}

func indexPayloads(raw []byte) (map[int]json.RawMessage, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode analysis file: %w", err)
	}
	byID := make(map[int]json.RawMessage, len(items))
	for _, item := range items {
		var key struct {
			RestaurantID *int `json:"restaurant_id"`
			ID           *int `json:"id"`
		}
		if err := json.Unmarshal(item, &key); err != nil {
			continue
		}
		switch {
		case key.RestaurantID != nil:
			byID[*key.RestaurantID] = item
		case key.ID != nil:
			byID[*key.ID] = item
		}
	}
	return byID, nil
}
