package document

import (
	"context"
	"sort"
	"sync"
)

// MockStore is an in-memory Store for tests. The error fields, when set,
// make the corresponding operation fail so handlers can be exercised on
// their backend-failure paths.
type MockStore struct {
	mu   sync.RWMutex
	docs map[string]*Document

	LoadErr error
	SaveErr error
	ListErr error
}

// NewMockStore returns an empty in-memory store.
func NewMockStore() *MockStore {
	return &MockStore{docs: make(map[string]*Document)}
}

func (m *MockStore) Load(_ context.Context, profileID string) (*Document, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if doc, ok := m.docs[profileID]; ok {
		return doc.Clone(), nil
	}
	return Default(), nil
}

func (m *MockStore) Save(_ context.Context, profileID string, doc *Document) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[profileID] = doc.Clone()
	return nil
}

func (m *MockStore) List(_ context.Context) ([]string, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.docs))
	for id := range m.docs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
