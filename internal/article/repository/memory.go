package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/articlesvc/articles/internal/article"
)

// MemoryRepo is an in-memory Repository used by tests and local runs. It
// enforces the same unique-description rule as the Mongo index and lists in
// insertion order.
type MemoryRepo struct {
	mu    sync.RWMutex
	order []string
	store map[string]*article.Article
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{store: make(map[string]*article.Article)}
}

func (m *MemoryRepo) Count(ctx context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.store)), nil
}

func (m *MemoryRepo) Insert(ctx context.Context, a *article.Article) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[a.ID]; ok {
		return &duplicateError{err: fmt.Errorf("E11000 duplicate key error collection: articles index: _id_ dup key: { _id: %q }", a.ID)}
	}
	if err := m.checkDescription(a.ID, a.Description); err != nil {
		return err
	}
	m.store[a.ID] = a.Clone()
	m.order = append(m.order, a.ID)
	return nil
}

func (m *MemoryRepo) FindByID(ctx context.Context, id string) (*article.Article, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if a, ok := m.store[id]; ok {
		return a.Clone(), nil
	}
	return nil, ErrNotFound
}

func (m *MemoryRepo) FindAll(ctx context.Context) ([]*article.Article, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*article.Article, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.store[id].Clone())
	}
	return out, nil
}

func (m *MemoryRepo) Update(ctx context.Context, a *article.Article) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[a.ID]; !ok {
		return ErrNotFound
	}
	if err := m.checkDescription(a.ID, a.Description); err != nil {
		return err
	}
	m.store[a.ID] = a.Clone()
	return nil
}

func (m *MemoryRepo) Delete(ctx context.Context, id string) (*article.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.store[id]
	if !ok {
		return nil, ErrNotFound
	}
	delete(m.store, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return a, nil
}

// checkDescription must be called with the write lock held.
func (m *MemoryRepo) checkDescription(id, description string) error {
	for oid, other := range m.store {
		if oid != id && other.Description == description {
			return &duplicateError{err: fmt.Errorf("E11000 duplicate key error collection: articles index: description_1 dup key: { description: %q }", description)}
		}
	}
	return nil
}
