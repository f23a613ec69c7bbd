package store

import (
	"errors"
	"sync"

	"secutag/internal/model"
)

// ErrNotFound 分类不存在
var ErrNotFound = errors.New("taxonomy not found")

// MemoryStore 进程内分类存储，不落盘
//
// 分类加载后只读；Put 替换当前分类，旧分类仍可按 ID 取回。
type MemoryStore struct {
	taxonomies map[string]*model.Taxonomy
	currentID  string
	mu         sync.RWMutex
}

// NewMemoryStore 创建内存存储
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		taxonomies: make(map[string]*model.Taxonomy),
	}
}

// Put 保存分类并设为当前分类
func (s *MemoryStore) Put(t *model.Taxonomy) {
	if t == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.taxonomies[t.ID] = t
	s.currentID = t.ID
}

// Current 获取当前分类
func (s *MemoryStore) Current() (*model.Taxonomy, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.taxonomies[s.currentID]
	return t, ok
}

// Get 按 ID 获取分类，id 为空时返回当前分类
func (s *MemoryStore) Get(id string) (*model.Taxonomy, error) {
	if id == "" {
		if t, ok := s.Current(); ok {
			return t, nil
		}
		return nil, ErrNotFound
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.taxonomies[id]
	if !ok {
		return nil, ErrNotFound
	}
	return t, nil
}

// Len 已加载的分类数量
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.taxonomies)
}
