package client

import (
	"errors"
	"sort"
	"sync"
	"time"

	"alcatelz/internal/domain/block"
	"alcatelz/internal/domain/record"
)

var ErrDraftNotFound = errors.New("черновик не найден")

// Draft - локальный черновик ресурса до публикации
type Draft struct {
	ID           string        `json:"id" yaml:"id"`
	Title        string        `json:"title" yaml:"title"`
	Author       string        `json:"author,omitempty" yaml:"author,omitempty"`
	Summary      string        `json:"summary,omitempty" yaml:"summary,omitempty"`
	CategoryName string        `json:"categoryName" yaml:"categoryName"`
	CreatedBy    string        `json:"createdBy,omitempty" yaml:"createdBy,omitempty"`
	Blocks       []block.Block `json:"blocks" yaml:"blocks"`
	CreatedAt    time.Time     `json:"createdAt" yaml:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt" yaml:"updatedAt"`
	PublishedAs  string        `json:"publishedAs,omitempty" yaml:"publishedAs,omitempty"`
}

// Published сообщает, отправлен ли черновик на сервер
func (d *Draft) Published() bool {
	return d.PublishedAs != ""
}

// Request собирает запрос на публикацию
func (d *Draft) Request() record.ContributeRequest {
	blocks := make([]block.Block, len(d.Blocks))
	copy(blocks, d.Blocks)
	return record.ContributeRequest{
		Title:        d.Title,
		Author:       d.Author,
		Summary:      d.Summary,
		CategoryName: d.CategoryName,
		CreatedBy:    d.CreatedBy,
		Blocks:       blocks,
	}
}

// DraftStore - локальное хранилище черновиков
type DraftStore interface {
	Save(d *Draft) error
	Get(id string) (*Draft, error)
	List() ([]*Draft, error)
	Delete(id string) error
	Close() error
}

// MemoryStorage - временное in-memory хранилище
type MemoryStorage struct {
	mu     sync.RWMutex
	drafts map[string]*Draft
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		drafts: make(map[string]*Draft),
	}
}

func (m *MemoryStorage) Save(d *Draft) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *d
	cp.Blocks = append([]block.Block(nil), d.Blocks...)
	m.drafts[d.ID] = &cp
	return nil
}

func (m *MemoryStorage) Get(id string) (*Draft, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, exists := m.drafts[id]
	if !exists {
		return nil, ErrDraftNotFound
	}
	cp := *d
	cp.Blocks = append([]block.Block(nil), d.Blocks...)
	return &cp, nil
}

func (m *MemoryStorage) List() ([]*Draft, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	drafts := make([]*Draft, 0, len(m.drafts))
	for _, d := range m.drafts {
		cp := *d
		drafts = append(drafts, &cp)
	}
	sort.Slice(drafts, func(i, j int) bool {
		return drafts[i].UpdatedAt.After(drafts[j].UpdatedAt)
	})
	return drafts, nil
}

func (m *MemoryStorage) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.drafts[id]; !exists {
		return ErrDraftNotFound
	}
	delete(m.drafts, id)
	return nil
}

func (m *MemoryStorage) Close() error { return nil }
