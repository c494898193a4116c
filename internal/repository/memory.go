package repository

import (
	"context"
	"slices"
	"sync"

	"github.com/msumanth960/epaper/internal/models"
)

// sessionList - список записей текущего процесса, новые записи добавляются в начало
type sessionList[T any] struct {
	mu    sync.RWMutex
	items []T
}

func (l *sessionList[T]) prepend(item T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = slices.Insert(l.items, 0, item)
}

func (l *sessionList[T]) list(limit int) []T {
	l.mu.RLock()
	defer l.mu.RUnlock()
	n := len(l.items)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]T, n)
	copy(out, l.items[:n])
	return out
}

// MemoryEditionRepository хранит загруженные выпуски в памяти до перезапуска
type MemoryEditionRepository struct {
	list sessionList[models.Edition]
}

func NewMemoryEditionRepository() *MemoryEditionRepository {
	return &MemoryEditionRepository{}
}

func (r *MemoryEditionRepository) Save(_ context.Context, edition *models.Edition) error {
	r.list.prepend(*edition)
	return nil
}

func (r *MemoryEditionRepository) List(_ context.Context, limit int) ([]models.Edition, error) {
	return r.list.list(limit), nil
}

// MemoryIncidentRepository хранит сообщения об инцидентах в памяти до перезапуска
type MemoryIncidentRepository struct {
	list sessionList[models.Incident]
}

func NewMemoryIncidentRepository() *MemoryIncidentRepository {
	return &MemoryIncidentRepository{}
}

func (r *MemoryIncidentRepository) Save(_ context.Context, incident *models.Incident) error {
	r.list.prepend(*incident)
	return nil
}

func (r *MemoryIncidentRepository) List(_ context.Context, limit int) ([]models.Incident, error) {
	return r.list.list(limit), nil
}
