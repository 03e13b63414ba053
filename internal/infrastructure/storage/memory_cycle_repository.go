package storage

import (
	"context"
	"sync"

	"husk-grader/internal/domain/entity"
	"husk-grader/internal/domain/port"
)

// DefaultHistory сколько последних циклов хранить
const DefaultHistory = 64

// MemoryCycleRepository in-memory история циклов ограниченного размера
type MemoryCycleRepository struct {
	mu     sync.RWMutex
	limit  int
	order  []string
	cycles map[string]*entity.Cycle
}

// NewMemoryCycleRepository создаёт хранилище на limit циклов
func NewMemoryCycleRepository(limit int) *MemoryCycleRepository {
	if limit <= 0 {
		limit = DefaultHistory
	}
	return &MemoryCycleRepository{
		limit:  limit,
		cycles: make(map[string]*entity.Cycle),
	}
}

// Save сохраняет копию цикла, самый старый вытесняется при переполнении
func (r *MemoryCycleRepository) Save(ctx context.Context, cycle *entity.Cycle) error {
	c := *cycle

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.cycles[c.ID]; !exists {
		r.order = append(r.order, c.ID)
	}
	r.cycles[c.ID] = &c

	for len(r.order) > r.limit {
		delete(r.cycles, r.order[0])
		r.order = r.order[1:]
	}

	return nil
}

// Get возвращает цикл по ID
func (r *MemoryCycleRepository) Get(ctx context.Context, id string) (*entity.Cycle, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.cycles[id]
	if !ok {
		return nil, false, nil
	}
	cp := *c
	return &cp, true, nil
}

// Recent возвращает сохранённые циклы от старых к новым
func (r *MemoryCycleRepository) Recent(ctx context.Context) ([]*entity.Cycle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.Cycle, 0, len(r.order))
	for _, id := range r.order {
		cp := *r.cycles[id]
		out = append(out, &cp)
	}
	return out, nil
}

// Проверка реализации интерфейса
var _ port.CycleRepository = (*MemoryCycleRepository)(nil)
