package port

import (
	"context"

	"husk-grader/internal/domain/entity"
)

// CycleRepository интерфейс истории циклов
type CycleRepository interface {
	// Save сохраняет завершённый цикл
	Save(ctx context.Context, cycle *entity.Cycle) error

	// Get возвращает цикл по ID
	Get(ctx context.Context, id string) (*entity.Cycle, bool, error)

	// Recent возвращает последние циклы, новые в конце
	Recent(ctx context.Context) ([]*entity.Cycle, error)
}
