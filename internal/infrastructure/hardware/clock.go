package hardware

import (
	"context"
	"time"

	"husk-grader/internal/domain/port"
)

// SystemClock настенные часы процесса
type SystemClock struct{}

// Now возвращает текущее время
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Sleep ждёт d или отмены контекста
func (SystemClock) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

var _ port.Clock = SystemClock{}
