package port

import (
	"context"
	"errors"

	"husk-grader/internal/domain/entity"
)

// ErrNoFrame камера не вернула кадр
var ErrNoFrame = errors.New("no frame captured")

// Camera интерфейс камеры
type Camera interface {
	// CaptureFrame снимает один кадр или возвращает ErrNoFrame
	CaptureFrame(ctx context.Context) (entity.Raster, error)

	// Close освобождает устройство
	Close() error
}
