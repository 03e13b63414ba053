package port

import (
	"context"
	"time"
)

// SerialLink неблокирующее чтение строк из UART
type SerialLink interface {
	// PollLine возвращает полную строку без '\n', если она уже пришла.
	// ok == false означает, что полной строки пока нет.
	PollLine() (line string, ok bool, err error)
}

// Clock источник времени и задержек
type Clock interface {
	Now() time.Time

	// Sleep ждёт d или до отмены контекста
	Sleep(ctx context.Context, d time.Duration) error
}
