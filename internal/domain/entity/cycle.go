package entity

import "time"

// LinkState состояние протокола на стороне координатора
type LinkState string

const (
	StateIdle           LinkState = "idle"            // Ожидание объекта
	StateAwaitingResult LinkState = "awaiting_result" // Камера включена, ждём строку RESULT
	StateResolved       LinkState = "resolved"        // Результат получен
	StateTimedOut       LinkState = "timed_out"       // Результат не пришёл за отведённое время
)

// Terminal сообщает, что цикл завершён
func (s LinkState) Terminal() bool {
	return s == StateResolved || s == StateTimedOut
}

// Cycle один цикл обнаружения объекта и ожидания результата
type Cycle struct {
	ID         string        // идентификатор цикла для логов
	State      LinkState     // текущее состояние
	DistanceCM float64       // расстояние, по которому сработал цикл
	Grade      GradeBand     // результат, если State == StateResolved
	Ignored    int           // сколько посторонних строк пропущено
	StartedAt  time.Time     // вход в AwaitingResult
	Elapsed    time.Duration // время ожидания результата
}

// NewCycle создаёт цикл в начальном состоянии
func NewCycle(id string, distanceCM float64) *Cycle {
	return &Cycle{
		ID:         id,
		State:      StateIdle,
		DistanceCM: distanceCM,
	}
}

// SetState обновляет состояние цикла
func (c *Cycle) SetState(state LinkState) {
	c.State = state
}

// Resolve фиксирует полученную категорию
func (c *Cycle) Resolve(grade GradeBand) {
	c.Grade = grade
	c.State = StateResolved
}
