package hardware

import (
	"context"
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"

	"husk-grader/internal/domain/port"
)

const (
	// DefaultEchoTimeout максимальная длительность ожидания эха
	DefaultEchoTimeout = 30 * time.Millisecond

	// microsecondsPerCM время прохода звука туда и обратно на 1 см
	microsecondsPerCM = 58.0

	triggerPulse = 10 * time.Microsecond
)

// Ultrasonic датчик HC-SR04: импульс на TRIG, длительность высокого уровня на ECHO
type Ultrasonic struct {
	trig    gpio.PinOut
	echo    gpio.PinIO
	timeout time.Duration
}

// NewUltrasonic настраивает ECHO на оба фронта
func NewUltrasonic(trig gpio.PinOut, echo gpio.PinIO, timeout time.Duration) (*Ultrasonic, error) {
	if timeout <= 0 {
		timeout = DefaultEchoTimeout
	}
	if err := trig.Out(gpio.Low); err != nil {
		return nil, fmt.Errorf("trig %s: %w", trig.Name(), err)
	}
	if err := echo.In(gpio.PullDown, gpio.BothEdges); err != nil {
		return nil, fmt.Errorf("echo %s: %w", echo.Name(), err)
	}
	return &Ultrasonic{trig: trig, echo: echo, timeout: timeout}, nil
}

// MeasureDistance возвращает расстояние в сантиметрах или port.ErrNoEcho.
// Ожидание каждого фронта ограничено таймаутом датчика.
func (u *Ultrasonic) MeasureDistance(ctx context.Context) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	if err := u.trig.Out(gpio.Low); err != nil {
		return 0, err
	}
	time.Sleep(2 * time.Microsecond)
	if err := u.trig.Out(gpio.High); err != nil {
		return 0, err
	}
	time.Sleep(triggerPulse)
	if err := u.trig.Out(gpio.Low); err != nil {
		return 0, err
	}

	if !u.echo.WaitForEdge(u.timeout) {
		return 0, port.ErrNoEcho
	}
	start := time.Now()
	if !u.echo.WaitForEdge(u.timeout) {
		return 0, port.ErrNoEcho
	}
	width := time.Since(start)

	return EchoToCM(width), nil
}

// EchoToCM переводит длительность эха в сантиметры
func EchoToCM(width time.Duration) float64 {
	return float64(width.Microseconds()) / microsecondsPerCM
}

var _ port.DistanceSensor = (*Ultrasonic)(nil)
