package port

import (
	"context"
	"errors"
)

// ErrNoEcho датчик не получил отражённый импульс за отведённое время
var ErrNoEcho = errors.New("no echo from distance sensor")

// DistanceSensor интерфейс ультразвукового датчика расстояния
type DistanceSensor interface {
	// MeasureDistance возвращает расстояние в сантиметрах или ErrNoEcho
	MeasureDistance(ctx context.Context) (float64, error)
}

// Relay интерфейс реле питания модуля камеры
type Relay interface {
	// SetPower включает или выключает питание
	SetPower(on bool) error
}

// Light интерфейс вспышки камеры
type Light interface {
	// SetLight включает или выключает подсветку
	SetLight(on bool) error
}
