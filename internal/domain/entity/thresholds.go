package entity

import (
	"errors"
	"fmt"
)

// ErrInvalidThresholds возвращается, если нижняя граница больше верхней
var ErrInvalidThresholds = errors.New("invalid thresholds")

// Range замкнутый интервал [Lower, Upper]
type Range struct {
	Lower float64
	Upper float64
}

// Contains проверяет попадание значения в интервал включительно
func (r Range) Contains(v float64) bool {
	return v >= r.Lower && v <= r.Upper
}

// BandWindow окно HSV для категории. S и V заданы в шкале 0-100.
type BandWindow struct {
	Hue        Range
	Saturation Range
	Value      Range
}

// Ceiling только верхние границы. Тёмные и блёклые пиксели отбраковываются независимо от тона.
type Ceiling struct {
	HueUpper        float64
	SaturationUpper float64
	ValueUpper      float64
}

// ThresholdSet пороги всех трёх категорий. Задаются один раз до классификации.
type ThresholdSet struct {
	Qualified    BandWindow
	Accepted     BandWindow
	Disqualified Ceiling
}

// Validate проверяет порядок границ
func (t ThresholdSet) Validate() error {
	windows := []struct {
		band GradeBand
		w    BandWindow
	}{
		{GradeQualified, t.Qualified},
		{GradeAccepted, t.Accepted},
	}
	for _, item := range windows {
		axes := []struct {
			name string
			r    Range
		}{
			{"hue", item.w.Hue},
			{"saturation", item.w.Saturation},
			{"value", item.w.Value},
		}
		for _, axis := range axes {
			if axis.r.Lower > axis.r.Upper {
				return fmt.Errorf("%w: %s %s lower %.2f > upper %.2f", ErrInvalidThresholds, item.band, axis.name, axis.r.Lower, axis.r.Upper)
			}
		}
	}
	return nil
}

// DefaultThresholds таблица прошивки камеры
func DefaultThresholds() ThresholdSet {
	return ThresholdSet{
		Qualified: BandWindow{
			Hue:        Range{Lower: 35, Upper: 70},
			Saturation: Range{Lower: 80, Upper: 255},
			Value:      Range{Lower: 80, Upper: 255},
		},
		Accepted: BandWindow{
			Hue:        Range{Lower: 15, Upper: 35},
			Saturation: Range{Lower: 60, Upper: 210},
			Value:      Range{Lower: 60, Upper: 210},
		},
		Disqualified: Ceiling{HueUpper: 15, SaturationUpper: 60, ValueUpper: 80},
	}
}

// BenchThresholds таблица стендового варианта алгоритма
func BenchThresholds() ThresholdSet {
	return ThresholdSet{
		Qualified: BandWindow{
			Hue:        Range{Lower: 40, Upper: 75},
			Saturation: Range{Lower: 60, Upper: 255},
			Value:      Range{Lower: 60, Upper: 255},
		},
		Accepted: BandWindow{
			Hue:        Range{Lower: 20, Upper: 30},
			Saturation: Range{Lower: 60, Upper: 200},
			Value:      Range{Lower: 60, Upper: 200},
		},
		Disqualified: Ceiling{HueUpper: 20, SaturationUpper: 50, ValueUpper: 85},
	}
}
