package vision

import (
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/require"

	"husk-grader/internal/domain/entity"
)

func TestRGBToHSV_Achromatic(t *testing.T) {
	for i := 0; i <= 255; i++ {
		v := uint8(i)
		hsv := RGBToHSV(entity.PixelRGB{R: v, G: v, B: v})
		require.Zero(t, hsv.H, "gray %d", i)
		require.Zero(t, hsv.S, "gray %d", i)
		require.InDelta(t, float64(i)/255.0, hsv.V, 1e-12)
	}
}

func TestRGBToHSV_RangeAndOracle(t *testing.T) {
	for r := 0; r <= 255; r += 15 {
		for g := 0; g <= 255; g += 15 {
			for b := 0; b <= 255; b += 15 {
				p := entity.PixelRGB{R: uint8(r), G: uint8(g), B: uint8(b)}
				hsv := RGBToHSV(p)

				require.GreaterOrEqual(t, hsv.H, 0.0)
				require.Less(t, hsv.H, 360.0)
				require.GreaterOrEqual(t, hsv.S, 0.0)
				require.LessOrEqual(t, hsv.S, 1.0)
				require.GreaterOrEqual(t, hsv.V, 0.0)
				require.LessOrEqual(t, hsv.V, 1.0)

				wantH, wantS, wantV := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}.Hsv()
				require.InDelta(t, wantH, hsv.H, 1e-9, "hue of %v", p)
				require.InDelta(t, wantS, hsv.S, 1e-9, "saturation of %v", p)
				require.InDelta(t, wantV, hsv.V, 1e-9, "value of %v", p)
			}
		}
	}
}

func TestRGBToHSV_KnownColors(t *testing.T) {
	tests := []struct {
		name string
		p    entity.PixelRGB
		h    float64
	}{
		{"red", entity.PixelRGB{R: 255}, 0},
		{"green", entity.PixelRGB{G: 255}, 120},
		{"blue", entity.PixelRGB{B: 255}, 240},
		{"magenta wraps", entity.PixelRGB{R: 255, B: 128}, 360 - 60*128.0/255},
		{"greenish husk", entity.PixelRGB{G: 200, B: 50}, 135},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.h, RGBToHSV(tt.p).H, 1e-9)
		})
	}
}

func newDefaultClassifier(t *testing.T) *Classifier {
	t.Helper()
	c, err := NewClassifier(entity.DefaultThresholds())
	require.NoError(t, err)
	return c
}

func TestClassifier_Bands(t *testing.T) {
	c := newDefaultClassifier(t)

	tests := []struct {
		name string
		p    entity.PixelRGB
		want entity.GradeBand
	}{
		{"bright yellow green", entity.PixelRGB{R: 230, G: 255}, entity.GradeQualified},
		{"orange", entity.PixelRGB{R: 255, G: 128}, entity.GradeAccepted},
		{"dark brown", entity.PixelRGB{R: 100, G: 62, B: 60}, entity.GradeDisqualified},
		{"black", entity.PixelRGB{}, entity.GradeDisqualified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := c.Classify(tt.p)
			require.True(t, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestClassifier_NoBand(t *testing.T) {
	c := newDefaultClassifier(t)

	// (0,200,50) даёт тон около 135°, вне окна Qualified [35,70]
	hsv := RGBToHSV(entity.PixelRGB{G: 200, B: 50})
	require.InDelta(t, 135, hsv.H, 3)

	for _, p := range []entity.PixelRGB{
		{G: 200, B: 50},
		{R: 255, G: 255, B: 255},
		{B: 255},
	} {
		_, ok := c.Classify(p)
		require.False(t, ok, "%v should not match any band", p)
	}
}

func TestClassifier_ScaleIsPercent(t *testing.T) {
	// v = 200/255 = 78.4%, ниже нижней границы Qualified 80 в процентах,
	// но выше неё в шкале 0-255
	c := newDefaultClassifier(t)
	_, ok := c.Classify(entity.PixelRGB{R: 180, G: 200})
	require.False(t, ok)
}

func TestClassifier_FirstMatchWins(t *testing.T) {
	window := entity.BandWindow{
		Hue:        entity.Range{Lower: 0, Upper: 359},
		Saturation: entity.Range{Lower: 0, Upper: 100},
		Value:      entity.Range{Lower: 0, Upper: 100},
	}
	c, err := NewClassifier(entity.ThresholdSet{
		Qualified:    window,
		Accepted:     window,
		Disqualified: entity.Ceiling{HueUpper: 360, SaturationUpper: 100, ValueUpper: 100},
	})
	require.NoError(t, err)

	got, ok := c.Classify(entity.PixelRGB{R: 10, G: 20, B: 30})
	require.True(t, ok)
	require.Equal(t, entity.GradeQualified, got)

	rules := c.Rules()
	require.Len(t, rules, 3)
	for i, g := range entity.GradePriority {
		require.Equal(t, g, rules[i].Grade)
	}
}

func TestClassifier_BenchPresetBoundary(t *testing.T) {
	c, err := NewClassifier(entity.BenchThresholds())
	require.NoError(t, err)

	// тон 30.1° выходит за верхнюю границу Accepted 30 стендовой таблицы
	_, ok := c.Classify(entity.PixelRGB{R: 255, G: 128})
	require.False(t, ok)
}

func TestNewClassifier_InvalidThresholds(t *testing.T) {
	ts := entity.DefaultThresholds()
	ts.Qualified.Value = entity.Range{Lower: 90, Upper: 10}
	_, err := NewClassifier(ts)
	require.ErrorIs(t, err, entity.ErrInvalidThresholds)
}
