package container

import (
	"context"
	"encoding/binary"
	"time"

	"husk-grader/internal/domain/entity"
	"husk-grader/internal/infrastructure/vision"
)

func solidFrame(w, h int, p entity.PixelRGB) entity.Raster {
	pix := make([]byte, w*h*2)
	for i := 0; i < w*h; i++ {
		binary.LittleEndian.PutUint16(pix[i*2:], vision.PackRGB565(p))
	}
	return entity.Raster{Width: w, Height: h, Format: entity.FormatRGB565, Pix: pix}
}

type stillCamera struct {
	frame entity.Raster
}

func (c *stillCamera) CaptureFrame(ctx context.Context) (entity.Raster, error) {
	return c.frame, nil
}

func (c *stillCamera) Close() error { return nil }

type nearSensor struct{}

func (nearSensor) MeasureDistance(ctx context.Context) (float64, error) {
	return 4.2, nil
}

type recordingRelay struct {
	calls []bool
}

func (r *recordingRelay) SetPower(on bool) error {
	r.calls = append(r.calls, on)
	return nil
}

// instantClock не ждёт, время идёт только в Sleep
type instantClock struct {
	now time.Time
}

func (c *instantClock) Now() time.Time { return c.now }

func (c *instantClock) Sleep(ctx context.Context, d time.Duration) error {
	c.now = c.now.Add(d)
	return ctx.Err()
}
