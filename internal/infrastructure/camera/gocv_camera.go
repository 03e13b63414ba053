//go:build gocv
// +build gocv

package camera

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sync"

	"gocv.io/x/gocv"

	"husk-grader/internal/domain/entity"
	"husk-grader/internal/domain/port"
)

// GoCVCamera захват кадра с устройства через OpenCV
type GoCVCamera struct {
	mu     sync.Mutex
	dev    *gocv.VideoCapture
	Width  int
	Height int
	Warmup int // сколько кадров пропустить после открытия, пока стабилизируется экспозиция
}

// NewGoCVCamera открывает устройство deviceID с кадром width x height
func NewGoCVCamera(deviceID, width, height int) (*GoCVCamera, error) {
	dev, err := gocv.OpenVideoCapture(deviceID)
	if err != nil {
		return nil, fmt.Errorf("open capture device %d: %w", deviceID, err)
	}
	if width > 0 && height > 0 {
		dev.Set(gocv.VideoCaptureFrameWidth, float64(width))
		dev.Set(gocv.VideoCaptureFrameHeight, float64(height))
	}

	return &GoCVCamera{dev: dev, Width: width, Height: height, Warmup: 2}, nil
}

// CaptureFrame читает один кадр и упаковывает его в RGB565
func (c *GoCVCamera) CaptureFrame(ctx context.Context) (entity.Raster, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.dev == nil {
		return entity.Raster{}, errors.New("capture device is closed")
	}

	mat := gocv.NewMat()
	defer mat.Close()

	for i := 0; i <= c.Warmup; i++ {
		if err := ctx.Err(); err != nil {
			return entity.Raster{}, err
		}
		if ok := c.dev.Read(&mat); !ok {
			return entity.Raster{}, fmt.Errorf("%w: device read failed", port.ErrNoFrame)
		}
	}
	if mat.Empty() {
		return entity.Raster{}, fmt.Errorf("%w: empty frame", port.ErrNoFrame)
	}

	// Приводим кадр к разрешению сенсора, если устройство его не приняло.
	if c.Width > 0 && c.Height > 0 && (mat.Cols() != c.Width || mat.Rows() != c.Height) {
		resized := gocv.NewMat()
		defer resized.Close()
		gocv.Resize(mat, &resized, image.Pt(c.Width, c.Height), 0, 0, gocv.InterpolationArea)
		resized.CopyTo(&mat)
	}

	img, err := mat.ToImage()
	if err != nil {
		return entity.Raster{}, fmt.Errorf("%w: %v", port.ErrNoFrame, err)
	}

	return EncodeRGB565(img), nil
}

// Close освобождает устройство захвата
func (c *GoCVCamera) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.dev == nil {
		return nil
	}
	err := c.dev.Close()
	c.dev = nil
	return err
}

var _ port.Camera = (*GoCVCamera)(nil)
