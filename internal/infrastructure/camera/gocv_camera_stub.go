//go:build !gocv
// +build !gocv

package camera

import (
	"context"
	"errors"

	"husk-grader/internal/domain/entity"
	"husk-grader/internal/domain/port"
)

// errNoGoCV сборка без OpenCV
var errNoGoCV = errors.New("gocv build tag is not enabled")

type GoCVCamera struct {
	Width  int
	Height int
	Warmup int
}

// NewGoCVCamera возвращает ошибку, если сборка без тега gocv.
func NewGoCVCamera(deviceID, width, height int) (*GoCVCamera, error) {
	_ = deviceID
	_ = width
	_ = height
	return nil, errNoGoCV
}

// CaptureFrame возвращает ошибку, если сборка без тега gocv.
func (c *GoCVCamera) CaptureFrame(ctx context.Context) (entity.Raster, error) {
	_ = ctx
	return entity.Raster{}, errNoGoCV
}

// Close ничего не делает без OpenCV.
func (c *GoCVCamera) Close() error {
	return nil
}

var _ port.Camera = (*GoCVCamera)(nil)
