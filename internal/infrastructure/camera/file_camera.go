package camera

import (
	"context"
	"fmt"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // BMP кадры
	_ "golang.org/x/image/webp" // WebP кадры

	"husk-grader/internal/domain/entity"
	"husk-grader/internal/domain/port"
)

// FileCamera отдаёт снимок из файла вместо сенсора.
// Изображение приводится к разрешению сенсора и упаковывается в RGB565.
type FileCamera struct {
	Path   string
	Width  int // ширина кадра сенсора, 0 — как в файле
	Height int // высота кадра сенсора, 0 — как в файле
}

// NewFileCamera создаёт камеру поверх файла path с кадром width x height
func NewFileCamera(path string, width, height int) *FileCamera {
	return &FileCamera{Path: path, Width: width, Height: height}
}

// CaptureFrame читает файл и возвращает кадр RGB565
func (c *FileCamera) CaptureFrame(ctx context.Context) (entity.Raster, error) {
	if err := ctx.Err(); err != nil {
		return entity.Raster{}, err
	}

	img, err := imaging.Open(c.Path, imaging.AutoOrientation(true))
	if err != nil {
		return entity.Raster{}, fmt.Errorf("%w: %v", port.ErrNoFrame, err)
	}

	if c.Width > 0 && c.Height > 0 {
		b := img.Bounds()
		if b.Dx() != c.Width || b.Dy() != c.Height {
			img = imaging.Fill(img, c.Width, c.Height, imaging.Center, imaging.Lanczos)
		}
	}

	return EncodeRGB565(img), nil
}

// Close ничего не держит
func (c *FileCamera) Close() error {
	return nil
}

// Проверка реализации интерфейса
var _ port.Camera = (*FileCamera)(nil)
