package vision

import (
	"encoding/binary"
	"errors"
	"fmt"

	"husk-grader/internal/domain/entity"
	"husk-grader/internal/domain/port"
)

var (
	// ErrInvalidDimensions целевые размеры должны быть положительными
	ErrInvalidDimensions = errors.New("invalid target dimensions")

	// ErrEmptyRaster исходный растр пуст или короче заявленных размеров
	ErrEmptyRaster = errors.New("empty or truncated raster")
)

// Reducer уменьшает кадр прореживанием ближайшего соседа
type Reducer struct {
	alloc port.BufferAllocator
}

// NewReducer создаёт уменьшитель, буферы берутся из alloc
func NewReducer(alloc port.BufferAllocator) *Reducer {
	return &Reducer{alloc: alloc}
}

// Reduce возвращает новый растр RGB888 размером width x height.
// Исходный буфер не изменяется. release освобождает буфер результата и всегда не nil.
//
// Шаг выборки равен (srcPixels / dstPixels) без остатка, индекс источника
// ограничен последним пикселем. Усреднения нет.
func (r *Reducer) Reduce(src entity.Raster, width, height int) (out entity.Raster, release func(), err error) {
	release = func() {}
	if width <= 0 || height <= 0 {
		return entity.Raster{}, release, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if !src.Complete() {
		return entity.Raster{}, release, fmt.Errorf("%w: %dx%d %s with %d bytes", ErrEmptyRaster, src.Width, src.Height, src.Format, len(src.Pix))
	}

	dstPixels := width * height
	buf, free, err := r.alloc.Allocate(dstPixels * 3)
	if err != nil {
		return entity.Raster{}, release, fmt.Errorf("allocate %dx%d frame: %w", width, height, err)
	}

	srcPixels := src.PixelCount()
	step := srcPixels / dstPixels
	for i := 0; i < dstPixels; i++ {
		idx := i * step
		if idx >= srcPixels {
			idx = srcPixels - 1
		}
		p := pixelAt(src, idx)
		buf[i*3] = p.R
		buf[i*3+1] = p.G
		buf[i*3+2] = p.B
	}

	return entity.Raster{Width: width, Height: height, Format: entity.FormatRGB888, Pix: buf}, free, nil
}

// pixelAt читает пиксель с индексом idx, RGB565 расширяется до 8 бит сдвигом
func pixelAt(src entity.Raster, idx int) entity.PixelRGB {
	if src.Format == entity.FormatRGB565 {
		return UnpackRGB565(binary.LittleEndian.Uint16(src.Pix[idx*2:]))
	}
	off := idx * 3
	return entity.PixelRGB{R: src.Pix[off], G: src.Pix[off+1], B: src.Pix[off+2]}
}

// UnpackRGB565 раскладывает 16-битный пиксель 5-6-5 на каналы 0-255
func UnpackRGB565(v uint16) entity.PixelRGB {
	return entity.PixelRGB{
		R: uint8((v>>11)&0x1F) << 3,
		G: uint8((v>>5)&0x3F) << 2,
		B: uint8(v&0x1F) << 3,
	}
}

// PackRGB565 упаковывает каналы в 16-битный пиксель, младшие биты отбрасываются
func PackRGB565(p entity.PixelRGB) uint16 {
	return uint16(p.R>>3)<<11 | uint16(p.G>>2)<<5 | uint16(p.B>>3)
}
