package vision

import (
	"errors"
	"fmt"

	"husk-grader/internal/domain/entity"
)

// ErrInvalidStride шаг выборки должен быть положительным
var ErrInvalidStride = errors.New("invalid sample stride")

// DefaultStride шаг выборки прошивки камеры, в байтах
const DefaultStride = 15

// Grader голосует пикселями уменьшенного кадра
type Grader struct {
	classifier *Classifier
	stride     int
}

// NewGrader создаёт оценщик с шагом stride байт.
//
// Шаг считается по байтам, а не по пикселям: при stride, не кратном 3,
// выборка читает тройки со сдвигом каналов (G,B,R и т.д.). Это поведение сохранено.
func NewGrader(classifier *Classifier, stride int) (*Grader, error) {
	if stride <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStride, stride)
	}
	return &Grader{classifier: classifier, stride: stride}, nil
}

// Stride возвращает шаг выборки
func (g *Grader) Stride() int {
	return g.stride
}

// Grade оценивает растр RGB888 и возвращает итог с счётчиками
func (g *Grader) Grade(reduced entity.Raster) (entity.Verdict, error) {
	if reduced.Format != entity.FormatRGB888 {
		return entity.Verdict{}, fmt.Errorf("grade: unsupported format %q", reduced.Format)
	}
	if len(reduced.Pix) == 0 {
		return entity.Verdict{}, ErrEmptyRaster
	}

	var v entity.Verdict
	for _, off := range SampleOffsets(len(reduced.Pix), g.stride) {
		p := entity.PixelRGB{R: reduced.Pix[off], G: reduced.Pix[off+1], B: reduced.Pix[off+2]}
		v.Sampled++
		if grade, ok := g.classifier.Classify(p); ok {
			v.Counts.Add(grade)
		}
	}
	v.Grade = v.Counts.Decide()

	return v, nil
}

// SampleOffsets возвращает смещения 0, stride, 2*stride, ... строго меньше length-2,
// так что тройка [off, off+2] всегда внутри буфера
func SampleOffsets(length, stride int) []int {
	if stride <= 0 || length < 3 {
		return nil
	}
	offsets := make([]int, 0, (length-3)/stride+1)
	for off := 0; off < length-2; off += stride {
		offsets = append(offsets, off)
	}
	return offsets
}
