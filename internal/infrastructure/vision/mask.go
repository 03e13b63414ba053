package vision

import (
	"fmt"
	"image"
	"image/color"

	"husk-grader/internal/domain/entity"
)

// BandMasks строит по одной маске на категорию для растра RGB888.
// Белый пиксель маски означает, что пиксель кадра отнесён к этой категории.
// В отличие от Grade, здесь каждый пиксель берётся целиком по своей тройке.
func BandMasks(c *Classifier, reduced entity.Raster) (map[entity.GradeBand]*image.Gray, error) {
	if reduced.Format != entity.FormatRGB888 || !reduced.Complete() {
		return nil, fmt.Errorf("%w: masks need a complete rgb888 raster", ErrEmptyRaster)
	}

	bounds := image.Rect(0, 0, reduced.Width, reduced.Height)
	masks := make(map[entity.GradeBand]*image.Gray, len(entity.GradePriority))
	for _, g := range entity.GradePriority {
		masks[g] = image.NewGray(bounds)
	}

	for y := 0; y < reduced.Height; y++ {
		for x := 0; x < reduced.Width; x++ {
			off := (y*reduced.Width + x) * 3
			p := entity.PixelRGB{R: reduced.Pix[off], G: reduced.Pix[off+1], B: reduced.Pix[off+2]}
			if grade, ok := c.Classify(p); ok {
				masks[grade].SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}

	return masks, nil
}
