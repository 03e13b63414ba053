package camera

import (
	"encoding/binary"
	"image"

	"husk-grader/internal/domain/entity"
	"husk-grader/internal/infrastructure/vision"
)

// EncodeRGB565 упаковывает изображение в растр RGB565, как его отдаёт сенсор камеры
func EncodeRGB565(img image.Image) entity.Raster {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pix := make([]byte, w*h*2)

	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			p := entity.PixelRGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
			binary.LittleEndian.PutUint16(pix[i:], vision.PackRGB565(p))
			i += 2
		}
	}

	return entity.Raster{Width: w, Height: h, Format: entity.FormatRGB565, Pix: pix}
}

// DecodeRGB888 превращает растр RGB888 в image.NRGBA для сохранения
func DecodeRGB888(r entity.Raster) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, r.Width, r.Height))
	for i := 0; i < r.PixelCount() && i*3+2 < len(r.Pix); i++ {
		img.Pix[i*4] = r.Pix[i*3]
		img.Pix[i*4+1] = r.Pix[i*3+1]
		img.Pix[i*4+2] = r.Pix[i*3+2]
		img.Pix[i*4+3] = 0xFF
	}
	return img
}
