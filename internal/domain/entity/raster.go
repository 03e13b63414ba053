package entity

// PixelFormat формат упаковки пикселей в буфере
type PixelFormat string

const (
	FormatRGB565 PixelFormat = "rgb565" // 2 байта на пиксель, little-endian 5-6-5
	FormatRGB888 PixelFormat = "rgb888" // 3 байта на пиксель, R G B
)

// BytesPerPixel возвращает размер пикселя в байтах, 0 для неизвестного формата
func (f PixelFormat) BytesPerPixel() int {
	switch f {
	case FormatRGB565:
		return 2
	case FormatRGB888:
		return 3
	}
	return 0
}

// Raster представление кадра поверх непрерывного буфера.
// Буфер принадлежит стадии, которая держит растр, и не изменяется после создания.
type Raster struct {
	Width  int
	Height int
	Format PixelFormat
	Pix    []byte
}

// PixelCount возвращает количество пикселей по размерам растра
func (r Raster) PixelCount() int {
	return r.Width * r.Height
}

// Empty сообщает, что растра фактически нет
func (r Raster) Empty() bool {
	return r.Width <= 0 || r.Height <= 0 || len(r.Pix) == 0
}

// Complete проверяет, что буфер вмещает все пиксели заявленного формата
func (r Raster) Complete() bool {
	bpp := r.Format.BytesPerPixel()
	return bpp > 0 && !r.Empty() && len(r.Pix) >= r.PixelCount()*bpp
}
