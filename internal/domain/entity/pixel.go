package entity

// PixelRGB пиксель с 8-битными каналами
type PixelRGB struct {
	R uint8
	G uint8
	B uint8
}

// PixelHSV пиксель в пространстве HSV
type PixelHSV struct {
	H float64 // тон в градусах [0, 360)
	S float64 // насыщенность [0, 1]
	V float64 // яркость [0, 1]
}
