package render

import "image/color"

// BoardColors holds the colors of the static board background.
type BoardColors struct {
	BackgroundColor color.RGBA
	PathColor       color.RGBA
	InnerColor      color.RGBA
	SpawnColor      color.RGBA
	StrokeColor     color.RGBA
	TextColor       color.RGBA
	StrokeWidth     float32
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// FadeColor scales the alpha of c by f in [0, 1].
func FadeColor(c color.RGBA, f float64) color.RGBA {
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	// premultiplied: every channel scales together
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: uint8(float64(c.A) * f),
	}
}
