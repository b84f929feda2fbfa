package ui

import (
	"image/color"
	"strings"

	"go-wave-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// WaveIndicator shows the current wave number in roman numerals.
type WaveIndicator struct {
	X, Y             int
	Color            color.Color
	BossColor        color.Color
	OutlineColor     color.Color
	OutlineThickness int
}

func NewWaveIndicator(x, y int) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		Color:            config.TextLightColor,
		BossColor:        config.BossColor,
		OutlineColor:     color.Black,
		OutlineThickness: 1,
	}
}

// toRoman converts a positive integer to roman numerals.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw draws the wave number centered on X. Boss waves are drawn in red.
func (i *WaveIndicator) Draw(screen *ebiten.Image, face font.Face, wave int, bossWave bool) {
	if wave <= 0 {
		return
	}

	s := "WAVE " + toRoman(wave)
	textColor := i.Color
	if bossWave {
		textColor = i.BossColor
	}

	bounds := text.BoundString(face, s)
	x := i.X - bounds.Dx()/2
	for dy := -i.OutlineThickness; dy <= i.OutlineThickness; dy++ {
		for dx := -i.OutlineThickness; dx <= i.OutlineThickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(screen, s, face, x+dx, i.Y+dy, i.OutlineColor)
		}
	}
	text.Draw(screen, s, face, x, i.Y, textColor)
}
