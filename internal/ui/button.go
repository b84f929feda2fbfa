package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

var (
	buttonBgColor       = color.RGBA{50, 60, 75, 255}
	buttonHoverColor    = color.RGBA{70, 90, 110, 255}
	buttonDisabledColor = color.RGBA{35, 35, 40, 255}
	buttonBorderColor   = color.RGBA{70, 130, 180, 255}
)

// Button is a clickable rectangle with a label and an optional hotkey.
type Button struct {
	Rect   image.Rectangle
	Text   string
	Hotkey ebiten.Key
}

func NewButton(rect image.Rectangle, text string, hotkey ebiten.Key) *Button {
	return &Button{Rect: rect, Text: text, Hotkey: hotkey}
}

// Contains reports whether the screen point is inside the button.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Draw draws the button. Disabled buttons are dimmed.
func (b *Button) Draw(screen *ebiten.Image, face font.Face, enabled bool) {
	bg := buttonBgColor
	if !enabled {
		bg = buttonDisabledColor
	} else if b.Contains(ebiten.CursorPosition()) {
		bg = buttonHoverColor
	}

	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, true)
	vector.StrokeRect(screen, x, y, w, h, 2, buttonBorderColor, true)

	bounds := text.BoundString(face, b.Text)
	textX := b.Rect.Min.X + (b.Rect.Dx()-bounds.Dx())/2
	textY := b.Rect.Min.Y + (b.Rect.Dy()-bounds.Dy())/2 - bounds.Min.Y
	textColor := color.Color(color.White)
	if !enabled {
		textColor = color.Gray{Y: 120}
	}
	text.Draw(screen, b.Text, face, textX, textY, textColor)
}
