package ui

import (
	"fmt"
	"image/color"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	pipWidth   = 9
	pipHeight  = 10
	pipGap     = 3
	maxPips    = 10
	rowHeight  = 16
	labelWidth = 92
)

var (
	pipFillColor = color.RGBA{70, 100, 120, 220}
	pipBorder    = color.White
)

var upgradeLabels = map[component.UpgradeKind]string{
	component.UpgradeSingle:      "1 Single",
	component.UpgradeArea:        "2 Area",
	component.UpgradePenetrating: "3 Pierce",
	component.UpgradeGoldBonus:   "4 Gold",
}

// UpgradeIndicator shows the level of every upgrade track as a row of pips.
// Levels past maxPips are written as a number.
type UpgradeIndicator struct {
	X, Y float32
}

func NewUpgradeIndicator(x, y float32) *UpgradeIndicator {
	return &UpgradeIndicator{X: x, Y: y}
}

func (i *UpgradeIndicator) Draw(screen *ebiten.Image, face font.Face, upgrades *component.Upgrades) {
	for row, kind := range component.AllUpgradeKinds {
		y := i.Y + float32(row*rowHeight)
		text.Draw(screen, upgradeLabels[kind], face, int(i.X), int(y)+pipHeight, config.TextLightColor)

		level := upgrades.Level(kind)
		for j := 0; j < maxPips; j++ {
			x := i.X + labelWidth + float32(j*(pipWidth+pipGap))
			vector.StrokeRect(screen, x, y, pipWidth, pipHeight, 1, pipBorder, true)
			if j < level {
				vector.DrawFilledRect(screen, x+1, y+1, pipWidth-2, pipHeight-2, pipFillColor, true)
			}
		}
		if level > maxPips {
			x := i.X + labelWidth + float32(maxPips*(pipWidth+pipGap)) + 4
			text.Draw(screen, fmt.Sprintf("+%d", level-maxPips), face, int(x), int(y)+pipHeight, config.TextLightColor)
		}
	}
}
