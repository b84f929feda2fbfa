package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/entity"
	"go-wave-defense/internal/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	panelHeight    = 130
	panelMargin    = 5
	animationSpeed = 10.0
	lineHeight     = 18
	columnSpacing  = 200
)

// PanelAction is what a click on the info panel asks for.
type PanelAction int

const (
	PanelNone PanelAction = iota
	PanelSell
	PanelMerge
)

// InfoPanel slides up from the bottom and shows the selected unit or enemy.
type InfoPanel struct {
	IsVisible     bool
	TargetEntity  types.EntityID
	fontFace      font.Face
	titleFontFace font.Face
	currentY      float64
	targetY       float64
	SellButton    Button
	MergeButton   Button
}

func NewInfoPanel(face, titleFace font.Face) *InfoPanel {
	return &InfoPanel{
		fontFace:      face,
		titleFontFace: titleFace,
		currentY:      config.ScreenHeight,
		targetY:       config.ScreenHeight,
	}
}

func (p *InfoPanel) SetTarget(id types.EntityID) {
	p.TargetEntity = id
	p.IsVisible = true
	p.targetY = config.ScreenHeight - panelHeight
}

func (p *InfoPanel) Hide() {
	p.targetY = config.ScreenHeight
}

// Contains reports whether a screen point is on the visible panel.
func (p *InfoPanel) Contains(x, y int) bool {
	return p.IsVisible && float64(y) >= p.currentY
}

// Update animates the panel and reports a button click.
func (p *InfoPanel) Update() PanelAction {
	if p.currentY != p.targetY {
		diff := p.targetY - p.currentY
		if math.Abs(diff) < animationSpeed {
			p.currentY = p.targetY
		} else if diff > 0 {
			p.currentY += animationSpeed
		} else {
			p.currentY -= animationSpeed
		}
		if p.currentY >= config.ScreenHeight {
			p.IsVisible = false
			p.TargetEntity = 0
		}
	}

	if !p.IsVisible || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return PanelNone
	}
	x, y := ebiten.CursorPosition()
	switch {
	case p.SellButton.Contains(x, y):
		return PanelSell
	case p.MergeButton.Contains(x, y):
		return PanelMerge
	}
	return PanelNone
}

// Draw draws the panel. canMerge enables the merge button.
func (p *InfoPanel) Draw(screen *ebiten.Image, w *entity.World, canMerge bool) {
	if !p.IsVisible && p.currentY >= config.ScreenHeight {
		return
	}

	rect := image.Rect(panelMargin, int(p.currentY)+panelMargin, config.ScreenWidth-panelMargin, int(p.currentY)+panelHeight-panelMargin)
	vector.DrawFilledRect(screen, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), color.RGBA{25, 35, 45, 230}, true)
	vector.StrokeRect(screen, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), 2, color.RGBA{70, 130, 180, 255}, true)

	x, y := rect.Min.X+15, rect.Min.Y+15+lineHeight
	if u := w.Unit(p.TargetEntity); u != nil {
		p.drawUnitInfo(screen, w, u, x, y)
		p.SellButton = Button{Rect: image.Rect(rect.Max.X-170, rect.Min.Y+15, rect.Max.X-20, rect.Min.Y+50), Text: fmt.Sprintf("Sell +%dG (X)", defs.GradeSellPrice[u.Grade])}
		p.SellButton.Draw(screen, p.fontFace, true)
		if cost, ok := defs.GradeMergeCost[u.Grade]; ok {
			p.MergeButton = Button{Rect: image.Rect(rect.Max.X-170, rect.Min.Y+60, rect.Max.X-20, rect.Min.Y+95), Text: fmt.Sprintf("Merge -%dG (M)", cost)}
			p.MergeButton.Draw(screen, p.fontFace, canMerge && w.Gold >= cost)
		} else {
			p.MergeButton = Button{}
		}
		return
	}
	p.SellButton, p.MergeButton = Button{}, Button{}
	if e := w.Enemy(p.TargetEntity); e != nil {
		p.drawEnemyInfo(screen, e, x, y)
		return
	}
	text.Draw(screen, "Nothing selected", p.titleFontFace, x, y, config.TextLightColor)
}

func (p *InfoPanel) drawUnitInfo(screen *ebiten.Image, w *entity.World, u *component.Unit, x, y int) {
	title := fmt.Sprintf("%s unit, grade %s", u.Archetype, u.Grade)
	text.Draw(screen, title, p.titleFontFace, x, y, config.GradeColors[u.Grade])
	y += lineHeight

	level := w.Upgrades.AttackLevel(u.Archetype)
	text.Draw(screen, fmt.Sprintf("Attack: %d (+%d)", u.Stats.Attack, level*defs.GradeUpgradeIncrement[u.Grade]), p.fontFace, x, y, config.TextLightColor)
	text.Draw(screen, fmt.Sprintf("Interval: %dms", u.Stats.AttackIntervalMs), p.fontFace, x+columnSpacing, y, config.TextLightColor)
	y += lineHeight
	text.Draw(screen, fmt.Sprintf("Range: %.1f", u.Stats.Range), p.fontFace, x, y, config.TextLightColor)
	text.Draw(screen, fmt.Sprintf("HP: %d / %d", u.HP, u.MaxHP), p.fontFace, x+columnSpacing, y, config.TextLightColor)
	y += lineHeight
	switch u.Archetype {
	case defs.ArchetypeArea:
		text.Draw(screen, fmt.Sprintf("Splash: %.1f", u.Stats.SplashRadius), p.fontFace, x, y, config.TextLightColor)
	case defs.ArchetypePenetrating:
		text.Draw(screen, fmt.Sprintf("Pierce: %d", u.Stats.PierceCount), p.fontFace, x, y, config.TextLightColor)
	}
}

func (p *InfoPanel) drawEnemyInfo(screen *ebiten.Image, e *component.Enemy, x, y int) {
	title := fmt.Sprintf("Enemy type %s", e.Type)
	if e.IsBoss() {
		title = fmt.Sprintf("Boss (%s), phase %d", e.Boss.Ability, e.Boss.Phase)
	}
	text.Draw(screen, title, p.titleFontFace, x, y, config.EnemyTypeColors[string(e.Type)])
	y += lineHeight
	text.Draw(screen, fmt.Sprintf("HP: %d / %d", e.HP, e.MaxHP), p.fontFace, x, y, config.TextLightColor)
	text.Draw(screen, fmt.Sprintf("Speed: %.2f", e.Speed), p.fontFace, x+columnSpacing, y, config.TextLightColor)
	if r := e.DamageReduction(); r > 0 {
		y += lineHeight
		text.Draw(screen, fmt.Sprintf("Shield: -%d%% damage", int(r*100)), p.fontFace, x, y, config.TextLightColor)
	}
}
