package render

import (
	"image/color"
	"math"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/entity"
	"go-wave-defense/internal/types"
	"go-wave-defense/internal/utils"
	"go-wave-defense/pkg/gridmap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// BoardRenderer draws the ring board and everything on it. The static board
// is rendered once into boardImage.
type BoardRenderer struct {
	track      *gridmap.Track
	cellSize   float64
	offsetX    float64
	offsetY    float64
	colors     *BoardColors
	fontFace   font.Face
	boardImage *ebiten.Image
}

func NewBoardRenderer(track *gridmap.Track, cellSize, offsetX, offsetY float64, screenWidth, screenHeight int, face font.Face, colors *BoardColors) *BoardRenderer {
	r := &BoardRenderer{
		track:      track,
		cellSize:   cellSize,
		offsetX:    offsetX,
		offsetY:    offsetY,
		colors:     colors,
		fontFace:   face,
		boardImage: ebiten.NewImage(screenWidth, screenHeight),
	}
	r.RenderBoardImage()
	return r
}

// ToScreen converts a grid point to screen pixels. Cell centers sit on whole
// grid coordinates.
func (r *BoardRenderer) ToScreen(p gridmap.Point) (float32, float32) {
	x := r.offsetX + (p.X+0.5)*r.cellSize
	y := r.offsetY + (p.Y+0.5)*r.cellSize
	return float32(x), float32(y)
}

// ToGrid converts screen pixels back to a grid point.
func (r *BoardRenderer) ToGrid(x, y int) gridmap.Point {
	return gridmap.Point{
		X: (float64(x)-r.offsetX)/r.cellSize - 0.5,
		Y: (float64(y)-r.offsetY)/r.cellSize - 0.5,
	}
}

// RenderBoardImage redraws the static background.
func (r *BoardRenderer) RenderBoardImage() {
	img := r.boardImage
	img.Fill(r.colors.BackgroundColor)

	spawn := make(map[gridmap.Cell]bool)
	for _, idx := range r.track.SpawnIndices {
		spawn[r.track.CellAt(r.track.Waypoint(idx))] = true
	}

	cs := float32(r.cellSize)
	for row := 0; row < r.track.Size; row++ {
		for col := 0; col < r.track.Size; col++ {
			c := gridmap.Cell{Col: col, Row: row}
			fill := r.colors.InnerColor
			switch {
			case spawn[c]:
				fill = r.colors.SpawnColor
			case r.track.IsPathCell(c):
				fill = r.colors.PathColor
			}
			x := float32(r.offsetX) + float32(col)*cs
			y := float32(r.offsetY) + float32(row)*cs
			vector.DrawFilledRect(img, x, y, cs, cs, fill, false)
			vector.StrokeRect(img, x, y, cs, cs, r.colors.StrokeWidth, r.colors.StrokeColor, false)
		}
	}
}

// Draw renders the board, units, enemies and effects. selected units get a
// highlight ring.
func (r *BoardRenderer) Draw(screen *ebiten.Image, w *entity.World, nowMs int64, selected map[types.EntityID]bool) {
	screen.DrawImage(r.boardImage, nil)

	if w.EnemySpeedScale == 0 {
		r.drawOverlay(screen, config.FreezeColor)
	}

	for _, u := range w.Units {
		r.drawUnit(screen, u, selected[u.ID], w.Barrier)
	}
	for _, e := range w.Enemies {
		if e.Alive() {
			r.drawEnemy(screen, e)
		}
	}
	for i := range w.Effects {
		r.drawEffect(screen, &w.Effects[i], nowMs)
	}
}

func (r *BoardRenderer) drawOverlay(screen *ebiten.Image, c color.RGBA) {
	size := float32(r.cellSize) * float32(r.track.Size)
	vector.DrawFilledRect(screen, float32(r.offsetX), float32(r.offsetY), size, size, c, false)
}

func (r *BoardRenderer) drawUnit(screen *ebiten.Image, u *component.Unit, selected, barrier bool) {
	x, y := r.ToScreen(u.Pos)
	grade := config.GradeColors[u.Grade]
	ring := config.ArchetypeColors[u.Archetype]

	if barrier {
		vector.DrawFilledCircle(screen, x, y, config.UnitRadius+6, config.BarrierColor, true)
	}
	vector.DrawFilledCircle(screen, x, y, config.UnitRadius, grade, true)
	vector.StrokeCircle(screen, x, y, config.UnitRadius, 3, ring, true)
	if selected {
		vector.StrokeCircle(screen, x, y, config.UnitRadius+4, 2, color.White, true)
	}
	r.drawCentered(screen, u.Grade.String(), x, y, color.Black)
}

func (r *BoardRenderer) drawEnemy(screen *ebiten.Image, e *component.Enemy) {
	x, y := r.ToScreen(e.Pos)
	radius := float32(config.EnemyRadius)
	fill := config.EnemyTypeColors[string(e.Type)]
	if e.IsBoss() {
		radius = config.BossRadius
		vector.StrokeCircle(screen, x, y, radius+3, 3, config.BossColor, true)
		if e.DamageReduction() > 0 {
			vector.StrokeCircle(screen, x, y, radius+7, 2, config.BarrierColor, true)
		}
	}
	vector.DrawFilledCircle(screen, x, y, radius, fill, true)

	// hp bar
	barW := radius * 2
	top := y - radius - 7
	vector.DrawFilledRect(screen, x-radius, top, barW, 4, DarkenColor(config.DamageColor), false)
	vector.DrawFilledRect(screen, x-radius, top, barW*float32(e.HPFraction()), 4, config.HealColor, false)

	if e.IsBoss() {
		r.drawCentered(screen, string(e.Boss.Ability), x, y+radius+12, config.TextLightColor)
	}
}

func (r *BoardRenderer) drawEffect(screen *ebiten.Image, fx *component.Effect, nowMs int64) {
	p := fx.Progress(nowMs)
	c := FadeColor(fx.Color, 1-p)
	fx0, fy0 := r.ToScreen(fx.From)
	fx1, fy1 := r.ToScreen(fx.To)
	cs := float32(r.cellSize)
	scale := float32(fx.Scale)

	switch fx.Kind {
	case component.EffectSlash, component.EffectBeam, component.EffectArc:
		width := 2 * scale
		if fx.Kind == component.EffectBeam {
			width = 4 * scale
		}
		vector.StrokeLine(screen, fx0, fy0, fx1, fy1, width, c, true)
	case component.EffectLightning:
		// jagged bolt from the sky
		const segments = 5
		px, py := fx0, fy0
		for i := 1; i <= segments; i++ {
			t := float32(i) / segments
			nx := utils.Lerp(fx0, fx1, t)
			ny := utils.Lerp(fy0, fy1, t)
			if i < segments {
				nx += float32(math.Sin(float64(i)*2.3)) * cs * 0.2
			}
			vector.StrokeLine(screen, px, py, nx, ny, 3, c, true)
			px, py = nx, ny
		}
	case component.EffectExplosion, component.EffectDeathBurst, component.EffectMeteor, component.EffectSpark:
		radius := cs * 0.5 * scale * float32(0.4+0.6*p)
		vector.DrawFilledCircle(screen, fx1, fy1, radius, FadeColor(fx.Color, 0.5*(1-p)), true)
		vector.StrokeCircle(screen, fx1, fy1, radius, 2, c, true)
	case component.EffectShockwave, component.EffectWave, component.EffectHeal:
		radius := cs * scale * float32(p)
		vector.StrokeCircle(screen, fx1, fy1, radius, 3, c, true)
	case component.EffectText:
		x := utils.Lerp(fx0, fx1, float32(p))
		y := utils.Lerp(fy0, fy1, float32(p))
		r.drawCentered(screen, fx.Text, x, y, c)
	}
}

func (r *BoardRenderer) drawCentered(screen *ebiten.Image, s string, x, y float32, c color.Color) {
	if s == "" {
		return
	}
	b := text.BoundString(r.fontFace, s)
	tx := int(x) - (b.Min.X+b.Max.X)/2
	ty := int(y) - (b.Min.Y+b.Max.Y)/2
	text.Draw(screen, s, r.fontFace, tx, ty, c)
}

// DrawBanner draws a line of text centered at the top of the board.
func (r *BoardRenderer) DrawBanner(screen *ebiten.Image, msg string, c color.Color) {
	if msg == "" {
		return
	}
	size := float32(r.cellSize) * float32(r.track.Size)
	r.drawCentered(screen, msg, float32(r.offsetX)+size/2, float32(r.offsetY)-14, c)
}
