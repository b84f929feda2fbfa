// internal/state/game_state.go
package state

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"time"

	"go-wave-defense/internal/app"
	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/event"
	"go-wave-defense/internal/ui"
	"go-wave-defense/pkg/gridmap"
	"go-wave-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

const messageDuration = 2500 * time.Millisecond

var upgradeKeys = []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4}

// GameState is the running game: board, HUD and player input.
type GameState struct {
	sm       *StateMachine
	ctx      context.Context
	session  *app.Session
	driver   *app.FrameDriver
	face     font.Face
	renderer *render.BoardRenderer

	indicator   *ui.PhaseIndicator
	waves       *ui.WaveIndicator
	upgrades    *ui.UpgradeIndicator
	pauseButton *ui.PauseButton
	infoPanel   *ui.InfoPanel
	buttons     []*actionButton

	selection app.Selection
	targeting bool
	message   string
	messageAt time.Time
}

type actionButton struct {
	*ui.Button
	run     func(g *GameState)
	enabled func(g *GameState) bool
}

func NewGameState(ctx context.Context, sm *StateMachine, session *app.Session, face font.Face) *GameState {
	colors := &render.BoardColors{
		BackgroundColor: config.BackgroundColor,
		PathColor:       config.PathColor,
		InnerColor:      config.InnerColor,
		SpawnColor:      config.SpawnColor,
		StrokeColor:     config.GridStrokeColor,
		TextColor:       config.TextLightColor,
		StrokeWidth:     1,
	}
	renderer := render.NewBoardRenderer(session.Game.Track, config.CellSize, config.BoardOffsetX, config.BoardOffsetY,
		config.ScreenWidth, config.ScreenHeight, face, colors)

	g := &GameState{
		sm:          sm,
		ctx:         ctx,
		session:     session,
		driver:      app.NewFrameDriver(session.Game),
		face:        face,
		renderer:    renderer,
		indicator:   ui.NewPhaseIndicator(config.ScreenWidth-40, 40, 14),
		waves:       ui.NewWaveIndicator(config.ScreenWidth/2, 40),
		upgrades:    ui.NewUpgradeIndicator(config.BoardOffsetX, 845),
		pauseButton: ui.NewPauseButton(config.ScreenWidth-90, 40, 16, config.TextLightColor, config.HealColor),
		infoPanel:   ui.NewInfoPanel(face, face),
	}
	g.buttons = g.newActionButtons()
	return g
}

func (g *GameState) newActionButtons() []*actionButton {
	eco := g.session.Game.Balance.Economy
	specs := []struct {
		label   string
		key     ebiten.Key
		run     func(g *GameState)
		enabled func(g *GameState) bool
	}{
		{fmt.Sprintf("Summon %dG (S)", eco.SummonCost), ebiten.KeyS, (*GameState).summon, gold(eco.SummonCost)},
		{fmt.Sprintf("Gamble %dG (G)", eco.GambleCost), ebiten.KeyG, (*GameState).gamble, gold(eco.GambleCost)},
		{fmt.Sprintf("Spell %dG (D)", eco.SpellDrawCost), ebiten.KeyD, (*GameState).drawSpell, gold(eco.SpellDrawCost)},
		{"Cast (C)", ebiten.KeyC, (*GameState).startCast, func(g *GameState) bool { return len(g.session.Game.World.Spells) > 0 }},
		{"Merge (M)", ebiten.KeyM, (*GameState).merge, func(g *GameState) bool { _, ok := g.selection.Group(); return ok }},
	}

	const w, h, gap, top = 128, 32, 8, 802
	buttons := make([]*actionButton, 0, len(specs))
	for i, s := range specs {
		x := int(config.BoardOffsetX) + i*(w+gap)
		buttons = append(buttons, &actionButton{
			Button:  ui.NewButton(image.Rect(x, top, x+w, top+h), s.label, s.key),
			run:     s.run,
			enabled: s.enabled,
		})
	}
	return buttons
}

func gold(cost int) func(g *GameState) bool {
	return func(g *GameState) bool { return g.session.Game.World.Gold >= cost }
}

// Enter resumes the clock. Time spent in other states is not simulated.
func (g *GameState) Enter() {
	g.driver.Restart()
	g.pauseButton.SetPaused(false)
}

func (g *GameState) Update(nowMs int64) {
	switch g.infoPanel.Update() {
	case ui.PanelSell:
		g.sell()
	case ui.PanelMerge:
		g.merge()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.pause()
		return
	}
	g.handleKeys()
	g.handleMouse()

	events := g.driver.Frame(nowMs)
	for _, e := range events {
		g.announce(e)
	}
	g.selection.Prune(g.session.Game.World)

	if g.session.Game.World.Phase.Terminal() {
		newHigh, err := g.session.Finish(g.ctx)
		if err != nil {
			slog.ErrorContext(g.ctx, "failed to record result", "error", err)
		}
		g.sm.SetState(NewMenuState(g.sm, g, newHigh))
	}
}

func (g *GameState) handleKeys() {
	for _, b := range g.buttons {
		if inpututil.IsKeyJustPressed(b.Hotkey) {
			b.run(g)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		g.sell()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.targeting = false
		g.selection.Clear()
		g.infoPanel.Hide()
	}
	for i, kind := range component.AllUpgradeKinds {
		if i < len(upgradeKeys) && inpututil.IsKeyJustPressed(upgradeKeys[i]) {
			g.upgrade(kind)
		}
	}
}

func (g *GameState) handleMouse() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		x, y := ebiten.CursorPosition()
		g.targeting = false
		if p, ok := g.boardPoint(x, y); ok {
			u, err := g.session.Game.SummonAt(p)
			g.report(err, func() string { return fmt.Sprintf("Summoned %s %s", u.Grade, u.Archetype) })
		}
		return
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}

	x, y := ebiten.CursorPosition()
	if g.pauseButton.Contains(x, y) {
		g.pause()
		return
	}
	if g.infoPanel.Contains(x, y) {
		return
	}
	for _, b := range g.buttons {
		if b.Contains(x, y) {
			if b.enabled(g) {
				b.run(g)
			}
			return
		}
	}

	p, ok := g.boardPoint(x, y)
	if !ok {
		return
	}
	if g.targeting {
		g.cast(p)
		return
	}
	g.selectAt(p)
}

func (g *GameState) boardPoint(x, y int) (gridmap.Point, bool) {
	p := g.renderer.ToGrid(x, y)
	size := float64(g.session.Game.Track.Size)
	if p.X < -0.5 || p.Y < -0.5 || p.X >= size-0.5 || p.Y >= size-0.5 {
		return p, false
	}
	return p, true
}

// selectAt toggles the unit under p for merging and shows it in the info
// panel. Enemies are shown without selecting.
func (g *GameState) selectAt(p gridmap.Point) {
	game := g.session.Game
	if u := game.UnitAt(p); u != nil {
		g.selection.Toggle(u.ID)
		g.infoPanel.SetTarget(u.ID)
		return
	}
	for _, e := range game.World.Enemies {
		if e.Alive() && gridmap.Distance(e.Pos, p) < 0.5 {
			g.infoPanel.SetTarget(e.ID)
			return
		}
	}
	g.infoPanel.Hide()
}

func (g *GameState) summon() {
	u, err := g.session.Game.SummonAndPlace()
	g.report(err, func() string { return fmt.Sprintf("Summoned %s %s", u.Grade, u.Archetype) })
}

func (g *GameState) gamble() {
	entry, err := g.session.Game.Gamble()
	g.report(err, func() string { return "Gamble: " + entry.Label })
}

func (g *GameState) drawSpell() {
	s, err := g.session.Game.DrawSpell()
	g.report(err, func() string { return fmt.Sprintf("Drew %s", s.Type) })
}

func (g *GameState) startCast() {
	if len(g.session.Game.World.Spells) == 0 {
		g.say("No spells")
		return
	}
	g.targeting = true
	g.say(fmt.Sprintf("Click the board to cast %s", g.session.Game.World.Spells[0].Type))
}

func (g *GameState) cast(p gridmap.Point) {
	g.targeting = false
	w := g.session.Game.World
	if len(w.Spells) == 0 {
		return
	}
	s := w.Spells[0]
	_, err := g.session.Game.CastSpell(s.ID, p)
	g.report(err, func() string { return fmt.Sprintf("Cast %s", s.Type) })
}

func (g *GameState) merge() {
	ids, ok := g.selection.Group()
	if !ok {
		g.say(fmt.Sprintf("Select %d units to merge", app.MergeGroupSize))
		return
	}
	outcome, u, err := g.session.Game.Merge(ids)
	g.report(err, func() string { return "Merge: " + outcome.String() })
	if err != nil {
		return
	}
	g.selection.Clear()
	if u != nil {
		g.infoPanel.SetTarget(u.ID)
	} else {
		g.infoPanel.Hide()
	}
}

func (g *GameState) sell() {
	id := g.infoPanel.TargetEntity
	if g.session.Game.World.Unit(id) == nil {
		return
	}
	refund, err := g.session.Game.Sell(id)
	g.report(err, func() string { return fmt.Sprintf("Sold for %dG", refund) })
	g.infoPanel.Hide()
}

func (g *GameState) upgrade(kind component.UpgradeKind) {
	level, err := g.session.Game.Upgrade(kind)
	g.report(err, func() string { return fmt.Sprintf("%s level %d", kind, level) })
}

func (g *GameState) pause() {
	g.pauseButton.SetPaused(true)
	g.sm.SetState(NewPauseState(g.sm, g))
}

func (g *GameState) announce(e event.Event) {
	switch e.Type {
	case event.WaveStart:
		g.say(fmt.Sprintf("Wave %d", e.Data.(event.WaveData).Wave))
	case event.BossSpawn:
		g.say(fmt.Sprintf("Boss incoming: %s", e.Data.(event.BossSpawnData).Ability))
	case event.WaveClear:
		g.say(fmt.Sprintf("Wave %d cleared", e.Data.(event.WaveData).Wave))
	}
}

func (g *GameState) report(err error, ok func() string) {
	if err != nil {
		g.say(err.Error())
		return
	}
	g.say(ok())
}

func (g *GameState) say(msg string) {
	g.message = msg
	g.messageAt = time.Now()
}

func (g *GameState) Draw(screen *ebiten.Image) {
	game := g.session.Game
	w := game.World

	g.renderer.Draw(screen, w, game.Now(), g.selection.Set())

	g.drawHUD(screen)
	g.waves.Draw(screen, g.face, w.Wave, game.Balance.IsBossWave(w.Wave))
	g.indicator.Draw(screen, w.Phase)
	g.pauseButton.Draw(screen)
	for _, b := range g.buttons {
		b.Draw(screen, g.face, b.enabled(g))
	}
	g.upgrades.Draw(screen, g.face, &w.Upgrades)
	_, canMerge := g.selection.Group()
	g.infoPanel.Draw(screen, w, canMerge)

	if g.message != "" && time.Since(g.messageAt) < messageDuration {
		g.renderer.DrawBanner(screen, g.message, config.TextLightColor)
	}
}

func (g *GameState) drawHUD(screen *ebiten.Image) {
	game := g.session.Game
	w := game.World
	lines := []string{
		fmt.Sprintf("Gold %d   Score %d   Kills %d", w.Gold, w.Score, w.Kills),
		fmt.Sprintf("Enemies %d/%d   Spawned %d/%d", w.LiveEnemyCount(), game.Balance.MaxEnemies, w.SpawnedCount, game.Balance.SpawnQuota),
	}
	if w.Phase == component.PhasePrepare || w.Phase == component.PhaseWaveClear {
		lines = append(lines, fmt.Sprintf("Next wave in %.1fs", w.WaveTimerMs/1000))
	}
	if c := w.Commander; c != nil {
		lines = append(lines, fmt.Sprintf("Commander %s", c.Name))
	}
	spells := "Spells:"
	for _, s := range w.Spells {
		spells += " " + string(s.Type)
	}
	lines = append(lines, spells)

	x, y := int(config.BoardOffsetX), 24
	for _, l := range lines {
		text.Draw(screen, l, g.face, x, y, config.TextLightColor)
		y += config.HUDLineHeight
	}
}

func (g *GameState) Exit() {}
