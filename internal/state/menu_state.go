// internal/state/menu_state.go
package state

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"

	"go-wave-defense/internal/app"
	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var _ State = (*MenuState)(nil)

// MenuState is shown when a game ends. It reports the result, lets the player
// pick the commander for the next game and starts it.
type MenuState struct {
	sm      *StateMachine
	game    *GameState
	newHigh bool
	notice  string
}

func NewMenuState(sm *StateMachine, game *GameState, newHigh bool) *MenuState {
	return &MenuState{sm: sm, game: game, newHigh: newHigh}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(nowMs int64) {
	s := m.game.session
	if inpututil.IsKeyJustPressed(ebiten.KeyK) {
		next, err := s.NextCommander(m.game.ctx)
		if err != nil {
			slog.WarnContext(m.game.ctx, "commander change failed", "error", err)
			m.notice = err.Error()
		} else {
			m.notice = "Next commander: " + commanderName(next)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		c, err := s.RecruitCommander(m.game.ctx)
		switch {
		case errors.Is(err, app.ErrRosterComplete):
			m.notice = "Every commander is already recruited"
		case err != nil:
			slog.WarnContext(m.game.ctx, "recruit failed", "error", err)
			m.notice = err.Error()
		default:
			m.notice = fmt.Sprintf("Recruited %s: %s", c.Name, c.Description)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.Restart()
		m.game.selection.Clear()
		m.game.infoPanel.Hide()
		m.game.say("New game")
		m.sm.SetState(m.game)
	}
}

func commanderName(id string) string {
	if c := defs.LookupCommander(id); c != nil {
		return c.Name
	}
	return id
}

type menuLine struct {
	s string
	c color.Color
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	m.game.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 170}, false)

	w := m.game.session.Game.World
	rec := m.game.session.Record()
	title, titleColor := "GAME OVER", config.DamageColor
	if w.Phase == component.PhaseVictory {
		title, titleColor = "VICTORY", config.CritColor
	}

	lines := []menuLine{
		{title, titleColor},
		{fmt.Sprintf("Wave %d   Score %d   Kills %d", w.Wave, w.Score, w.Kills), config.TextLightColor},
		{fmt.Sprintf("High score %d   Total gold %d", rec.HighScore, rec.TotalGold), config.TextLightColor},
	}
	if m.newHigh {
		lines = append(lines, menuLine{"New high score!", config.CritColor})
	}
	lines = append(lines,
		menuLine{"Commander: " + commanderName(rec.SelectedCommander) + "  (K to change, N to recruit)", config.TextLightColor},
		menuLine{"Space to play again", config.TextLightColor},
		menuLine{m.notice, config.HealColor},
	)

	y := config.ScreenHeight/2 - len(lines)*config.HUDLineHeight
	for _, l := range lines {
		b := text.BoundString(m.game.face, l.s)
		text.Draw(screen, l.s, m.game.face, (config.ScreenWidth-b.Dx())/2, y, l.c)
		y += config.HUDLineHeight * 2
	}
}

func (m *MenuState) Exit() {}
