// internal/state/pause_state.go
package state

import (
	"image/color"

	"go-wave-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var _ State = (*PauseState)(nil)

// PauseState freezes the game and draws it dimmed behind a label.
type PauseState struct {
	sm   *StateMachine
	game *GameState
}

func NewPauseState(sm *StateMachine, game *GameState) *PauseState {
	return &PauseState{sm: sm, game: game}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(nowMs int64) {
	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyF9)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		unpause = unpause || s.game.pauseButton.Contains(x, y)
	}
	if unpause {
		s.sm.SetState(s.game)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.game.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 128}, false)

	const label = "PAUSED"
	b := text.BoundString(s.game.face, label)
	x := (config.ScreenWidth - b.Dx()) / 2
	text.Draw(screen, label, s.game.face, x, config.ScreenHeight/2, config.TextLightColor)
}

func (s *PauseState) Exit() {}
