package ui

import (
	"image/color"
	"math"
	"time"

	"go-wave-defense/internal/component"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var phaseColors = map[component.Phase]color.RGBA{
	component.PhasePrepare:   {90, 160, 255, 255},
	component.PhaseBattle:    {230, 80, 60, 255},
	component.PhaseWaveClear: {90, 200, 120, 255},
	component.PhaseVictory:   {255, 215, 0, 255},
	component.PhaseGameOver:  {90, 90, 90, 255},
}

// PhaseIndicator is a colored dot that pulses when the phase changes.
type PhaseIndicator struct {
	X, Y       float32
	Radius     float32
	lastPhase  component.Phase
	lastChange time.Time
}

func NewPhaseIndicator(x, y, radius float32) *PhaseIndicator {
	return &PhaseIndicator{X: x, Y: y, Radius: radius}
}

func (i *PhaseIndicator) Draw(screen *ebiten.Image, phase component.Phase) {
	if phase != i.lastPhase {
		i.lastPhase = phase
		i.lastChange = time.Now()
	}
	elapsed := time.Since(i.lastChange).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	r := i.Radius * float32(scale)

	vector.DrawFilledCircle(screen, i.X, i.Y, r, phaseColors[phase], true)
	vector.StrokeCircle(screen, i.X, i.Y, r, 1, color.White, true)
}
