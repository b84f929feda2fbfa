// internal/app/frame.go
package app

import (
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/event"
)

// FrameDriver turns wall-clock frame timestamps into Advance calls. Elapsed
// time is clamped to a maximum so a stall cannot produce a huge step, and
// frames shorter than the minimum are skipped, their time carried into the
// next frame.
//
// The game runs on its own clock: each step adds the clamped elapsed time to
// the previous game time, so wall time spent paused or stalled never reaches
// timers, cooldowns or spell expiry.
type FrameDriver struct {
	game    *Game
	frame   config.FrameBalance
	lastMs  int64
	started bool
}

func NewFrameDriver(game *Game) *FrameDriver {
	return &FrameDriver{game: game, frame: game.Balance.Frame}
}

// Frame is called once per rendered frame with the current wall clock. The
// first call only records the clock.
func (f *FrameDriver) Frame(wallMs int64) []event.Event {
	if !f.started {
		f.started = true
		f.lastMs = wallMs
		return nil
	}
	elapsed := float64(wallMs - f.lastMs)
	if elapsed < f.frame.MinElapsedMs {
		return nil
	}
	f.lastMs = wallMs
	if elapsed > f.frame.MaxElapsedMs {
		elapsed = f.frame.MaxElapsedMs
	}
	return f.game.Advance(elapsed, f.game.Now()+int64(elapsed))
}

// Restart forgets the last wall-clock frame, e.g. after a pause or a reset.
// The game clock continues from where it stopped.
func (f *FrameDriver) Restart() {
	f.started = false
}
