// internal/termview/controller.go
package termview

import (
	"context"
	"fmt"
	"log/slog"

	"go-wave-defense/internal/app"
	"go-wave-defense/internal/event"
	"go-wave-defense/pkg/gridmap"
)

// Controller applies keyboard commands to a session and drives its clock.
type Controller struct {
	Session   *app.Session
	Driver    *app.FrameDriver
	Cursor    gridmap.Cell
	Selection app.Selection
	Message   string
	Paused    bool
	NewHigh   bool

	finished bool
}

func NewController(s *app.Session) *Controller {
	mid := s.Game.Track.Size / 2
	return &Controller{
		Session: s,
		Driver:  app.NewFrameDriver(s.Game),
		Cursor:  gridmap.Cell{Col: mid, Row: mid},
	}
}

// Tick feeds the wall clock nowMs to the frame driver and records the result
// once the game ends. Wall time spent paused is not simulated.
func (c *Controller) Tick(ctx context.Context, nowMs int64) []event.Event {
	if c.Paused {
		return nil
	}
	g := c.Session.Game
	events := c.Driver.Frame(nowMs)
	for _, e := range events {
		c.announce(e)
	}
	c.Selection.Prune(g.World)

	if g.World.Phase.Terminal() && !c.finished {
		c.finished = true
		newHigh, err := c.Session.Finish(ctx)
		if err != nil {
			slog.ErrorContext(ctx, "failed to record result", "error", err)
		}
		c.NewHigh = newHigh
	}
	return events
}

func (c *Controller) announce(e event.Event) {
	switch e.Type {
	case event.WaveStart:
		c.Message = fmt.Sprintf("Wave %d", e.Data.(event.WaveData).Wave)
	case event.BossSpawn:
		c.Message = fmt.Sprintf("Boss incoming: %s", e.Data.(event.BossSpawnData).Ability)
	case event.WaveClear:
		c.Message = fmt.Sprintf("Wave %d cleared", e.Data.(event.WaveData).Wave)
	case event.Victory:
		c.Message = "Victory! r to play again"
	case event.GameOver:
		c.Message = "Game over. r to play again"
	}
}

// Apply runs one command. It returns true when the player asked to quit.
func (c *Controller) Apply(ctx context.Context, cmd Command) bool {
	g := c.Session.Game
	switch cmd {
	case CmdQuit:
		return true
	case CmdUp, CmdDown, CmdLeft, CmdRight:
		c.moveCursor(cmd)
	case CmdPause:
		c.Paused = !c.Paused
		if !c.Paused {
			c.Driver.Restart()
		}
	case CmdRestart:
		if !g.World.Phase.Terminal() {
			c.Message = "Restart is available once the game ends"
			return false
		}
		c.Session.Restart()
		c.Driver.Restart()
		c.Selection.Clear()
		c.finished = false
		c.NewHigh = false
		c.Message = "New game"
	case CmdSummon:
		u, err := g.SummonAt(c.Cursor.Center())
		c.report(err, func() string { return fmt.Sprintf("Summoned %s %s", u.Grade, u.Archetype) })
	case CmdSelect:
		u := g.UnitAt(c.Cursor.Center())
		if u == nil {
			c.Message = "No unit here"
			return false
		}
		c.Selection.Toggle(u.ID)
		c.Message = fmt.Sprintf("%d/%d selected", c.Selection.Len(), app.MergeGroupSize)
	case CmdMerge:
		ids, ok := c.Selection.Group()
		if !ok {
			c.Message = fmt.Sprintf("Select %d units to merge", app.MergeGroupSize)
			return false
		}
		outcome, _, err := g.Merge(ids)
		c.report(err, func() string { return "Merge: " + outcome.String() })
		if err == nil {
			c.Selection.Clear()
		}
	case CmdSell:
		u := g.UnitAt(c.Cursor.Center())
		if u == nil {
			c.Message = "No unit here"
			return false
		}
		refund, err := g.Sell(u.ID)
		c.report(err, func() string { return fmt.Sprintf("Sold for %d", refund) })
	case CmdUpgradeSingle, CmdUpgradeArea, CmdUpgradePenetrating, CmdUpgradeGold:
		kind := upgradeCommands[cmd]
		level, err := g.Upgrade(kind)
		c.report(err, func() string { return fmt.Sprintf("%s level %d", kind, level) })
	case CmdGamble:
		entry, err := g.Gamble()
		c.report(err, func() string { return "Gamble: " + entry.Label })
	case CmdDrawSpell:
		s, err := g.DrawSpell()
		c.report(err, func() string { return fmt.Sprintf("Drew %s", s.Type) })
	case CmdCastSpell:
		if len(g.World.Spells) == 0 {
			c.Message = "No spells"
			return false
		}
		s := g.World.Spells[0]
		_, err := g.CastSpell(s.ID, c.Cursor.Center())
		c.report(err, func() string { return fmt.Sprintf("Cast %s", s.Type) })
	case CmdCycleCommander:
		c.cycleCommander(ctx)
	case CmdRecruit:
		rc, err := c.Session.RecruitCommander(ctx)
		c.report(err, func() string { return fmt.Sprintf("Recruited %s. k to select", rc.Name) })
	}
	return false
}

func (c *Controller) report(err error, ok func() string) {
	if err != nil {
		c.Message = err.Error()
		return
	}
	c.Message = ok()
}

func (c *Controller) moveCursor(cmd Command) {
	size := c.Session.Game.Track.Size
	switch cmd {
	case CmdUp:
		c.Cursor.Row--
	case CmdDown:
		c.Cursor.Row++
	case CmdLeft:
		c.Cursor.Col--
	case CmdRight:
		c.Cursor.Col++
	}
	c.Cursor.Col = min(max(c.Cursor.Col, 0), size-1)
	c.Cursor.Row = min(max(c.Cursor.Row, 0), size-1)
}

func (c *Controller) cycleCommander(ctx context.Context) {
	next, err := c.Session.NextCommander(ctx)
	if err != nil {
		c.Message = err.Error()
		return
	}
	c.Message = fmt.Sprintf("Commander %s from the next game", next)
}
