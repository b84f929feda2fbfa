// internal/termview/view.go
package termview

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/types"
	"go-wave-defense/pkg/gridmap"
)

// Canvas is the part of tcell.Screen the view draws on.
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

const (
	cellWidth = 2
	hudGap    = 3
)

var (
	styleDefault  = tcell.StyleDefault
	stylePath     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleSpawn    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleEnemy    = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	styleBoss     = tcell.StyleDefault.Foreground(tcell.ColorFuchsia).Bold(true)
	styleTitle    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleMessage  = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleHelp     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleFrozen   = tcell.StyleDefault.Foreground(tcell.ColorLightBlue)
	styleSelected = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
)

var gradeStyles = map[defs.Grade]tcell.Style{
	defs.GradeF: tcell.StyleDefault.Foreground(tcell.ColorSilver),
	defs.GradeE: tcell.StyleDefault.Foreground(tcell.ColorGreen),
	defs.GradeD: tcell.StyleDefault.Foreground(tcell.ColorTeal),
	defs.GradeC: tcell.StyleDefault.Foreground(tcell.ColorBlue),
	defs.GradeB: tcell.StyleDefault.Foreground(tcell.ColorPurple),
	defs.GradeA: tcell.StyleDefault.Foreground(tcell.ColorYellow),
	defs.GradeS: tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
}

var archetypeGlyphs = map[defs.Archetype]rune{
	defs.ArchetypeSingle:      's',
	defs.ArchetypeArea:        'a',
	defs.ArchetypePenetrating: 'p',
}

var helpLines = []string{
	"arrows move  s summon  space select",
	"m merge  x sell  1-4 upgrade",
	"g gamble  d draw spell  c cast",
	"k commander  n recruit  p pause  r restart  q quit",
}

// Draw renders the board and the HUD. The board uses two columns per cell.
func Draw(cv Canvas, c *Controller) {
	g := c.Session.Game
	w := g.World
	t := g.Track

	spawns := make(map[gridmap.Cell]bool, len(t.SpawnIndices))
	for _, idx := range t.SpawnIndices {
		spawns[t.CellAt(t.Waypoint(idx))] = true
	}
	enemies := make(map[gridmap.Cell][]*component.Enemy)
	for _, e := range w.Enemies {
		if e.Alive() {
			cell := t.CellAt(e.Pos)
			enemies[cell] = append(enemies[cell], e)
		}
	}
	units := make(map[gridmap.Cell]*component.Unit, len(w.Units))
	for _, u := range w.Units {
		units[t.CellAt(u.Pos)] = u
	}
	selected := c.Selection.Set()

	for row := 0; row < t.Size; row++ {
		for col := 0; col < t.Size; col++ {
			cell := gridmap.Cell{Col: col, Row: row}
			glyph, style := cellGlyph(t, cell, spawns[cell], enemies[cell], units[cell], selected)
			if cell == c.Cursor {
				style = style.Reverse(true)
			}
			x := col * cellWidth
			cv.SetContent(x, row, glyph[0], nil, style)
			cv.SetContent(x+1, row, glyph[1], nil, style)
		}
	}

	x := t.Size*cellWidth + hudGap
	y := 0
	line := func(s string, style tcell.Style) {
		drawText(cv, x, y, s, style)
		y++
	}

	line(fmt.Sprintf("Wave %d/%d  %s", w.Wave, g.Balance.FinalWave, w.Phase), styleTitle)
	if !w.Phase.Terminal() && w.Phase != component.PhaseBattle {
		line(fmt.Sprintf("next wave in %.1fs", w.WaveTimerMs/1000), styleDefault)
	} else {
		line(fmt.Sprintf("spawned %d/%d", w.SpawnedCount, g.Balance.SpawnQuota), styleDefault)
	}
	line(fmt.Sprintf("Gold %d  Score %d  Kills %d", w.Gold, w.Score, w.Kills), styleDefault)
	line(fmt.Sprintf("Enemies %d/%d", w.LiveEnemyCount(), g.Balance.MaxEnemies), styleDefault)
	if cmd := w.Commander; cmd != nil {
		line(fmt.Sprintf("Commander %s (%s)", cmd.Name, cmd.Ability), styleDefault)
	}
	line(upgradeLine(w.Upgrades), styleDefault)
	line(spellLine(w.Spells), styleDefault)
	if w.EnemySpeedScale == 0 {
		line("FROZEN", styleFrozen)
	}
	if w.Barrier {
		line("BARRIER", styleFrozen)
	}
	if c.Paused {
		line("PAUSED", styleTitle)
	}
	if c.NewHigh {
		line("New high score!", styleTitle)
	}
	if u := g.UnitAt(c.Cursor.Center()); u != nil {
		line(fmt.Sprintf("%s %s  atk %d  rng %.1f", u.Grade, u.Archetype, u.Stats.Attack, u.Stats.Range), styleSelected)
	}
	y++
	line(c.Message, styleMessage)
	y++
	for _, h := range helpLines {
		line(h, styleHelp)
	}
}

func cellGlyph(t *gridmap.Track, cell gridmap.Cell, spawn bool, enemies []*component.Enemy, u *component.Unit, selected map[types.EntityID]bool) ([2]rune, tcell.Style) {
	switch {
	case len(enemies) > 0:
		e := enemies[0]
		if e.IsBoss() {
			return [2]rune{'B', countRune(len(enemies))}, styleBoss
		}
		glyph := 'e'
		if e.Type != "" {
			glyph = rune(e.Type[0])
		}
		return [2]rune{glyph, countRune(len(enemies))}, styleEnemy
	case u != nil:
		style := gradeStyles[u.Grade]
		if selected[u.ID] {
			style = styleSelected
		}
		return [2]rune{[]rune(u.Grade.String())[0], archetypeGlyphs[u.Archetype]}, style
	case spawn:
		return [2]rune{'<', '>'}, styleSpawn
	case t.IsPathCell(cell):
		return [2]rune{'.', ' '}, stylePath
	}
	return [2]rune{' ', ' '}, styleDefault
}

func countRune(n int) rune {
	switch {
	case n <= 1:
		return ' '
	case n > 9:
		return '+'
	}
	return rune('0' + n)
}

func upgradeLine(u component.Upgrades) string {
	parts := make([]string, 0, len(component.AllUpgradeKinds))
	for i, k := range component.AllUpgradeKinds {
		parts = append(parts, fmt.Sprintf("%d:%d", i+1, u.Level(k)))
	}
	return "Upgrades " + strings.Join(parts, " ")
}

func spellLine(spells []component.Spell) string {
	if len(spells) == 0 {
		return "Spells -"
	}
	names := make([]string, len(spells))
	for i, s := range spells {
		names[i] = string(s.Type)
	}
	return "Spells " + strings.Join(names, ",")
}

func drawText(cv Canvas, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		cv.SetContent(x, y, r, nil, style)
		x++
	}
}
