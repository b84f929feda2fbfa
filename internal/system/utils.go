// internal/system/utils.go
package system

import (
	"fmt"
	"image/color"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/pkg/gridmap"
)

// ApplyDamage lowers an enemy's hp. It reports whether this hit killed it.
// Hits on an already dead enemy are ignored.
func ApplyDamage(e *component.Enemy, damage int) bool {
	if e == nil || !e.Alive() || damage <= 0 {
		return false
	}
	e.HP -= damage
	if e.HP < 0 {
		e.HP = 0
	}
	return !e.Alive()
}

// gradeEffectScale sizes attack effects by grade.
var gradeEffectScale = map[defs.Grade]float64{
	defs.GradeF: 0.6, defs.GradeE: 0.8, defs.GradeD: 1.0, defs.GradeC: 1.3,
	defs.GradeB: 1.6, defs.GradeA: 2.0, defs.GradeS: 2.8,
}

// attackColor brightens effects of high grades.
func attackColor(a defs.Archetype, g defs.Grade) color.RGBA {
	switch m := defs.GradeMultiplier[g]; {
	case m >= 5.0:
		return config.CritColor
	case m >= 3.5:
		return config.HighGradeColor
	}
	return config.ArchetypeColors[a]
}

func nearestFirst(from gridmap.Point, enemies []*component.Enemy) []*component.Enemy {
	out := append([]*component.Enemy(nil), enemies...)
	// insertion sort keeps ties in iteration order
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && gridmap.Distance(from, out[j].Pos) < gridmap.Distance(from, out[j-1].Pos); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// damageText builds the floating number shown where a hit landed.
func damageText(at gridmap.Point, dmg int, crit bool, jitter float64) component.Effect {
	c := config.TextLightColor
	scale := 1.0
	switch {
	case crit:
		c, scale = config.CritColor, 1.4
	case dmg >= 50:
		c = config.DamageColor
	}
	from := gridmap.Point{X: at.X + jitter, Y: at.Y}
	return component.Effect{
		Kind:       component.EffectText,
		From:       from,
		To:         gridmap.Point{X: from.X, Y: from.Y - 1.2},
		Color:      c,
		DurationMs: 600,
		Scale:      scale,
		Text:       fmt.Sprint(dmg),
	}
}

func withinRange(a, b gridmap.Point, r float64) bool {
	return gridmap.Distance(a, b) <= r
}
