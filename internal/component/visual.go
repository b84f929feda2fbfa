// internal/component/visual.go
package component

import (
	"image/color"

	"go-wave-defense/internal/utils"
	"go-wave-defense/pkg/gridmap"
)

// EffectKind selects how a visual effect is drawn.
type EffectKind string

const (
	EffectSlash      EffectKind = "slash"
	EffectArc        EffectKind = "arc"
	EffectExplosion  EffectKind = "explosion"
	EffectShockwave  EffectKind = "shockwave"
	EffectBeam       EffectKind = "beam"
	EffectSpark      EffectKind = "spark"
	EffectWave       EffectKind = "wave"
	EffectDeathBurst EffectKind = "death_burst"
	EffectText       EffectKind = "dmg_text"
	EffectMeteor     EffectKind = "meteor"
	EffectLightning  EffectKind = "lightning"
	EffectHeal       EffectKind = "heal"
)

// Effect is a short-lived visual record. It carries no gameplay meaning.
type Effect struct {
	Kind        EffectKind
	From, To    gridmap.Point
	Color       color.RGBA
	CreatedAtMs int64
	DurationMs  int64
	Scale       float64
	Text        string
}

// Expired reports whether the effect's lifetime has ended at nowMs.
func (e *Effect) Expired(nowMs int64) bool {
	return nowMs-e.CreatedAtMs >= e.DurationMs
}

// Progress returns how far through its lifetime the effect is, in [0, 1].
func (e *Effect) Progress(nowMs int64) float64 {
	if e.DurationMs <= 0 {
		return 1
	}
	return utils.Clamp01(float64(nowMs-e.CreatedAtMs) / float64(e.DurationMs))
}
