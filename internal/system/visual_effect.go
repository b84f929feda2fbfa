// internal/system/visual_effect.go
package system

import (
	"go-wave-defense/internal/entity"
)

// VisualEffectSystem expires visual effects whose lifetime has ended.
type VisualEffectSystem struct {
	world *entity.World
}

func NewVisualEffectSystem(world *entity.World) *VisualEffectSystem {
	return &VisualEffectSystem{world: world}
}

func (s *VisualEffectSystem) Update(nowMs int64) {
	kept := s.world.Effects[:0]
	for _, fx := range s.world.Effects {
		if !fx.Expired(nowMs) {
			kept = append(kept, fx)
		}
	}
	s.world.Effects = kept
}
