// internal/system/hits.go
package system

import (
	"go-wave-defense/internal/component"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/entity"
	"go-wave-defense/internal/event"
	"go-wave-defense/internal/types"
	"go-wave-defense/internal/utils"
)

// HitSystem delivers pending hits once their travel time has passed.
type HitSystem struct {
	world  *entity.World
	rng    *utils.PRNGService
	events *event.Recorder
}

func NewHitSystem(world *entity.World, rng *utils.PRNGService, events *event.Recorder) *HitSystem {
	return &HitSystem{world: world, rng: rng, events: events}
}

// Update lands every due hit in queue order. Hits on enemies that are gone
// are dropped without error.
func (s *HitSystem) Update(nowMs int64) {
	if len(s.world.PendingHits) == 0 {
		return
	}
	var due []component.PendingHit
	kept := s.world.PendingHits[:0]
	for _, h := range s.world.PendingHits {
		if h.Due(nowMs) {
			due = append(due, h)
		} else {
			kept = append(kept, h)
		}
	}
	s.world.PendingHits = kept

	for i := range due {
		s.deliver(&due[i], nowMs)
	}
}

func (s *HitSystem) deliver(h *component.PendingHit, nowMs int64) {
	for _, hit := range h.Hits {
		e := s.world.Enemy(hit.EnemyID)
		if e == nil {
			continue
		}
		s.land(h.UnitID, e, hit.Damage, hit.Crit, nowMs)
	}

	if sp := h.Splash; sp != nil {
		center := sp.Center
		if t := s.world.Enemy(sp.TargetID); t != nil {
			center = t.Pos
		}
		for _, e := range s.world.Enemies {
			if !e.Alive() || !withinRange(center, e.Pos, sp.Radius) {
				continue
			}
			dmg := scaleDamage(Damage(sp.Attacker, e, sp.UpgradeLevel), sp.Multiplier)
			s.land(h.UnitID, e, dmg, sp.Crit, nowMs)
		}

		col := attackColor(sp.Attacker.Archetype, sp.Attacker.Grade)
		scale := gradeEffectScale[sp.Attacker.Grade]
		s.world.AddEffect(component.Effect{
			Kind: component.EffectExplosion, From: center, To: center, Color: col,
			CreatedAtMs: nowMs, DurationMs: 300 + int64(scale*80), Scale: scale,
		})
		if defs.GradeMultiplier[sp.Attacker.Grade] >= 3.5 {
			s.world.AddEffect(component.Effect{
				Kind: component.EffectShockwave, From: center, To: center, Color: col,
				CreatedAtMs: nowMs, DurationMs: 400, Scale: scale * 1.5,
			})
		}
	}

	for _, fx := range h.Effects {
		s.world.AddEffect(stamped(fx, nowMs))
	}
}

func (s *HitSystem) land(unitID types.EntityID, e *component.Enemy, dmg int, crit bool, nowMs int64) {
	ApplyDamage(e, dmg)
	s.events.Emit(event.UnitAttack, event.UnitAttackData{UnitID: unitID, EnemyID: e.ID, Damage: dmg, Crit: crit})
	s.world.AddEffect(stamped(damageText(e.Pos, dmg, crit, s.rng.Range(0.2)), nowMs))
}
