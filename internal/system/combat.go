// internal/system/combat.go
package system

import (
	"math"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/entity"
	"go-wave-defense/internal/event"
	"go-wave-defense/internal/utils"
	"go-wave-defense/pkg/gridmap"
)

// CombatSystem decides, per unit per tick, whether to close in on the nearest
// enemy or attack it.
type CombatSystem struct {
	world   *entity.World
	balance *config.Balance
	track   *gridmap.Track
	rng     *utils.PRNGService
	events  *event.Recorder
}

func NewCombatSystem(world *entity.World, balance *config.Balance, track *gridmap.Track, rng *utils.PRNGService, events *event.Recorder) *CombatSystem {
	return &CombatSystem{world: world, balance: balance, track: track, rng: rng, events: events}
}

func (s *CombatSystem) Update(deltaMs float64, nowMs int64) {
	for _, u := range s.world.Units {
		target, dist := s.nearestEnemy(u.Pos)
		if target == nil {
			continue
		}
		u.TargetID = target.ID

		if dist > u.Stats.Range {
			s.approach(u, target.Pos, dist, deltaMs)
			continue
		}
		if !u.Ready(nowMs) {
			continue
		}

		mult, crit := s.multiplier()
		switch u.Archetype {
		case defs.ArchetypeSingle:
			s.strike(u, target, mult, crit, nowMs)
		case defs.ArchetypeArea:
			s.lob(u, target, mult, crit, nowMs)
		case defs.ArchetypePenetrating:
			s.pierce(u, mult, crit, nowMs)
		}
		u.LastAttackMs = nowMs
		u.HasAttacked = true
	}
}

// nearestEnemy returns the closest live enemy; the first one found wins ties.
func (s *CombatSystem) nearestEnemy(from gridmap.Point) (*component.Enemy, float64) {
	var best *component.Enemy
	bestDist := math.Inf(1)
	for _, e := range s.world.Enemies {
		if !e.Alive() {
			continue
		}
		if d := gridmap.Distance(from, e.Pos); d < bestDist {
			best, bestDist = e, d
		}
	}
	return best, bestDist
}

// approach steps a unit toward a point. A blocked direct step is retried on
// the two diagonals, in random order, before the unit gives up for the tick.
func (s *CombatSystem) approach(u *component.Unit, to gridmap.Point, dist, deltaMs float64) {
	if dist <= 0 {
		return
	}
	travel := u.Stats.MoveSpeed * deltaMs / 1000
	dir := to.Sub(u.Pos).Scale(1 / dist)

	next := s.track.ClampInner(u.Pos.Add(dir.Scale(travel)))
	if !s.collides(u, next) {
		u.Pos = next
		return
	}

	c := s.balance.Combat
	perp := gridmap.Point{X: -dir.Y, Y: dir.X}
	side := 1.0
	if s.rng.Float64() > 0.5 {
		side = -1
	}
	for _, sd := range []float64{side, -side} {
		step := dir.Scale(c.DeflectForward).Add(perp.Scale(sd * c.DeflectSide))
		next = s.track.ClampInner(u.Pos.Add(step.Scale(travel)))
		if !s.collides(u, next) {
			u.Pos = next
			return
		}
	}
}

func (s *CombatSystem) collides(u *component.Unit, at gridmap.Point) bool {
	for _, o := range s.world.Units {
		if o.ID != u.ID && gridmap.Distance(at, o.Pos) < s.balance.Combat.UnitMinSeparation {
			return true
		}
	}
	return false
}

// multiplier rolls the commander bonuses for one attack.
func (s *CombatSystem) multiplier() (float64, bool) {
	mult := 1.0
	c := s.world.Commander
	if c.Has(defs.CommanderBerserk) {
		mult *= 1 + c.Fraction()
	}
	if c.Has(defs.CommanderCritBoost) && s.rng.Chance(c.Fraction()) {
		return mult * s.balance.Combat.CritMultiplier, true
	}
	return mult, false
}

// strike queues a single-target hit with a short travel delay.
func (s *CombatSystem) strike(u *component.Unit, target *component.Enemy, mult float64, crit bool, nowMs int64) {
	lvl := s.world.Upgrades.AttackLevel(u.Archetype)
	dmg := scaleDamage(Damage(u.Attacker(), target, lvl), mult)
	col := attackColor(u.Archetype, u.Grade)
	scale := gradeEffectScale[u.Grade]

	fx := []component.Effect{{
		Kind: component.EffectSlash, From: u.Pos, To: target.Pos,
		Color: col, DurationMs: 200, Scale: scale,
	}}
	if defs.GradeMultiplier[u.Grade] >= 3.5 {
		fx = append(fx, component.Effect{
			Kind: component.EffectWave, From: target.Pos, To: target.Pos,
			Color: col, DurationMs: 350, Scale: scale,
		})
	}
	if crit {
		fx = append(fx, component.Effect{
			Kind: component.EffectSpark, From: target.Pos, To: target.Pos,
			Color: config.CritColor, DurationMs: 250, Scale: 2.0,
		})
	}

	s.world.PendingHits = append(s.world.PendingHits, component.PendingHit{
		DeliverAtMs: nowMs + s.balance.Combat.SingleHitDelayMs,
		UnitID:      u.ID,
		Hits:        []component.Hit{{EnemyID: target.ID, Damage: dmg, Crit: crit}},
		Effects:     fx,
	})
}

// lob queues an area blast centred on the target. Who it hits is decided on
// landing.
func (s *CombatSystem) lob(u *component.Unit, target *component.Enemy, mult float64, crit bool, nowMs int64) {
	s.world.PendingHits = append(s.world.PendingHits, component.PendingHit{
		DeliverAtMs: nowMs + s.balance.Combat.AreaHitDelayMs,
		UnitID:      u.ID,
		Splash: &component.Splash{
			TargetID:     target.ID,
			Center:       target.Pos,
			Radius:       u.Stats.SplashRadius,
			Attacker:     u.Attacker(),
			UpgradeLevel: s.world.Upgrades.AttackLevel(u.Archetype),
			Multiplier:   mult,
			Crit:         crit,
		},
		Effects: []component.Effect{{
			Kind: component.EffectArc, From: u.Pos, To: target.Pos,
			Color: attackColor(u.Archetype, u.Grade), DurationMs: 350, Scale: gradeEffectScale[u.Grade],
		}},
	})
}

// pierce damages the nearest in-range enemies right away, up to the unit's
// pierce count.
func (s *CombatSystem) pierce(u *component.Unit, mult float64, crit bool, nowMs int64) {
	var inRange []*component.Enemy
	for _, e := range s.world.Enemies {
		if e.Alive() && withinRange(u.Pos, e.Pos, u.Stats.Range) {
			inRange = append(inRange, e)
		}
	}
	targets := nearestFirst(u.Pos, inRange)
	if len(targets) > u.Stats.PierceCount {
		targets = targets[:u.Stats.PierceCount]
	}

	lvl := s.world.Upgrades.AttackLevel(u.Archetype)
	col := attackColor(u.Archetype, u.Grade)
	scale := gradeEffectScale[u.Grade]
	for _, e := range targets {
		dmg := scaleDamage(Damage(u.Attacker(), e, lvl), mult)
		ApplyDamage(e, dmg)
		s.events.Emit(event.UnitAttack, event.UnitAttackData{UnitID: u.ID, EnemyID: e.ID, Damage: dmg, Crit: crit})

		s.world.AddEffect(
			component.Effect{Kind: component.EffectBeam, From: u.Pos, To: e.Pos, Color: col, CreatedAtMs: nowMs, DurationMs: 250, Scale: scale},
			stamped(damageText(e.Pos, dmg, crit, s.rng.Range(0.2)), nowMs),
		)
		if defs.GradeMultiplier[u.Grade] >= 2.2 {
			s.world.AddEffect(component.Effect{
				Kind: component.EffectSpark, From: e.Pos, To: e.Pos,
				Color: config.TextLightColor, CreatedAtMs: nowMs, DurationMs: 180, Scale: scale * 0.6,
			})
		}
	}
}

func stamped(fx component.Effect, nowMs int64) component.Effect {
	fx.CreatedAtMs = nowMs
	return fx
}
