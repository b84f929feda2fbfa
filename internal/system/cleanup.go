// internal/system/cleanup.go
package system

import (
	"fmt"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/entity"
	"go-wave-defense/internal/event"
	"go-wave-defense/pkg/gridmap"
)

// CleanupSystem removes defeated enemies and announces each kill.
type CleanupSystem struct {
	world   *entity.World
	balance *config.Balance
	events  *event.Recorder
}

func NewCleanupSystem(world *entity.World, balance *config.Balance, events *event.Recorder) *CleanupSystem {
	return &CleanupSystem{world: world, balance: balance, events: events}
}

func (s *CleanupSystem) Update(nowMs int64) {
	for _, e := range s.world.RemoveDeadEnemies() {
		s.events.Emit(event.EnemyKilled, event.EnemyKilledData{EnemyID: e.ID, Boss: e.IsBoss(), Pos: e.Pos})
		s.world.AddEffect(DeathEffects(e, s.balance, nowMs)...)
	}
}

// DeathEffects are the burst and gold text shown where an enemy fell.
func DeathEffects(e *component.Enemy, b *config.Balance, nowMs int64) []component.Effect {
	burst := component.Effect{
		Kind: component.EffectDeathBurst, From: e.Pos, To: e.Pos,
		Color: config.DeathColor, CreatedAtMs: nowMs, DurationMs: 350, Scale: 1.0,
	}
	gold := b.Rewards.EnemyKillGold
	if e.IsBoss() {
		burst.Color, burst.DurationMs, burst.Scale = config.BossColor, 600, 2.5
		gold = b.Rewards.BossKillGold
	}
	return []component.Effect{burst, {
		Kind: component.EffectText, From: e.Pos, To: e.Pos.Add(gridmap.Point{Y: -1}),
		Color: config.CritColor, CreatedAtMs: nowMs, DurationMs: 800, Scale: 1.0,
		Text: fmt.Sprintf("+%dG", gold),
	}}
}
