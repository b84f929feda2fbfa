// internal/system/reward.go
package system

import (
	"math"

	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/entity"
	"go-wave-defense/internal/event"
)

// RewardSystem pays out gold and score for kills and cleared waves.
type RewardSystem struct {
	world   *entity.World
	balance *config.RewardBalance
}

func NewRewardSystem(world *entity.World, balance *config.Balance) *RewardSystem {
	return &RewardSystem{world: world, balance: &balance.Rewards}
}

// OnEvent handles the events the system is subscribed to.
func (s *RewardSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled:
		data, _ := e.Data.(event.EnemyKilledData)
		s.world.Kills++
		if data.Boss {
			s.grant(s.balance.BossKillGold)
			s.world.Score += s.balance.BossKillScore
		} else {
			s.grant(s.balance.EnemyKillGold)
			s.world.Score += s.balance.EnemyKillScore
		}
	case event.WaveClear:
		s.grant(s.balance.WaveClearGold)
	}
}

// GoldMultiplier combines the gold_boost commander and the gold bonus upgrade.
func (s *RewardSystem) GoldMultiplier() float64 {
	m := 1 + s.balance.GoldBonusPerLevel*float64(s.world.Upgrades.GoldBonus)
	if c := s.world.Commander; c.Has(defs.CommanderGoldBoost) {
		m *= 1 + c.Fraction()
	}
	return m
}

func (s *RewardSystem) grant(base int) {
	gold := int(math.Floor(float64(base) * s.GoldMultiplier()))
	s.world.Gold += gold
	s.world.GoldEarned += gold
}
