// internal/system/spawn.go
package system

import (
	"math"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/entity"
	"go-wave-defense/internal/utils"
	"go-wave-defense/pkg/gridmap"
)

// EnemyHP is the max hp of a regular enemy of type t on the given wave.
func EnemyHP(b *config.Balance, wave int, t defs.EnemyType) int {
	hp := b.Enemy.BaseHP * math.Pow(b.Enemy.HPGrowth, float64(wave)) * typeFactor(b.Enemy.TypeHP, t)
	return int(math.Floor(hp))
}

// BaseSpeed is the wave speed before the type factor: flat, then ramping
// after RampStartWave and ramping harder after LateRampStartWave.
func BaseSpeed(b *config.Balance, wave int) float64 {
	s := b.Enemy.BaseSpeed
	if wave > b.Enemy.RampStartWave {
		s += float64(wave-b.Enemy.RampStartWave) * b.Enemy.RampPerWave
	}
	if wave > b.Enemy.LateRampStartWave {
		s += float64(wave-b.Enemy.LateRampStartWave) * b.Enemy.LateRampPerWave
	}
	return s
}

// EnemySpeed is the move speed of a regular enemy of type t on the given wave.
func EnemySpeed(b *config.Balance, wave int, t defs.EnemyType) float64 {
	return BaseSpeed(b, wave) * typeFactor(b.Enemy.TypeSpeed, t)
}

func typeFactor(m map[string]float64, t defs.EnemyType) float64 {
	if f, ok := m[string(t)]; ok {
		return f
	}
	return 1
}

// SpawnSystem builds enemies and bosses and places them on the ring.
type SpawnSystem struct {
	world   *entity.World
	balance *config.Balance
	track   *gridmap.Track
	rng     *utils.PRNGService
}

func NewSpawnSystem(world *entity.World, balance *config.Balance, track *gridmap.Track, rng *utils.PRNGService) *SpawnSystem {
	return &SpawnSystem{world: world, balance: balance, track: track, rng: rng}
}

// NewEnemy creates a regular enemy at a random entry point with a little
// positional jitter. It is not added to the world.
func (s *SpawnSystem) NewEnemy(t defs.EnemyType, wave int) *component.Enemy {
	idx := utils.Pick(s.rng, s.track.SpawnIndices)
	half := s.balance.Enemy.SpawnJitter / 2
	pos := s.track.Waypoint(idx).Add(gridmap.Point{X: s.rng.Range(half), Y: s.rng.Range(half)})

	hp := EnemyHP(s.balance, wave, t)
	return &component.Enemy{
		ID:        s.world.NewEntity(),
		Type:      t,
		MaxHP:     hp,
		HP:        hp,
		Speed:     EnemySpeed(s.balance, wave, t),
		Pos:       pos,
		PathIndex: idx,
	}
}

// NewBoss creates the boss of a boss wave. Bosses are type D and enter at
// path index 0 without jitter. They run the ability mapped to their wave.
func (s *SpawnSystem) NewBoss(wave int) *component.Enemy {
	scaled := s.balance.Enemy.BaseHP * math.Pow(s.balance.Enemy.HPGrowth, float64(wave))
	hp := int(math.Floor(scaled * s.balance.Boss.HPMultiplier))
	return &component.Enemy{
		ID:        s.world.NewEntity(),
		Type:      defs.EnemyTypeD,
		MaxHP:     hp,
		HP:        hp,
		Speed:     BaseSpeed(s.balance, wave) * s.balance.Boss.SpeedFactor,
		Pos:       s.track.Waypoint(0),
		PathIndex: 0,
		Boss: &component.BossState{
			Ability:   defs.BossAbilityForWave(wave),
			Phase:     1,
			SpawnWave: wave,
		},
	}
}

// Update spawns the wave's regular enemies on the spawn interval until the
// quota is reached. It only runs during battle.
func (s *SpawnSystem) Update(deltaMs float64) {
	w := s.world
	if w.Phase != component.PhaseBattle || w.SpawnedCount >= s.balance.SpawnQuota {
		return
	}
	w.SpawnTimerMs -= deltaMs
	if w.SpawnTimerMs > 0 {
		return
	}
	w.Enemies = append(w.Enemies, s.NewEnemy(w.WaveEnemyType, w.Wave))
	w.SpawnTimerMs = s.balance.SpawnIntervalMs
	w.SpawnedCount++
}
