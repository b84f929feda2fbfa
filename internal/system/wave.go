// internal/system/wave.go
package system

import (
	"log/slog"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/entity"
	"go-wave-defense/internal/event"
	"go-wave-defense/internal/utils"
)

// WaveSystem drives the phase state machine:
// prepare -> battle -> wave_clear -> battle ... -> victory, with game_over
// reachable from any non-terminal phase.
type WaveSystem struct {
	world   *entity.World
	balance *config.Balance
	spawner *SpawnSystem
	rng     *utils.PRNGService
	events  *event.Recorder
}

func NewWaveSystem(world *entity.World, balance *config.Balance, spawner *SpawnSystem, rng *utils.PRNGService, events *event.Recorder) *WaveSystem {
	return &WaveSystem{world: world, balance: balance, spawner: spawner, rng: rng, events: events}
}

// Update counts down the prepare and rest timers. When a countdown ends the
// next wave starts, unless the final wave is already behind us.
func (s *WaveSystem) Update(deltaMs float64) {
	w := s.world
	if w.Phase != component.PhasePrepare && w.Phase != component.PhaseWaveClear {
		return
	}
	w.WaveTimerMs -= deltaMs
	if w.WaveTimerMs > 0 {
		return
	}
	if w.Wave >= s.balance.FinalWave {
		w.Phase = component.PhaseVictory
		w.WaveTimerMs = 0
		s.events.Emit(event.Victory, nil)
		slog.Info("victory", "wave", w.Wave, "score", w.Score)
		return
	}
	s.StartNextWave()
}

// StartNextWave enters battle for the next wave.
func (s *WaveSystem) StartNextWave() {
	w := s.world
	w.Wave++
	w.Phase = component.PhaseBattle
	w.WaveTimerMs = 0
	w.SpawnTimerMs = s.balance.SpawnIntervalMs
	w.SpawnedCount = 0
	w.WaveEnemyType = utils.Pick(s.rng, defs.WaveEnemyTypes(w.Wave))
	s.events.Emit(event.WaveStart, event.WaveData{Wave: w.Wave})

	if s.balance.IsBossWave(w.Wave) {
		boss := s.spawner.NewBoss(w.Wave)
		w.Enemies = append(w.Enemies, boss)
		s.events.Emit(event.BossSpawn, event.BossSpawnData{EnemyID: boss.ID, Ability: boss.Boss.Ability})
	}
	slog.Debug("wave started", "wave", w.Wave, "type", w.WaveEnemyType)
}

// CheckQuota moves battle to wave_clear once the whole quota has spawned,
// whether or not those enemies are dead yet.
func (s *WaveSystem) CheckQuota() {
	w := s.world
	if w.Phase != component.PhaseBattle || w.SpawnedCount < s.balance.SpawnQuota {
		return
	}
	w.Phase = component.PhaseWaveClear
	w.WaveTimerMs = s.balance.RestTimeMs
	s.events.Emit(event.WaveClear, event.WaveData{Wave: w.Wave})
}

// CheckGameOver ends the session when the live enemy count reaches the
// ceiling. It reports whether the game is now over.
func (s *WaveSystem) CheckGameOver() bool {
	w := s.world
	if w.Phase.Terminal() {
		return w.Phase == component.PhaseGameOver
	}
	if w.LiveEnemyCount() < s.balance.MaxEnemies {
		return false
	}
	w.Phase = component.PhaseGameOver
	s.events.Emit(event.GameOver, nil)
	slog.Info("game over", "wave", w.Wave, "score", w.Score)
	return true
}
