// internal/app/game.go
package app

import (
	"log/slog"

	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/entity"
	"go-wave-defense/internal/event"
	"go-wave-defense/internal/system"
	"go-wave-defense/internal/utils"
	"go-wave-defense/pkg/gridmap"
)

// Game holds one session's world and the systems that advance it.
type Game struct {
	World           *entity.World
	Balance         *config.Balance
	Track           *gridmap.Track
	Rng             *utils.PRNGService
	EventDispatcher *event.Dispatcher
	Scheduler       *Scheduler

	VisualEffectSystem *system.VisualEffectSystem
	HitSystem          *system.HitSystem
	WaveSystem         *system.WaveSystem
	SpawnSystem        *system.SpawnSystem
	BossSystem         *system.BossSystem
	MovementSystem     *system.MovementSystem
	CombatSystem       *system.CombatSystem
	CleanupSystem      *system.CleanupSystem
	RewardSystem       *system.RewardSystem

	commander   *defs.Commander
	events      event.Recorder
	nowMs       int64
	thawTask    int
	barrierTask int
}

// NewGame creates a game in the prepare phase. commander may be nil.
func NewGame(balance *config.Balance, commander *defs.Commander, rng *utils.PRNGService) *Game {
	if balance == nil {
		balance = config.DefaultBalance()
	}
	g := &Game{
		Balance:         balance,
		Track:           gridmap.NewTrack(config.MapSize),
		Rng:             rng,
		EventDispatcher: event.NewDispatcher(),
		Scheduler:       NewScheduler(),
		commander:       commander,
	}
	g.build()

	// The reward system is rebuilt on reset, so subscribe through the game.
	g.EventDispatcher.Subscribe(event.ListenerFunc(func(e event.Event) {
		g.RewardSystem.OnEvent(e)
	}), event.EnemyKilled, event.WaveClear)

	return g
}

func (g *Game) build() {
	w := entity.NewWorld(g.Balance, g.commander)
	g.World = w
	g.VisualEffectSystem = system.NewVisualEffectSystem(w)
	g.HitSystem = system.NewHitSystem(w, g.Rng, &g.events)
	g.SpawnSystem = system.NewSpawnSystem(w, g.Balance, g.Track, g.Rng)
	g.WaveSystem = system.NewWaveSystem(w, g.Balance, g.SpawnSystem, g.Rng, &g.events)
	g.BossSystem = system.NewBossSystem(w, g.Balance, g.Track, g.Rng)
	g.MovementSystem = system.NewMovementSystem(w, g.Track)
	g.CombatSystem = system.NewCombatSystem(w, g.Balance, g.Track, g.Rng, &g.events)
	g.CleanupSystem = system.NewCleanupSystem(w, g.Balance, &g.events)
	g.RewardSystem = system.NewRewardSystem(w, g.Balance)
}

// Reset starts a fresh world. Pending hits live in the old world and are
// dropped with it; scheduled reversals are cleared.
func (g *Game) Reset() {
	pending := g.Scheduler.Len()
	g.Scheduler.Clear()
	g.events.Drain()
	g.build()
	slog.Debug("game reset", "commander", g.CommanderID(), "dropped_tasks", pending)
}

// SetCommander changes the commander used from the next Reset on.
func (g *Game) SetCommander(c *defs.Commander) {
	g.commander = c
}

func (g *Game) CommanderID() string {
	if g.commander == nil {
		return ""
	}
	return g.commander.ID
}

// Now returns the clock value of the latest Advance.
func (g *Game) Now() int64 {
	return g.nowMs
}

// Advance moves the simulation forward by elapsedMs, with nowMs the current
// external clock. elapsedMs is expected to be clamped by the caller. It
// returns the events of the step in order, after dispatching them.
func (g *Game) Advance(elapsedMs float64, nowMs int64) []event.Event {
	g.nowMs = nowMs
	g.Scheduler.Run(nowMs)
	if !g.World.Phase.Terminal() {
		g.tick(elapsedMs, nowMs)
	}
	return g.flush()
}

func (g *Game) tick(dt float64, now int64) {
	g.VisualEffectSystem.Update(now)
	g.HitSystem.Update(now)
	g.WaveSystem.Update(dt)
	g.SpawnSystem.Update(dt)
	g.WaveSystem.CheckQuota()
	g.BossSystem.Update(dt)
	g.MovementSystem.Update(dt)
	if g.WaveSystem.CheckGameOver() {
		return
	}
	g.CombatSystem.Update(dt, now)
	g.CleanupSystem.Update(now)
}

func (g *Game) flush() []event.Event {
	events := g.events.Drain()
	g.EventDispatcher.DispatchAll(events)
	return events
}
