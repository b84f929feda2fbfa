// internal/event/types.go
package event

import (
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/types"
	"go-wave-defense/pkg/gridmap"
)

const (
	EnemyKilled EventType = "enemy_killed"
	GameOver    EventType = "game_over"
	Victory     EventType = "victory"
	WaveClear   EventType = "wave_clear"
	WaveStart   EventType = "wave_start"
	BossSpawn   EventType = "boss_spawn"
	UnitAttack  EventType = "unit_attack"

	// Emitted by economy actions, not by the tick.
	SpellCast     EventType = "spell_cast"
	MergeResolved EventType = "merge_resolved"
	UnitSummoned  EventType = "unit_summoned"
)

// TickEvents are the types the tick can emit.
var TickEvents = []EventType{EnemyKilled, GameOver, Victory, WaveClear, WaveStart, BossSpawn, UnitAttack}

// AllEvents lists every event type.
var AllEvents = append(append([]EventType{}, TickEvents...), SpellCast, MergeResolved, UnitSummoned)

type EnemyKilledData struct {
	EnemyID types.EntityID
	Boss    bool
	Pos     gridmap.Point
}

type WaveData struct {
	Wave int
}

type BossSpawnData struct {
	EnemyID types.EntityID
	Ability defs.BossAbility
}

type UnitAttackData struct {
	UnitID  types.EntityID
	EnemyID types.EntityID
	Damage  int
	Crit    bool
}

type SpellCastData struct {
	Spell defs.SpellType
}

type MergeData struct {
	Outcome string
	Grade   defs.Grade
}

type UnitSummonedData struct {
	UnitID types.EntityID
	Grade  defs.Grade
}
