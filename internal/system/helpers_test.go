package system

import (
	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/entity"
	"go-wave-defense/internal/event"
	"go-wave-defense/internal/types"
	"go-wave-defense/internal/utils"
	"go-wave-defense/pkg/gridmap"
)

type fixture struct {
	world   *entity.World
	balance *config.Balance
	track   *gridmap.Track
	rng     *utils.PRNGService
	events  *event.Recorder
}

func newFixture() *fixture {
	b := config.DefaultBalance()
	return &fixture{
		world:   entity.NewWorld(b, nil),
		balance: b,
		track:   gridmap.NewTrack(config.MapSize),
		rng:     utils.NewPRNGService(7),
		events:  &event.Recorder{},
	}
}

func (f *fixture) addUnit(a defs.Archetype, g defs.Grade, at gridmap.Point) *component.Unit {
	stats := defs.StatsFor(a, g)
	u := &component.Unit{
		ID:        f.world.NewEntity(),
		Archetype: a,
		Grade:     g,
		Stats:     stats,
		Pos:       at,
		HP:        stats.HP,
		MaxHP:     stats.HP,
	}
	f.world.Units = append(f.world.Units, u)
	return u
}

func (f *fixture) addEnemy(t defs.EnemyType, hp int, at gridmap.Point) *component.Enemy {
	e := &component.Enemy{
		ID:    f.world.NewEntity(),
		Type:  t,
		MaxHP: hp,
		HP:    hp,
		Speed: 1,
		Pos:   at,
	}
	f.world.Enemies = append(f.world.Enemies, e)
	return e
}

func countEvents(events []event.Event, t event.EventType) int {
	n := 0
	for _, e := range events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func attackDamageTo(events []event.Event, id types.EntityID) int {
	total := 0
	for _, e := range events {
		if d, ok := e.Data.(event.UnitAttackData); ok && d.EnemyID == id {
			total += d.Damage
		}
	}
	return total
}
