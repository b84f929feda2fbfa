// internal/app/economy.go
package app

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/google/uuid"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/event"
	"go-wave-defense/internal/system"
	"go-wave-defense/internal/types"
	"go-wave-defense/internal/utils"
	"go-wave-defense/pkg/gridmap"
)

var (
	ErrSessionEnded     = errors.New("session has ended")
	ErrInsufficientGold = errors.New("insufficient gold")
	ErrInvalidPosition  = errors.New("position is outside the buildable area")
	ErrNoFreeCell       = errors.New("no free cell to place a unit")
	ErrUnitNotFound     = errors.New("unit not found")
	ErrAlreadyPlaced    = errors.New("unit is already placed")
	ErrMergeGroup       = errors.New("merge needs three distinct units")
	ErrMergeMismatch    = errors.New("merge units must share archetype and grade")
	ErrMaxGrade         = errors.New("grade S units cannot be merged")
	ErrUnknownUpgrade   = errors.New("unknown upgrade")
	ErrSpellNotFound    = errors.New("spell not owned")
)

// MergeOutcome is the result of a merge roll.
type MergeOutcome int

const (
	MergeSuccess MergeOutcome = iota
	MergeFail
	MergeDestroy
)

func (m MergeOutcome) String() string {
	switch m {
	case MergeSuccess:
		return "success"
	case MergeFail:
		return "fail"
	case MergeDestroy:
		return "destroy"
	}
	return fmt.Sprintf("merge_outcome(%d)", int(m))
}

func (g *Game) checkActive() error {
	if g.World.Phase.Terminal() {
		return ErrSessionEnded
	}
	return nil
}

func (g *Game) spend(cost int) error {
	if g.World.Gold < cost {
		return fmt.Errorf("%w: need %d, have %d", ErrInsufficientGold, cost, g.World.Gold)
	}
	g.World.Gold -= cost
	return nil
}

// newUnit builds a unit with derived stats. The shield commander raises hp.
func (g *Game) newUnit(a defs.Archetype, grade defs.Grade) *component.Unit {
	stats := defs.StatsFor(a, grade)
	if c := g.World.Commander; c.Has(defs.CommanderShield) {
		stats.HP = int(math.Floor(float64(stats.HP) * (1 + c.Fraction())))
	}
	return &component.Unit{
		ID:        g.World.NewEntity(),
		Archetype: a,
		Grade:     grade,
		Stats:     stats,
		HP:        stats.HP,
		MaxHP:     stats.HP,
	}
}

// Summon buys a random unit. The unit is not on the board until placed.
func (g *Game) Summon() (*component.Unit, error) {
	if err := g.checkActive(); err != nil {
		return nil, err
	}
	if err := g.spend(g.Balance.Economy.SummonCost); err != nil {
		return nil, err
	}
	a := utils.Pick(g.Rng, defs.AllArchetypes)
	grade := defs.Grade(g.Rng.ChooseWeighted(defs.SummonGradeWeights))
	u := g.newUnit(a, grade)
	g.events.Emit(event.UnitSummoned, event.UnitSummonedData{UnitID: u.ID, Grade: grade})
	g.flush()
	return u, nil
}

// Place puts a summoned unit on the board.
func (g *Game) Place(u *component.Unit, pos gridmap.Point) error {
	if u == nil {
		return ErrUnitNotFound
	}
	if g.World.Unit(u.ID) != nil {
		return ErrAlreadyPlaced
	}
	if !g.Track.InInner(pos) {
		return fmt.Errorf("%w: (%.2f, %.2f)", ErrInvalidPosition, pos.X, pos.Y)
	}
	u.Pos = pos
	g.World.Units = append(g.World.Units, u)
	return nil
}

// SummonAndPlace summons a unit onto a random free inner cell.
func (g *Game) SummonAndPlace() (*component.Unit, error) {
	if err := g.checkActive(); err != nil {
		return nil, err
	}
	cell, ok := g.freeCell()
	if !ok {
		return nil, ErrNoFreeCell
	}
	u, err := g.Summon()
	if err != nil {
		return nil, err
	}
	if err := g.Place(u, cell.Center()); err != nil {
		return nil, err
	}
	return u, nil
}

func (g *Game) freeCell() (gridmap.Cell, bool) {
	var free []gridmap.Cell
	for _, c := range g.Track.InnerCells() {
		occupied := false
		for _, u := range g.World.Units {
			if gridmap.Distance(c.Center(), u.Pos) < 0.5 {
				occupied = true
				break
			}
		}
		if !occupied {
			free = append(free, c)
		}
	}
	if len(free) == 0 {
		return gridmap.Cell{}, false
	}
	return utils.Pick(g.Rng, free), true
}

// Sell removes a unit and refunds its grade's fixed price.
func (g *Game) Sell(id types.EntityID) (int, error) {
	if err := g.checkActive(); err != nil {
		return 0, err
	}
	u := g.World.Unit(id)
	if u == nil {
		return 0, fmt.Errorf("%w: %s", ErrUnitNotFound, id)
	}
	refund := defs.GradeSellPrice[u.Grade]
	g.World.RemoveUnits(id)
	g.World.Gold += refund
	return refund, nil
}

// Merge combines three units of the same archetype and grade. The cost is
// paid whatever the roll: success replaces them with one unit a grade higher
// at the first unit's position, fail keeps them and destroy removes them.
func (g *Game) Merge(ids [3]types.EntityID) (MergeOutcome, *component.Unit, error) {
	if err := g.checkActive(); err != nil {
		return 0, nil, err
	}
	if ids[0] == ids[1] || ids[0] == ids[2] || ids[1] == ids[2] {
		return 0, nil, ErrMergeGroup
	}
	var units [3]*component.Unit
	for i, id := range ids {
		if units[i] = g.World.Unit(id); units[i] == nil {
			return 0, nil, fmt.Errorf("%w: %s", ErrUnitNotFound, id)
		}
	}
	first := units[0]
	for _, u := range units[1:] {
		if u.Archetype != first.Archetype || u.Grade != first.Grade {
			return 0, nil, ErrMergeMismatch
		}
	}
	next, ok := first.Grade.Next()
	if !ok {
		return 0, nil, ErrMaxGrade
	}
	if err := g.spend(defs.GradeMergeCost[first.Grade]); err != nil {
		return 0, nil, err
	}

	eco := g.Balance.Economy
	roll := g.Rng.Float64()
	var (
		outcome MergeOutcome
		result  *component.Unit
	)
	switch {
	case roll < eco.MergeSuccessRate:
		outcome = MergeSuccess
		result = g.newUnit(first.Archetype, next)
		result.Pos = first.Pos
		g.World.RemoveUnits(ids[:]...)
		g.World.Units = append(g.World.Units, result)
	case roll < eco.MergeSuccessRate+eco.MergeFailRate:
		outcome = MergeFail
	default:
		outcome = MergeDestroy
		g.World.RemoveUnits(ids[:]...)
	}

	g.events.Emit(event.MergeResolved, event.MergeData{Outcome: outcome.String(), Grade: first.Grade})
	g.flush()
	return outcome, result, nil
}

// UpgradeCost is the price of the next level: base × 2^level.
func UpgradeCost(b *config.Balance, level int) int {
	return b.Economy.UpgradeBaseCost << level
}

// Upgrade buys the next level of an upgrade track and returns the new level.
func (g *Game) Upgrade(kind component.UpgradeKind) (int, error) {
	if err := g.checkActive(); err != nil {
		return 0, err
	}
	if !slices.Contains(component.AllUpgradeKinds, kind) {
		return 0, fmt.Errorf("%w: %q", ErrUnknownUpgrade, kind)
	}
	level := g.World.Upgrades.Level(kind)
	if err := g.spend(UpgradeCost(g.Balance, level)); err != nil {
		return 0, err
	}
	if err := g.World.Upgrades.Increment(kind); err != nil {
		return 0, err
	}
	return level + 1, nil
}

// Gamble pays for a roll on the gamble table and applies the reward.
func (g *Game) Gamble() (defs.GambleEntry, error) {
	if err := g.checkActive(); err != nil {
		return defs.GambleEntry{}, err
	}
	if err := g.spend(g.Balance.Economy.GambleCost); err != nil {
		return defs.GambleEntry{}, err
	}
	weights := make([]float64, len(defs.GambleTable))
	for i, e := range defs.GambleTable {
		weights[i] = e.Weight
	}
	entry := defs.GambleTable[g.Rng.ChooseWeighted(weights)]
	switch entry.Kind {
	case defs.RewardGold:
		g.World.Gold += entry.Value
	case defs.RewardSpell:
		for i := 0; i < entry.Value; i++ {
			g.grantSpell()
		}
	}
	return entry, nil
}

// DrawSpell buys a uniformly random spell.
func (g *Game) DrawSpell() (component.Spell, error) {
	if err := g.checkActive(); err != nil {
		return component.Spell{}, err
	}
	if err := g.spend(g.Balance.Economy.SpellDrawCost); err != nil {
		return component.Spell{}, err
	}
	return g.grantSpell(), nil
}

func (g *Game) grantSpell() component.Spell {
	id, err := uuid.NewRandomFromReader(g.Rng)
	if err != nil {
		id = uuid.New()
	}
	s := component.Spell{ID: id.String(), Type: utils.Pick(g.Rng, defs.SpellOrder)}
	g.World.Spells = append(g.World.Spells, s)
	return s
}

// CastSpell consumes an owned spell. target is used by meteor only. Enemies
// killed by the spell are removed at once and announced.
func (g *Game) CastSpell(id string, target gridmap.Point) ([]event.Event, error) {
	if err := g.checkActive(); err != nil {
		return nil, err
	}
	spell, ok := g.World.TakeSpell(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSpellNotFound, id)
	}
	def := defs.SpellLibrary[spell.Type]
	now := g.nowMs
	w := g.World

	switch spell.Type {
	case defs.SpellMeteor:
		for _, e := range w.Enemies {
			if e.Alive() && gridmap.Distance(target, e.Pos) <= def.Radius {
				g.spellHit(e, def.Damage, now)
			}
		}
		w.AddEffect(component.Effect{
			Kind: component.EffectMeteor, From: target, To: target, Color: config.DamageColor,
			CreatedAtMs: now, DurationMs: 600, Scale: def.Radius,
		})

	case defs.SpellLightning:
		var live []*component.Enemy
		for _, e := range w.Enemies {
			if e.Alive() {
				live = append(live, e)
			}
		}
		for i := 0; i < def.Targets && i < len(live); i++ {
			j := i + g.Rng.Intn(len(live)-i)
			live[i], live[j] = live[j], live[i]
			g.spellHit(live[i], def.Damage, now)
			w.AddEffect(component.Effect{
				Kind: component.EffectLightning, From: live[i].Pos.Add(gridmap.Point{Y: -3}), To: live[i].Pos,
				Color: config.LightningColor, CreatedAtMs: now, DurationMs: 300, Scale: 1,
			})
		}

	case defs.SpellHeal:
		for _, u := range w.Units {
			u.HP = min(u.MaxHP, u.HP+def.Damage)
			w.AddEffect(component.Effect{
				Kind: component.EffectHeal, From: u.Pos, To: u.Pos, Color: config.HealColor,
				CreatedAtMs: now, DurationMs: 500, Scale: 1,
			})
		}

	case defs.SpellFreeze:
		w.EnemySpeedScale = 0
		w.FreezeUntilMs = now + def.DurationMs
		g.Scheduler.Cancel(g.thawTask)
		g.thawTask = g.Scheduler.At(w.FreezeUntilMs, g.thaw)

	case defs.SpellBarrier:
		w.Barrier = true
		w.BarrierUntilMs = now + def.DurationMs
		g.Scheduler.Cancel(g.barrierTask)
		g.barrierTask = g.Scheduler.At(w.BarrierUntilMs, g.dropBarrier)
	}

	g.events.Emit(event.SpellCast, event.SpellCastData{Spell: spell.Type})
	g.CleanupSystem.Update(now)
	return g.flush(), nil
}

func (g *Game) spellHit(e *component.Enemy, dmg int, now int64) {
	system.ApplyDamage(e, dmg)
	g.World.AddEffect(component.Effect{
		Kind: component.EffectText, From: e.Pos, To: e.Pos.Add(gridmap.Point{Y: -1.2}),
		Color: config.DamageColor, CreatedAtMs: now, DurationMs: 600, Scale: 1.2,
		Text: fmt.Sprint(dmg),
	})
}

// thaw ends a freeze unless a later freeze extended it.
func (g *Game) thaw(nowMs int64) {
	if nowMs >= g.World.FreezeUntilMs {
		g.World.EnemySpeedScale = 1
	}
}

func (g *Game) dropBarrier(nowMs int64) {
	if nowMs >= g.World.BarrierUntilMs {
		g.World.Barrier = false
	}
}
