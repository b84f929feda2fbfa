// internal/sim/bot.go
package sim

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go-wave-defense/internal/app"
	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/save"
	"go-wave-defense/internal/types"
	"go-wave-defense/internal/utils"
)

// Policy tunes the scripted player.
type Policy struct {
	// SpellPressure is the live enemy fraction of MaxEnemies at which the bot
	// casts its spells.
	SpellPressure float64 `yaml:"spell_pressure"`
	// DrawSpells lets the bot buy spells once the board is full.
	DrawSpells bool `yaml:"draw_spells"`
}

func DefaultPolicy() Policy {
	return Policy{SpellPressure: 0.6, DrawSpells: true}
}

// Result summarises one simulated game.
type Result struct {
	Seed       int64           `yaml:"seed"`
	Phase      component.Phase `yaml:"phase"`
	Wave       int             `yaml:"wave"`
	Score      int             `yaml:"score"`
	Kills      int             `yaml:"kills"`
	GoldEarned int             `yaml:"gold_earned"`
	Units      int             `yaml:"units"`
	Merges     int             `yaml:"merges"`
	Spells     int             `yaml:"spells_cast"`
	ElapsedMs  int64           `yaml:"elapsed_ms"`
	NewHigh    bool            `yaml:"new_high"`
}

// Options controls a simulated run.
type Options struct {
	Seed    int64
	StepMs  int64
	LimitMs int64
	Policy  Policy
}

type bot struct {
	game   *app.Game
	policy Policy
	merges int
	spells int
}

// Play runs one game to its end or to the time limit, with a scripted player
// acting after every step. The result is recorded through a session backed by
// store.
func Play(ctx context.Context, store save.Store, balance *config.Balance, opts Options) (Result, error) {
	if opts.StepMs <= 0 {
		return Result{}, fmt.Errorf("step must be positive, got %d", opts.StepMs)
	}
	session, err := app.NewSession(ctx, store, balance, utils.NewPRNGService(opts.Seed))
	if err != nil {
		return Result{}, err
	}
	b := &bot{game: session.Game, policy: opts.Policy}
	g := session.Game

	var now int64
	for steps := 0; !g.World.Phase.Terminal() && now < opts.LimitMs; steps++ {
		if steps%1000 == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}
		now += opts.StepMs
		g.Advance(float64(opts.StepMs), now)
		b.act()
	}

	newHigh, err := session.Finish(ctx)
	if err != nil {
		return Result{}, err
	}
	w := g.World
	res := Result{
		Seed:       opts.Seed,
		Phase:      w.Phase,
		Wave:       w.Wave,
		Score:      w.Score,
		Kills:      w.Kills,
		GoldEarned: w.GoldEarned,
		Units:      len(w.Units),
		Merges:     b.merges,
		Spells:     b.spells,
		ElapsedMs:  now,
		NewHigh:    newHigh,
	}
	slog.DebugContext(ctx, "simulated game", "seed", res.Seed, "phase", res.Phase, "wave", res.Wave, "score", res.Score)
	return res, nil
}

func (b *bot) act() {
	w := b.game.World
	if w.Phase.Terminal() {
		return
	}
	b.castSpells()
	b.merge()

	eco := b.game.Balance.Economy
	for w.Gold >= eco.SummonCost {
		if _, err := b.game.SummonAndPlace(); err != nil {
			if errors.Is(err, app.ErrNoFreeCell) {
				b.spend()
			}
			return
		}
	}
}

func (b *bot) castSpells() {
	w := b.game.World
	limit := b.policy.SpellPressure * float64(b.game.Balance.MaxEnemies)
	if len(w.Spells) == 0 || len(w.Enemies) == 0 || float64(w.LiveEnemyCount()) < limit {
		return
	}
	target := w.Enemies[0].Pos
	if boss := w.Boss(); boss != nil {
		target = boss.Pos
	}
	if _, err := b.game.CastSpell(w.Spells[0].ID, target); err == nil {
		b.spells++
	}
}

// merge merges the first archetype and grade that has three units on the
// board.
func (b *bot) merge() {
	type key struct {
		a defs.Archetype
		g defs.Grade
	}
	groups := make(map[key][]types.EntityID)
	for _, u := range b.game.World.Units {
		if u.Grade == defs.GradeS {
			continue
		}
		k := key{u.Archetype, u.Grade}
		groups[k] = append(groups[k], u.ID)
		if ids := groups[k]; len(ids) == app.MergeGroupSize {
			if _, _, err := b.game.Merge([app.MergeGroupSize]types.EntityID(ids)); err == nil {
				b.merges++
			}
			return
		}
	}
}

// spend buys the cheapest upgrade, or a spell, once the board is full.
func (b *bot) spend() {
	g := b.game
	var cheapest component.UpgradeKind
	best := -1
	for _, k := range component.AllUpgradeKinds {
		cost := app.UpgradeCost(g.Balance, g.World.Upgrades.Level(k))
		if best < 0 || cost < best {
			cheapest, best = k, cost
		}
	}
	if best >= 0 && g.World.Gold >= best {
		g.Upgrade(cheapest)
		return
	}
	if b.policy.DrawSpells && g.World.Gold >= g.Balance.Economy.SpellDrawCost {
		g.DrawSpell()
	}
}
