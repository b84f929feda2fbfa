// internal/component/game_state.go
package component

import (
	"fmt"

	"go-wave-defense/internal/defs"
)

// Phase is the top-level state of a session.
type Phase string

const (
	PhasePrepare   Phase = "prepare"
	PhaseBattle    Phase = "battle"
	PhaseWaveClear Phase = "wave_clear"
	PhaseVictory   Phase = "victory"
	PhaseGameOver  Phase = "game_over"
)

// Terminal reports whether no further ticks change the world.
func (p Phase) Terminal() bool {
	return p == PhaseVictory || p == PhaseGameOver
}

// UpgradeKind names one of the purchasable upgrade tracks.
type UpgradeKind string

const (
	UpgradeSingle      UpgradeKind = "single_attack"
	UpgradeArea        UpgradeKind = "area_attack"
	UpgradePenetrating UpgradeKind = "penetrating_attack"
	UpgradeGoldBonus   UpgradeKind = "gold_bonus"
)

var AllUpgradeKinds = []UpgradeKind{UpgradeSingle, UpgradeArea, UpgradePenetrating, UpgradeGoldBonus}

// Upgrades holds the purchased level of every track.
type Upgrades struct {
	Single      int
	Area        int
	Penetrating int
	GoldBonus   int
}

func (u *Upgrades) level(k UpgradeKind) (*int, error) {
	switch k {
	case UpgradeSingle:
		return &u.Single, nil
	case UpgradeArea:
		return &u.Area, nil
	case UpgradePenetrating:
		return &u.Penetrating, nil
	case UpgradeGoldBonus:
		return &u.GoldBonus, nil
	}
	return nil, fmt.Errorf("unknown upgrade kind %q", k)
}

// Level returns the current level of k, or 0 for an unknown kind.
func (u *Upgrades) Level(k UpgradeKind) int {
	p, err := u.level(k)
	if err != nil {
		return 0
	}
	return *p
}

// Increment raises k by one level.
func (u *Upgrades) Increment(k UpgradeKind) error {
	p, err := u.level(k)
	if err != nil {
		return err
	}
	*p++
	return nil
}

// AttackLevel returns the attack upgrade level that applies to an archetype.
func (u *Upgrades) AttackLevel(a defs.Archetype) int {
	switch a {
	case defs.ArchetypeSingle:
		return u.Single
	case defs.ArchetypeArea:
		return u.Area
	case defs.ArchetypePenetrating:
		return u.Penetrating
	}
	return 0
}

// Spell is an owned, not yet cast, spell instance.
type Spell struct {
	ID   string
	Type defs.SpellType
}
