package defs

// BossAbility selects the state machine a boss runs.
type BossAbility string

const (
	AbilityDash       BossAbility = "dash"
	AbilityShield     BossAbility = "shield"
	AbilityTypeShift  BossAbility = "type_shift"
	AbilityEnrage     BossAbility = "enrage"
	AbilityPhaseShift BossAbility = "phase_shift"
)

// DefaultBossAbility is used for boss waves without a fixed entry.
const DefaultBossAbility = AbilityDash

// BossWaveAbilities maps each scripted boss wave to its ability.
var BossWaveAbilities = map[int]BossAbility{
	10: AbilityDash,
	20: AbilityShield,
	30: AbilityTypeShift,
	40: AbilityEnrage,
	50: AbilityPhaseShift,
}

func BossAbilityForWave(wave int) BossAbility {
	if a, ok := BossWaveAbilities[wave]; ok {
		return a
	}
	return DefaultBossAbility
}
