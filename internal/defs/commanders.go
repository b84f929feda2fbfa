package defs

// CommanderAbility is the passive a commander grants for a whole session.
type CommanderAbility string

const (
	CommanderGoldBoost CommanderAbility = "gold_boost"
	CommanderBerserk   CommanderAbility = "berserk"
	CommanderSlowAura  CommanderAbility = "slow_aura"
	CommanderShield    CommanderAbility = "shield"
	CommanderCritBoost CommanderAbility = "crit_boost"
)

// Commander holds the static data of a commander. AbilityValue is a percentage.
type Commander struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	Ability      CommanderAbility `json:"ability"`
	AbilityValue float64          `json:"ability_value"`
	Rarity       Grade            `json:"rarity"`
}

// Fraction returns AbilityValue as a fraction (30 -> 0.3).
func (c *Commander) Fraction() float64 {
	return c.AbilityValue / 100
}

// Has reports whether c is non-nil and grants ability a.
func (c *Commander) Has(a CommanderAbility) bool {
	return c != nil && c.Ability == a
}

// DefaultCommanderID is granted to every fresh save.
const DefaultCommanderID = "cmd_gold"
