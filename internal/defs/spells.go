package defs

// SpellType is the effect kind a spell applies when cast.
type SpellType string

const (
	SpellMeteor    SpellType = "meteor"
	SpellFreeze    SpellType = "freeze"
	SpellHeal      SpellType = "heal"
	SpellLightning SpellType = "lightning"
	SpellBarrier   SpellType = "barrier"
)

// SpellDefinition holds the static data for a spell kind. Damage doubles as
// the heal amount for SpellHeal.
type SpellDefinition struct {
	Type        SpellType `json:"type"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Damage      int       `json:"damage,omitempty"`
	DurationMs  int64     `json:"duration_ms,omitempty"`
	Radius      float64   `json:"radius,omitempty"`
	Targets     int       `json:"targets,omitempty"`
}

// GambleRewardKind is what a gamble roll pays out.
type GambleRewardKind string

const (
	RewardGold  GambleRewardKind = "gold"
	RewardSpell GambleRewardKind = "spell"
)

// GambleEntry is one weighted row of the gamble table.
type GambleEntry struct {
	Weight float64          `json:"weight"`
	Kind   GambleRewardKind `json:"kind"`
	Value  int              `json:"value"`
	Label  string           `json:"label"`
}
