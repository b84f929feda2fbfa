package defs

const (
	MatchupStrong  = 1.5
	MatchupWeak    = 0.5
	MatchupNeutral = 1.0
)

// matchups is the rock-paper-scissors table keyed by defender type.
// Pairs missing from a row are neutral.
var matchups = map[EnemyType]map[Archetype]float64{
	EnemyTypeA: {ArchetypePenetrating: MatchupStrong, ArchetypeSingle: MatchupWeak},
	EnemyTypeB: {ArchetypeArea: MatchupStrong, ArchetypePenetrating: MatchupWeak},
	EnemyTypeC: {ArchetypeSingle: MatchupStrong, ArchetypeArea: MatchupWeak},
}

// Matchup returns the damage multiplier of archetype a against type t.
func Matchup(a Archetype, t EnemyType) float64 {
	if m, ok := matchups[t][a]; ok {
		return m
	}
	return MatchupNeutral
}
