// internal/defs/types.go
package defs

import "fmt"

// Archetype is the attack style of an allied unit.
type Archetype int

const (
	ArchetypeSingle Archetype = iota
	ArchetypeArea
	ArchetypePenetrating
)

var AllArchetypes = []Archetype{ArchetypeSingle, ArchetypeArea, ArchetypePenetrating}

func (a Archetype) String() string {
	switch a {
	case ArchetypeSingle:
		return "single"
	case ArchetypeArea:
		return "area"
	case ArchetypePenetrating:
		return "penetrating"
	default:
		return fmt.Sprintf("archetype(%d)", int(a))
	}
}

// Grade is the power tier of a unit, F (weakest) through S.
type Grade int

const (
	GradeF Grade = iota
	GradeE
	GradeD
	GradeC
	GradeB
	GradeA
	GradeS
)

var AllGrades = []Grade{GradeF, GradeE, GradeD, GradeC, GradeB, GradeA, GradeS}

const gradeLetters = "FEDCBAS"

func (g Grade) String() string {
	if g < GradeF || g > GradeS {
		return fmt.Sprintf("grade(%d)", int(g))
	}
	return string(gradeLetters[g])
}

// Next returns the grade a successful merge produces. ok is false for S.
func (g Grade) Next() (Grade, bool) {
	if g >= GradeS {
		return g, false
	}
	return g + 1, true
}

func (g Grade) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

func (g *Grade) UnmarshalText(b []byte) error {
	for i := range gradeLetters {
		if string(b) == gradeLetters[i:i+1] {
			*g = Grade(i)
			return nil
		}
	}
	return fmt.Errorf("unknown grade %q", b)
}

// EnemyType drives the damage matchup. D is reserved for bosses.
type EnemyType string

const (
	EnemyTypeA EnemyType = "A"
	EnemyTypeB EnemyType = "B"
	EnemyTypeC EnemyType = "C"
	EnemyTypeD EnemyType = "D"
)

// RegularEnemyTypes are the types a wave or a type shift can pick from.
var RegularEnemyTypes = []EnemyType{EnemyTypeA, EnemyTypeB, EnemyTypeC}

// WaveEnemyTypes returns the pool a wave's regular spawns are drawn from.
func WaveEnemyTypes(wave int) []EnemyType {
	if wave <= 2 {
		return []EnemyType{EnemyTypeA, EnemyTypeB}
	}
	return RegularEnemyTypes
}
