// internal/component/hit.go
package component

import (
	"go-wave-defense/internal/types"
	"go-wave-defense/pkg/gridmap"
)

// Hit is one damage application against an enemy.
type Hit struct {
	EnemyID types.EntityID
	Damage  int
	Crit    bool
}

// Splash describes an area blast. Membership and damage are worked out when
// the hit lands, around the target's live position, or Center if the target
// is already gone.
type Splash struct {
	TargetID     types.EntityID
	Center       gridmap.Point
	Radius       float64
	Attacker     Attacker
	UpgradeLevel int
	Multiplier   float64
	Crit         bool
}

// PendingHit is damage in flight. Effects are stamped with the delivery time.
type PendingHit struct {
	DeliverAtMs int64
	UnitID      types.EntityID
	Hits        []Hit
	Splash      *Splash
	Effects     []Effect
}

// Due reports whether the hit should land at nowMs.
func (p *PendingHit) Due(nowMs int64) bool {
	return nowMs >= p.DeliverAtMs
}
