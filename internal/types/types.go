// internal/types/types.go
package types

import "strconv"

// EntityID identifies a unit or an enemy within one world. Zero means none.
type EntityID uint64

func (id EntityID) String() string {
	return "#" + strconv.FormatUint(uint64(id), 10)
}
