// internal/save/save.go
package save

//go:generate go tool mockgen -destination=./mocks/store_mock.go -package=mocks . Store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"go-wave-defense/internal/defs"
)

// ErrMalformed marks a stored blob that could not be decoded.
var ErrMalformed = errors.New("malformed save record")

// Record is the single persisted save blob.
type Record struct {
	Roster            []string `json:"roster"`
	SelectedCommander string   `json:"selected_commander"`
	HighScore         int      `json:"high_score"`
	TotalGold         int      `json:"total_gold"`
}

// DefaultRecord is used for a first start and whenever the stored blob is
// unreadable.
func DefaultRecord() Record {
	return Record{
		Roster:            []string{defs.DefaultCommanderID},
		SelectedCommander: defs.DefaultCommanderID,
	}
}

// Owns reports whether the roster contains the commander.
func (r *Record) Owns(id string) bool {
	return slices.Contains(r.Roster, id)
}

// Store persists the save record.
type Store interface {
	Load(ctx context.Context) (Record, error)
	Save(ctx context.Context, r Record) error
	Close() error
}

// Encode serialises a record.
func Encode(r Record) ([]byte, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal save record: %w", err)
	}
	return b, nil
}

// Decode parses a record and normalises it: unknown commanders are dropped
// from the roster and an invalid selection falls back to the default.
func Decode(data []byte) (Record, error) {
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	roster := r.Roster[:0]
	for _, id := range r.Roster {
		if _, ok := defs.CommanderLibrary[id]; ok && !slices.Contains(roster, id) {
			roster = append(roster, id)
		}
	}
	r.Roster = roster
	if !r.Owns(defs.DefaultCommanderID) {
		r.Roster = append([]string{defs.DefaultCommanderID}, r.Roster...)
	}
	if !r.Owns(r.SelectedCommander) {
		r.SelectedCommander = defs.DefaultCommanderID
	}
	if r.HighScore < 0 {
		r.HighScore = 0
	}
	if r.TotalGold < 0 {
		r.TotalGold = 0
	}
	return r, nil
}
