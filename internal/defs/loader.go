// internal/defs/loader.go
package defs

import (
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
)

//go:embed data/*.json
var dataFS embed.FS

// CommanderLibrary holds all commander definitions, keyed by their ID.
var CommanderLibrary map[string]Commander

// CommanderOrder lists commander IDs in definition order.
var CommanderOrder []string

// SpellLibrary holds all spell definitions, keyed by type.
var SpellLibrary map[SpellType]SpellDefinition

// SpellOrder lists spell types in definition order, for uniform draws.
var SpellOrder []SpellType

// GambleTable is the weighted reward table for a gamble.
var GambleTable []GambleEntry

func init() {
	if err := load(); err != nil {
		panic(err)
	}
}

func load() error {
	var commanders []Commander
	if err := readJSON("data/commanders.json", &commanders); err != nil {
		return err
	}
	CommanderLibrary = make(map[string]Commander, len(commanders))
	CommanderOrder = CommanderOrder[:0]
	for _, c := range commanders {
		CommanderLibrary[c.ID] = c
		CommanderOrder = append(CommanderOrder, c.ID)
	}
	if _, ok := CommanderLibrary[DefaultCommanderID]; !ok {
		return fmt.Errorf("default commander %q is not defined", DefaultCommanderID)
	}

	var spells []SpellDefinition
	if err := readJSON("data/spells.json", &spells); err != nil {
		return err
	}
	SpellLibrary = make(map[SpellType]SpellDefinition, len(spells))
	SpellOrder = SpellOrder[:0]
	for _, s := range spells {
		SpellLibrary[s.Type] = s
		SpellOrder = append(SpellOrder, s.Type)
	}

	if err := readJSON("data/gamble.json", &GambleTable); err != nil {
		return err
	}

	slog.Debug("definitions loaded",
		"commanders", len(CommanderLibrary),
		"spells", len(SpellLibrary),
		"gamble_entries", len(GambleTable))
	return nil
}

func readJSON(path string, v any) error {
	data, err := dataFS.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", path, err)
	}
	return nil
}

// LookupCommander returns a copy of the commander definition, or nil.
func LookupCommander(id string) *Commander {
	c, ok := CommanderLibrary[id]
	if !ok {
		return nil
	}
	return &c
}
