// internal/termview/commands.go
package termview

import (
	"github.com/gdamore/tcell/v2"

	"go-wave-defense/internal/component"
)

// Command is one player action read from the keyboard.
type Command int

const (
	CmdNone Command = iota
	CmdUp
	CmdDown
	CmdLeft
	CmdRight
	CmdSummon
	CmdSelect
	CmdMerge
	CmdSell
	CmdUpgradeSingle
	CmdUpgradeArea
	CmdUpgradePenetrating
	CmdUpgradeGold
	CmdGamble
	CmdDrawSpell
	CmdCastSpell
	CmdCycleCommander
	CmdRecruit
	CmdPause
	CmdRestart
	CmdQuit
)

var runeCommands = map[rune]Command{
	's': CmdSummon,
	' ': CmdSelect,
	'm': CmdMerge,
	'x': CmdSell,
	'1': CmdUpgradeSingle,
	'2': CmdUpgradeArea,
	'3': CmdUpgradePenetrating,
	'4': CmdUpgradeGold,
	'g': CmdGamble,
	'd': CmdDrawSpell,
	'c': CmdCastSpell,
	'k': CmdCycleCommander,
	'n': CmdRecruit,
	'p': CmdPause,
	'r': CmdRestart,
	'q': CmdQuit,
}

var upgradeCommands = map[Command]component.UpgradeKind{
	CmdUpgradeSingle:      component.UpgradeSingle,
	CmdUpgradeArea:        component.UpgradeArea,
	CmdUpgradePenetrating: component.UpgradePenetrating,
	CmdUpgradeGold:        component.UpgradeGoldBonus,
}

// CommandFor maps a key event to a command.
func CommandFor(ev *tcell.EventKey) Command {
	switch ev.Key() {
	case tcell.KeyUp:
		return CmdUp
	case tcell.KeyDown:
		return CmdDown
	case tcell.KeyLeft:
		return CmdLeft
	case tcell.KeyRight:
		return CmdRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return CmdQuit
	case tcell.KeyRune:
		return CommandForRune(ev.Rune())
	}
	return CmdNone
}

// CommandForRune maps a typed character to a command.
func CommandForRune(r rune) Command {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	return runeCommands[r]
}
