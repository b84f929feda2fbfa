// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State is one screen of the ebiten front-end.
type State interface {
	Enter()
	Update(nowMs int64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine holds the active state.
type StateMachine struct {
	current State
}

// NewStateMachine creates a machine with no state.
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState exits the current state and enters newState.
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Current returns the active state.
func (sm *StateMachine) Current() State {
	return sm.current
}

// Update advances the current state to nowMs.
func (sm *StateMachine) Update(nowMs int64) {
	if sm.current != nil {
		sm.current.Update(nowMs)
	}
}

// Draw draws the current state.
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
