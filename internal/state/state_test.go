package state

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

type recordingState struct {
	name string
	log  *[]string
}

func (s *recordingState) Enter()             { *s.log = append(*s.log, s.name+".enter") }
func (s *recordingState) Update(nowMs int64) { *s.log = append(*s.log, s.name+".update") }
func (s *recordingState) Draw(*ebiten.Image) {}
func (s *recordingState) Exit()              { *s.log = append(*s.log, s.name+".exit") }

func TestStateMachineTransitions(t *testing.T) {
	var log []string
	a := &recordingState{name: "a", log: &log}
	b := &recordingState{name: "b", log: &log}

	sm := NewStateMachine()
	sm.Update(0)
	sm.SetState(a)
	sm.Update(16)
	sm.SetState(b)
	sm.SetState(nil)
	sm.Update(32)

	want := []string{"a.enter", "a.update", "a.exit", "b.enter", "b.exit"}
	if len(log) != len(want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("log = %v, want %v", log, want)
		}
	}
	if sm.Current() != nil {
		t.Fatal("current state not cleared")
	}
}
