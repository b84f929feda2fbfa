package app

import (
	"slices"
	"testing"
)

func TestSchedulerRunsDueTasksInOrder(t *testing.T) {
	s := NewScheduler()
	var ran []string
	s.At(300, func(int64) { ran = append(ran, "c") })
	s.At(100, func(int64) { ran = append(ran, "a") })
	s.At(100, func(int64) { ran = append(ran, "b") })
	s.At(900, func(int64) { ran = append(ran, "late") })

	if n := s.Run(99); n != 0 {
		t.Fatalf("ran %d tasks early", n)
	}
	if n := s.Run(300); n != 3 {
		t.Fatalf("ran %d, want 3", n)
	}
	if !slices.Equal(ran, []string{"a", "b", "c"}) {
		t.Fatalf("order = %v", ran)
	}
	if s.Len() != 1 {
		t.Fatalf("len = %d", s.Len())
	}
}

func TestSchedulerPassesClock(t *testing.T) {
	s := NewScheduler()
	var got int64
	s.At(10, func(now int64) { got = now })
	s.Run(250)
	if got != 250 {
		t.Fatalf("task saw %d, want 250", got)
	}
}

func TestSchedulerCancelAndClear(t *testing.T) {
	s := NewScheduler()
	ran := false
	id := s.At(10, func(int64) { ran = true })
	s.At(20, func(int64) { ran = true })

	if !s.Cancel(id) || s.Cancel(id) {
		t.Fatal("cancel should succeed once")
	}
	s.Clear()
	s.Run(1000)
	if ran || s.Len() != 0 {
		t.Fatal("cleared tasks ran")
	}
}

func TestSchedulerDefersNestedTasks(t *testing.T) {
	s := NewScheduler()
	nested := false
	s.At(10, func(now int64) {
		s.At(now, func(int64) { nested = true })
	})
	s.Run(10)
	if nested {
		t.Fatal("task scheduled during Run ran in the same Run")
	}
	s.Run(10)
	if !nested {
		t.Fatal("nested task never ran")
	}
}
