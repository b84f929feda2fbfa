// internal/app/scheduler.go
package app

import "sort"

// Scheduler runs delayed callbacks against the external clock. It is how
// timed effects such as the end of a freeze are undone.
type Scheduler struct {
	tasks  []scheduledTask
	nextID int
}

type scheduledTask struct {
	id    int
	dueMs int64
	fn    func(nowMs int64)
}

func NewScheduler() *Scheduler {
	return &Scheduler{nextID: 1}
}

// At schedules fn to run on the first Run at or after dueMs. It returns an
// id usable with Cancel.
func (s *Scheduler) At(dueMs int64, fn func(nowMs int64)) int {
	id := s.nextID
	s.nextID++
	s.tasks = append(s.tasks, scheduledTask{id: id, dueMs: dueMs, fn: fn})
	return id
}

// Run executes every due task, earliest first, and returns how many ran.
// Tasks scheduled by a running task wait for the next Run.
func (s *Scheduler) Run(nowMs int64) int {
	var due []scheduledTask
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if t.dueMs <= nowMs {
			due = append(due, t)
		} else {
			kept = append(kept, t)
		}
	}
	s.tasks = kept
	sort.SliceStable(due, func(i, j int) bool { return due[i].dueMs < due[j].dueMs })
	for _, t := range due {
		t.fn(nowMs)
	}
	return len(due)
}

func (s *Scheduler) Cancel(id int) bool {
	for i, t := range s.tasks {
		if t.id == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// Clear drops every pending task.
func (s *Scheduler) Clear() {
	s.tasks = nil
}

func (s *Scheduler) Len() int {
	return len(s.tasks)
}
