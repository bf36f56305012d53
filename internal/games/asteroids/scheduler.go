package asteroids

import "sort"

// RunID identifies one run of the world. It changes on every Reset.
type RunID uint64

// TimerID identifies a scheduled action. Zero is never issued.
type TimerID uint64

// Lifecycle tags what owns a scheduled action.
type Lifecycle int

const (
	// LifecycleRun actions live until the run is reset.
	LifecycleRun Lifecycle = iota
	// LifecyclePlaying actions are torn down whenever play stops.
	LifecyclePlaying
)

type action struct {
	id    TimerID
	run   RunID
	due   int // Tick at which the action fires
	every int // Repeat interval in ticks, 0 for one-shot
	life  Lifecycle
	name  string
	fn    func()

	cancelled bool
}

// Scheduler runs deferred actions on simulation ticks.
// Time only advances while the world is stepped, so pausing freezes every delay.
type Scheduler struct {
	now     int
	nextID  TimerID
	actions []*action
	running []*action // Due actions of the tick being advanced
}

// Now returns the scheduler's current tick.
func (s *Scheduler) Now() int {
	return s.now
}

// Pending returns the number of queued actions.
func (s *Scheduler) Pending() int {
	return len(s.actions)
}

// After schedules fn to run once, delay ticks from now, on behalf of run.
func (s *Scheduler) After(run RunID, delay int, name string, fn func()) TimerID {
	return s.add(&action{run: run, due: s.now + max(delay, 1), life: LifecycleRun, name: name, fn: fn})
}

// Every schedules fn to run every interval ticks until cancelled.
func (s *Scheduler) Every(run RunID, interval int, life Lifecycle, name string, fn func()) TimerID {
	interval = max(interval, 1)
	return s.add(&action{run: run, due: s.now + interval, every: interval, life: life, name: name, fn: fn})
}

func (s *Scheduler) add(a *action) TimerID {
	s.nextID++
	a.id = s.nextID
	s.actions = append(s.actions, a)
	return a.id
}

// Cancel removes a queued action. Returns false if it was not queued.
func (s *Scheduler) Cancel(id TimerID) bool {
	for _, a := range s.running {
		if a.id == id && !a.cancelled {
			a.cancelled = true
			return true
		}
	}
	for i, a := range s.actions {
		if a.id == id {
			a.cancelled = true
			s.actions = append(s.actions[:i], s.actions[i+1:]...)
			return true
		}
	}
	return false
}

// CancelLifecycle removes every action tagged with life and returns how many were removed.
func (s *Scheduler) CancelLifecycle(life Lifecycle) int {
	removed := 0
	for _, a := range s.running {
		if a.life == life && !a.cancelled {
			a.cancelled = true
			removed++
		}
	}
	kept := s.actions[:0]
	for _, a := range s.actions {
		if a.life == life {
			a.cancelled = true
			removed++
			continue
		}
		kept = append(kept, a)
	}
	clear(s.actions[len(kept):])
	s.actions = kept
	return removed
}

// Clear drops every queued action.
func (s *Scheduler) Clear() {
	for _, a := range s.running {
		a.cancelled = true
	}
	clear(s.actions)
	s.actions = s.actions[:0]
}

// Advance moves time forward one tick and runs every due action in
// (due, id) order. Actions scheduled for a run other than current are
// dropped and reported to onStale. Actions cancelled by an earlier action
// of the same tick do not run.
func (s *Scheduler) Advance(current RunID, onStale func(name string, run RunID)) {
	s.now++

	var due []*action
	kept := s.actions[:0]
	for _, a := range s.actions {
		if a.due <= s.now {
			due = append(due, a)
			continue
		}
		kept = append(kept, a)
	}
	clear(s.actions[len(kept):])
	s.actions = kept

	sort.Slice(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].id < due[j].id
	})

	s.running = due
	defer func() { s.running = nil }()

	for _, a := range due {
		if a.cancelled {
			continue
		}
		if a.run != current {
			if onStale != nil {
				onStale(a.name, a.run)
			}
			continue
		}
		a.fn()
		if a.every > 0 && !a.cancelled {
			a.due = s.now + a.every
			s.actions = append(s.actions, a)
		}
	}
}
