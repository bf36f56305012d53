package asteroids

import (
	"slices"
	"testing"
)

func TestSchedulerAfter(t *testing.T) {
	var s Scheduler
	fired := 0
	s.After(1, 3, "once", func() { fired++ })

	for i := 1; i <= 5; i++ {
		s.Advance(1, nil)
		want := 0
		if i >= 3 {
			want = 1
		}
		if fired != want {
			t.Errorf("tick %d: expected %d firings, got %d", i, want, fired)
		}
	}
	if s.Pending() != 0 {
		t.Errorf("Expected one-shot action removed, got %d pending", s.Pending())
	}
}

func TestSchedulerEvery(t *testing.T) {
	var s Scheduler
	fired := 0
	s.Every(1, 2, LifecyclePlaying, "repeat", func() { fired++ })

	for range 7 {
		s.Advance(1, nil)
	}
	if fired != 3 {
		t.Errorf("Expected 3 firings in 7 ticks, got %d", fired)
	}
}

func TestSchedulerOrder(t *testing.T) {
	var s Scheduler
	var order []string
	s.After(1, 2, "b", func() { order = append(order, "b") })
	s.After(1, 1, "a", func() { order = append(order, "a") })
	s.After(1, 2, "c", func() { order = append(order, "c") })

	s.Advance(1, nil)
	s.Advance(1, nil)

	if !slices.Equal(order, []string{"a", "b", "c"}) {
		t.Errorf("Expected order [a b c], got %v", order)
	}
}

func TestSchedulerDropsStaleRuns(t *testing.T) {
	var s Scheduler
	fired := false
	var stale []string
	s.After(1, 1, "respawn", func() { fired = true })

	s.Advance(2, func(name string, run RunID) {
		stale = append(stale, name)
		if run != 1 {
			t.Errorf("Expected stale run 1, got %d", run)
		}
	})

	if fired {
		t.Error("Expected action from an abandoned run not to fire")
	}
	if !slices.Equal(stale, []string{"respawn"}) {
		t.Errorf("Expected respawn reported stale, got %v", stale)
	}
}

func TestSchedulerCancel(t *testing.T) {
	var s Scheduler
	fired := false
	id := s.After(1, 1, "x", func() { fired = true })

	if !s.Cancel(id) {
		t.Fatal("Expected Cancel to find the action")
	}
	if s.Cancel(id) {
		t.Error("Expected second Cancel to report false")
	}
	s.Advance(1, nil)
	if fired {
		t.Error("Expected cancelled action not to fire")
	}
}

func TestSchedulerCancelLifecycle(t *testing.T) {
	var s Scheduler
	s.Every(1, 5, LifecyclePlaying, "bonus", func() {})
	s.After(1, 5, "respawn", func() {})

	if n := s.CancelLifecycle(LifecyclePlaying); n != 1 {
		t.Errorf("Expected 1 action removed, got %d", n)
	}
	if s.Pending() != 1 {
		t.Errorf("Expected run-scoped action kept, got %d pending", s.Pending())
	}
}

func TestSchedulerCancelDuringAdvance(t *testing.T) {
	var s Scheduler
	bonus := 0
	s.After(1, 2, "game-over", func() { s.CancelLifecycle(LifecyclePlaying) })
	s.Every(1, 2, LifecyclePlaying, "bonus", func() { bonus++ })

	for range 6 {
		s.Advance(1, nil)
	}

	if bonus != 0 {
		t.Errorf("Expected bonus cancelled by an earlier action of the same tick, fired %d", bonus)
	}
	if s.Pending() != 0 {
		t.Errorf("Expected nothing pending, got %d", s.Pending())
	}
}

func TestSchedulerClear(t *testing.T) {
	var s Scheduler
	s.After(1, 1, "a", func() {})
	s.Every(1, 1, LifecyclePlaying, "b", func() {})

	s.Clear()

	if s.Pending() != 0 {
		t.Errorf("Expected empty queue, got %d", s.Pending())
	}
}
