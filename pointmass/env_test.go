package pointmass

import (
	"testing"

	"github.com/zeu5/env-wrappers/env"
	"github.com/zeu5/env-wrappers/nest"
)

func TestResetDeterministicWithSeed(t *testing.T) {
	e1 := New(NewTask(42))
	e2 := New(NewTask(42))

	ts1, err := e1.Reset()
	if err != nil {
		t.Fatalf("reset failed: %v", err)
	}
	ts2, err := e2.Reset()
	if err != nil {
		t.Fatalf("reset failed: %v", err)
	}
	p1, _ := ts1.Observation.Value()
	p2, _ := ts2.Observation.Value()
	if p1[0] != p2[0] || p1[1] != p2[1] {
		t.Errorf("equal seeds must give equal starts: %v vs %v", p1, p2)
	}
	if !ts1.First() {
		t.Errorf("reset must return a first step")
	}
}

func TestStepMovesAndClamps(t *testing.T) {
	e := New(NewTask(0))
	ts, err := e.Reset()
	if err != nil {
		t.Fatalf("reset failed: %v", err)
	}
	start, _ := ts.Observation.Value()

	ts, err = e.Step(nest.Leaf([]float64{MaxSpeed, -MaxSpeed}))
	if err != nil {
		t.Fatalf("step failed: %v", err)
	}
	pos, _ := ts.Observation.Value()
	if pos[0] != start[0]+MaxSpeed {
		t.Errorf("x did not move by the velocity: %v -> %v", start[0], pos[0])
	}
	if pos[1] < 0 || pos[1] > 1 {
		t.Errorf("position left the unit square: %v", pos)
	}

	// Drive hard into the lower boundary.
	for i := 0; i < 100; i++ {
		ts, err = e.Step(nest.Leaf([]float64{-MaxSpeed, -MaxSpeed}))
		if err != nil {
			t.Fatalf("step failed: %v", err)
		}
	}
	pos, _ = ts.Observation.Value()
	if pos[0] != 0 || pos[1] != 0 {
		t.Errorf("expected position clamped at the origin, got %v", pos)
	}
}

func TestTerminatesAtTarget(t *testing.T) {
	e := New(NewTask(0))
	if _, err := e.Reset(); err != nil {
		t.Fatalf("reset failed: %v", err)
	}
	// Walk diagonally toward the target; the episode must terminate well
	// within the step budget.
	for i := 0; i < 1000; i++ {
		ts, err := e.Step(nest.Leaf([]float64{MaxSpeed, MaxSpeed}))
		if err != nil {
			t.Fatalf("step failed: %v", err)
		}
		if ts.Last() {
			if ts.Discount != 0 {
				t.Errorf("termination must carry a zero discount")
			}
			if ts.Reward != 1 {
				t.Errorf("expected terminal reward 1, got %v", ts.Reward)
			}
			return
		}
	}
	t.Errorf("episode never terminated")
}

func TestStructureMismatchedAction(t *testing.T) {
	e := New(NewTask(0))
	if _, err := e.Reset(); err != nil {
		t.Fatalf("reset failed: %v", err)
	}
	if _, err := e.Step(nest.Seq(nest.Leaf([]float64{0, 0}))); err == nil {
		t.Errorf("expected an error for a non-leaf action")
	}
}

func TestExposesTaskRandomSource(t *testing.T) {
	task := NewTask(7)
	e := New(task)

	tasked, ok := any(e).(env.Tasked)
	if !ok {
		t.Fatalf("environment must expose its task")
	}
	rs, ok := tasked.Task().(env.RandomSourced)
	if !ok {
		t.Fatalf("task must expose its random source")
	}
	if rs.RandomSource() != task.RandomSource() {
		t.Errorf("task random source must be shared, not copied")
	}
}
