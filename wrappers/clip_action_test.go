package wrappers

import (
	"errors"
	"testing"

	"github.com/zeu5/env-wrappers/nest"
	"github.com/zeu5/env-wrappers/specs"
)

func TestClipActionClipsBoundedLeaves(t *testing.T) {
	spec := boundedSpec(t, []int{2}, []float64{-1, 0}, []float64{1, 0.5})
	e := newStubEnv(nest.Leaf[specs.Spec](spec))
	w := NewClipAction(e)

	if _, err := w.Step(nest.Leaf([]float64{-2, 0.75})); err != nil {
		t.Fatalf("step failed: %v", err)
	}
	got := lastLeaf(t, e)
	if got[0] != -1 || got[1] != 0.5 {
		t.Errorf("expected [-1 0.5], got %v", got)
	}
}

func TestClipActionLeavesInRangeValues(t *testing.T) {
	spec := boundedSpec(t, []int{2}, []float64{-1}, []float64{1})
	e := newStubEnv(nest.Leaf[specs.Spec](spec))
	w := NewClipAction(e)

	if _, err := w.Step(nest.Leaf([]float64{0.5, -0.5})); err != nil {
		t.Fatalf("step failed: %v", err)
	}
	got := lastLeaf(t, e)
	if got[0] != 0.5 || got[1] != -0.5 {
		t.Errorf("in-range values must be unchanged, got %v", got)
	}
}

func TestClipActionUnboundedPassthrough(t *testing.T) {
	e := newStubEnv(nest.Leaf[specs.Spec](specs.NewArray(2)))
	w := NewClipAction(e)

	free := []float64{-100, 100}
	if _, err := w.Step(nest.Leaf(free)); err != nil {
		t.Fatalf("step failed: %v", err)
	}
	got := lastLeaf(t, e)
	if &got[0] != &free[0] {
		t.Errorf("unbounded leaf must be passed through as the same buffer")
	}
}

func TestClipActionStructureMismatch(t *testing.T) {
	spec := boundedSpec(t, []int{2}, []float64{0}, []float64{1})
	e := newStubEnv(nest.Leaf[specs.Spec](spec))
	w := NewClipAction(e)

	if _, err := w.Step(nest.Leaf([]float64{0.5})); !errors.Is(err, nest.ErrStructureMismatch) {
		t.Errorf("expected structure mismatch, got %v", err)
	}
	if e.steps != 0 {
		t.Errorf("wrapped environment was stepped despite mismatch")
	}
}
