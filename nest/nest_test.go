package nest

import (
	"errors"
	"fmt"
	"testing"
)

func TestLeavesTraversalOrder(t *testing.T) {
	n := Seq(
		Leaf(1),
		Fields(map[string]*Nest[int]{
			"b": Leaf(3),
			"a": Leaf(2),
		}),
		Leaf(4),
	)
	got := Leaves(n)
	want := []int{1, 2, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("expected %d leaves, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("leaf %d: expected %d, got %d", i, want[i], got[i])
		}
	}
}

func TestMap(t *testing.T) {
	n := Seq(Leaf(1), Seq(Leaf(2), Leaf(3)))
	doubled, err := Map(n, func(v int) (int, error) { return v * 2, nil })
	if err != nil {
		t.Fatalf("map failed: %v", err)
	}
	got := Leaves(doubled)
	want := []int{2, 4, 6}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("leaf %d: expected %d, got %d", i, want[i], got[i])
		}
	}
}

func TestMapPropagatesError(t *testing.T) {
	boom := errors.New("boom")
	n := Seq(Leaf(1), Leaf(2))
	if _, err := Map(n, func(v int) (int, error) {
		if v == 2 {
			return 0, boom
		}
		return v, nil
	}); !errors.Is(err, boom) {
		t.Errorf("expected propagated error, got %v", err)
	}
}

func TestZipCongruent(t *testing.T) {
	a := Fields(map[string]*Nest[int]{
		"x": Leaf(1),
		"y": Seq(Leaf(2), Leaf(3)),
	})
	b := Fields(map[string]*Nest[string]{
		"x": Leaf("a"),
		"y": Seq(Leaf("b"), Leaf("c")),
	})
	zipped, err := Zip(a, b, func(i int, s string) (string, error) {
		return fmt.Sprintf("%d%s", i, s), nil
	})
	if err != nil {
		t.Fatalf("zip failed: %v", err)
	}
	got := Leaves(zipped)
	want := []string{"1a", "2b", "3c"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("leaf %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestZipMismatch(t *testing.T) {
	cases := []struct {
		name string
		a    *Nest[int]
		b    *Nest[int]
	}{
		{"leaf vs sequence", Leaf(1), Seq(Leaf(1))},
		{"sequence lengths", Seq(Leaf(1)), Seq(Leaf(1), Leaf(2))},
		{"sequence vs mapping", Seq(Leaf(1)), Fields(map[string]*Nest[int]{"a": Leaf(1)})},
		{"missing key", Fields(map[string]*Nest[int]{"a": Leaf(1)}), Fields(map[string]*Nest[int]{"b": Leaf(1)})},
		{"nested mismatch", Seq(Leaf(1), Seq(Leaf(2))), Seq(Leaf(1), Seq(Leaf(2), Leaf(3)))},
		{"nil vs leaf", nil, Leaf(1)},
	}
	for _, tc := range cases {
		if _, err := Zip(tc.a, tc.b, func(a, b int) (int, error) { return a + b, nil }); !errors.Is(err, ErrStructureMismatch) {
			t.Errorf("%s: expected ErrStructureMismatch, got %v", tc.name, err)
		}
	}
}

func TestZipPropagatesLeafError(t *testing.T) {
	boom := errors.New("boom")
	a := Seq(Leaf(1), Leaf(2))
	b := Seq(Leaf(1), Leaf(2))
	if _, err := Zip(a, b, func(x, y int) (int, error) { return 0, boom }); !errors.Is(err, boom) {
		t.Errorf("expected propagated error, got %v", err)
	}
}

func TestValue(t *testing.T) {
	if v, ok := Leaf(7).Value(); !ok || v != 7 {
		t.Errorf("leaf value: got %d, %v", v, ok)
	}
	if _, ok := Seq(Leaf(1)).Value(); ok {
		t.Errorf("sequence node must not report a leaf value")
	}
}
