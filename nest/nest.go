package nest

import (
	"errors"
	"fmt"
	"sort"
)

// ErrStructureMismatch is returned when two nests that are expected to be
// congruent differ in kind, length or keys at any level.
var ErrStructureMismatch = errors.New("nest: structure mismatch")

// A Nest is a tree of values. Each node is exactly one of: a leaf holding
// a value, an ordered sequence of children, or a string-keyed mapping of
// children. Nests are not mutated after construction.
type Nest[T any] struct {
	leaf   T
	isLeaf bool
	seq    []*Nest[T]
	fields map[string]*Nest[T]
}

// Leaf wraps a single value.
func Leaf[T any](v T) *Nest[T] {
	return &Nest[T]{leaf: v, isLeaf: true}
}

// Seq builds an ordered sequence node.
func Seq[T any](children ...*Nest[T]) *Nest[T] {
	if children == nil {
		children = []*Nest[T]{}
	}
	return &Nest[T]{seq: children}
}

// Fields builds a string-keyed mapping node.
func Fields[T any](children map[string]*Nest[T]) *Nest[T] {
	return &Nest[T]{fields: children}
}

func (n *Nest[T]) IsLeaf() bool {
	return n != nil && n.isLeaf
}

// Value returns the leaf value, false if the node is not a leaf.
func (n *Nest[T]) Value() (T, bool) {
	if n == nil || !n.isLeaf {
		var zero T
		return zero, false
	}
	return n.leaf, true
}

// Leaves returns the leaf values in traversal order: sequence children in
// order, mapping children by sorted key.
func Leaves[T any](n *Nest[T]) []T {
	out := make([]T, 0)
	walk(n, func(v T) {
		out = append(out, v)
	})
	return out
}

func walk[T any](n *Nest[T], visit func(T)) {
	if n == nil {
		return
	}
	if n.isLeaf {
		visit(n.leaf)
		return
	}
	if n.seq != nil {
		for _, c := range n.seq {
			walk(c, visit)
		}
		return
	}
	for _, k := range sortedKeys(n.fields) {
		walk(n.fields[k], visit)
	}
}

// Map applies fn to every leaf and returns a new nest of the same shape.
// The first error aborts the traversal.
func Map[T, U any](n *Nest[T], fn func(T) (U, error)) (*Nest[U], error) {
	if n == nil {
		return nil, nil
	}
	if n.isLeaf {
		v, err := fn(n.leaf)
		if err != nil {
			return nil, err
		}
		return Leaf(v), nil
	}
	if n.seq != nil {
		children := make([]*Nest[U], len(n.seq))
		for i, c := range n.seq {
			mapped, err := Map(c, fn)
			if err != nil {
				return nil, err
			}
			children[i] = mapped
		}
		return Seq(children...), nil
	}
	children := make(map[string]*Nest[U], len(n.fields))
	for k, c := range n.fields {
		mapped, err := Map(c, fn)
		if err != nil {
			return nil, err
		}
		children[k] = mapped
	}
	return Fields(children), nil
}

// Zip walks two congruent nests together and combines corresponding
// leaves with fn, returning a new nest with the shape of the inputs. The
// shapes are checked at every level; a mismatch returns an error wrapping
// ErrStructureMismatch and no partial result.
func Zip[A, B, C any](a *Nest[A], b *Nest[B], fn func(A, B) (C, error)) (*Nest[C], error) {
	if a == nil || b == nil {
		if a == nil && b == nil {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: nil vs non-nil node", ErrStructureMismatch)
	}
	if a.isLeaf != b.isLeaf {
		return nil, fmt.Errorf("%w: leaf vs non-leaf node", ErrStructureMismatch)
	}
	if a.isLeaf {
		v, err := fn(a.leaf, b.leaf)
		if err != nil {
			return nil, err
		}
		return Leaf(v), nil
	}
	if (a.seq != nil) != (b.seq != nil) {
		return nil, fmt.Errorf("%w: sequence vs mapping node", ErrStructureMismatch)
	}
	if a.seq != nil {
		if len(a.seq) != len(b.seq) {
			return nil, fmt.Errorf("%w: sequence lengths %d and %d", ErrStructureMismatch, len(a.seq), len(b.seq))
		}
		children := make([]*Nest[C], len(a.seq))
		for i := range a.seq {
			zipped, err := Zip(a.seq[i], b.seq[i], fn)
			if err != nil {
				return nil, err
			}
			children[i] = zipped
		}
		return Seq(children...), nil
	}
	if len(a.fields) != len(b.fields) {
		return nil, fmt.Errorf("%w: mapping sizes %d and %d", ErrStructureMismatch, len(a.fields), len(b.fields))
	}
	children := make(map[string]*Nest[C], len(a.fields))
	for k, ca := range a.fields {
		cb, ok := b.fields[k]
		if !ok {
			return nil, fmt.Errorf("%w: missing key %q", ErrStructureMismatch, k)
		}
		zipped, err := Zip(ca, cb, fn)
		if err != nil {
			return nil, err
		}
		children[k] = zipped
	}
	return Fields(children), nil
}

func sortedKeys[T any](m map[string]*Nest[T]) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
