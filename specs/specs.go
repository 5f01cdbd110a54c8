// Package specs describes the arrays an environment accepts and emits.
// A nested spec is a nest.Nest of leaf Specs mirroring the structure of
// the actions or observations it describes.
package specs

import (
	"errors"
	"fmt"

	"github.com/zeu5/env-wrappers/nest"
)

// ErrInvalidBounds is returned when a bounded spec is constructed with a
// minimum above its maximum somewhere.
var ErrInvalidBounds = errors.New("specs: minimum exceeds maximum")

// A Spec describes one leaf array: its shape and, for the bounded
// variant, elementwise bounds. Leaf values are flat []float64 buffers in
// row-major order.
type Spec interface {
	Shape() []int
	// NumElements is the product of the shape dimensions.
	NumElements() int
	// Validate checks that v has the element count the shape demands.
	Validate(v []float64) error
}

// Array is an unbounded leaf descriptor.
type Array struct {
	shape []int
}

var _ Spec = Array{}

func NewArray(shape ...int) Array {
	s := make([]int, len(shape))
	copy(s, shape)
	return Array{shape: s}
}

func (a Array) Shape() []int {
	s := make([]int, len(a.shape))
	copy(s, a.shape)
	return s
}

func (a Array) NumElements() int {
	n := 1
	for _, d := range a.shape {
		n *= d
	}
	return n
}

func (a Array) Validate(v []float64) error {
	if len(v) != a.NumElements() {
		return fmt.Errorf("%w: value has %d elements, spec shape %v wants %d",
			nest.ErrStructureMismatch, len(v), a.shape, a.NumElements())
	}
	return nil
}

// BoundedArray is a leaf descriptor carrying elementwise bounds.
type BoundedArray struct {
	Array
	minimum []float64
	maximum []float64
}

var _ Spec = BoundedArray{}

// NewBoundedArray builds a bounded descriptor. Each bound carries either
// one value per element or a single value broadcast across the shape,
// and minimum must not exceed maximum anywhere.
func NewBoundedArray(shape []int, minimum, maximum []float64) (BoundedArray, error) {
	arr := NewArray(shape...)
	lo, err := broadcast(minimum, arr.NumElements())
	if err != nil {
		return BoundedArray{}, fmt.Errorf("minimum: %w", err)
	}
	hi, err := broadcast(maximum, arr.NumElements())
	if err != nil {
		return BoundedArray{}, fmt.Errorf("maximum: %w", err)
	}
	for i := range lo {
		if lo[i] > hi[i] {
			return BoundedArray{}, fmt.Errorf("%w: %v > %v at element %d", ErrInvalidBounds, lo[i], hi[i], i)
		}
	}
	return BoundedArray{Array: arr, minimum: lo, maximum: hi}, nil
}

func (b BoundedArray) Minimum() []float64 { return b.minimum }

func (b BoundedArray) Maximum() []float64 { return b.maximum }

// Clip returns a fresh copy of v with every element forced into the
// spec's range. The input is left untouched.
func (b BoundedArray) Clip(v []float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		if x < b.minimum[i] {
			x = b.minimum[i]
		}
		if x > b.maximum[i] {
			x = b.maximum[i]
		}
		out[i] = x
	}
	return out
}

func broadcast(bound []float64, n int) ([]float64, error) {
	switch len(bound) {
	case n:
		out := make([]float64, n)
		copy(out, bound)
		return out, nil
	case 1:
		out := make([]float64, n)
		for i := range out {
			out[i] = bound[0]
		}
		return out, nil
	default:
		return nil, fmt.Errorf("bound has %d elements, want 1 or %d", len(bound), n)
	}
}
