package wrappers

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/zeu5/env-wrappers/env"
	"github.com/zeu5/env-wrappers/nest"
	"github.com/zeu5/env-wrappers/specs"
)

// DefaultNoiseScale is a reasonable scale for callers with no opinion.
const DefaultNoiseScale = 0.01

// ErrNegativeScale rejects construction with a negative noise scale.
var ErrNegativeScale = errors.New("wrappers: noise scale must be non-negative")

// ActionNoise perturbs every bounded action leaf with additive Gaussian
// noise before delegating to the wrapped environment. The scale is the
// noise standard deviation as a fraction of each dimension's max-min
// range, so it only affects bounded leaves; unbounded leaves pass
// through untouched. Corruption never writes to the caller's buffers.
type ActionNoise struct {
	Base
	spec  env.Spec
	scale float64
	rng   *rand.Rand
}

type ActionNoiseOption func(*ActionNoise)

// WithSeed gives the wrapper a fresh generator seeded with seed.
func WithSeed(seed uint64) ActionNoiseOption {
	return func(a *ActionNoise) {
		a.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand shares an existing generator with the wrapper. The generator
// is used directly, not copied.
func WithRand(rng *rand.Rand) ActionNoiseOption {
	return func(a *ActionNoise) {
		a.rng = rng
	}
}

// NewActionNoise wraps e with action corruption at the given scale. The
// action spec is captured once here and reused on every step.
//
// Without a seed or generator option the wrapper tries to share the
// host's randomness: a task-owned source first, then one on the
// environment itself, and only then a fresh time-seeded generator.
// Sharing makes the injected noise follow the host's seeding.
func NewActionNoise(e env.Environment, scale float64, opts ...ActionNoiseOption) (*ActionNoise, error) {
	if scale < 0 {
		return nil, fmt.Errorf("%w: %v", ErrNegativeScale, scale)
	}
	a := &ActionNoise{
		Base:  Base{Environment: e},
		spec:  e.ActionSpec(),
		scale: scale,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.rng == nil {
		a.rng = resolveRand(e)
	}
	return a, nil
}

func resolveRand(e env.Environment) *rand.Rand {
	t, ok := e.(env.Tasked)
	if !ok {
		return freshRand()
	}
	if rs, ok := t.Task().(env.RandomSourced); ok {
		return rs.RandomSource()
	}
	if rs, ok := e.(env.RandomSourced); ok {
		return rs.RandomSource()
	}
	return freshRand()
}

func freshRand() *rand.Rand {
	return rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
}

// Scale returns the configured noise scale.
func (a *ActionNoise) Scale() float64 {
	return a.scale
}

// Step corrupts the action and delegates. With a zero scale the action
// is forwarded as-is and the generator is left untouched.
func (a *ActionNoise) Step(action env.Action) (env.TimeStep, error) {
	if a.scale > 0 {
		corrupted, err := a.corrupt(action)
		if err != nil {
			return env.TimeStep{}, err
		}
		action = corrupted
	}
	return a.Environment.Step(action)
}

// corrupt zips the action against the captured spec leaf by leaf.
// Bounded leaves get a fresh copy with noise added and clipped back into
// range; others are reused as-is. A structure or shape mismatch returns
// an error wrapping nest.ErrStructureMismatch.
func (a *ActionNoise) corrupt(action env.Action) (env.Action, error) {
	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: a.rng}
	return nest.Zip(action, a.spec, func(leaf []float64, s specs.Spec) ([]float64, error) {
		if err := s.Validate(leaf); err != nil {
			return nil, err
		}
		bounded, ok := s.(specs.BoundedArray)
		if !ok {
			return leaf, nil
		}
		lo, hi := bounded.Minimum(), bounded.Maximum()
		out := make([]float64, len(leaf))
		for i, v := range leaf {
			// A zero-width range gives a zero stddev, so the draw
			// contributes exactly nothing.
			v += normal.Rand() * a.scale * (hi[i] - lo[i])
			if v < lo[i] {
				v = lo[i]
			}
			if v > hi[i] {
				v = hi[i]
			}
			out[i] = v
		}
		return out, nil
	})
}
