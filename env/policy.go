package env

import (
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/zeu5/env-wrappers/nest"
	"github.com/zeu5/env-wrappers/specs"
)

// A Policy picks the next action from the latest time step.
type Policy interface {
	// Reset is called at the start of every episode.
	Reset()
	Act(step int, ts TimeStep) (Action, error)
}

// UniformRandom samples every bounded action leaf uniformly within its
// bounds. Unbounded leaves are drawn from a unit normal.
type UniformRandom struct {
	spec Spec
	rng  *rand.Rand
}

var _ Policy = &UniformRandom{}

// NewUniformRandom builds a random policy over the given action spec. A
// nil rng gets a fresh time-seeded generator.
func NewUniformRandom(spec Spec, rng *rand.Rand) *UniformRandom {
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return &UniformRandom{spec: spec, rng: rng}
}

func (u *UniformRandom) Reset() {}

func (u *UniformRandom) Act(step int, ts TimeStep) (Action, error) {
	return nest.Map(u.spec, func(s specs.Spec) ([]float64, error) {
		out := make([]float64, s.NumElements())
		if bounded, ok := s.(specs.BoundedArray); ok {
			lo, hi := bounded.Minimum(), bounded.Maximum()
			for i := range out {
				out[i] = distuv.Uniform{Min: lo[i], Max: hi[i], Src: u.rng}.Rand()
			}
			return out, nil
		}
		normal := distuv.Normal{Mu: 0, Sigma: 1, Src: u.rng}
		for i := range out {
			out[i] = normal.Rand()
		}
		return out, nil
	})
}
