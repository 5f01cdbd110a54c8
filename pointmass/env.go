// Package pointmass is a small bounded continuous environment used to
// exercise the wrappers: a point navigating the unit square toward a
// target under velocity actions.
package pointmass

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"

	"github.com/zeu5/env-wrappers/env"
	"github.com/zeu5/env-wrappers/nest"
	"github.com/zeu5/env-wrappers/specs"
)

const (
	// MaxSpeed bounds each velocity component per step.
	MaxSpeed = 0.05
	// TargetRadius is the distance at which the episode terminates.
	TargetRadius = 0.05
)

// Task owns the environment's randomness and target placement. Exposing
// the random source lets wrappers share it, so a single seed drives both
// the dynamics and any injected noise.
type Task struct {
	rng    *rand.Rand
	target []float64
}

var _ env.RandomSourced = &Task{}

func NewTask(seed uint64) *Task {
	rng := rand.New(rand.NewSource(seed))
	return &Task{
		rng:    rng,
		target: []float64{0.8, 0.8},
	}
}

func (t *Task) RandomSource() *rand.Rand {
	return t.rng
}

func (t *Task) Target() []float64 {
	return t.target
}

// start samples an initial position in the lower-left quarter.
func (t *Task) start() []float64 {
	return []float64{t.rng.Float64() * 0.25, t.rng.Float64() * 0.25}
}

// Environment is the point mass itself.
type Environment struct {
	task       *Task
	pos        []float64
	actionSpec env.Spec
	obsSpec    env.Spec
}

var (
	_ env.Environment = &Environment{}
	_ env.Tasked      = &Environment{}
)

func New(task *Task) *Environment {
	actionLeaf, err := specs.NewBoundedArray([]int{2}, []float64{-MaxSpeed}, []float64{MaxSpeed})
	if err != nil {
		panic(err)
	}
	obsLeaf, err := specs.NewBoundedArray([]int{2}, []float64{0}, []float64{1})
	if err != nil {
		panic(err)
	}
	return &Environment{
		task:       task,
		actionSpec: nest.Leaf[specs.Spec](actionLeaf),
		obsSpec:    nest.Leaf[specs.Spec](obsLeaf),
	}
}

func (e *Environment) Task() any {
	return e.task
}

func (e *Environment) Reset() (env.TimeStep, error) {
	e.pos = e.task.start()
	return env.First(e.observation()), nil
}

func (e *Environment) Step(action env.Action) (env.TimeStep, error) {
	if e.pos == nil {
		e.pos = e.task.start()
	}
	velocity, ok := action.Value()
	if !ok || len(velocity) != 2 {
		return env.TimeStep{}, fmt.Errorf("%w: want a single leaf of 2 elements", nest.ErrStructureMismatch)
	}
	for i := range e.pos {
		e.pos[i] = clamp(e.pos[i]+velocity[i], 0, 1)
	}
	d := e.targetDistance()
	if d <= TargetRadius {
		return env.Termination(1, e.observation()), nil
	}
	return env.Transition(-d, e.observation()), nil
}

func (e *Environment) ActionSpec() env.Spec {
	return e.actionSpec
}

func (e *Environment) ObservationSpec() env.Spec {
	return e.obsSpec
}

func (e *Environment) Close() error {
	return nil
}

func (e *Environment) observation() env.Observation {
	obs := make([]float64, len(e.pos))
	copy(obs, e.pos)
	return nest.Leaf(obs)
}

func (e *Environment) targetDistance() float64 {
	dx := e.pos[0] - e.task.target[0]
	dy := e.pos[1] - e.task.target[1]
	return math.Hypot(dx, dy)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
