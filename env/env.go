// Package env defines the environment contract the wrappers compose
// with: a reset/step lifecycle producing time steps, nested action and
// observation values, and the specs describing them.
package env

import (
	"golang.org/x/exp/rand"

	"github.com/zeu5/env-wrappers/nest"
	"github.com/zeu5/env-wrappers/specs"
)

// Action and Observation are nested arrays whose structure mirrors the
// corresponding spec nest.
type (
	Action      = *nest.Nest[[]float64]
	Observation = *nest.Nest[[]float64]
)

// Spec is a nested arrangement of leaf array descriptors.
type Spec = *nest.Nest[specs.Spec]

// Environment is the reset/step lifecycle wrappers delegate to.
type Environment interface {
	// Reset starts a new episode and returns its first time step.
	Reset() (TimeStep, error)
	// Step advances the episode with the given action.
	Step(action Action) (TimeStep, error)
	ActionSpec() Spec
	ObservationSpec() Spec
	Close() error
}

// RandomSourced is implemented by environments, or their tasks, that own
// a random source callers may share. Sharing keeps wrapper noise
// deterministic under the host's seed. The source is not safe for
// concurrent use.
type RandomSourced interface {
	RandomSource() *rand.Rand
}

// Tasked is implemented by suite-style environments that delegate their
// dynamics to a task object.
type Tasked interface {
	Task() any
}
