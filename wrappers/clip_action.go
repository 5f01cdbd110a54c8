package wrappers

import (
	"github.com/zeu5/env-wrappers/env"
	"github.com/zeu5/env-wrappers/nest"
	"github.com/zeu5/env-wrappers/specs"
)

// ClipAction clips every bounded action leaf into its spec range before
// delegating. Unbounded leaves pass through untouched.
type ClipAction struct {
	Base
	spec env.Spec
}

func NewClipAction(e env.Environment) *ClipAction {
	return &ClipAction{
		Base: Base{Environment: e},
		spec: e.ActionSpec(),
	}
}

func (c *ClipAction) Step(action env.Action) (env.TimeStep, error) {
	clipped, err := nest.Zip(action, c.spec, func(leaf []float64, s specs.Spec) ([]float64, error) {
		if err := s.Validate(leaf); err != nil {
			return nil, err
		}
		if bounded, ok := s.(specs.BoundedArray); ok {
			return bounded.Clip(leaf), nil
		}
		return leaf, nil
	})
	if err != nil {
		return env.TimeStep{}, err
	}
	return c.Environment.Step(clipped)
}
