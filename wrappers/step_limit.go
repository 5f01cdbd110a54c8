package wrappers

import "github.com/zeu5/env-wrappers/env"

// StepLimit truncates episodes that run longer than a fixed number of
// steps. Steps past the limit are reported as truncations, keeping the
// discount, so callers can tell the cutoff from a real termination.
type StepLimit struct {
	Base
	limit int
	steps int
}

func NewStepLimit(e env.Environment, limit int) *StepLimit {
	return &StepLimit{
		Base:  Base{Environment: e},
		limit: limit,
	}
}

func (s *StepLimit) Reset() (env.TimeStep, error) {
	s.steps = 0
	return s.Environment.Reset()
}

func (s *StepLimit) Step(action env.Action) (env.TimeStep, error) {
	ts, err := s.Environment.Step(action)
	if err != nil {
		return ts, err
	}
	s.steps++
	if !ts.Last() && s.steps >= s.limit {
		ts = env.Truncation(ts.Reward, ts.Observation)
	}
	return ts, nil
}
