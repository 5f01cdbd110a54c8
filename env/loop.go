package env

import (
	"context"
	"fmt"
)

type LoopConfig struct {
	Episodes    int
	Horizon     int
	Policy      Policy
	Environment Environment
}

// Loop drives a policy against an environment for a fixed number of
// episodes, collecting the trace of each.
type Loop struct {
	config      *LoopConfig
	traces      []*Trace
	policy      Policy
	environment Environment
}

func NewLoop(config *LoopConfig) *Loop {
	return &Loop{
		config:      config,
		traces:      make([]*Trace, config.Episodes),
		policy:      config.Policy,
		environment: config.Environment,
	}
}

// Run plays out all configured episodes. The context cancels between
// steps.
func (l *Loop) Run(ctx context.Context) error {
	for i := 0; i < l.config.Episodes; i++ {
		trace, err := l.runEpisode(ctx)
		if err != nil {
			return fmt.Errorf("episode %d: %w", i, err)
		}
		l.traces[i] = trace
	}
	return nil
}

func (l *Loop) runEpisode(ctx context.Context) (*Trace, error) {
	l.policy.Reset()
	ts, err := l.environment.Reset()
	if err != nil {
		return nil, err
	}
	trace := NewTrace()

	for i := 0; i < l.config.Horizon; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		action, err := l.policy.Act(i, ts)
		if err != nil {
			return nil, err
		}
		next, err := l.environment.Step(action)
		if err != nil {
			return nil, err
		}
		trace.Append(ts, action, next)
		ts = next
		if ts.Last() {
			break
		}
	}
	return trace, nil
}

// Traces returns the collected episode traces. Only populated after Run.
func (l *Loop) Traces() []*Trace {
	return l.traces
}
