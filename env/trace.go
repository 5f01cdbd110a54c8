package env

// Trace of an episode as (step, action, next step) triplets.
type Trace struct {
	steps   []TimeStep
	actions []Action
	next    []TimeStep
}

func NewTrace() *Trace {
	return &Trace{
		steps:   make([]TimeStep, 0),
		actions: make([]Action, 0),
		next:    make([]TimeStep, 0),
	}
}

func (t *Trace) Append(step TimeStep, action Action, next TimeStep) {
	t.steps = append(t.steps, step)
	t.actions = append(t.actions, action)
	t.next = append(t.next, next)
}

func (t *Trace) Len() int {
	return len(t.steps)
}

func (t *Trace) Get(i int) (TimeStep, Action, TimeStep, bool) {
	if i < 0 || i >= len(t.steps) {
		return TimeStep{}, nil, TimeStep{}, false
	}
	return t.steps[i], t.actions[i], t.next[i], true
}

func (t *Trace) Last() (TimeStep, Action, TimeStep, bool) {
	if len(t.steps) < 1 {
		return TimeStep{}, nil, TimeStep{}, false
	}
	last := len(t.steps) - 1
	return t.steps[last], t.actions[last], t.next[last], true
}

// Return is the undiscounted sum of rewards along the trace.
func (t *Trace) Return() float64 {
	total := 0.0
	for _, ts := range t.next {
		total += ts.Reward
	}
	return total
}
