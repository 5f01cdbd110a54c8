package env

// StepType marks the position of a time step within an episode.
type StepType int

const (
	StepFirst StepType = iota
	StepMid
	StepLast
)

func (s StepType) String() string {
	switch s {
	case StepFirst:
		return "First"
	case StepMid:
		return "Mid"
	case StepLast:
		return "Last"
	}
	return "Unknown"
}

// TimeStep is what an environment emits on every reset and step.
type TimeStep struct {
	StepType    StepType
	Reward      float64
	Discount    float64
	Observation Observation
}

// First is the step returned by Reset. It carries no reward.
func First(obs Observation) TimeStep {
	return TimeStep{StepType: StepFirst, Discount: 1, Observation: obs}
}

// Transition is a regular mid-episode step.
func Transition(reward float64, obs Observation) TimeStep {
	return TimeStep{StepType: StepMid, Reward: reward, Discount: 1, Observation: obs}
}

// Termination ends the episode with a zero discount.
func Termination(reward float64, obs Observation) TimeStep {
	return TimeStep{StepType: StepLast, Reward: reward, Observation: obs}
}

// Truncation cuts the episode off while keeping the discount, for limits
// imposed from outside the environment's own dynamics.
func Truncation(reward float64, obs Observation) TimeStep {
	return TimeStep{StepType: StepLast, Reward: reward, Discount: 1, Observation: obs}
}

func (t TimeStep) First() bool { return t.StepType == StepFirst }

func (t TimeStep) Mid() bool { return t.StepType == StepMid }

func (t TimeStep) Last() bool { return t.StepType == StepLast }
