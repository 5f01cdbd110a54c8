package env

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/zeu5/env-wrappers/nest"
)

// RecordedStep is the flat, serializable form of one transition. Nested
// actions and observations are stored as their leaves in traversal
// order; the nesting itself is recoverable from the environment's specs.
type RecordedStep struct {
	StepType StepType    `json:"step_type"`
	Reward   float64     `json:"reward"`
	Discount float64     `json:"discount"`
	Action   [][]float64 `json:"action"`
	Obs      [][]float64 `json:"obs"`
}

type RecordedTrace []RecordedStep

// SaveTraces writes one JSON line per trace to path.
func SaveTraces(path string, traces []*Trace) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("error opening file: %s", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, trace := range traces {
		recorded := make(RecordedTrace, 0, trace.Len())
		for i := 0; i < trace.Len(); i++ {
			_, action, next, _ := trace.Get(i)
			recorded = append(recorded, RecordedStep{
				StepType: next.StepType,
				Reward:   next.Reward,
				Discount: next.Discount,
				Action:   nest.Leaves(action),
				Obs:      nest.Leaves(next.Observation),
			})
		}
		data, err := json.Marshal(recorded)
		if err != nil {
			return fmt.Errorf("error encoding trace: %s", err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("error writing trace: %s", err)
		}
	}
	return w.Flush()
}

// LoadTraces reads traces written by SaveTraces.
func LoadTraces(path string) ([]RecordedTrace, error) {
	traces := make([]RecordedTrace, 0)
	f, err := os.Open(path)
	if err != nil {
		return traces, fmt.Errorf("error reading file: %s", err)
	}
	defer f.Close()

	maxTraceSize := 5 * 1024 * 1024
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, maxTraceSize), maxTraceSize)
	for scanner.Scan() {
		bs := scanner.Bytes()
		if len(bs) >= maxTraceSize {
			return traces, errors.New("error trace too big")
		}
		var t RecordedTrace
		if err := json.Unmarshal(bs, &t); err != nil {
			return traces, fmt.Errorf("error parsing file: %s", err)
		}
		traces = append(traces, t)
	}
	if err := scanner.Err(); err != nil {
		return traces, fmt.Errorf("failed to read traces: %s", err)
	}
	return traces, nil
}
