package model

import "time"

// Status is the outcome of a single test case.
type Status int

const (
	// Succeeded indicates the test case completed without error.
	Succeeded Status = iota
	// Failed indicates the test case returned an error, panicked or exited abnormally.
	Failed
)

func (s Status) String() string {
	switch s {
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome is the transient per-test result consumed into a Summary.
type Outcome struct {
	Name   string
	Status Status
	Err    error
}

// Summary holds the aggregate counters of one run.
type Summary struct {
	Succeeded int `yaml:"succeeded"`
	Failed    int `yaml:"failed"`
}

// Total returns the number of processed test cases.
func (s Summary) Total() int {
	return s.Succeeded + s.Failed
}

// Record folds an outcome into the counters.
func (s *Summary) Record(o Outcome) {
	switch o.Status {
	case Succeeded:
		s.Succeeded++
	case Failed:
		s.Failed++
	}
}

// RunReport is the persisted record of one run: its counters and the text that
// was written to the output sink.
type RunReport struct {
	ID         string    `yaml:"id"`
	StartedAt  time.Time `yaml:"started_at"`
	FinishedAt time.Time `yaml:"finished_at"`
	Summary    Summary   `yaml:"summary"`
	Transcript []string  `yaml:"transcript"`
}
