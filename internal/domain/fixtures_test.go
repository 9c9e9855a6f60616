package domain

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// lineRecorder is a Sink that keeps every line it receives.
type lineRecorder struct {
	mu    sync.Mutex
	lines []string
}

func (r *lineRecorder) WriteLine(_ context.Context, line string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lines = append(r.lines, line)

	return nil
}

func (r *lineRecorder) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.lines...)
}

func (r *lineRecorder) count(line string) int {
	n := 0

	for _, l := range r.Lines() {
		if l == line {
			n++
		}
	}

	return n
}

type emptyContainer struct{}

type passingPair struct{}

func (passingPair) Alpha() error { return nil }

func (passingPair) Beta() error { return nil }

type mixedPair struct{}

func (mixedPair) Alpha() error { return nil }

func (mixedPair) Beta() error { return errors.New("boom") }

type failThenPass struct {
	passed bool
}

func (f *failThenPass) Fails() error { return errors.New("first test fails") }

func (f *failThenPass) Passes() error {
	f.passed = true
	return nil
}

// sharedCounter has two tests over one counter. First mutates it and fails,
// Second must still run and observe the mutation.
type sharedCounter struct {
	count    int
	observed int
	calls    int
}

func (s *sharedCounter) First() error {
	s.calls++
	s.count++

	return errors.New("failed after increment")
}

func (s *sharedCounter) Second() error {
	s.calls++
	s.observed = s.count

	if s.count != 1 {
		return fmt.Errorf("counter is %d, want 1", s.count)
	}

	return nil
}

// shapes mixes test methods with methods the discoverer must skip.
type shapes struct {
	calls []string
}

func (s *shapes) Plain() error {
	s.calls = append(s.calls, "Plain")
	return nil
}

func (s *shapes) WithContext(ctx context.Context) error {
	s.calls = append(s.calls, "WithContext")
	return ctx.Err()
}

func (s *shapes) Variadic(...int) error { return nil }

func (s *shapes) TakesArgument(int) error { return nil }

func (s *shapes) ContextAndArgument(context.Context, int) error { return nil }

func (s *shapes) TwoResults() (int, error) { return 0, nil }

func (s *shapes) NoResult() {}

func (s *shapes) WrongResult() string { return "" }

func (s *shapes) unexported() error { return nil }
