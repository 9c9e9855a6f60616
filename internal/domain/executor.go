package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"verify.dev/pkg/verify/internal/controller"
	m "verify.dev/pkg/verify/internal/model"
)

// ErrAbnormalExit is recorded for a test case that stopped its goroutine
// (runtime.Goexit) without returning.
var ErrAbnormalExit = errors.New("test exited without returning")

// PanicError is recorded for a test case that panicked.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Format prints the panic value and, with %+v, the goroutine stack.
func (e *PanicError) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		_, _ = fmt.Fprintf(s, "%s\n%s", e.Error(), e.Stack)
		return
	}

	_, _ = fmt.Fprint(s, e.Error())
}

// Executor runs test descriptors one at a time and reports through a sink.
type Executor interface {
	Run(ctx context.Context, tests []m.TestDescriptor, sink controller.Sink) (m.Summary, error)
}

// ExecutorOption configures an Executor.
type ExecutorOption func(*executor)

// WithSuccessReporting writes a line for every passing test case as well.
func WithSuccessReporting() ExecutorOption {
	return func(e *executor) {
		e.reportSuccess = true
	}
}

type executor struct {
	reportSuccess bool
}

// NewExecutor constructs a sequential Executor.
func NewExecutor(options ...ExecutorOption) Executor {
	e := &executor{}
	for _, option := range options {
		option(e)
	}

	return e
}

// Run invokes every test case in order. A test case finishes before the next
// one starts, and its failure is written to the sink instead of being returned.
// Only sink errors abort the run.
func (e *executor) Run(ctx context.Context, tests []m.TestDescriptor, sink controller.Sink) (m.Summary, error) {
	summary := m.Summary{}

	if err := writeLines(ctx, sink, controller.StartLine); err != nil {
		return summary, err
	}

	for _, test := range tests {
		outcome := e.runOne(ctx, test)
		summary.Record(outcome)

		if err := e.report(ctx, sink, outcome); err != nil {
			return summary, err
		}
	}

	slog.Info("Test run completed", "succeeded", summary.Succeeded, "failed", summary.Failed)

	if err := writeLines(ctx, sink, controller.SummaryLine(summary)); err != nil {
		return summary, err
	}

	return summary, nil
}

func (e *executor) runOne(ctx context.Context, test m.TestDescriptor) m.Outcome {
	slog.Debug("Starting test", "name", test.Name)
	started := time.Now()

	err := invoke(ctx, test.Func)
	if err != nil {
		slog.Info("Test failed", "name", test.Name, "duration", time.Since(started), "error", err)
		return m.Outcome{Name: test.Name, Status: m.Failed, Err: err}
	}

	slog.Debug("Test succeeded", "name", test.Name, "duration", time.Since(started))

	return m.Outcome{Name: test.Name, Status: m.Succeeded}
}

func (e *executor) report(ctx context.Context, sink controller.Sink, outcome m.Outcome) error {
	switch outcome.Status {
	case m.Failed:
		return writeLines(ctx, sink,
			controller.FailureHeader(outcome.Name),
			FormatFailure(outcome.Err),
			"",
		)
	case m.Succeeded:
		if e.reportSuccess {
			return writeLines(ctx, sink, controller.SuccessLine(outcome.Name))
		}
	}

	return nil
}

// invoke runs fn on its own goroutine and waits for it. Panics and
// runtime.Goexit are converted into errors so they cannot escape the run.
func invoke(ctx context.Context, fn m.TestFunc) error {
	if fn == nil {
		return errors.New("test function is nil")
	}

	done := make(chan error, 1)

	go func() {
		returned := false

		defer func() {
			if r := recover(); r != nil {
				done <- &PanicError{Value: r, Stack: debug.Stack()}
				return
			}

			if !returned {
				done <- ErrAbnormalExit
			}
		}()

		err := fn(ctx)
		returned = true
		done <- err
	}()

	return <-done
}

// FormatFailure renders the error kind and message. Errors that carry a stack
// trace (github.com/pkg/errors, PanicError) print it after the message.
func FormatFailure(err error) string {
	if err == nil {
		return ""
	}

	return fmt.Sprintf("%T: %+v", err, err)
}

func writeLines(ctx context.Context, sink controller.Sink, lines ...string) error {
	for _, line := range lines {
		if err := sink.WriteLine(ctx, line); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}

	return nil
}
