package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"verify.dev/pkg/verify/internal/adapter"
	"verify.dev/pkg/verify/internal/controller"
	m "verify.dev/pkg/verify/internal/model"
)

// ErrTestsFailed is returned by Workflow.Run when at least one test case failed.
var ErrTestsFailed = errors.New("tests failed")

// ContainerFactory builds a fresh test container for one run. The returned
// release function, if any, is called once the run finishes.
type ContainerFactory func(ctx context.Context) (container any, release func() error, err error)

// RunArgs contains the arguments for running the verification tests.
type RunArgs struct {
	Reports        m.Path
	VerboseSuccess bool
	SpoolDir       string
}

// ListArgs contains the arguments for listing the verification tests.
type ListArgs struct{}

// ViewArgs contains the arguments for viewing stored run reports.
type ViewArgs struct {
	Reports m.Path
}

// Workflow is the entry point used by the CLI commands.
type Workflow interface {
	Run(ctx context.Context, args RunArgs) error
	List(ctx context.Context, args ListArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	adapter.ReportStore
	controller.UI
	Discoverer
	newContainer ContainerFactory
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	reportStore adapter.ReportStore,
	ui controller.UI,
	discoverer Discoverer,
	newContainer ContainerFactory,
) Workflow {
	return &workflow{
		ReportStore:  reportStore,
		UI:           ui,
		Discoverer:   discoverer,
		newContainer: newContainer,
	}
}

// Run executes every discovered test case, streaming progress to the UI, and
// stores a report of the run when a reports directory is configured.
func (w *workflow) Run(ctx context.Context, args RunArgs) error {
	if err := w.Start(ctx, controller.WithRunMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	recorder, err := newRecordingSink(w.UI, args.SpoolDir)
	if err != nil {
		w.Close(ctx)
		return fmt.Errorf("create transcript: %w", err)
	}
	defer recorder.Release()

	report := m.RunReport{ID: uuid.NewString(), StartedAt: time.Now().UTC()}

	var summary m.Summary

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		defer w.Close(ctx)

		var runErr error

		summary, runErr = w.execute(groupCtx, args, recorder)

		return runErr
	})

	group.Go(func() error {
		w.Wait(groupCtx)
		return nil
	})

	if err := group.Wait(); err != nil {
		slog.Error("Test run aborted", "error", err)
		return err
	}

	report.FinishedAt = time.Now().UTC()
	report.Summary = summary

	if args.Reports != "" {
		if err := w.saveReport(args.Reports, report, recorder); err != nil {
			return err
		}
	}

	if summary.Failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrTestsFailed, summary.Failed, summary.Total())
	}

	return nil
}

func (w *workflow) execute(ctx context.Context, args RunArgs, sink controller.Sink) (m.Summary, error) {
	container, release, err := w.newContainer(ctx)
	if err != nil {
		return m.Summary{}, fmt.Errorf("create test container: %w", err)
	}

	if release != nil {
		defer func() {
			if err := release(); err != nil {
				slog.Error("Failed to release test container", "error", err)
			}
		}()
	}

	var options []ExecutorOption
	if args.VerboseSuccess {
		options = append(options, WithSuccessReporting())
	}

	return NewHarness(w.Discoverer, NewExecutor(options...)).Run(ctx, container, sink)
}

func (w *workflow) saveReport(dir m.Path, report m.RunReport, recorder *recordingSink) error {
	transcript, err := recorder.Lines()
	if err != nil {
		return fmt.Errorf("read transcript: %w", err)
	}

	report.Transcript = transcript

	if err := w.SaveReport(dir, report); err != nil {
		slog.Error("Failed to save report", "dir", dir, "error", err)
		return fmt.Errorf("save report: %w", err)
	}

	return nil
}

// List shows the test cases the container exposes without running them.
func (w *workflow) List(ctx context.Context, _ ListArgs) error {
	if err := w.Start(ctx, controller.WithListMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	container, release, err := w.newContainer(ctx)
	if err != nil {
		return fmt.Errorf("create test container: %w", err)
	}

	if release != nil {
		defer func() {
			if err := release(); err != nil {
				slog.Error("Failed to release test container", "error", err)
			}
		}()
	}

	if err := w.DisplayTests(ctx, w.Discover(container)); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	w.Wait(ctx)

	return nil
}

// View shows the reports of previous runs.
func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	reports, err := w.LoadReports(args.Reports)
	if err != nil {
		slog.Error("Failed to load reports", "dir", args.Reports, "error", err)
		return fmt.Errorf("load reports: %w", err)
	}

	if err := w.DisplayReports(ctx, reports); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	return nil
}
