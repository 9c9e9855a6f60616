package domain

import (
	"context"
	"log/slog"

	"verify.dev/pkg/verify/internal/controller"
	pkg "verify.dev/pkg/verify/pkg"
)

// recordingSink forwards lines to the UI and keeps a copy of every line that
// was acknowledged, so the run transcript can be stored afterwards.
type recordingSink struct {
	next  controller.Sink
	lines pkg.Spool[string]
}

func newRecordingSink(next controller.Sink, spoolDir string) (*recordingSink, error) {
	lines, err := pkg.NewSpool[string](spoolDir)
	if err != nil {
		return nil, err
	}

	return &recordingSink{next: next, lines: lines}, nil
}

func (r *recordingSink) WriteLine(ctx context.Context, line string) error {
	if err := r.next.WriteLine(ctx, line); err != nil {
		return err
	}

	return r.lines.Append(line)
}

// Lines returns the recorded transcript.
func (r *recordingSink) Lines() ([]string, error) {
	return r.lines.Items()
}

// Release drops the spooled transcript.
func (r *recordingSink) Release() {
	if err := r.lines.Close(); err != nil {
		slog.Warn("Failed to release transcript spool", "path", r.lines.Path(), "error", err)
	}
}
