package domain

import (
	"context"

	"verify.dev/pkg/verify/internal/controller"
	m "verify.dev/pkg/verify/internal/model"
)

// Harness discovers the test cases of a container and runs them.
type Harness interface {
	Run(ctx context.Context, container any, sink controller.Sink) (m.Summary, error)
}

type harness struct {
	Discoverer
	Executor
}

// NewHarness composes a Discoverer and an Executor.
func NewHarness(discoverer Discoverer, executor Executor) Harness {
	return &harness{
		Discoverer: discoverer,
		Executor:   executor,
	}
}

func (h *harness) Run(ctx context.Context, container any, sink controller.Sink) (m.Summary, error) {
	return h.Executor.Run(ctx, h.Discover(container), sink)
}

// RunHarness runs every test case of container with the default discoverer
// and an executor configured by options.
func RunHarness(ctx context.Context, container any, sink controller.Sink, options ...ExecutorOption) (m.Summary, error) {
	return NewHarness(NewDiscoverer(), NewExecutor(options...)).Run(ctx, container, sink)
}
