// Package model defines the data structures shared by the verification harness.
package model

import "context"

// TestFunc is a single test case body. It blocks until the work completes and
// reports failure through the returned error; there is no success payload.
type TestFunc func(ctx context.Context) error

// TestDescriptor identifies one discovered test case.
// Descriptors are bound to the container they were discovered on and are not
// modified for the duration of a run.
type TestDescriptor struct {
	Name string
	Func TestFunc
}

// Valid reports whether the descriptor can be invoked.
func (d TestDescriptor) Valid() bool {
	return d.Name != "" && d.Func != nil
}

// Path represents a file system path.
type Path string
