package domain

import (
	"context"
	"log/slog"
	"reflect"

	m "verify.dev/pkg/verify/internal/model"
)

// Registry is implemented by containers that list their own test cases.
// The returned order is used as is.
type Registry interface {
	Tests() []m.TestDescriptor
}

// Discoverer enumerates the test cases exposed by a container.
type Discoverer interface {
	Discover(container any) []m.TestDescriptor
}

type discoverer struct{}

// NewDiscoverer returns a Discoverer that honours Registry implementations and
// falls back to inspecting the container's exported methods.
func NewDiscoverer() Discoverer {
	return &discoverer{}
}

var (
	contextType = reflect.TypeOf((*context.Context)(nil)).Elem()
	errorType   = reflect.TypeOf((*error)(nil)).Elem()
)

// Discover returns the container's test cases in a stable order.
//
// Without a Registry, an exported method is a test case when its signature is
// func() error or func(context.Context) error. Methods come back in
// lexicographic order, so repeated calls on the same type agree.
func (d *discoverer) Discover(container any) []m.TestDescriptor {
	if container == nil {
		return []m.TestDescriptor{}
	}

	value := reflect.ValueOf(container)
	if value.Kind() == reflect.Ptr && value.IsNil() {
		return []m.TestDescriptor{}
	}

	if registry, ok := container.(Registry); ok {
		return fromRegistry(registry)
	}

	valueType := value.Type()
	tests := make([]m.TestDescriptor, 0, valueType.NumMethod())

	for i := range valueType.NumMethod() {
		method := valueType.Method(i)
		if !method.IsExported() {
			continue
		}

		fn, ok := bindTestFunc(value.Method(i))
		if !ok {
			slog.Debug("Skipping non-test method", "container", valueType.String(), "method", method.Name)
			continue
		}

		tests = append(tests, m.TestDescriptor{Name: method.Name, Func: fn})
	}

	slog.Debug("Discovered tests", "container", valueType.String(), "count", len(tests))

	return tests
}

func fromRegistry(registry Registry) []m.TestDescriptor {
	registered := registry.Tests()
	tests := make([]m.TestDescriptor, 0, len(registered))

	for _, test := range registered {
		if !test.Valid() {
			slog.Warn("Ignoring invalid registered test", "name", test.Name)
			continue
		}

		tests = append(tests, test)
	}

	return tests
}

// bindTestFunc adapts a bound method value to a TestFunc when its signature
// qualifies as a test case.
func bindTestFunc(method reflect.Value) (m.TestFunc, bool) {
	methodType := method.Type()
	if methodType.IsVariadic() || methodType.NumOut() != 1 || methodType.Out(0) != errorType {
		return nil, false
	}

	switch methodType.NumIn() {
	case 0:
		fn, ok := method.Interface().(func() error)
		if !ok {
			return nil, false
		}

		return func(context.Context) error { return fn() }, true
	case 1:
		if methodType.In(0) != contextType {
			return nil, false
		}

		fn, ok := method.Interface().(func(context.Context) error)

		return fn, ok
	default:
		return nil, false
	}
}
