package verification

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"verify.dev/pkg/verify/internal/adapter"
	"verify.dev/pkg/verify/internal/controller"
	"verify.dev/pkg/verify/internal/domain"
)

func fileStoreOpener(t *testing.T) StoreOpener {
	t.Helper()

	path := filepath.Join(t.TempDir(), "verification.db")

	return func(ctx context.Context) (*adapter.BlogStore, error) {
		return adapter.OpenBlogStore(ctx, path)
	}
}

func TestTests_CompiledQuery(t *testing.T) {
	tests := NewTests(fileStoreOpener(t))

	require.NoError(t, tests.CompiledQuery(context.Background()))
}

func TestTests_CompiledQuery_IsRepeatable(t *testing.T) {
	tests := NewTests(fileStoreOpener(t))

	require.NoError(t, tests.CompiledQuery(context.Background()))
	require.NoError(t, tests.CompiledQuery(context.Background()))
}

func TestTests_SelfJoinProjection(t *testing.T) {
	tests := NewTests(fileStoreOpener(t))

	require.NoError(t, tests.SelfJoinProjection(context.Background()))
}

func TestTests_SharedStoreAcrossCases(t *testing.T) {
	tests := NewTests(fileStoreOpener(t))
	ctx := context.Background()

	require.NoError(t, tests.SelfJoinProjection(ctx))
	require.NoError(t, tests.CompiledQuery(ctx))
	require.NoError(t, tests.SelfJoinProjection(ctx))
}

func TestTests_OpenFailureIsWrapped(t *testing.T) {
	openErr := errors.New("disk on fire")
	tests := NewTests(func(context.Context) (*adapter.BlogStore, error) {
		return nil, openErr
	})

	err := tests.CompiledQuery(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, openErr)
	assert.Contains(t, err.Error(), "open store")

	err = tests.SelfJoinProjection(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, openErr)
}

func TestTests_Discovery(t *testing.T) {
	discovered := domain.NewDiscoverer().Discover(NewTests(fileStoreOpener(t)))

	names := make([]string, 0, len(discovered))
	for _, test := range discovered {
		names = append(names, test.Name)
	}

	assert.Equal(t, []string{"CompiledQuery", "SelfJoinProjection"}, names)
}

func TestTests_RunThroughHarness(t *testing.T) {
	var lines []string

	sink := func(_ context.Context, line string) error {
		lines = append(lines, line)
		return nil
	}

	summary, err := domain.RunHarness(context.Background(), NewTests(fileStoreOpener(t)), controller.SinkFunc(sink))
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Succeeded)
	assert.Equal(t, 0, summary.Failed)
	assert.Equal(t, []string{"Running tests...", "Succeeded: 2. Failed: 0"}, lines)
}

func TestExpectation(t *testing.T) {
	t.Run("no failures", func(t *testing.T) {
		expect := newExpectation("Passing")
		expect.Equal(1, 1)
		expect.True(true)

		assert.NoError(t, expect.Err())
	})

	t.Run("collects every failure", func(t *testing.T) {
		expect := newExpectation("Failing")
		expect.Equal(2, 3, "first")
		expect.Same(&adapter.Blog{ID: 1}, &adapter.Blog{ID: 1}, "second")

		err := expect.Err()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Failing: 2 assertion(s) failed")
		assert.Contains(t, err.Error(), "first")
		assert.Contains(t, err.Error(), "second")
	})
}
