package cmd

import (
	"bytes"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"verify.dev/pkg/verify/internal/domain"
	domainmocks "verify.dev/pkg/verify/internal/domain/mocks"
	m "verify.dev/pkg/verify/internal/model"
)

func newTestRootWithRun(t *testing.T) (*domainmocks.MockWorkflow, []string) {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	originalWorkflow := workflow
	workflow = mockWorkflow
	t.Cleanup(func() { workflow = originalWorkflow })

	return mockWorkflow, []string{"--log-file", filepath.Join(t.TempDir(), "verify.log")}
}

func TestRunCmd_Defaults(t *testing.T) {
	mockWorkflow, logArgs := newTestRootWithRun(t)

	cmd := newRootCmd()
	cmd.AddCommand(newRunCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	mockWorkflow.EXPECT().Run(mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return args.Reports == m.Path(".verify-reports") && !args.VerboseSuccess
	})).Return(nil)

	cmd.SetArgs(append(logArgs, "run"))
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestRunCmd_VerboseSuccess(t *testing.T) {
	mockWorkflow, logArgs := newTestRootWithRun(t)

	cmd := newRootCmd()
	cmd.AddCommand(newRunCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	mockWorkflow.EXPECT().Run(mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return args.VerboseSuccess
	})).Return(nil)

	cmd.SetArgs(append(logArgs, "run", "--verbose-success"))
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestRunCmd_OutputFlag(t *testing.T) {
	mockWorkflow, logArgs := newTestRootWithRun(t)

	cmd := newRootCmd()
	cmd.AddCommand(newRunCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	mockWorkflow.EXPECT().Run(mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return args.Reports == m.Path("./reports-dir")
	})).Return(nil)

	cmd.SetArgs(append(logArgs, "-o", "./reports-dir", "run"))
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestRunCmd_FailedTestsAreReturned(t *testing.T) {
	mockWorkflow, logArgs := newTestRootWithRun(t)

	cmd := newRootCmd()
	cmd.AddCommand(newRunCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	mockWorkflow.EXPECT().Run(mock.Anything, mock.Anything).
		Return(fmt.Errorf("%w: 1 of 2", domain.ErrTestsFailed))

	cmd.SetArgs(append(logArgs, "run"))
	err := cmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTestsFailed)
}

func TestRunCmd_PositionalArgsAreRejected(t *testing.T) {
	_, logArgs := newTestRootWithRun(t)

	cmd := newRootCmd()
	cmd.AddCommand(newRunCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs(append(logArgs, "run", "./..."))
	err := cmd.Execute()
	require.Error(t, err)
}

func TestNewRunCmd(t *testing.T) {
	cmd := newRunCmd()

	assert.Equal(t, "run", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, runLongDescription, cmd.Long)

	verboseSuccessFlag := cmd.Flags().Lookup(verboseSuccessFlagName)
	require.NotNil(t, verboseSuccessFlag)
	assert.Equal(t, "false", verboseSuccessFlag.DefValue)

	assert.NotNil(t, cmd.Flags().Lookup("spool-dir"))
}
