// Package cmd provides the root command and CLI setup for verify.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"verify.dev/pkg/verify/internal/adapter"
	"verify.dev/pkg/verify/internal/controller"
	"verify.dev/pkg/verify/internal/domain"
	"verify.dev/pkg/verify/internal/verification"
)

var reportStore adapter.ReportStore
var discoverer domain.Discoverer
var workflow domain.Workflow
var ui controller.UI

// reportsOutputDirFlag is a root-level flag shared by commands that read/write reports.
var reportsOutputDirFlag string

// storePathFlag selects the SQLite database the verification tests use.
var storePathFlag string

var verboseFlag bool
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	reportStore = adapter.NewReportStore()
	discoverer = domain.NewDiscoverer()
	workflow = domain.NewWorkflow(
		reportStore,
		ui,
		discoverer,
		newVerificationContainer,
	)
}

const rootLongDescription = `Verify runs the verification test cases built into this binary one at a
time against a SQLite blog store, streams progress as it goes and prints a
final tally of succeeded and failed tests.

Every run can be stored as a YAML report and inspected later with "verify view".`

const runLongDescription = `Run every verification test case in order.

Each failure prints "Test <name> failed:" followed by the error details. The run
ends with "Succeeded: <n>. Failed: <m>" and exits non-zero when any test failed.`

const listLongDescription = `List the verification test cases that "verify run" would execute.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "verify",
		Short:        "Run the built-in verification tests",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&reportsOutputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"output directory for run reports (empty disables reports)",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().StringVar(&storePathFlag, storePathFlagName, viper.GetString(storePathConfigKey), "path of the SQLite database used by the tests")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(storePathFlagName), storePathConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// newVerificationContainer builds the test container for one run. Every test
// session opens its own connection to the configured database file.
func newVerificationContainer(_ context.Context) (any, func() error, error) {
	path := strings.TrimSpace(viper.GetString(storePathConfigKey))
	if path == "" {
		return nil, nil, errors.New("store path is empty")
	}

	if path == adapter.InMemoryStorePath {
		return nil, nil, fmt.Errorf("store path %q is not shared between sessions, use a file", path)
	}

	tests := verification.NewTests(func(ctx context.Context) (*adapter.BlogStore, error) {
		return adapter.OpenBlogStore(ctx, path)
	})

	return tests, nil, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}
