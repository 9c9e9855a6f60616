package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"verify.dev/pkg/verify/internal/domain"
	m "verify.dev/pkg/verify/internal/model"
)

var runVerboseSuccessFlag bool
var runSpoolDirFlag string

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the verification tests",
		Long:  runLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.Run(cmd.Context(), domain.RunArgs{
				Reports:        m.Path(viper.GetString(outputFlagName)),
				VerboseSuccess: viper.GetBool(verboseSuccessConfigKey),
				SpoolDir:       viper.GetString(spoolDirConfigKey),
			})
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&runVerboseSuccessFlag, verboseSuccessFlagName, viper.GetBool(verboseSuccessConfigKey), "also print a line for every passing test")
	bindFlagToConfig(cmd.Flags().Lookup(verboseSuccessFlagName), verboseSuccessConfigKey)
	cmd.Flags().StringVar(&runSpoolDirFlag, "spool-dir", viper.GetString(spoolDirConfigKey), "directory for the temporary run transcript (default: system temp dir)")
	bindFlagToConfig(cmd.Flags().Lookup("spool-dir"), spoolDirConfigKey)
}
