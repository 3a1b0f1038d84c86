package cmd

import (
	logger "github.com/cs-demo-processor/csdp/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	RootCmd = &cobra.Command{
		Use:   "csdp",
		Short: "CS Demo Processor - interactive setup for the demo processing pipeline",
		Long: `csdp creates the configuration files needed by the CS Demo Processor
and its CS Demo Manager fork.

Running csdp without a command starts the setup wizard, which writes:
  - ~/.csdm-dev/settings.json and ~/.csdm/settings.json
  - csdm-fork/.env
  - config.ini

Run 'csdp doctor' afterwards to check the generated files.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing %s command with verbose=%t, debug=%t", cmd.Name(), verbose, debug)
		},
		RunE: runSetup,
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
	addSetupFlags(RootCmd)

	RootCmd.AddCommand(setupCmd)
	RootCmd.AddCommand(doctorCmd)
}

// Helper functions for testing

// GetRootCmd returns the RootCmd for testing.
func GetRootCmd() *cobra.Command {
	return RootCmd
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	resetSetupCommandState()
	resetDoctorCommandState()
	resetCobraFlagState()
}

// resetCobraFlagState clears the Changed marker on every flag to prevent test pollution.
func resetCobraFlagState() {
	unset := func(flag *pflag.Flag) {
		flag.Changed = false
	}
	RootCmd.PersistentFlags().VisitAll(unset)
	RootCmd.Flags().VisitAll(unset)
	for _, sub := range RootCmd.Commands() {
		sub.Flags().VisitAll(unset)
	}
}

// SetVerbose sets the verbose flag for testing.
func SetVerbose(v bool) {
	verbose = v
}

// SetDebug sets the debug flag for testing.
func SetDebug(d bool) {
	debug = d
}

// SetLogger sets the logger for testing.
func SetLogger(l logger.Logger) {
	Logger = l
}
