package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cs-demo-processor/csdp/internal/artifacts"
	kerrors "github.com/cs-demo-processor/csdp/internal/errors"
	"github.com/cs-demo-processor/csdp/internal/prompt"
	"github.com/cs-demo-processor/csdp/internal/ui"
	"github.com/cs-demo-processor/csdp/internal/utils"
	"github.com/cs-demo-processor/csdp/internal/workflows"

	"github.com/spf13/cobra"
)

var (
	setupForm       bool
	setupAccessible bool

	// setupStdin is where answers are read from.
	// Can be overridden for testing.
	setupStdin io.Reader = os.Stdin
)

// addSetupFlags registers the wizard flags on cmd. Both the root command and
// 'setup' run the wizard, so both carry them.
func addSetupFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&setupForm, "form", false, "ask questions using interactive forms")
	cmd.Flags().BoolVar(&setupAccessible, "accessible", false, "use screen-reader friendly forms (implies --form)")
}

func init() {
	addSetupFlags(setupCmd)
}

func resetSetupCommandState() {
	setupForm = false
	setupAccessible = false
	setupStdin = os.Stdin
}

// SetSetupStdin sets the reader answers are read from, for testing purposes.
func SetSetupStdin(r io.Reader) {
	setupStdin = r
}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Run the interactive setup wizard",
	Long: `Asks for the CS Demo Manager database password and the OBS settings,
then writes the configuration files for both applications.

Files written:
  - ~/.csdm-dev/settings.json (CSDM developer mode)
  - ~/.csdm/settings.json (CSDM installed mode)
  - ./csdm-fork/.env
  - ./config.ini

Defaults for the database endpoint and OBS connection can be changed in
config.toml in the csdp configuration directory.`,
	RunE: runSetup,
}

func newPrompter(in io.Reader, out io.Writer) prompt.Prompter {
	if setupForm || setupAccessible {
		Logger.Debugf("Using form prompter (accessible=%t)", setupAccessible)
		return prompt.NewFormPrompter(in, out, setupAccessible)
	}
	return prompt.NewLinePrompter(in, out, Logger)
}

func runSetup(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting setup wizard")
	ctx := commandContext(cmd)
	p := newPrompter(setupStdin, os.Stdout)

	utils.ClearScreen(os.Stdout)
	printWelcome()
	if err := p.Pause(ctx, "Press Enter to begin..."); err != nil {
		return err
	}

	result, err := workflows.Setup(ctx, workflows.SetupOptions{
		Prompter: p,
		Reporter: setupReporter{},
		Logger:   Logger,
	})
	if errors.Is(err, kerrors.ErrMainConfigWrite) {
		Logger.Debugf("Setup stopped: %v", err)
		return finalPause(p, cmd, "Press Enter to exit.")
	}
	if err != nil {
		return err
	}

	if failed := result.Failed(); len(failed) > 0 {
		paths := make([]string, 0, len(failed))
		for _, f := range failed {
			paths = append(paths, f.Path)
		}
		fmt.Printf("\n%s The following files were not written:%s", ui.Warning.Sprint("Warning:"), utils.FormatPaths(paths))
	}
	printNextSteps()
	return finalPause(p, cmd, "Press Enter to exit the setup.")
}

// finalPause waits for the operator before exiting. The files are already
// written at this point, so closed input is not an error.
func finalPause(p prompt.Prompter, cmd *cobra.Command, message string) error {
	fmt.Println()
	err := p.Pause(commandContext(cmd), message)
	if errors.Is(err, kerrors.ErrInputClosed) {
		return nil
	}
	return err
}

func printWelcome() {
	fmt.Print(ui.Banner("CSDP", "Welcome to the CS Demo Processor Interactive Setup"))
	fmt.Println()
	fmt.Println("This wizard will help you create the configuration files for both the")
	fmt.Println("main application and the CS Demo Manager fork.")
	fmt.Println()
	fmt.Println("Please have the following information ready:")
	fmt.Println("  - The password for the PostgreSQL database user.")
	fmt.Println("  - The full path to the folder where OBS saves its recordings.")
	fmt.Println()
}

func printNextSteps() {
	rule := "================================================================="
	fmt.Println()
	fmt.Println(rule)
	fmt.Println("== Configuration complete. What's next?")
	fmt.Println(rule)
	fmt.Println()
	fmt.Printf("1. YouTube Setup: Run %s to authorize the app.\n", ui.Code.Sprint("python setup_youtube_auth.py"))
	fmt.Println()
	fmt.Println("2. Start Servers: Follow the 'How to Run' steps in the README file.")
	fmt.Println()
	fmt.Printf("3. If you want to connect to your own PostgreSQL database, you can edit the %s file.\n",
		ui.Highlight.Sprint("settings.json"))
	fmt.Printf("   Run %s to check the generated files.\n", ui.Code.Sprint("csdp doctor"))
}

// setupReporter prints wizard progress to stdout.
type setupReporter struct{}

func (setupReporter) StepStarted(step workflows.Step) {
	switch step {
	case workflows.StepDatabase:
		utils.ClearScreen(os.Stdout)
		fmt.Println(ui.Heading.Sprint("Step 1: CS Demo Manager Database Configuration"))
		fmt.Println()
		fmt.Println("The CSDM fork needs to connect to your PostgreSQL database.")
		fmt.Println("The default user is 'csdm' and the database is 'csdm'.")
	case workflows.StepMainApp:
		fmt.Println()
		fmt.Println(ui.Heading.Sprint("Step 2: Main Application Configuration"))
		fmt.Println()
	}
}

func (setupReporter) ArtifactWritten(result artifacts.Result) {
	if result.Name == artifacts.MainConfigName {
		if result.OK() {
			fmt.Println()
			fmt.Println(ui.Heading.Sprint("Success!"))
			fmt.Println()
			fmt.Printf("%s has been created successfully.\n", ui.Highlight.Sprint(artifacts.MainConfigName))
		} else {
			fmt.Printf("\n%s An error occurred while writing the config file: %v\n", ui.Error.Sprint("ERROR:"), result.Err)
		}
		return
	}

	if result.OK() {
		fmt.Printf("%s Created %s at: %s\n", ui.Success.Sprint("[SUCCESS]"), result.Name, ui.Path.Sprint(result.Path))
		return
	}
	fmt.Printf("%s Could not create %s. %v\n", ui.Error.Sprint("[ERROR]"), result.Name, result.Err)
}
