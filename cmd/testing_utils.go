// Package cmd contains testing utilities shared between command tests.
// This file provides common functions for setting up test environments,
// capturing output, and building a CLI with scripted input.
package cmd

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cs-demo-processor/csdp/internal/configs"
	logger "github.com/cs-demo-processor/csdp/internal/logging"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// testDirs holds the temporary directories of one test environment.
type testDirs struct {
	settings     *configs.Settings
	outputFolder string
}

// setupTestEnvironment points the setup settings at temporary directories,
// creates a csdm-fork checkout and an OBS output folder, and restores the
// original state when the test ends.
func setupTestEnvironment(t *testing.T) *testDirs {
	t.Helper()
	tempDir := t.TempDir()

	settings := &configs.Settings{
		HomeDir:   filepath.Join(tempDir, "home"),
		ConfigDir: filepath.Join(tempDir, "config", "csdp"),
		WorkDir:   filepath.Join(tempDir, "work"),
		Username:  "testuser",
	}
	outputFolder := filepath.Join(tempDir, "obs")

	for _, dir := range []string{settings.HomeDir, settings.CSDMForkDir(), outputFolder} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create %s: %v", dir, err)
		}
	}

	originalSettings := configs.SetupSettings
	originalNoColor := color.NoColor
	configs.SetupSettings = settings
	color.NoColor = true
	t.Setenv("NO_COLOR", "1")

	t.Cleanup(func() {
		configs.SetupSettings = originalSettings
		color.NoColor = originalNoColor
		ResetGlobalState()
	})

	return &testDirs{settings: settings, outputFolder: outputFolder}
}

// captureOutput captures both stdout and stderr during function execution.
func captureOutput(fn func() error) (string, error) {
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	outputChan := make(chan string, 2)

	go func() {
		var buf bytes.Buffer
		_, err := io.Copy(&buf, stdoutReader)
		if err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		outputChan <- buf.String()
	}()

	go func() {
		var buf bytes.Buffer
		_, err := io.Copy(&buf, stderrReader)
		if err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		outputChan <- buf.String()
	}()

	err := fn()

	stdoutWriter.Close()
	stderrWriter.Close()

	os.Stdout = originalStdout
	os.Stderr = originalStderr

	stdout := <-outputChan
	stderr := <-outputChan

	return stdout + stderr, err
}

// createTestCLI returns the root command primed with args and the scripted stdin.
func createTestCLI(args []string, stdin string, verboseFlag, debugFlag bool) *cobra.Command {
	ResetGlobalState()
	verbose = verboseFlag
	debug = debugFlag

	Logger = logger.Logger{
		Verbose: verbose,
		Debug:   debug,
	}

	SetSetupStdin(strings.NewReader(stdin))
	// A nil slice would make cobra fall back to os.Args.
	if args == nil {
		args = []string{}
	}
	RootCmd.SetArgs(args)

	if err := RootCmd.PersistentFlags().Set("verbose", fmt.Sprintf("%t", verboseFlag)); err != nil {
		log.Fatalf("Failed to set verbose flag for testing: %s", err)
	}
	if err := RootCmd.PersistentFlags().Set("debug", fmt.Sprintf("%t", debugFlag)); err != nil {
		log.Fatalf("Failed to set debug flag for testing: %s", err)
	}

	return RootCmd
}

// wizardInput builds the answers for a full wizard run: begin, password,
// output folder, blank host and port, and the final Enter.
func wizardInput(password, outputFolder string) string {
	return "\n" + password + "\n" + outputFolder + "\n\n\n\n"
}

// runTestCLI executes the CLI with args and stdin, returning the captured output.
func runTestCLI(args []string, stdin string) (string, error) {
	return captureOutput(func() error {
		return createTestCLI(args, stdin, false, false).Execute()
	})
}
