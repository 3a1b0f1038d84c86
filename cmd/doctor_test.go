package cmd

import (
	"encoding/json"
	"os"
	"strings"
	"testing"
)

// runDoctorCLI runs 'csdp doctor' and returns the output and the exit code
// requested, or -1 when the command did not ask to exit.
func runDoctorCLI(t *testing.T, args ...string) (string, int) {
	t.Helper()
	exitCode := -1

	output, err := captureOutput(func() error {
		cmd := createTestCLI(append([]string{"doctor"}, args...), "", false, false)
		SetDoctorExitFunc(func(code int) {
			exitCode = code
		})
		return cmd.Execute()
	})
	if err != nil {
		t.Fatalf("Doctor command failed: %v\nOutput: %s", err, output)
	}
	return output, exitCode
}

func TestDoctorCommand(t *testing.T) {
	t.Run("HealthyAfterSetup", func(t *testing.T) {
		dirs := setupTestEnvironment(t)
		if output, err := runTestCLI(nil, wizardInput("pw", dirs.outputFolder)); err != nil {
			t.Fatalf("Setup failed: %v\nOutput: %s", err, output)
		}

		output, exitCode := runDoctorCLI(t)
		if exitCode != -1 {
			t.Errorf("Expected no exit call, got %d\nOutput: %s", exitCode, output)
		}
		if !strings.Contains(output, "Summary: 6 passed") {
			t.Errorf("Expected all checks to pass:\n%s", output)
		}
		if !strings.Contains(output, "✓ Health checks completed") {
			t.Errorf("Expected completion message:\n%s", output)
		}
	})

	t.Run("ErrorsExitWithTwo", func(t *testing.T) {
		setupTestEnvironment(t)

		output, exitCode := runDoctorCLI(t)
		if exitCode != 2 {
			t.Errorf("Expected exit code 2, got %d\nOutput: %s", exitCode, output)
		}
		if !strings.Contains(output, "Suggestions:") || !strings.Contains(output, "csdp setup") {
			t.Errorf("Expected rerun suggestion:\n%s", output)
		}
	})

	t.Run("WarningsExitWithOne", func(t *testing.T) {
		dirs := setupTestEnvironment(t)
		if output, err := runTestCLI(nil, wizardInput("pw", dirs.outputFolder)); err != nil {
			t.Fatalf("Setup failed: %v\nOutput: %s", err, output)
		}
		if err := os.Remove(dirs.outputFolder); err != nil {
			t.Fatalf("Failed to remove output folder: %v", err)
		}

		output, exitCode := runDoctorCLI(t)
		if exitCode != 1 {
			t.Errorf("Expected exit code 1, got %d\nOutput: %s", exitCode, output)
		}
		if !strings.Contains(output, "⚠ Health checks completed with warnings") {
			t.Errorf("Expected warning summary:\n%s", output)
		}
	})

	t.Run("JSONOutput", func(t *testing.T) {
		setupTestEnvironment(t)

		output, exitCode := runDoctorCLI(t, "--json")
		if exitCode != 2 {
			t.Errorf("Expected exit code 2, got %d", exitCode)
		}

		var raw map[string]any
		if err := json.Unmarshal([]byte(output), &raw); err != nil {
			t.Fatalf("Output is not JSON: %v\n%s", err, output)
		}
		checks, ok := raw["checks"].([]any)
		if !ok || len(checks) != 6 {
			t.Fatalf("Expected 6 checks, got %v", raw["checks"])
		}
		if first := checks[0].(map[string]any); first["status"] != "error" {
			t.Errorf("Expected status as string, got %v", first["status"])
		}
	})
}
