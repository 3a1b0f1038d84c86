package workflows

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/cs-demo-processor/csdp/internal/artifacts"
	"github.com/cs-demo-processor/csdp/internal/audit"
	"github.com/cs-demo-processor/csdp/internal/configs"
	"github.com/cs-demo-processor/csdp/internal/utils"
)

// CheckStatus represents the result status of a health check.
type CheckStatus int

const (
	// CheckPass means the check passed.
	CheckPass CheckStatus = iota
	// CheckWarning means the check found a non-critical issue.
	CheckWarning
	// CheckError means the check found a critical issue.
	CheckError
)

// String returns a string representation of CheckStatus.
func (s CheckStatus) String() string {
	switch s {
	case CheckPass:
		return "pass"
	case CheckWarning:
		return "warning"
	case CheckError:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalJSON implements json.Marshaler for CheckStatus.
func (s CheckStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// CheckResult holds the result of a single health check.
type CheckResult struct {
	Name       string      `json:"name"`
	Status     CheckStatus `json:"status"`
	Message    string      `json:"message"`
	Suggestion string      `json:"suggestion,omitempty"`
}

// DoctorResult holds the complete result of the doctor workflow.
type DoctorResult struct {
	Checks      []CheckResult `json:"checks"`
	Summary     DoctorSummary `json:"summary"`
	Suggestions []string      `json:"suggestions,omitempty"`
}

// DoctorSummary holds counts of checks by status.
type DoctorSummary struct {
	Passed   int `json:"passed"`
	Warnings int `json:"warnings"`
	Errors   int `json:"errors"`
}

// DoctorOptions configures the doctor workflow.
type DoctorOptions struct{}

const rerunSetup = "Run 'csdp setup' to regenerate the configuration files"

// Doctor reads back the files written by Setup and reports problems.
//
// The doctor workflow checks:
//   - Both CSDM settings files exist and parse
//   - The two settings files are identical
//   - The fork's .env file holds a PostgreSQL connection string
//   - config.ini parses and points at an existing output folder
//   - A setup run has been recorded
func Doctor(ctx context.Context, opts DoctorOptions) (*DoctorResult, error) {
	settings := configs.SetupSettings

	checks := []func(*configs.Settings) CheckResult{
		checkDevSettings,
		checkProdSettings,
		checkSettingsIdentical,
		checkEnvFile,
		checkMainConfig,
		checkHistory,
	}

	var results []CheckResult
	for _, check := range checks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		results = append(results, check(settings))
	}

	var suggestions []string
	seen := make(map[string]bool)
	for _, result := range results {
		if result.Suggestion != "" && result.Status != CheckPass && !seen[result.Suggestion] {
			suggestions = append(suggestions, result.Suggestion)
			seen[result.Suggestion] = true
		}
	}

	return &DoctorResult{
		Checks:      results,
		Summary:     calculateDoctorSummary(results),
		Suggestions: suggestions,
	}, nil
}

func checkDevSettings(s *configs.Settings) CheckResult {
	return checkSettingsFile("Dev settings", s.DevSettingsPath())
}

func checkProdSettings(s *configs.Settings) CheckResult {
	return checkSettingsFile("Prod settings", s.ProdSettingsPath())
}

// checkSettingsFile checks that a CSDM settings file exists, parses, and has a password.
func checkSettingsFile(name, path string) CheckResult {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return CheckResult{
			Name:       name,
			Status:     CheckError,
			Message:    fmt.Sprintf("%s not found at %s", name, path),
			Suggestion: rerunSetup,
		}
	}
	if err != nil {
		return CheckResult{
			Name:       name,
			Status:     CheckError,
			Message:    fmt.Sprintf("Failed to read %s: %v", path, err),
			Suggestion: "Check that the settings file is readable",
		}
	}

	parsed, err := artifacts.ParseCSDMSettings(data)
	if err != nil {
		return CheckResult{
			Name:       name,
			Status:     CheckError,
			Message:    fmt.Sprintf("%s is not valid JSON: %v", path, err),
			Suggestion: rerunSetup,
		}
	}

	if parsed.Database.Password == "" {
		return CheckResult{
			Name:       name,
			Status:     CheckWarning,
			Message:    fmt.Sprintf("%s has an empty database password", path),
			Suggestion: rerunSetup,
		}
	}

	return CheckResult{
		Name:    name,
		Status:  CheckPass,
		Message: fmt.Sprintf("%s valid (%s@%s:%d)", name, parsed.Database.User, parsed.Database.Host, parsed.Database.Port),
	}
}

// checkSettingsIdentical checks that developer and production settings match.
func checkSettingsIdentical(s *configs.Settings) CheckResult {
	const name = "Settings consistency"

	dev, devErr := os.ReadFile(s.DevSettingsPath())
	prod, prodErr := os.ReadFile(s.ProdSettingsPath())
	if devErr != nil || prodErr != nil {
		return CheckResult{
			Name:       name,
			Status:     CheckWarning,
			Message:    "Cannot compare settings files (one or both are missing)",
			Suggestion: rerunSetup,
		}
	}

	if !bytes.Equal(dev, prod) {
		return CheckResult{
			Name:       name,
			Status:     CheckWarning,
			Message:    "Dev and prod settings files differ",
			Suggestion: rerunSetup,
		}
	}

	return CheckResult{
		Name:    name,
		Status:  CheckPass,
		Message: "Dev and prod settings files are identical",
	}
}

// checkEnvFile checks the CSDM fork's .env file.
func checkEnvFile(s *configs.Settings) CheckResult {
	const name = "CSDM fork .env"

	if !utils.PathExists(s.CSDMForkDir()) {
		return CheckResult{
			Name:       name,
			Status:     CheckWarning,
			Message:    fmt.Sprintf("CSDM fork not found at %s", s.CSDMForkDir()),
			Suggestion: "Run csdp from the directory containing the csdm-fork checkout",
		}
	}

	if !utils.PathExists(s.EnvFilePath()) {
		return CheckResult{
			Name:       name,
			Status:     CheckError,
			Message:    fmt.Sprintf(".env not found at %s", s.EnvFilePath()),
			Suggestion: rerunSetup,
		}
	}

	db, err := artifacts.ParseEnv(s.EnvFilePath())
	if err != nil {
		return CheckResult{
			Name:       name,
			Status:     CheckError,
			Message:    err.Error(),
			Suggestion: rerunSetup,
		}
	}

	// The dev settings check reports a missing or broken settings file.
	if data, err := os.ReadFile(s.DevSettingsPath()); err == nil {
		if settings, err := artifacts.ParseCSDMSettings(data); err == nil && !envMatchesSettings(db, settings) {
			return CheckResult{
				Name:       name,
				Status:     CheckWarning,
				Message:    fmt.Sprintf(".env connection to %s does not match the dev settings file", db.Endpoint()),
				Suggestion: rerunSetup,
			}
		}
	}

	return CheckResult{
		Name:    name,
		Status:  CheckPass,
		Message: fmt.Sprintf(".env points at %s", db.Endpoint()),
	}
}

func envMatchesSettings(db *artifacts.EnvDatabase, settings *artifacts.CSDMSettings) bool {
	d := settings.Database
	return db.User == d.User &&
		db.Host == d.Host &&
		db.Port == d.Port &&
		db.Database == d.Database &&
		db.PasswordMatches(d.Password)
}

// checkMainConfig checks config.ini and the output folder it names.
func checkMainConfig(s *configs.Settings) CheckResult {
	const name = "Main application config"
	path := s.MainConfigPath()

	if !utils.PathExists(path) {
		return CheckResult{
			Name:       name,
			Status:     CheckError,
			Message:    fmt.Sprintf("config.ini not found at %s", path),
			Suggestion: rerunSetup,
		}
	}

	config, err := artifacts.LoadMainAppConfig(path)
	if err != nil {
		return CheckResult{
			Name:       name,
			Status:     CheckError,
			Message:    err.Error(),
			Suggestion: rerunSetup,
		}
	}

	if config.OBSHost == "" {
		return CheckResult{
			Name:       name,
			Status:     CheckError,
			Message:    "config.ini has no [OBS] host",
			Suggestion: rerunSetup,
		}
	}
	if _, err := strconv.Atoi(config.OBSPort); err != nil {
		return CheckResult{
			Name:       name,
			Status:     CheckError,
			Message:    fmt.Sprintf("config.ini [OBS] port %q is not a number", config.OBSPort),
			Suggestion: rerunSetup,
		}
	}

	if !utils.PathExists(config.OutputFolder) {
		return CheckResult{
			Name:       name,
			Status:     CheckWarning,
			Message:    fmt.Sprintf("OBS output folder %q does not exist", config.OutputFolder),
			Suggestion: "Create the OBS output folder or run 'csdp setup' again",
		}
	}

	return CheckResult{
		Name:    name,
		Status:  CheckPass,
		Message: fmt.Sprintf("config.ini valid (OBS at %s:%s)", config.OBSHost, config.OBSPort),
	}
}

// checkHistory reports the most recent recorded setup run.
func checkHistory(s *configs.Settings) CheckResult {
	const name = "Setup history"

	last, err := audit.Last()
	if err != nil {
		return CheckResult{
			Name:    name,
			Status:  CheckWarning,
			Message: fmt.Sprintf("Failed to read setup history: %v", err),
		}
	}
	if last == nil {
		return CheckResult{
			Name:       name,
			Status:     CheckWarning,
			Message:    "No completed setup run recorded",
			Suggestion: "Run 'csdp setup' to generate the configuration files",
		}
	}

	msg := fmt.Sprintf("Last setup run %s", last.Timestamp)
	if last.User != "" {
		msg += " by " + last.User
	}
	if len(last.Failed) > 0 {
		return CheckResult{
			Name:       name,
			Status:     CheckWarning,
			Message:    fmt.Sprintf("%s could not write %s", msg, strings.Join(last.Failed, ", ")),
			Suggestion: rerunSetup,
		}
	}

	return CheckResult{
		Name:    name,
		Status:  CheckPass,
		Message: msg,
	}
}

func calculateDoctorSummary(results []CheckResult) DoctorSummary {
	var summary DoctorSummary
	for _, result := range results {
		switch result.Status {
		case CheckPass:
			summary.Passed++
		case CheckWarning:
			summary.Warnings++
		case CheckError:
			summary.Errors++
		}
	}
	return summary
}
