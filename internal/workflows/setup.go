package workflows

import (
	"context"
	"fmt"

	"github.com/cs-demo-processor/csdp/internal/artifacts"
	"github.com/cs-demo-processor/csdp/internal/audit"
	"github.com/cs-demo-processor/csdp/internal/configs"
	kerrors "github.com/cs-demo-processor/csdp/internal/errors"
	logger "github.com/cs-demo-processor/csdp/internal/logging"
	"github.com/cs-demo-processor/csdp/internal/prompt"
	"github.com/cs-demo-processor/csdp/internal/utils"
)

// Step identifies a stage of the setup wizard.
type Step int

const (
	// StepDatabase collects the CSDM database password and writes the CSDM files.
	StepDatabase Step = iota + 1
	// StepMainApp collects the OBS settings and writes config.ini.
	StepMainApp
)

// Reporter is told about progress while Setup runs, so the CLI can render
// it between prompts.
type Reporter interface {
	StepStarted(step Step)
	ArtifactWritten(result artifacts.Result)
}

type nopReporter struct{}

func (nopReporter) StepStarted(Step) {}
func (nopReporter) ArtifactWritten(artifacts.Result) {}

// SetupOptions configures the setup workflow.
type SetupOptions struct {
	// Prompter asks the operator for answers. Required.
	Prompter prompt.Prompter

	// Reporter receives progress. May be nil.
	Reporter Reporter

	Logger logger.Logger
}

// SetupResult contains the outcome of a setup run.
type SetupResult struct {
	// RunID identifies the history entry of a completed run.
	RunID string

	// Artifacts lists every attempted write, in order.
	Artifacts []artifacts.Result

	// MainApp holds the answers written to config.ini.
	MainApp artifacts.MainAppConfig

	// Aborted is set when config.ini could not be written.
	Aborted bool
}

// Failed returns the artifacts that could not be written.
func (r *SetupResult) Failed() []artifacts.Result {
	var failed []artifacts.Result
	for _, a := range r.Artifacts {
		if !a.OK() {
			failed = append(failed, a)
		}
	}
	return failed
}

func (r *SetupResult) record(reporter Reporter, result artifacts.Result) {
	r.Artifacts = append(r.Artifacts, result)
	reporter.ArtifactWritten(result)
}

const outputFolderLabel = `Enter the full path to your OBS output folder (e.g., Z:\Videos\OBS)`

// Setup runs the interactive setup wizard.
//
// It asks for the database password, writes both CSDM settings files and
// the fork's .env file, then asks for the OBS output folder, host and port
// and writes config.ini. A failed settings or .env write is recorded and
// the run continues.
//
// Returns ErrMainConfigWrite, together with the partial result, if
// config.ini could not be written. Nothing is attempted after that.
// Returns ErrInputClosed or ErrAborted if the operator stops answering.
func Setup(ctx context.Context, opts SetupOptions) (*SetupResult, error) {
	reporter := opts.Reporter
	if reporter == nil {
		reporter = nopReporter{}
	}

	defaults, err := configs.LoadDefaults()
	if err != nil {
		return nil, err
	}
	settings := configs.SetupSettings
	result := &SetupResult{}

	reporter.StepStarted(StepDatabase)
	password, err := opts.Prompter.Secret(ctx, fmt.Sprintf(
		"Enter the PostgreSQL password for the '%s' user in the public %s instance (look in discord)",
		defaults.Database.User, defaults.Database.Name))
	if err != nil {
		return result, fmt.Errorf("reading database password: %w", err)
	}

	settingsJSON, err := artifacts.NewCSDMSettings(defaults, password).Render()
	if err != nil {
		return result, err
	}
	for _, target := range artifacts.SettingsTargets(settings, settingsJSON) {
		opts.Logger.Debugf("Writing %s to %s", target.Name, target.Path)
		result.record(reporter, artifacts.Write(target))
	}

	envTarget := artifacts.EnvTarget(settings, artifacts.RenderEnv(defaults.Database, password))
	opts.Logger.Debugf("Writing %s to %s", envTarget.Name, envTarget.Path)
	result.record(reporter, artifacts.Write(envTarget))

	reporter.StepStarted(StepMainApp)
	outputFolder, err := PromptPath(ctx, opts.Prompter, outputFolderLabel, true, artifacts.CheckINIValue)
	if err != nil {
		return result, fmt.Errorf("reading OBS output folder: %w", err)
	}
	host, err := PromptWithDefault(ctx, opts.Prompter,
		fmt.Sprintf("Enter the OBS WebSocket host (usually '%s')", defaults.OBS.Host), defaults.OBS.Host)
	if err != nil {
		return result, fmt.Errorf("reading OBS host: %w", err)
	}
	port, err := PromptWithDefault(ctx, opts.Prompter,
		fmt.Sprintf("Enter the OBS WebSocket port (usually '%s')", defaults.OBS.Port), defaults.OBS.Port)
	if err != nil {
		return result, fmt.Errorf("reading OBS port: %w", err)
	}

	result.MainApp = artifacts.MainAppConfig{
		OutputFolder: outputFolder,
		OBSHost:      host,
		OBSPort:      port,
	}

	mainResult := writeMainConfig(settings, result.MainApp)
	result.record(reporter, mainResult)
	if !mainResult.OK() {
		opts.Logger.Debugf("Stopping setup: %v", mainResult.Err)
		result.Aborted = true
		return result, fmt.Errorf("%w: %v", kerrors.ErrMainConfigWrite, mainResult.Err)
	}

	entry := audit.NewEntry("setup")
	for _, a := range result.Artifacts {
		if a.OK() {
			entry.Written = append(entry.Written, a.Path)
		} else {
			entry.Failed = append(entry.Failed, a.Path)
		}
	}
	audit.Log(entry)
	result.RunID = entry.RunID
	opts.Logger.Infof("Recorded setup run %s", entry.RunID)

	return result, nil
}

func writeMainConfig(settings *configs.Settings, config artifacts.MainAppConfig) artifacts.Result {
	data, err := config.Render()
	if err != nil {
		return artifacts.Result{Name: artifacts.MainConfigName, Path: settings.MainConfigPath(), Err: err}
	}
	return artifacts.Write(artifacts.MainConfigTarget(settings, data))
}

// PromptPath asks for a path. When mustExist is set, answers that do not
// name an existing entry are rejected and asked again. Otherwise any
// missing parent directory of the answer is created before it is returned.
// Answers failing any of checks are also asked again.
func PromptPath(ctx context.Context, p prompt.Prompter, label string, mustExist bool, checks ...func(string) error) (string, error) {
	if mustExist {
		checks = append([]func(string) error{func(path string) error {
			if !utils.PathExists(path) {
				return kerrors.ErrPathNotFound
			}
			return nil
		}}, checks...)
	}

	var validate func(string) error
	if len(checks) > 0 {
		validate = func(path string) error {
			for _, check := range checks {
				if err := check(path); err != nil {
					return err
				}
			}
			return nil
		}
	}

	path, err := p.Path(ctx, label, validate)
	if err != nil {
		return "", err
	}

	if !mustExist {
		if err := utils.EnsureParentDir(path); err != nil {
			return "", err
		}
	}
	return path, nil
}

// PromptWithDefault asks for a value and returns defaultValue when the answer is blank.
func PromptWithDefault(ctx context.Context, p prompt.Prompter, label, defaultValue string) (string, error) {
	value, err := p.Line(ctx, label)
	if err != nil {
		return "", err
	}
	if value == "" {
		return defaultValue, nil
	}
	return value, nil
}
