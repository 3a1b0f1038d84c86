package configs

import (
	"log"
	"os"
	"path/filepath"

	"github.com/cs-demo-processor/csdp/internal/utils"
)

type Settings struct {
	HomeDir   string
	ConfigDir string
	WorkDir   string
	Username  string
}

var SetupSettings *Settings

func init() {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("error getting home directory: %s", err)
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = filepath.Join(homeDir, ".config")
	}

	workDir, err := os.Getwd()
	if err != nil {
		log.Fatalf("error getting working directory: %s", err)
	}

	// The username only labels history entries, so a lookup failure is not fatal.
	username, _ := utils.GetUsername()

	SetupSettings = &Settings{
		HomeDir:   homeDir,
		ConfigDir: filepath.Join(configDir, "csdp"),
		WorkDir:   workDir,
		Username:  username,
	}
}

// DevSettingsPath is the CSDM settings file read in developer mode.
func (s *Settings) DevSettingsPath() string {
	return filepath.Join(s.HomeDir, ".csdm-dev", "settings.json")
}

// ProdSettingsPath is the CSDM settings file read by installed builds.
func (s *Settings) ProdSettingsPath() string {
	return filepath.Join(s.HomeDir, ".csdm", "settings.json")
}

// CSDMForkDir is the checkout of the CSDM fork, relative to the working directory.
func (s *Settings) CSDMForkDir() string {
	return filepath.Join(s.WorkDir, "csdm-fork")
}

func (s *Settings) EnvFilePath() string {
	return filepath.Join(s.CSDMForkDir(), ".env")
}

func (s *Settings) MainConfigPath() string {
	return filepath.Join(s.WorkDir, "config.ini")
}

func (s *Settings) DefaultsPath() string {
	return filepath.Join(s.ConfigDir, "config.toml")
}

func (s *Settings) HistoryPath() string {
	return filepath.Join(s.ConfigDir, "history.jsonl")
}
