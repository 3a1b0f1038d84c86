package configs

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	kerrors "github.com/cs-demo-processor/csdp/internal/errors"
)

// Defaults holds every value the wizard does not ask the operator for,
// plus the fallbacks used when an OBS prompt is left blank.
type Defaults struct {
	Database DatabaseDefaults `toml:"database"`
	Playback PlaybackDefaults `toml:"playback"`
	OBS      OBSDefaults      `toml:"obs"`
}

type DatabaseDefaults struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
	User string `toml:"user"`
	Name string `toml:"database"`
}

type PlaybackDefaults struct {
	Width                    int  `toml:"width"`
	Height                   int  `toml:"height"`
	CloseGameAfterHighlights bool `toml:"close_game_after_highlights"`
}

type OBSDefaults struct {
	Host string `toml:"host"`
	Port string `toml:"port"`
}

// BuiltinDefaults returns the values for the shared public CSDM instance.
func BuiltinDefaults() *Defaults {
	return &Defaults{
		Database: DatabaseDefaults{
			Host: "csdm.xify.pro",
			Port: 8432,
			User: "csdm",
			Name: "csdm",
		},
		Playback: PlaybackDefaults{
			Width:                    1280,
			Height:                   720,
			CloseGameAfterHighlights: true,
		},
		OBS: OBSDefaults{
			Host: "localhost",
			Port: "4455",
		},
	}
}

// LoadDefaults returns the built-in defaults overlaid with the operator's
// config.toml, if one exists.
func LoadDefaults() (*Defaults, error) {
	defaults := BuiltinDefaults()
	path := SetupSettings.DefaultsPath()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return defaults, nil
	}

	undecoded, err := LoadTOML(path, defaults)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", kerrors.ErrInvalidDefaults, path, err)
	}
	if len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: %s: unknown keys %s", kerrors.ErrInvalidDefaults, path, strings.Join(undecoded, ", "))
	}

	if err := defaults.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", kerrors.ErrInvalidDefaults, path, err)
	}

	return defaults, nil
}

// Validate checks that the defaults can produce usable artifacts.
func (d *Defaults) Validate() error {
	switch {
	case d.Database.Host == "":
		return fmt.Errorf("database.host must not be empty")
	case d.Database.Port < 1 || d.Database.Port > 65535:
		return fmt.Errorf("database.port %d is out of range", d.Database.Port)
	case d.Database.User == "":
		return fmt.Errorf("database.user must not be empty")
	case d.Database.Name == "":
		return fmt.Errorf("database.database must not be empty")
	case d.Playback.Width <= 0 || d.Playback.Height <= 0:
		return fmt.Errorf("playback size %dx%d is invalid", d.Playback.Width, d.Playback.Height)
	case d.OBS.Host == "":
		return fmt.Errorf("obs.host must not be empty")
	}

	if _, err := strconv.Atoi(d.OBS.Port); err != nil {
		return fmt.Errorf("obs.port %q is not a number", d.OBS.Port)
	}
	return nil
}
