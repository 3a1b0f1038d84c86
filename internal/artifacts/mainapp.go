package artifacts

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/ini.v1"

	kerrors "github.com/cs-demo-processor/csdp/internal/errors"
)

const (
	pathsSection = "Paths"
	obsSection   = "OBS"
)

// MainAppConfig is the main application's config.ini.
type MainAppConfig struct {
	OutputFolder string
	OBSHost      string
	OBSPort      string
}

// iniOptions keeps '#' and ';' inside values literal, since Windows paths may contain them.
var iniOptions = ini.LoadOptions{IgnoreInlineComment: true}

// CheckINIValue rejects values the INI encoder would wrap in quotes.
// Python's configparser reads such quotes as part of the value.
func CheckINIValue(value string) error {
	if strings.ContainsAny(value, "`\r\n") || strings.TrimSpace(value) != value {
		return fmt.Errorf("%w (backticks, line breaks and leading or trailing spaces are not supported)", kerrors.ErrUnsupportedINIValue)
	}
	return nil
}

// Render encodes the config as INI with [Paths] and [OBS] sections.
func (c MainAppConfig) Render() ([]byte, error) {
	for _, value := range []string{c.OutputFolder, c.OBSHost, c.OBSPort} {
		if err := CheckINIValue(value); err != nil {
			return nil, err
		}
	}

	cfg := ini.Empty(iniOptions)

	paths, err := cfg.NewSection(pathsSection)
	if err != nil {
		return nil, err
	}
	if _, err := paths.NewKey("output_folder", c.OutputFolder); err != nil {
		return nil, err
	}

	obs, err := cfg.NewSection(obsSection)
	if err != nil {
		return nil, err
	}
	if _, err := obs.NewKey("host", c.OBSHost); err != nil {
		return nil, err
	}
	if _, err := obs.NewKey("port", c.OBSPort); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if _, err := cfg.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode config.ini: %w", err)
	}
	return buf.Bytes(), nil
}

// LoadMainAppConfig reads a config.ini. Missing keys are returned empty.
func LoadMainAppConfig(path string) (*MainAppConfig, error) {
	cfg, err := ini.LoadSources(iniOptions, path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return &MainAppConfig{
		OutputFolder: cfg.Section(pathsSection).Key("output_folder").String(),
		OBSHost:      cfg.Section(obsSection).Key("host").String(),
		OBSPort:      cfg.Section(obsSection).Key("port").String(),
	}, nil
}
