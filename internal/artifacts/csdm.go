package artifacts

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/cs-demo-processor/csdp/internal/configs"
)

// CSDMSettings is the settings.json document read by CS Demo Manager.
// Field order is the order written to disk.
type CSDMSettings struct {
	Database DatabaseSettings `json:"database"`
	Playback PlaybackSettings `json:"playback"`
}

type DatabaseSettings struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
	Database string `json:"database"`
}

type PlaybackSettings struct {
	Width                    int  `json:"width"`
	Height                   int  `json:"height"`
	CloseGameAfterHighlights bool `json:"closeGameAfterHighlights"`
}

// NewCSDMSettings builds the settings document for password.
func NewCSDMSettings(d *configs.Defaults, password string) CSDMSettings {
	return CSDMSettings{
		Database: DatabaseSettings{
			Host:     d.Database.Host,
			Port:     d.Database.Port,
			User:     d.Database.User,
			Password: password,
			Database: d.Database.Name,
		},
		Playback: PlaybackSettings{
			Width:                    d.Playback.Width,
			Height:                   d.Playback.Height,
			CloseGameAfterHighlights: d.Playback.CloseGameAfterHighlights,
		},
	}
}

// Render encodes the settings with four-space indentation and no trailing newline.
func (s CSDMSettings) Render() ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "    ")
	if err := encoder.Encode(s); err != nil {
		return nil, fmt.Errorf("failed to encode CSDM settings: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// ParseCSDMSettings decodes a settings.json document.
func ParseCSDMSettings(data []byte) (*CSDMSettings, error) {
	var s CSDMSettings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to decode CSDM settings: %w", err)
	}
	return &s, nil
}
