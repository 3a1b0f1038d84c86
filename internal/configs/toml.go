package configs

import (
	"github.com/BurntSushi/toml"
)

// LoadTOML decodes a TOML file into data and returns the keys that did not
// map onto any field.
func LoadTOML(filePath string, data interface{}) ([]string, error) {
	md, err := toml.DecodeFile(filePath, data)
	if err != nil {
		return nil, err
	}

	var undecoded []string
	for _, key := range md.Undecoded() {
		undecoded = append(undecoded, key.String())
	}
	return undecoded, nil
}
