package configs

import (
	"bytes"

	"github.com/BurntSushi/toml"
	"github.com/PolarWolf314/tcountdown/internal/utils"
)

// SaveTOML saves a struct to a TOML file.
func SaveTOML(filePath string, data any) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(data); err != nil {
		return err
	}

	return utils.WriteFileAtomic(filePath, buf.Bytes(), 0600)
}

// LoadTOML loads a TOML file into a struct.
func LoadTOML(filePath string, data any) error {
	_, err := toml.DecodeFile(filePath, data)
	return err
}
