package server

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// LoadUserConfig loads the user configuration stored in the file at the path
// passed. Files with a .yaml or .yml extension are decoded as YAML, all others
// as TOML. Fields missing from the file keep their default values. The file is
// written back afterwards, so that it holds all fields. If the file does not
// exist yet, it is created with the default configuration.
func LoadUserConfig(path string) (UserConfig, error) {
	if strings.TrimSpace(path) == "" {
		return UserConfig{}, errors.New("config path must not be empty")
	}
	c := DefaultConfig()
	contents, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return c, fmt.Errorf("read config: %w", err)
	}
	if len(contents) != 0 {
		if err := unmarshalConfig(path, contents, &c); err != nil {
			return c, fmt.Errorf("decode config: %w", err)
		}
	}
	if err := WriteUserConfig(path, c); err != nil {
		return c, err
	}
	return c, nil
}

// WriteUserConfig writes the user configuration passed to the file at the
// path passed, creating its directory if needed. The encoding is chosen by the
// extension of the file, like LoadUserConfig.
func WriteUserConfig(path string, c UserConfig) error {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0777); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	var (
		encoded []byte
		err     error
	)
	if yamlPath(path) {
		encoded, err = yaml.Marshal(c)
	} else {
		encoded, err = toml.Marshal(c)
	}
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, encoded, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func unmarshalConfig(path string, contents []byte, c *UserConfig) error {
	if yamlPath(path) {
		return yaml.Unmarshal(contents, c)
	}
	return toml.Unmarshal(contents, c)
}

func yamlPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
