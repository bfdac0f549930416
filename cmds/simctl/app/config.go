package app

import (
	"os"
	"path/filepath"

	"github.com/mandelsoft/vfs/pkg/vfs"
	"sigs.k8s.io/yaml"

	"github.com/mandelsoft/simgraph/pkg/utils"
)

const CONFIG_FILE = ".simctl"

type Config struct {
	Format    *string           `json:"format,omitempty"`
	Variables map[string]string `json:"variables,omitempty"`
}

// GetConfig reads the config files from the home directory, the
// user config directory and the current directory. Later files
// override earlier ones, the environment variable SIMCTL_FORMAT
// overrides the configured format.
func GetConfig(fs vfs.FileSystem) *Config {
	cfg := Config{
		Variables: map[string]string{},
	}

	dir, err := os.UserHomeDir()
	if err == nil {
		MergeConfig(&cfg, ReadConfig(fs, filepath.Join(dir, CONFIG_FILE)))
	}
	dir, err = os.UserConfigDir()
	if err == nil {
		MergeConfig(&cfg, ReadConfig(fs, filepath.Join(dir, CONFIG_FILE)))
	}
	MergeConfig(&cfg, ReadConfig(fs, CONFIG_FILE))

	if v := os.Getenv("SIMCTL_FORMAT"); v != "" {
		cfg.Format = utils.Pointer(v)
	}
	if cfg.Format == nil || *cfg.Format == "" {
		cfg.Format = utils.Pointer("json")
	}
	return &cfg
}

func ReadConfig(fs vfs.FileSystem, path string) *Config {
	data, err := vfs.ReadFile(fs, path)
	if err != nil {
		return nil
	}

	var cfg Config
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		log.Warn("ignoring invalid config file {{path}}: {{error}}", "path", path, "error", err)
		return nil
	}
	log.Debug("using config file {{path}}", "path", path)
	return &cfg
}

func MergeConfig(cfg *Config, add *Config) {
	if add == nil {
		return
	}
	if add.Format != nil {
		cfg.Format = add.Format
	}
	for k, v := range add.Variables {
		cfg.Variables[k] = v
	}
}
