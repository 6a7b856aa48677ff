package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	// EnvPath names the variable that points at a YAML config file.
	EnvPath     = "PLANTCHECK_CONFIG"
	defaultPath = "./plantcheck.yaml"
)

// Load reads configuration with Read and validates it.
func Load(path string) (*Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return cfg, nil
}

// Read reads configuration from a YAML file and environment variables
// without validating it.
// Priority: ENV > YAML > defaults (via env-default tags). A .env file in the
// working directory is loaded into the environment first when present.
//
// The YAML path is the argument, else PLANTCHECK_CONFIG, else
// ./plantcheck.yaml. An explicitly named file must exist.
func Read(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}

	var cfg Config

	if path == "" {
		path = os.Getenv(EnvPath)
	}
	explicitPath := path != ""
	if !explicitPath {
		path = defaultPath
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicitPath {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func defaultDataDir() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "plantcheck")
	}
	return filepath.Join(os.TempDir(), "plantcheck")
}
