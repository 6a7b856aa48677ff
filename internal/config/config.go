package config

import (
	"time"

	"github.com/julianstephens/plantcheck/internal/models"
)

// Config is the root application configuration.
type Config struct {
	Catalog   CatalogConfig   `yaml:"catalog"`
	Checklist ChecklistConfig `yaml:"checklist"`
	Session   SessionConfig   `yaml:"session"`
	Storage   StorageConfig   `yaml:"storage"`
	Log       LogConfig       `yaml:"log"`
}

// CatalogConfig controls paging of the unfiltered equipment list.
type CatalogConfig struct {
	PageSize     int `yaml:"page_size"      env:"PLANTCHECK_PAGE_SIZE"      env-default:"8"`
	LoadMoreStep int `yaml:"load_more_step" env:"PLANTCHECK_LOAD_MORE_STEP" env-default:"6"`
}

// ChecklistConfig holds the pre-start template and the simulated submission latency.
type ChecklistConfig struct {
	Template        []models.ChecklistTemplateItem `yaml:"template"`
	SubmissionDelay time.Duration                  `yaml:"submission_delay" env:"PLANTCHECK_SUBMISSION_DELAY" env-default:"2s"`
}

// SessionConfig holds the starting state of every new session.
type SessionConfig struct {
	Connectivity string `yaml:"connectivity" env:"PLANTCHECK_CONNECTIVITY" env-default:"online"`
	Language     string `yaml:"language"     env:"PLANTCHECK_LANGUAGE"     env-default:"en"`
	Operator     string `yaml:"operator"     env:"PLANTCHECK_OPERATOR"`
	DemoQueue    bool   `yaml:"demo_queue"   env:"PLANTCHECK_DEMO_QUEUE"   env-default:"false"`
}

// StorageConfig selects the per-session store.
type StorageConfig struct {
	Driver string `yaml:"driver" env:"PLANTCHECK_STORAGE" env-default:"memory"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Debug   bool   `yaml:"debug"    env:"PLANTCHECK_DEBUG"`
	DataDir string `yaml:"data_dir" env:"PLANTCHECK_DATA_DIR"`
}

// ConnectivityMode returns the parsed starting mode. Call after Validate.
func (c *Config) ConnectivityMode() models.ConnectivityMode {
	mode, err := models.ParseConnectivityMode(c.Session.Connectivity)
	if err != nil {
		return models.Online
	}
	return mode
}

// Default returns the configuration Load produces with no file and no env.
func Default() *Config {
	cfg := &Config{
		Catalog: CatalogConfig{PageSize: 8, LoadMoreStep: 6},
		Checklist: ChecklistConfig{
			SubmissionDelay: 2 * time.Second,
		},
		Session: SessionConfig{Connectivity: string(models.Online), Language: "en"},
		Storage: StorageConfig{Driver: "memory"},
	}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if len(c.Checklist.Template) == 0 {
		c.Checklist.Template = append([]models.ChecklistTemplateItem(nil), models.DefaultChecklistTemplate...)
	}
	if c.Log.DataDir == "" {
		c.Log.DataDir = defaultDataDir()
	}
}
