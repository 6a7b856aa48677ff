package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "plantcheck.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

// chdir moves into an empty directory so a stray .env or plantcheck.yaml
// cannot leak into the test.
func chdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

const validYAML = `
catalog:
  page_size: 10
  load_more_step: 5

checklist:
  submission_delay: "500ms"
  template:
    - id: "hyd"
      title: "Hydraulic hoses"
    - id: "cab"
      title: "Cab and controls"

session:
  connectivity: "offline"
  language: "fr"
  operator: "Jane Doe"

storage:
  driver: "sqlite"

log:
  debug: true
  data_dir: "/tmp/plantcheck-test"
`

func TestLoad_ValidYAML(t *testing.T) {
	dir := chdir(t)
	path := writeYAML(t, dir, validYAML)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Catalog.PageSize != 10 || cfg.Catalog.LoadMoreStep != 5 {
		t.Errorf("catalog = %+v", cfg.Catalog)
	}
	if cfg.Checklist.SubmissionDelay != 500*time.Millisecond {
		t.Errorf("submission delay = %v", cfg.Checklist.SubmissionDelay)
	}
	if len(cfg.Checklist.Template) != 2 || cfg.Checklist.Template[0].Title != "Hydraulic hoses" {
		t.Errorf("template = %+v", cfg.Checklist.Template)
	}
	if cfg.ConnectivityMode() != "offline" {
		t.Errorf("connectivity = %v", cfg.ConnectivityMode())
	}
	if cfg.Session.Language != "fr" || cfg.Session.Operator != "Jane Doe" {
		t.Errorf("session = %+v", cfg.Session)
	}
	if cfg.Storage.Driver != "sqlite" {
		t.Errorf("driver = %q", cfg.Storage.Driver)
	}
	if !cfg.Log.Debug || cfg.Log.DataDir != "/tmp/plantcheck-test" {
		t.Errorf("log = %+v", cfg.Log)
	}
}

func TestLoad_EnvOnlyDefaults(t *testing.T) {
	chdir(t)
	t.Setenv(EnvPath, "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Catalog.PageSize != 8 || cfg.Catalog.LoadMoreStep != 6 {
		t.Errorf("catalog defaults = %+v", cfg.Catalog)
	}
	if cfg.Checklist.SubmissionDelay != 2*time.Second {
		t.Errorf("submission delay = %v", cfg.Checklist.SubmissionDelay)
	}
	if len(cfg.Checklist.Template) != 4 {
		t.Errorf("template len = %d, want 4", len(cfg.Checklist.Template))
	}
	if cfg.ConnectivityMode() != "online" || cfg.Session.Language != "en" {
		t.Errorf("session defaults = %+v", cfg.Session)
	}
	if cfg.Storage.Driver != "memory" {
		t.Errorf("driver = %q", cfg.Storage.Driver)
	}
	if cfg.Log.DataDir == "" {
		t.Error("data dir not defaulted")
	}
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	dir := chdir(t)
	path := writeYAML(t, dir, validYAML)
	t.Setenv("PLANTCHECK_PAGE_SIZE", "3")
	t.Setenv("PLANTCHECK_CONNECTIVITY", "online")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Catalog.PageSize != 3 {
		t.Errorf("page size = %d, want env override 3", cfg.Catalog.PageSize)
	}
	if cfg.ConnectivityMode() != "online" {
		t.Errorf("connectivity = %v, want env override", cfg.ConnectivityMode())
	}
}

func TestLoad_DotEnv(t *testing.T) {
	dir := chdir(t)
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("PLANTCHECK_LANGUAGE=pt\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("PLANTCHECK_LANGUAGE") })

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Session.Language != "pt" {
		t.Errorf("language = %q, want pt from .env", cfg.Session.Language)
	}
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	chdir(t)
	if _, err := Load("/does/not/exist.yaml"); err == nil {
		t.Error("Load() with a missing explicit file should fail")
	}

	t.Setenv(EnvPath, "/does/not/exist.yaml")
	if _, err := Load(""); err == nil {
		t.Error("Load() with a missing PLANTCHECK_CONFIG file should fail")
	}
}

func TestRead_SkipsValidation(t *testing.T) {
	dir := chdir(t)
	path := writeYAML(t, dir, "catalog:\n  page_size: -1\nstorage:\n  driver: \"postgres\"\n")

	cfg, err := Read(path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if cfg.Catalog.PageSize != -1 || cfg.Storage.Driver != "postgres" {
		t.Errorf("Read() = %+v, want the file's values", cfg)
	}

	_, err = Load(path)
	if err == nil {
		t.Fatal("Load() should reject the same file")
	}
	for _, want := range []string{"config: validate", "catalog.page_size", "storage.driver"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Load() error = %v, want it to mention %q", err, want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"page size", func(c *Config) { c.Catalog.PageSize = 0 }, "catalog.page_size"},
		{"step", func(c *Config) { c.Catalog.LoadMoreStep = -1 }, "catalog.load_more_step"},
		{"delay", func(c *Config) { c.Checklist.SubmissionDelay = -time.Second }, "submission_delay"},
		{"connectivity", func(c *Config) { c.Session.Connectivity = "satellite" }, "session.connectivity"},
		{"language", func(c *Config) { c.Session.Language = "de" }, "session.language"},
		{"driver", func(c *Config) { c.Storage.Driver = "postgres" }, "storage.driver"},
		{"duplicate template id", func(c *Config) {
			c.Checklist.Template[1].ID = c.Checklist.Template[0].ID
		}, "duplicate item id"},
		{"blank title", func(c *Config) { c.Checklist.Template[2].Title = "  " }, "has no title"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	cfg := Default()
	cfg.Catalog.PageSize = 0
	cfg.Storage.Driver = "bogus"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "page_size") || !strings.Contains(err.Error(), "storage.driver") {
		t.Errorf("Validate() = %v, want both problems", err)
	}
}
