package system

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/plantcheck/internal/catalog"
	"github.com/julianstephens/plantcheck/internal/cli"
	"github.com/julianstephens/plantcheck/internal/i18n"
	"github.com/julianstephens/plantcheck/internal/storage"
	"github.com/julianstephens/plantcheck/internal/storage/sqlite"
)

type DoctorCmd struct{}

type check struct {
	name string
	run  func(ctx *cli.Context) error
	// warn marks checks whose failure does not fail the command.
	warn bool
}

var checks = []check{
	{name: "Configuration", run: checkConfig},
	{name: "SQLite storage", run: checkSQLite},
	{name: "Equipment catalog", run: checkCatalog},
	{name: "Checklist translations", run: checkTranslations, warn: true},
	{name: "Log directory", run: checkLogDir, warn: true},
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	ctx.Println("Running diagnostics...")
	ctx.Println()

	hasError := false
	for _, c := range checks {
		err := c.run(ctx)
		switch {
		case err == nil:
			ctx.Printf("✓ %s: OK\n", c.name)
		case c.warn:
			ctx.Printf("⚠ %s: WARNING\n", c.name)
			ctx.Printf("   %v\n", err)
		default:
			ctx.Printf("❌ %s: FAIL\n", c.name)
			ctx.Printf("   Error: %v\n", err)
			hasError = true
		}
	}

	ctx.Println()
	if hasError {
		ctx.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	ctx.Println("All diagnostics passed!")
	return nil
}

func checkConfig(ctx *cli.Context) error {
	return ctx.Config.Validate()
}

func checkSQLite(ctx *cli.Context) error {
	store := sqlite.NewStore(sqlite.MemoryDSN)
	if err := store.Init(); err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer store.Close()

	current, err := store.SchemaVersion(context.Background())
	if err != nil {
		return err
	}
	latest, err := store.LatestVersion()
	if err != nil {
		return err
	}
	if current != latest {
		return fmt.Errorf("schema version %d, expected %d", current, latest)
	}
	return nil
}

// checkCatalog seeds a scratch store; it does not need a session.
func checkCatalog(ctx *cli.Context) error {
	store, err := storage.Open(storage.DriverMemory)
	if err != nil {
		return err
	}
	defer store.Close()
	if err := catalog.Seed(store); err != nil {
		return err
	}
	cat, err := catalog.New(store)
	if err != nil {
		return err
	}

	seen := make(map[string]bool, len(catalog.SeedRecords))
	for _, r := range catalog.SeedRecords {
		if seen[r.ID] {
			return fmt.Errorf("duplicate equipment id %s", r.ID)
		}
		seen[r.ID] = true
		if _, err := cat.Resolve(r.ID); err != nil {
			return err
		}
	}
	if n := cat.Len(); n != len(catalog.SeedRecords) {
		return fmt.Errorf("catalog holds %d records, expected %d", n, len(catalog.SeedRecords))
	}
	return nil
}

func checkTranslations(ctx *cli.Context) error {
	var missing []string
	for _, l := range i18n.Languages {
		if l.Code == i18n.Fallback {
			continue
		}
		for _, item := range ctx.Config.Checklist.Template {
			if i18n.ItemTitle(l.Code, item.Title) == item.Title {
				missing = append(missing, fmt.Sprintf("%s:%s", l.Code, item.ID))
			}
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("untranslated checklist items (shown in English): %v", missing)
	}
	return nil
}

func checkLogDir(ctx *cli.Context) error {
	dir := filepath.Join(ctx.Config.Log.DataDir, "logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create %s: %w", dir, err)
	}
	f, err := os.CreateTemp(dir, ".doctor-*")
	if err != nil {
		return fmt.Errorf("%s is not writable: %w", dir, err)
	}
	name := f.Name()
	f.Close()
	return os.Remove(name)
}
