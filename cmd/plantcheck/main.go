package main

import (
	"github.com/alecthomas/kong"

	"github.com/julianstephens/plantcheck/internal/cli"
	"github.com/julianstephens/plantcheck/internal/cli/equipment"
	"github.com/julianstephens/plantcheck/internal/cli/requests"
	"github.com/julianstephens/plantcheck/internal/cli/system"
	"github.com/julianstephens/plantcheck/internal/config"
	"github.com/julianstephens/plantcheck/internal/constants"
	"github.com/julianstephens/plantcheck/internal/errors"
	"github.com/julianstephens/plantcheck/internal/logger"
	"github.com/julianstephens/plantcheck/internal/session"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"YAML config file path." type:"path" env:"PLANTCHECK_CONFIG"`
	Debug   bool   `help:"Log at debug level and mirror logs to stderr."`

	Tui       system.TuiCmd         `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Catalog   equipment.CatalogCmd  `cmd:"" help:"List equipment."`
	Bookmark  equipment.BookmarkCmd `cmd:"" help:"Toggle equipment bookmarks."`
	Scan      equipment.ScanCmd     `cmd:"" help:"Scan an equipment tag."`
	Inspect   equipment.InspectCmd  `cmd:"" help:"Run a pre-start check from flags."`
	Queue     requests.QueueCmd     `cmd:"" help:"Manage work requests."`
	Languages system.LanguagesCmd   `cmd:"" help:"List supported languages."`
	Doctor    system.DoctorCmd      `cmd:"" help:"Run health checks and diagnostics."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description(constants.Description),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	cfg, err := config.Read(CLI.Config)
	if err != nil {
		errors.Fatal(err)
	}
	if CLI.Debug {
		cfg.Log.Debug = true
	}

	// Doctor reports config, storage and log problems itself.
	doctor := ctx.Command() == "doctor"
	if err := logger.Init(logger.Config{Debug: cfg.Log.Debug, DataDir: cfg.Log.DataDir}); err != nil && !doctor {
		errors.Fatalf("failed to initialize logger: %v", err)
	}
	if !doctor {
		if err := cfg.Validate(); err != nil {
			errors.Fatalf("config: validate: %v", err)
		}
	}

	sessions := session.NewManager(cfg)
	appCtx := cli.NewContext(cfg, nil)
	sess, err := sessions.Create()
	switch {
	case err == nil:
		appCtx.Session = sess
	case doctor:
		logger.Warn("Running doctor without a session", "error", err)
	default:
		errors.Fatal(err)
	}

	err = ctx.Run(appCtx)
	if cerr := sessions.CloseAll(); cerr != nil {
		logger.Warn("Failed to close sessions", "error", cerr)
	}
	errors.Fatal(err)
}
