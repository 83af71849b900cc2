package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/moodbuddy/moodbuddy/internal/cli"
	"github.com/moodbuddy/moodbuddy/internal/config"
	"github.com/moodbuddy/moodbuddy/internal/constants"
	apperrors "github.com/moodbuddy/moodbuddy/internal/errors"
	"github.com/moodbuddy/moodbuddy/internal/gateway"
	"github.com/moodbuddy/moodbuddy/internal/logger"
)

var CLI struct {
	Version   kong.VersionFlag
	ConfigDir string `help:"Config directory." type:"path" default:"~/.config/moodbuddy"`
	APIURL    string `help:"Override the backend base URL." name:"api-url"`
	Debug     bool   `help:"Enable debug logging to stderr."`

	Init   cli.InitCmd   `cmd:"" help:"Initialize moodbuddy config and cache."`
	Login  cli.LoginCmd  `cmd:"" help:"Sign in to the mood backend."`
	Logout cli.LogoutCmd `cmd:"" help:"Sign out."`
	Signup cli.SignupCmd `cmd:"" help:"Create a new account."`
	Whoami cli.WhoamiCmd `cmd:"" help:"Show the signed-in user."`
	Mood   struct {
		Add    cli.MoodAddCmd    `cmd:"" help:"Record a mood for a day."`
		List   cli.MoodListCmd   `cmd:"" help:"List recorded moods."`
		Show   cli.MoodShowCmd   `cmd:"" help:"Show one day's entry with its interpretation."`
		Delete cli.MoodDeleteCmd `cmd:"" help:"Delete a day's entry."`
	} `cmd:"" help:"Manage mood entries."`
	Scan     cli.ScanCmd     `cmd:"" help:"Run a facial+EEG mood scan."`
	Calendar cli.CalendarCmd `cmd:"" help:"Show the monthly mood calendar."`
	Insights cli.InsightsCmd `cmd:"" help:"Show monthly mood statistics."`
	Chat     cli.ChatCmd     `cmd:"" help:"Talk to the mood assistant."`
	Doctor   cli.DoctorCmd   `cmd:"" help:"Run health checks."`
	DebugCmd cli.DebugCmd    `cmd:"" name:"debug" help:"Inspect internal state."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("moodbuddy"),
		kong.Description("Mood tracking companion with EEG-assisted analysis"),
		kong.UsageOnError(),
		kong.Vars{"version": constants.Version},
	)

	configDir, err := config.ExpandDir(CLI.ConfigDir)
	if err != nil {
		apperrors.Fatal(err)
	}

	cfg, err := config.Load(configDir)
	if err != nil {
		apperrors.Fatal(err)
	}
	if CLI.APIURL != "" {
		cfg.APIBaseURL = CLI.APIURL
	}

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: cfg.ConfigDir}); err != nil {
		// Commands still work without the file logger.
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}

	appCtx := &cli.Context{
		Config:  cfg,
		Gateway: gateway.New(cfg.APIBaseURL, cfg.RequestTimeout),
		Debug:   CLI.Debug,
	}

	if err := ctx.Run(appCtx); err != nil {
		apperrors.Fatal(err)
	}
}
