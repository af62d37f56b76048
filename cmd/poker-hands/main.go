package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/adeel-ahmed99/poker-hands/cmd/poker-hands/shared"
	"github.com/adeel-ahmed99/poker-hands/internal/config"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command.
type Globals struct {
	Config   string `short:"c" default:"${config_file}" help:"Path to HCL configuration file"`
	LogLevel string `short:"l" help:"Log level (overrides config)"`
	NoColor  bool   `help:"Disable coloured output"`

	out io.Writer
}

// Setup loads the configuration, applies flag overrides and returns it with
// a logger.
func (g *Globals) Setup() (*config.Config, *log.Logger, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	shared.ConfigureColor(cfg.Output.Color, g.NoColor)
	logger := shared.SetupLogger(cfg.LogLevel)
	logger.Debug("Loaded configuration", "file", g.Config, "logLevel", cfg.LogLevel)
	return cfg, logger, nil
}

// Out returns where command output goes.
func (g *Globals) Out() io.Writer {
	if g.out == nil {
		return os.Stdout
	}
	return g.out
}

type CLI struct {
	Globals

	Version kong.VersionFlag `short:"v" help:"Show version"`
	Eval    EvalCmd          `cmd:"" help:"Evaluate a nine-card heads-up deal"`
	Batch   BatchCmd         `cmd:"" help:"Evaluate a file of deals, one per line"`
	Card    CardCmd          `cmd:"" help:"Convert card numbers to labels and back"`
}

// cliVars are the interpolation values for struct tags.
func cliVars() kong.Vars {
	return kong.Vars{
		"version":     version,
		"config_file": config.DefaultFile,
	}
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("poker-hands"),
		kong.Description("Heads-up Texas Hold'em showdown evaluator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		cliVars(),
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
