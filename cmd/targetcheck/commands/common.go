package commands

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/targetcheck/internal/config"
	tcerrors "git.home.luguber.info/inful/targetcheck/internal/errors"
)

// Global context passed to subcommands if we need to share global state later.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags. Check is the default command so a bare
// `targetcheck` (or `targetcheck <dir>`) performs one inspection pass.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path (default: targetcheck.yaml when present)"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Check CheckCmd `cmd:"" default:"withargs" help:"Verify the build target configuration of a project"`
	Watch WatchCmd `cmd:"" help:"Re-check targets continuously as the build tree changes"`
	Init  InitCmd  `cmd:"" help:"Initialize a new configuration file"`
}

// AfterApply runs after flag parsing; set up provisional logging before any
// command code runs. Commands re-apply it once configuration is loaded.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// LoadConfig resolves configuration for a command and applies the configured
// logging setup. An explicitly requested file must exist; the conventional
// targetcheck.yaml is optional.
func LoadConfig(root *CLI) (*config.Config, error) {
	if root.Config != "" {
		if _, err := os.Stat(root.Config); os.IsNotExist(err) {
			return nil, tcerrors.ConfigNotFound(root.Config)
		}
	}

	cfg, err := config.LoadOrDefault(root.Config)
	if err != nil {
		path := root.Config
		if path == "" {
			path = config.DefaultConfigFile
		}
		return nil, tcerrors.ConfigInvalid(path, err)
	}

	ConfigureLogging(cfg, root.Verbose)
	return cfg, nil
}

// ConfigureLogging rebuilds the default slog logger from configuration.
// Structured diagnostics always go to stderr so stdout stays reserved for
// the human-readable report. Verbose forces debug level.
func ConfigureLogging(cfg *config.Config, verbose bool) {
	level := slogLevel(config.NormalizeLogLevel(cfg.Logging.Level))
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if config.NormalizeLogFormat(cfg.Logging.Format) == config.LogFormatJSON {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func slogLevel(level config.LogLevel) slog.Level {
	switch level {
	case config.LogLevelDebug:
		return slog.LevelDebug
	case config.LogLevelWarn:
		return slog.LevelWarn
	case config.LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
