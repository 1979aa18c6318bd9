package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"git.home.luguber.info/inful/targetcheck/internal/cmake"
	"git.home.luguber.info/inful/targetcheck/internal/config"
	tcerrors "git.home.luguber.info/inful/targetcheck/internal/errors"
	"git.home.luguber.info/inful/targetcheck/internal/inspect"
	"git.home.luguber.info/inful/targetcheck/internal/layout"
	"git.home.luguber.info/inful/targetcheck/internal/vcs"
)

// CheckCmd implements the default 'check' command: one inspection pass over
// the project's conventional build directory.
type CheckCmd struct {
	ProjectRoot string        `arg:"" optional:"" help:"Project root directory (default: derived from the executable location)"`
	Timeout     time.Duration `help:"Build tool timeout override (e.g. 45s)"`
	Strict      bool          `help:"Treat a failing build tool exit as fatal"`
}

func (c *CheckCmd) Run(_ *Global, root *CLI) error {
	cfg, err := LoadConfig(root)
	if err != nil {
		return err
	}

	timeout := cfg.InspectTimeout()
	if c.Timeout > 0 {
		timeout = c.Timeout
	}

	return RunCheck(context.Background(), cfg, c.ProjectRoot, timeout, c.Strict || cfg.Inspect.Strict)
}

// RunCheck performs a single inspection pass and prints the human-readable
// report to stdout. Exit semantics follow from its return value: nil for a
// concluded run (including a timed-out or failing tool, unless strict), an
// error for anything that prevented a conclusion.
func RunCheck(ctx context.Context, cfg *config.Config, projectRoot string, timeout time.Duration, strict bool) error {
	lay, err := layout.Resolve(projectRoot)
	if err != nil {
		return tcerrors.LayoutError("resolve project root", err)
	}

	printHeader(ctx, cfg, lay)

	runner := &cmake.BinaryRunner{Binary: cfg.CMake.Binary, Timeout: timeout}
	report, err := inspect.NewService(runner).Inspect(ctx, lay.BuildDir()).ToTuple()
	if err != nil {
		return classifyInspectionError(err, cfg, lay)
	}

	// A failing tool exit is a reported conclusion; strict promotes it to a
	// fatal error. Timeouts stay warnings either way.
	if strict && !report.TimedOut && report.ToolExitCode != 0 {
		return tcerrors.ToolFailed(report.ToolExitCode, nil)
	}

	fmt.Println("\n✅ Verification completed successfully!")
	return nil
}

// printHeader announces the pass and its resolved context. Tool version and
// repository state are best-effort decoration.
func printHeader(ctx context.Context, cfg *config.Config, lay layout.Layout) {
	fmt.Println("🔍 Checking build target configuration...")
	fmt.Printf("   Project directory: %s\n", lay.Root)
	fmt.Printf("   Build directory: %s\n", lay.BuildDir())

	if version := cmake.DetectVersion(ctx, cfg.CMake.Binary); version != "" {
		fmt.Printf("   CMake version: %s\n", version)
	}
	vcs.Detect(lay.Root).Match(
		func(info vcs.Info) { fmt.Printf("   Git: %s@%s\n", info.Branch, info.Commit) },
		func() {},
	)

	fmt.Println()
}

// classifyInspectionError maps inspection sentinels to structured CLI errors.
func classifyInspectionError(err error, cfg *config.Config, lay layout.Layout) error {
	switch {
	case errors.Is(err, inspect.ErrBuildDirNotFound):
		return tcerrors.BuildDirNotFound(lay.BuildDir())
	case errors.Is(err, inspect.ErrToolUnavailable):
		return tcerrors.ToolUnavailable(cfg.CMake.Binary, err)
	default:
		return tcerrors.InspectionError(err)
	}
}
