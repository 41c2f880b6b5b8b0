// Command generate-webgl-app translates a recorded WebGL trace into a
// standalone native replay program.
//
// The trace is read from a JSON trace database, translated into a
// single C++ source file next to the requested output path, and
// compiled with the native toolchain. --no-build stops after the
// source is written; --dry-run replays the translated steps in-process
// first to surface coverage gaps without a compile.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	wtf "github.com/dreamfrog/tracing-framework"
	"github.com/dreamfrog/tracing-framework/toolchain"
)

// CLI defines the command-line interface.
type CLI struct {
	Trace     string `arg:"" help:"Trace database to translate (JSON)"`
	Output    string `short:"o" help:"Base path for generated artifacts (default: trace path without extension)"`
	Debug     bool   `help:"Annotate generated source with per-event comments"`
	DryRun    bool   `help:"Replay translated steps in-process before building"`
	NoBuild   bool   `help:"Stop after writing the translated source"`
	Driver    string `default:"headless" help:"Replay driver used for dry-runs"`
	Toolchain string `help:"Toolchain config file (TOML)"`
	Verbose   bool   `short:"v" help:"Enable logging to stderr"`
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("generate-webgl-app"),
		kong.Description("Generate a native replay application from a WebGL trace."),
		kong.UsageOnError(),
	)

	if cli.Verbose {
		wtf.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	opts := []wtf.Option{
		wtf.WithOutputBase(cli.Output),
		wtf.WithDebug(cli.Debug),
		wtf.WithDryRun(cli.DryRun),
		wtf.WithSkipBuild(cli.NoBuild),
		wtf.WithDriver(cli.Driver),
	}
	if cli.Toolchain != "" {
		cfg, err := toolchain.LoadConfig(cli.Toolchain)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		opts = append(opts, wtf.WithToolchainConfig(cfg))
	}

	if err := wtf.Generate(cli.Trace, opts...); err != nil {
		var buildErr *wtf.BuildError
		if errors.As(err, &buildErr) {
			fmt.Fprint(os.Stderr, buildErr.Output)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
