// Command tada is a terminal task table: add, update, toggle and remove
// tasks with deadlines, in a Bubble Tea table or a line-oriented session.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/idilsaglam/tada/internal/cli"
	"github.com/idilsaglam/tada/internal/config"
	"github.com/idilsaglam/tada/internal/exitcode"
	"github.com/idilsaglam/tada/internal/logging"
	"github.com/idilsaglam/tada/internal/tasklist"
	"github.com/idilsaglam/tada/internal/tui"
	"github.com/idilsaglam/tada/internal/ui"
)

const version = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	classic, _ := ui.LookupTheme(config.DefaultTheme)
	early := ui.NewPrinter(stderr, classic, ui.ColorAuto)

	fs := flag.NewFlagSet("tada", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(fs, stderr) }

	cfg, err := config.Load(fs, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitcode.Success
		}
		early.Fail(err.Error())
		return exitcode.Usage
	}

	mode := ""
	if rest := fs.Args(); len(rest) > 0 {
		if len(rest) > 1 {
			early.Fail(fmt.Sprintf("unexpected arguments: %v", rest[1:]))
			return exitcode.Usage
		}
		mode = rest[0]
	}

	theme, err := ui.LookupTheme(cfg.Theme)
	if err != nil {
		early.Fail(err.Error())
		return exitcode.Usage
	}
	colors := ui.ColorAuto
	if cfg.NoColor {
		colors = ui.ColorNever
	}
	out := ui.NewPrinter(stdout, theme, colors)
	errOut := ui.NewPrinter(stderr, theme, colors)

	switch mode {
	case "help":
		printUsage(fs, stdout)
		return exitcode.Success
	case "version":
		fmt.Fprintf(stdout, "tada %s\n", version)
		return exitcode.Success
	case "", "tui", "plain":
	default:
		errOut.Fail("unknown mode: " + mode)
		errOut.Hint("Hint: run `tada help`")
		return exitcode.Usage
	}

	terminal := ui.IsTTY(stdin) && ui.IsTTY(stdout)
	if mode == "tui" && !terminal {
		errOut.Fail("the table UI requires a terminal; use --plain")
		return exitcode.Usage
	}
	useTUI := mode == "tui" || (mode == "" && !cfg.Plain && terminal)

	// The manager is owned here and handed to whichever presentation runs.
	tasks := tasklist.New()

	if useTUI {
		logger, closeLog, err := logging.Open(cfg.Log, io.Discard)
		if err != nil {
			errOut.Fail(err.Error())
			return exitcode.Failure
		}
		defer closeLog()

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		logger.Debug("starting table ui", "theme", theme.Name, "config", cfg.Sources)
		if err := tui.Run(ctx, tasks, logger, tui.Options{
			Theme:       theme.Name,
			NoColor:     cfg.NoColor,
			ExportDir:   cfg.ExportDir,
			ReportTitle: cfg.ReportTitle,
		}); err != nil {
			logger.Error("table ui failed", "err", err)
			errOut.Fail(err.Error())
			return exitcode.Failure
		}
		return exitcode.Success
	}

	logger, closeLog, err := logging.Open(cfg.Log, stderr)
	if err != nil {
		errOut.Fail(err.Error())
		return exitcode.Failure
	}
	defer closeLog()

	opt := cli.Options{
		Quiet:       cfg.Quiet,
		ExportDir:   cfg.ExportDir,
		ReportTitle: cfg.ReportTitle,
	}
	if ui.IsTTY(stdin) {
		opt.Prompt = "tada> "
		cli.PrintHelp(out)
	}
	logger.Debug("starting line session", "theme", theme.Name, "config", cfg.Sources)
	return cli.NewSession(tasks, stdin, out, errOut, logger, opt).Run()
}

func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintf(w, `tada - terminal task table

Usage:
  tada [flags] [tui|plain|help|version]

Without a mode, tada opens the table UI on a terminal and reads
commands line by line otherwise.

Flags:
`)
	fs.SetOutput(w)
	fs.PrintDefaults()
}
