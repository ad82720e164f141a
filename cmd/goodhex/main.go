// Package main is the entry point for the goodhex viewer.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/dshills/goodhex/internal/app"
	"github.com/dshills/goodhex/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts, printConfig := parseFlags()

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Close()

	if printConfig {
		out, err := application.Config().TOML()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		os.Stdout.Write(out)
		return 0
	}

	term, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := application.SetBackend(term); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to set backend: %v\n", err)
		return 1
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	go func() {
		<-signals
		application.Shutdown()
	}()

	if err := application.Run(); err != nil {
		if errors.Is(err, app.ErrQuit) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

func parseFlags() (app.Options, bool) {
	var opts app.Options
	var sets string
	var showVersion, showHelp, printConfig bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file (.toml or .yaml)")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.IntVar(&opts.Width, "width", 0, "Bytes per row")
	flag.IntVar(&opts.Width, "w", 0, "Bytes per row (shorthand)")
	flag.StringVar(&opts.Start, "start", "", "Initial cursor address in hex")
	flag.StringVar(&sets, "sets", "", "Comma-separated annotation set names")
	flag.BoolVar(&opts.ReadOnly, "readonly", false, "Reject edits to the file")
	flag.BoolVar(&opts.ReadOnly, "R", false, "Reject edits to the file (shorthand)")
	flag.BoolVar(&opts.SaveOnQuit, "save-on-quit", false, "Write ASCII edits back to the file on quit")
	flag.StringVar(&opts.Script, "script", "", "Lua script providing default byte colors")
	flag.StringVar(&opts.LogFile, "log", "", "Append log output to this file")
	flag.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&opts.WatchConfig, "watch", true, "Reload colors when the configuration file changes")
	flag.BoolVar(&opts.IgnoreEnv, "no-env", false, "Ignore GOODHEX_* environment variables")
	flag.BoolVar(&printConfig, "print-config", false, "Print the effective configuration as TOML and exit")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "goodhex - hex and ASCII viewer with annotations\n\n")
		fmt.Fprintf(os.Stderr, "Usage: goodhex [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  goodhex                        Start with an empty buffer\n")
		fmt.Fprintf(os.Stderr, "  goodhex image.bin              View a file\n")
		fmt.Fprintf(os.Stderr, "  goodhex -R -start 1a00 a.out   View read-only from 0x1a00\n")
		fmt.Fprintf(os.Stderr, "  goodhex -sets hdr,body dump    Use two annotation sets\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("goodhex %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	switch opts.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.LogLevel)
		os.Exit(1)
	}

	if sets != "" {
		for _, name := range strings.Split(sets, ",") {
			opts.Sets = append(opts.Sets, strings.TrimSpace(name))
		}
	}

	switch flag.NArg() {
	case 0:
	case 1:
		opts.File = flag.Arg(0)
	default:
		fmt.Fprintf(os.Stderr, "Error: expected at most one file, got %d\n", flag.NArg())
		os.Exit(1)
	}

	return opts, printConfig
}
