package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/term"

	"github.com/mosa3ed/launchicon/internal/config"
	"github.com/mosa3ed/launchicon/internal/eventlog"
	"github.com/mosa3ed/launchicon/internal/paths"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	cmd, rest, configPath, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintf(os.Stderr, "Run 'launchicon help' for usage.\n")
		os.Exit(1)
	}

	switch cmd {
	case "help":
		printUsage()
	case "version":
		fmt.Printf("launchicon %s (built %s)\n", version, buildDate)
	case "history":
		historyCmd(rest)
	default:
		runGenerate(configPath)
	}
}

// parseArgs extracts the --config flag and the subcommand. An empty
// argument list selects the default generation.
func parseArgs(args []string) (cmd string, rest []string, configPath string, err error) {
	var filtered []string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--config", "-c":
			if i+1 >= len(args) {
				return "", nil, "", fmt.Errorf("--config requires a file path")
			}
			configPath = args[i+1]
			i++
		default:
			filtered = append(filtered, args[i])
		}
	}

	if len(filtered) == 0 {
		return "generate", nil, configPath, nil
	}

	switch filtered[0] {
	case "help", "-h", "--help":
		return "help", nil, configPath, nil
	case "version", "-V", "--version":
		return "version", nil, configPath, nil
	case "history":
		return "history", filtered[1:], configPath, nil
	case "generate":
		if len(filtered) > 1 {
			return "", nil, "", fmt.Errorf("generate takes no arguments")
		}
		return "generate", nil, configPath, nil
	}
	return "", nil, "", fmt.Errorf("unknown command %q", filtered[0])
}

func runGenerate(configPath string) {
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log := newLogger(os.Stdout, term.IsTerminal(int(os.Stdout.Fd())))

	var store eventlog.Store
	if cfg.Log {
		s, err := eventlog.NewSQLiteStore(paths.HistoryPath())
		if err != nil {
			log.Warn("history disabled", "err", err)
		} else {
			defer s.Close()
			store = s
		}
	}

	generateLaunchIcon(cfg, log, store)
}

// newLogger returns a console logger. Color is only used when the
// destination is a terminal.
func newLogger(w io.Writer, color bool) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: time.Kitchen,
		NoColor:    !color,
	}))
}

func printUsage() {
	fmt.Print(`launchicon - generate the Android launch screen icon

Usage:
  launchicon [--config <path>]            Generate the icon
  launchicon history [count]              Show recent generations (default 10)
  launchicon help                         Show this help
  launchicon version                      Show version

Config is read from --config, ./launchicon.json or the data directory.
Without a config file the built-in defaults are used:
  source: ` + config.DefaultSource + `
  output: ` + config.DefaultOutput + `
  size:   ` + fmt.Sprint(config.DefaultSize) + `
`)
}
