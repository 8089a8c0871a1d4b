package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kmacinski/natter/internal/app"
	"github.com/kmacinski/natter/internal/config"
	"github.com/kmacinski/natter/internal/console"
	"github.com/kmacinski/natter/internal/log"
)

var (
	version = "0.1.0"
	status  = "development" // "release" for tagged builds
)

func main() {
	var (
		showVersion bool
		showHelp    bool
		configPath  string
		logLevel    string
	)

	flag.BoolVar(&showVersion, "v", false, "Show version")
	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.BoolVar(&showHelp, "h", false, "Show help")
	flag.BoolVar(&showHelp, "help", false, "Show help")
	flag.StringVar(&configPath, "c", "", "Config file")
	flag.StringVar(&configPath, "config", "", "Config file")
	flag.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flag.Parse()

	build := console.Build{
		Name:        "natter",
		Version:     version,
		Development: status == "development",
	}

	if showVersion {
		fmt.Printf("natter %s\n", build)
		os.Exit(0)
	}

	if showHelp {
		printHelp()
		os.Exit(0)
	}

	if configPath == "" {
		path, err := config.DefaultPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		configPath = path
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o700); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	store, err := config.Open(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := store.Config()
	level := logLevel
	if level == "" {
		level = cfg.Log.Level
	}
	closer, err := log.Init(cfg.Log.File, log.ParseLevel(level))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	application, err := app.New(app.Options{
		Config:   store,
		Terminal: console.StdoutTerminal{},
		Build:    build,
		LogLevel: logLevel,
	})
	if errors.Is(err, console.ErrNoTerminal) {
		fmt.Fprintf(os.Stderr, "Error: natter needs an interactive terminal: %v\n", err)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log.Info("starting", "version", build.String(), "config", configPath)

	p := tea.NewProgram(
		application,
		tea.WithAltScreen(),
	)
	application.SetProgram(p)
	defer application.Cleanup()

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println(`natter - terminal chat client

Usage:
  natter [flags]

Flags:
  -c, --config      Config file (default: $XDG_CONFIG_HOME/natter/config.toml)
      --log-level   Log level: debug, info, warn, error
  -h, --help        Show help
  -v, --version     Show version

Keybindings:
  Tab / S-Tab       Next / previous window
  Alt+1..Alt+0      Go to window 1..10
  PgUp / PgDn       Scroll
  Ctrl+y            Copy console to clipboard
  Ctrl+c            Quit

Type /help inside natter for the command list.`)
}
