// formline TUI - an IME-aware form console for the terminal.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ashdowne/formline-tui/internal/cli"
	"github.com/ashdowne/formline-tui/internal/config"
	"github.com/ashdowne/formline-tui/internal/history"
	"github.com/ashdowne/formline-tui/internal/submit"
	"github.com/ashdowne/formline-tui/internal/ui/console"
	"github.com/ashdowne/formline-tui/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// configReloadDebounce coalesces editor save bursts into one reload.
const configReloadDebounce = 200 * time.Millisecond

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()
	if args.ParseError != "" {
		fmt.Fprintf(os.Stderr, "Error: %s\n\n%s", args.ParseError, cli.Usage())
		os.Exit(1)
	}

	switch cmd {
	case cli.CmdTUI:
		if err := runTUI(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case cli.CmdHistory:
		if err := cli.HandleHistory(args, loadConfig(args)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case cli.CmdConfig:
		if err := cli.HandleConfig(args, loadConfig(args)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case cli.CmdVersion:
		printVersion()
	case cli.CmdHelp:
		fmt.Print(cli.Usage())
	}
}

// loadConfig loads the effective configuration for args, falling back to
// defaults when the file is missing or unreadable.
func loadConfig(args cli.Args) *config.Config {
	var cfg *config.Config

	if args.ConfigPath != "" {
		loaded, err := config.LoadFromPath(args.ConfigPath)
		if err != nil {
			if !args.Quiet {
				fmt.Fprintf(os.Stderr, "Warning: %v; using defaults\n", err)
			}
			loaded = config.Default()
			loaded.ApplyEnvOverrides()
		}
		cfg = loaded
		config.SetGlobal(cfg)
	} else {
		cfg = config.Global()
	}

	if args.Platform != "" {
		cfg.Submit.Platform = args.Platform
	}

	return cfg
}

// runTUI starts the form console.
func runTUI(args cli.Args) error {
	if err := cli.RequiresTTY("run the console"); err != nil {
		return err
	}

	lipgloss.SetColorProfile(cli.GetColorProfile())
	cfg := loadConfig(args)

	store := openStore(args, cfg)
	if store != nil {
		defer store.Close()
	}

	model := console.New(cfg, store, styles.NewTheme())
	program := tea.NewProgram(model, tea.WithAltScreen())

	// Watch the config file and push reloads into the running program.
	watcher := watchConfig(args, program)
	if watcher != nil {
		defer watcher.Close()
	}

	_, err := program.Run()
	if err != nil {
		return fmt.Errorf("console exited with error: %w", err)
	}
	return nil
}

// openStore opens the submission history store, or returns nil when
// history is disabled or unavailable. A broken store degrades the console
// to transcript-only rather than blocking startup.
func openStore(args cli.Args, cfg *config.Config) *history.Store {
	if !cfg.History.Enabled {
		return nil
	}

	path, err := cfg.HistoryPath()
	if err == nil {
		var store *history.Store
		store, err = history.Open(path, cfg.History.MaxEntries)
		if err == nil {
			return store
		}
	}

	if !args.Quiet {
		fmt.Fprintf(os.Stderr, "Warning: history unavailable: %v\n", err)
	}
	return nil
}

// watchConfig starts the config file watcher, or returns nil when the
// config path cannot be resolved. Reload failures are dropped by the
// watcher itself; only valid configs reach the model.
func watchConfig(args cli.Args, program *tea.Program) *config.Watcher {
	path := args.ConfigPath
	if path == "" {
		var err error
		path, err = config.ConfigPath()
		if err != nil {
			return nil
		}
	}

	watcher, err := config.NewWatcher(path, configReloadDebounce, func(cfg *config.Config) {
		config.SetGlobal(cfg)
		program.Send(console.ConfigReloadedMsg{Config: cfg})
	})
	if err != nil {
		return nil
	}
	if err := watcher.Watch(); err != nil {
		watcher.Close()
		return nil
	}
	return watcher
}

// printVersion prints build information.
func printVersion() {
	fmt.Printf("formline %s\n", Version)
	fmt.Printf("  commit:   %s\n", GitCommit)
	fmt.Printf("  built:    %s\n", BuildDate)
	fmt.Printf("  platform: %s\n", submit.Detect())
}
