// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and command handlers for formline.
package cli

import (
	"os"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdHistory
	CmdConfig
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	Quiet      bool
	JSON       bool
	ConfigPath string // --config PATH override
	Platform   string // --platform mac|other override

	// Command-specific
	Subcommand string
	Query      string
	ConfigKey  string
	ConfigVal  string

	// Raw args (remaining after flag parsing)
	Raw []string

	// Options holds command-specific named options (e.g., --limit)
	Options map[string]string

	// ParseError describes a flag-usage problem found while parsing,
	// such as a flag missing its value. Empty when parsing succeeded.
	ParseError string
}

const usageText = `formline - IME-aware form console for the terminal

Formline is a small form console with careful Enter handling:
plain Enter and the platform chord (Cmd+Enter on Mac, Ctrl+Enter
elsewhere) submit, and Enter never submits while an IME composition
is in progress.

Usage:
  formline                    Start the console (default)
  formline history [list]     Show recent submissions
  formline history search Q   Search submissions
  formline history stats      Show submission statistics
  formline history clear      Delete all submissions (--confirm required)
  formline config show        Print effective configuration
  formline config path        Print config file location
  formline config init        Write a default config file
  formline config set K V     Set a config value and save
  formline version            Print version information
  formline help               Show this help

Global flags:
  --config PATH               Use an alternate config file
  --platform mac|other        Override platform detection
  --json                      Machine-readable output where supported
  --quiet                     Suppress non-essential output

History options:
  --limit N                   Entries to show (default: 20)
  --confirm                   Required for history clear

Environment:
  FORMLINE_PLATFORM           Same as --platform
  FORMLINE_BASIC_ENTER        Override submit.allow_basic_enter
  FORMLINE_PLATFORM_ENTER     Override submit.allow_platform_enter
  FORMLINE_NO_HISTORY         Disable submission history
  NO_COLOR                    Disable colored output
`

// Usage returns the top-level help text.
func Usage() string {
	return usageText
}

// Parse parses os.Args into a command and its arguments.
func Parse() (Command, Args) {
	return ParseArgs(os.Args[1:])
}

// ParseArgs parses the given argument list. Split out from Parse so tests
// can drive it without touching os.Args.
func ParseArgs(argv []string) (Command, Args) {
	remaining, args := parseGlobalFlags(argv)

	// No remaining args: start the TUI.
	if len(remaining) == 0 {
		return CmdTUI, args
	}

	cmd := strings.ToLower(remaining[0])
	remaining = remaining[1:]
	args.Raw = remaining

	switch cmd {
	case "tui", "console":
		return CmdTUI, args

	case "history", "log":
		parseHistoryArgs(&args, remaining)
		return CmdHistory, args

	case "config":
		parseConfigArgs(&args, remaining)
		return CmdConfig, args

	case "version", "-v", "--version":
		return CmdVersion, args

	case "help", "-h", "--help":
		return CmdHelp, args

	default:
		// Unknown command: show help rather than guessing.
		return CmdHelp, args
	}
}

// parseGlobalFlags extracts flags that apply to every command and returns
// the remaining positional arguments.
func parseGlobalFlags(argv []string) ([]string, Args) {
	args := Args{Options: make(map[string]string)}
	var remaining []string

	for i := 0; i < len(argv); i++ {
		switch argv[i] {
		case "--quiet", "-q":
			args.Quiet = true
		case "--json":
			args.JSON = true
		case "--config":
			if i+1 >= len(argv) {
				args.ParseError = "--config requires a file path"
				continue
			}
			i++
			args.ConfigPath = argv[i]
		case "--platform":
			if i+1 >= len(argv) {
				args.ParseError = "--platform requires mac or other"
				continue
			}
			i++
			args.Platform = strings.ToLower(argv[i])
		default:
			remaining = append(remaining, argv[i])
		}
	}

	return remaining, args
}

// parseHistoryArgs parses history subcommands and options.
func parseHistoryArgs(args *Args, remaining []string) {
	args.Subcommand = "list"

	for i := 0; i < len(remaining); i++ {
		arg := remaining[i]
		switch arg {
		case "list", "search", "stats", "clear":
			args.Subcommand = arg
		case "--limit":
			if i+1 >= len(remaining) {
				args.ParseError = "--limit requires a number"
				continue
			}
			i++
			args.Options["limit"] = remaining[i]
		case "--confirm":
			args.Options["confirm"] = "true"
		default:
			// Positional text after "search" is the query.
			if args.Subcommand == "search" && args.Query == "" {
				args.Query = arg
			}
		}
	}
}

// parseConfigArgs parses config subcommands: show, path, init, set K V.
func parseConfigArgs(args *Args, remaining []string) {
	args.Subcommand = "show"

	for i := 0; i < len(remaining); i++ {
		arg := remaining[i]
		switch arg {
		case "show", "path", "init", "set":
			args.Subcommand = arg
		default:
			if args.Subcommand == "set" {
				if args.ConfigKey == "" {
					args.ConfigKey = arg
				} else if args.ConfigVal == "" {
					args.ConfigVal = arg
				}
			}
		}
	}
}
