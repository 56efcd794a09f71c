// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// history_cmd.go - Submission history commands for formline.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/ashdowne/formline-tui/internal/config"
	"github.com/ashdowne/formline-tui/internal/history"
	"github.com/ashdowne/formline-tui/internal/util"
)

// defaultHistoryLimit is how many entries history list shows by default.
const defaultHistoryLimit = 20

// HandleHistory dispatches the history subcommands.
func HandleHistory(args Args, cfg *config.Config) error {
	if !cfg.History.Enabled {
		return fmt.Errorf("history is disabled; enable it in %s or unset FORMLINE_NO_HISTORY", configPathHint(args))
	}

	path, err := cfg.HistoryPath()
	if err != nil {
		return fmt.Errorf("failed to resolve history path: %w", err)
	}

	store, err := history.Open(path, cfg.History.MaxEntries)
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer store.Close()

	switch args.Subcommand {
	case "", "list":
		return handleHistoryList(args, store)
	case "search":
		return handleHistorySearch(args, store)
	case "stats":
		return handleHistoryStats(args, store)
	case "clear":
		return handleHistoryClear(args, store)
	default:
		return fmt.Errorf("unknown history subcommand: %s\n\nUsage:\n"+
			"  formline history list [--limit N]\n"+
			"  formline history search QUERY [--limit N]\n"+
			"  formline history stats\n"+
			"  formline history clear --confirm", args.Subcommand)
	}
}

// handleHistoryList prints the most recent submissions.
func handleHistoryList(args Args, store *history.Store) error {
	entries, err := store.Recent(historyLimit(args))
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}
	return printEntries(args, entries)
}

// handleHistorySearch prints submissions matching the query.
func handleHistorySearch(args Args, store *history.Store) error {
	if args.Query == "" {
		return fmt.Errorf("history search requires a query")
	}

	entries, err := store.Search(args.Query, historyLimit(args))
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	return printEntries(args, entries)
}

// handleHistoryStats prints submission counts.
func handleHistoryStats(args Args, store *history.Store) error {
	count, err := store.Count()
	if err != nil {
		return fmt.Errorf("failed to count history: %w", err)
	}

	if args.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]int{"total": count})
	}

	fmt.Printf("Submissions stored: %d\n", count)
	return nil
}

// handleHistoryClear deletes all stored submissions. Requires --confirm.
func handleHistoryClear(args Args, store *history.Store) error {
	if args.Options["confirm"] != "true" {
		return fmt.Errorf("history clear is destructive; re-run with --confirm")
	}

	if err := store.Clear(); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}

	if !args.Quiet {
		fmt.Println("History cleared.")
	}
	return nil
}

// =============================================================================
// OUTPUT HELPERS
// =============================================================================

// printEntries renders entries as a table, or JSON with --json.
func printEntries(args Args, entries []history.Entry) error {
	if args.JSON {
		return json.NewEncoder(os.Stdout).Encode(entries)
	}

	if len(entries) == 0 {
		if !args.Quiet {
			fmt.Println("No submissions recorded.")
		}
		return nil
	}

	contentWidth := GetTerminalWidth() - 32
	if contentWidth < 20 {
		contentWidth = 20
	}

	for _, e := range entries {
		content := util.TruncateWidth(util.CollapseNewlines(e.Content), contentWidth)
		via := util.PadRight(e.Via, 8)
		fmt.Printf("%s  %s  %s\n", e.CreatedAt.Format("2006-01-02 15:04:05"), via, content)
	}
	return nil
}

// historyLimit resolves the --limit option with its default.
func historyLimit(args Args) int {
	if v, ok := args.Options["limit"]; ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return defaultHistoryLimit
}

// configPathHint names the config file for error messages.
func configPathHint(args Args) string {
	if args.ConfigPath != "" {
		return args.ConfigPath
	}
	if path, err := config.ConfigPath(); err == nil {
		return path
	}
	return "the config file"
}
