// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config_cmd.go - Configuration commands for formline.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/ashdowne/formline-tui/internal/config"
)

// HandleConfig dispatches the config subcommands.
func HandleConfig(args Args, cfg *config.Config) error {
	switch args.Subcommand {
	case "", "show":
		return handleConfigShow(args, cfg)
	case "path":
		return handleConfigPath(args)
	case "init":
		return handleConfigInit(args, cfg)
	case "set":
		return handleConfigSet(args, cfg)
	default:
		return fmt.Errorf("unknown config subcommand: %s\n\nUsage:\n"+
			"  formline config show\n"+
			"  formline config path\n"+
			"  formline config init\n"+
			"  formline config set KEY VALUE", args.Subcommand)
	}
}

// handleConfigShow prints the effective configuration.
func handleConfigShow(args Args, cfg *config.Config) error {
	if args.JSON {
		return json.NewEncoder(os.Stdout).Encode(cfg)
	}
	return toml.NewEncoder(os.Stdout).Encode(cfg)
}

// targetConfigPath resolves the file config writes should land on: the
// --config override when given, the default location otherwise.
func targetConfigPath(args Args) (string, error) {
	if args.ConfigPath != "" {
		return args.ConfigPath, nil
	}
	return config.ConfigPath()
}

// handleConfigPath prints the config file location.
func handleConfigPath(args Args) error {
	path, err := targetConfigPath(args)
	if err != nil {
		return fmt.Errorf("failed to resolve config path: %w", err)
	}
	fmt.Println(path)
	return nil
}

// handleConfigInit writes the current effective config to disk, creating
// a file the user can edit.
func handleConfigInit(args Args, cfg *config.Config) error {
	path, err := targetConfigPath(args)
	if err != nil {
		return fmt.Errorf("failed to resolve config path: %w", err)
	}
	if err := config.SaveTo(path, cfg); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	if !args.Quiet {
		fmt.Printf("Wrote %s\n", path)
	}
	return nil
}

// handleConfigSet updates a single key and saves.
func handleConfigSet(args Args, cfg *config.Config) error {
	if args.ConfigKey == "" || args.ConfigVal == "" {
		return fmt.Errorf("config set requires a key and a value")
	}

	if err := applyConfigKey(cfg, args.ConfigKey, args.ConfigVal); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	path, err := targetConfigPath(args)
	if err != nil {
		return fmt.Errorf("failed to resolve config path: %w", err)
	}
	if err := config.SaveTo(path, cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	if !args.Quiet {
		fmt.Printf("Set %s = %s\n", args.ConfigKey, args.ConfigVal)
	}
	return nil
}

// applyConfigKey maps a dotted key name onto the config struct.
func applyConfigKey(cfg *config.Config, key, value string) error {
	switch key {
	case "submit.allow_basic_enter":
		return setBool(&cfg.Submit.AllowBasicEnter, key, value)
	case "submit.allow_platform_enter":
		return setBool(&cfg.Submit.AllowPlatformEnter, key, value)
	case "submit.platform":
		cfg.Submit.Platform = value
		return nil
	case "submit.min_interval_ms":
		return setInt(&cfg.Submit.MinIntervalMs, key, value)
	case "ui.placeholder":
		cfg.UI.Placeholder = value
		return nil
	case "ui.max_chars":
		return setInt(&cfg.UI.MaxChars, key, value)
	case "ui.show_counter":
		return setBool(&cfg.UI.ShowCounter, key, value)
	case "history.enabled":
		return setBool(&cfg.History.Enabled, key, value)
	case "history.path":
		cfg.History.Path = value
		return nil
	case "history.max_entries":
		return setInt(&cfg.History.MaxEntries, key, value)
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
}

func setBool(dst *bool, key, value string) error {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("%s expects true or false, got %q", key, value)
	}
	*dst = b
	return nil
}

func setInt(dst *int, key, value string) error {
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("%s expects a number, got %q", key, value)
	}
	*dst = n
	return nil
}
