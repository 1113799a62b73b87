package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Iron-Ham/larek/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or modify larek configuration",
	Long: `View or modify larek configuration.

Without arguments, displays the current configuration.
Use subcommands to modify settings or create a config file.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the user's config file.

Keys use dot notation, e.g.:
  larek config set api.base_url http://localhost:9090/api/weblarek
  larek config set tui.theme mono

Valid keys:
  api.base_url         - Shop API root
  api.cdn_url          - Prefix for product image paths
  api.timeout_seconds  - Request timeout (0 = none)
  server.addr          - Listen address of 'larek serve'
  server.catalog       - Catalog file served by 'larek serve'
  server.watch         - Reload the catalog file on change (true/false)
  tui.currency         - Unit shown after prices
  tui.card_width       - Gallery card width (20-60)
  tui.theme            - Color theme: default, mono
  tui.bell             - Ring the bell when a request fails (true/false)
  logging.enabled      - Write larek.log (true/false)
  logging.level        - debug, info, warn, error
  logging.dir          - Directory of larek.log`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long:  `Create a default config file at ~/.config/larek/config.yaml with all available options.`,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

// configKeys maps every settable key to its value kind.
var configKeys = map[string]string{
	"api.base_url":        "string",
	"api.cdn_url":         "string",
	"api.timeout_seconds": "int",
	"server.addr":         "string",
	"server.catalog":      "string",
	"server.watch":        "bool",
	"tui.currency":        "string",
	"tui.card_width":      "int",
	"tui.theme":           "string",
	"tui.bell":            "bool",
	"logging.enabled":     "bool",
	"logging.level":       "string",
	"logging.dir":         "string",
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintln(out)

	// Show where config is being read from
	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Config file: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Config file: (none - using defaults)\n")
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "api:")
	fmt.Fprintf(out, "  base_url: %s\n", cfg.API.BaseURL)
	fmt.Fprintf(out, "  cdn_url: %s\n", cfg.API.CDNURL)
	fmt.Fprintf(out, "  timeout_seconds: %d\n", cfg.API.TimeoutSeconds)

	fmt.Fprintln(out, "server:")
	fmt.Fprintf(out, "  addr: %s\n", cfg.Server.Addr)
	fmt.Fprintf(out, "  catalog: %s\n", cfg.Server.Catalog)
	fmt.Fprintf(out, "  watch: %v\n", cfg.Server.Watch)

	fmt.Fprintln(out, "tui:")
	fmt.Fprintf(out, "  currency: %s\n", cfg.TUI.Currency)
	fmt.Fprintf(out, "  card_width: %d\n", cfg.TUI.CardWidth)
	fmt.Fprintf(out, "  theme: %s\n", cfg.TUI.Theme)
	fmt.Fprintf(out, "  bell: %v\n", cfg.TUI.Bell)

	fmt.Fprintln(out, "logging:")
	fmt.Fprintf(out, "  enabled: %v\n", cfg.Logging.Enabled)
	fmt.Fprintf(out, "  level: %s\n", cfg.Logging.Level)
	fmt.Fprintf(out, "  dir: %s\n", cfg.Logging.LogDir())

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	value := args[1]

	keyType, ok := configKeys[key]
	if !ok {
		return fmt.Errorf("unknown configuration key: %s\nRun 'larek config set --help' to see valid keys", key)
	}

	var typedValue any
	switch keyType {
	case "string":
		typedValue = value
	case "bool":
		if value != "true" && value != "false" {
			return fmt.Errorf("invalid value for %s: expected true or false", key)
		}
		typedValue = value == "true"
	case "int":
		intVal, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: expected integer", key)
		}
		typedValue = intVal
	}

	// Validate the whole config with the new value before writing anything
	previous := viper.Get(key)
	viper.Set(key, typedValue)
	if _, err := config.Load(); err != nil {
		viper.Set(key, previous)
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}

	configDir := config.ConfigDir()
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configFile := config.ConfigFile()
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %v\n", key, typedValue)
	fmt.Fprintf(cmd.OutOrStdout(), "Config saved to %s\n", configFile)

	return nil
}

// defaultConfigContent is written by 'larek config init'.
const defaultConfigContent = `# larek configuration

# Shop API the storefront talks to
api:
  base_url: http://localhost:8080/api/weblarek
  # Prefix for product image paths
  cdn_url: http://localhost:8080/content/weblarek
  # Request timeout in seconds (0 = none)
  timeout_seconds: 10

# Demo API started by 'larek serve'
server:
  addr: ":8080"
  # YAML or JSON catalog file; empty serves the built-in catalog
  catalog: ""
  # Reload the catalog file when it changes
  watch: false

# Terminal UI
tui:
  # Unit shown after prices
  currency: synapses
  # Gallery card width in columns (20-60)
  card_width: 30
  # Color theme: default, mono
  theme: default
  # Ring the terminal bell when a request fails
  bell: true

# Debug log (larek.log)
logging:
  enabled: true
  # debug, info, warn, error
  level: info
  # Directory of larek.log; empty uses the config directory
  dir: ""
`

func runConfigInit(cmd *cobra.Command, args []string) error {
	configDir := config.ConfigDir()
	configFile := config.ConfigFile()

	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists at %s\nUse 'larek config set' to modify values", configFile)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(configFile, []byte(defaultConfigContent), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created config file at %s\n", configFile)
	fmt.Fprintln(cmd.OutOrStdout(), "Edit this file to customize larek.")

	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	configFile := config.ConfigFile()

	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Active config: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Default path: %s (not created)\n", configFile)
	}

	fmt.Fprintln(out, "\nSearch paths:")
	fmt.Fprintf(out, "  1. %s\n", filepath.Join(config.ConfigDir(), "config.yaml"))
	fmt.Fprintf(out, "  2. ./config.yaml (current directory)\n")
	fmt.Fprintln(out, "\nEnvironment variables: LAREK_* (e.g., LAREK_API_BASE_URL)")

	return nil
}
