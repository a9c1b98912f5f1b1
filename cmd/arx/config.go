package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/arx-sec/arx/internal/config"
	"github.com/arx-sec/arx/internal/userconfig"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage arx configuration",
	Long: `Manage arx configuration settings.

Configuration is stored in ~/.arx/config.toml (override the directory
with ARX_HOME).

Available settings:
  verbose    Log operational detail to stderr during a run (true/false)

Examples:
  arx config get verbose
  arx config set verbose false
  arx config path`,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Long: `Get the current value of a configuration setting.

Available keys:
  verbose    Log operational detail to stderr during a run (true/false)`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		key := args[0]

		cfg, err := userconfig.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			exitWithCode(ExitGeneral)
		}

		value, ok := cfg.Get(key)
		if !ok {
			fmt.Fprintf(os.Stderr, "Unknown config key: %s\n", key)
			fmt.Fprintf(os.Stderr, "\nAvailable keys:\n")
			printAvailableKeys()
			exitWithCode(ExitUsage)
		}

		fmt.Println(value)
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value.

Available keys:
  verbose    Log operational detail to stderr during a run (true/false)

Examples:
  arx config set verbose false
  arx config set verbose true`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		key := args[0]
		value := args[1]

		cfg, err := userconfig.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			exitWithCode(ExitGeneral)
		}

		if err := cfg.Set(key, value); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintf(os.Stderr, "\nAvailable keys:\n")
			printAvailableKeys()
			exitWithCode(ExitUsage)
		}

		if err := cfg.Save(); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving config: %v\n", err)
			exitWithCode(ExitGeneral)
		}

		fmt.Printf("%s = %s\n", key, value)
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.DefaultConfig()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitWithCode(ExitGeneral)
		}

		fmt.Println(cfg.ConfigFile)
	},
}

func printAvailableKeys() {
	keys := userconfig.AvailableKeys()
	// Sort keys for consistent output
	var sortedKeys []string
	for k := range keys {
		sortedKeys = append(sortedKeys, k)
	}
	sort.Strings(sortedKeys)

	for _, k := range sortedKeys {
		fmt.Fprintf(os.Stderr, "  %s - %s\n", k, keys[k])
	}
}

// runConfig executes the config command tree against the remaining
// argument vector. configCmd is deliberately not attached to rootCmd:
// the root routes on its leading token only, so a package that happens
// to be named "config" deeper in the vector is never hijacked.
func runConfig(ctx context.Context, args []string) int {
	configCmd.SetArgs(args)
	if err := configCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return ExitUsage
	}
	return ExitSuccess
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
}
