package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/astro-arcade/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or validate the game configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as YAML",
	Long: `Prints the configuration the game would run with, after applying
--config and --difficulty. Redirect it to a file to start a custom config.

Examples:
  astro config show
  astro config show --difficulty hard > ~/.astro/configs/asteroids.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfigShow,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a configuration file against the schema",
	Args:  cobra.ExactArgs(1),
	Run:   runConfigValidate,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configValidateCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(out))
}

func runConfigValidate(cmd *cobra.Command, args []string) {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if _, err := config.Parse(data); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s is invalid:\n%v\n", path, err)
		os.Exit(1)
	}
	fmt.Printf("%s is valid.\n", path)
}
