package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quotekeeper/quotes/internal/ai"
	"github.com/quotekeeper/quotes/internal/config"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Check the installation and configure the AI features",
	Long: `Report where data and config live, whether an Anthropic API key is
configured, and how to set one up for your shell. Writes a default config
file if none exists yet.`,
	Run: func(cmd *cobra.Command, args []string) {
		dataDir, _ := config.DefaultDataDir()
		render.Info("config file: %s", cfgPath)
		render.Info("data dir:    %s", dataDir)
		render.Info("storage:     %s", cfg.Storage.Backend)
		render.Info("theme:       %s", cfg.Theme)
		fmt.Println()

		if ai.Available() {
			render.Success("ANTHROPIC_API_KEY is set, AI features are available")
			render.Info("model: %s", ai.GetModel())
		} else {
			render.Warning("ANTHROPIC_API_KEY is not set, AI features are off")
			render.Info("quotes still works without it: add, list, search, daily")
			fmt.Println()
			printKeyInstructions()
		}

		if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
			if err := config.Save(cfg, cfgPath); err != nil {
				fatal("failed to write config: %v", err)
			}
			render.Success("wrote default config to %s", cfgPath)
		}
	},
}

// printKeyInstructions tells the user how to persist the API key in their
// shell's rc file.
func printKeyInstructions() {
	shell := filepath.Base(os.Getenv("SHELL"))
	line := `export ANTHROPIC_API_KEY="sk-ant-..."`

	var rc string
	switch {
	case shell == "zsh":
		rc = "~/.zshrc"
	case shell == "bash":
		rc = "~/.bashrc"
	case strings.Contains(shell, "fish"):
		rc = "~/.config/fish/config.fish"
		line = `set -gx ANTHROPIC_API_KEY "sk-ant-..."`
	default:
		rc = "your shell profile"
	}

	render.Info("to enable AI features, get a key at https://console.anthropic.com")
	render.Info("and add this to %s:", rc)
	render.Info("  %s", line)
}

func init() {
	rootCmd.AddCommand(setupCmd)
}
