package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/quotekeeper/quotes/internal/config"
	"github.com/quotekeeper/quotes/internal/display"
)

var themeCmd = &cobra.Command{
	Use:   "theme [name]",
	Short: "Show or set the color theme",
	Long: `Without arguments, lists available themes and marks the active one.
With a name, switches to that theme and saves it to the config file.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			for _, name := range display.ThemeNames {
				marker := " "
				if name == cfg.Theme {
					marker = "*"
				}
				render.Info("%s %s", marker, name)
			}
			return
		}

		name := strings.ToLower(args[0])
		if !validTheme(name) {
			fatal("unknown theme %q (want one of: %s)", name, strings.Join(display.ThemeNames, ", "))
		}

		cfg.Theme = name
		if err := config.Save(cfg, cfgPath); err != nil {
			fatal("failed to save config: %v", err)
		}
		render.Success("theme set to %s", name)
	},
}

func validTheme(name string) bool {
	for _, n := range display.ThemeNames {
		if n == name {
			return true
		}
	}
	return false
}

func init() {
	rootCmd.AddCommand(themeCmd)
}
