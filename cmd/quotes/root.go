// Command quotes is a personal quote keeper with AI-assisted author
// identification, categorization and duplicate detection.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quotekeeper/quotes/internal/ai"
	"github.com/quotekeeper/quotes/internal/config"
	"github.com/quotekeeper/quotes/internal/display"
	"github.com/quotekeeper/quotes/internal/storage"
)

// Version is set via ldflags at release time.
var Version = "dev"

// Shared per-invocation state, initialized by initApp before any command
// runs.
var (
	cfg     *config.Config
	cfgPath string
	store   storage.Storage
	render  *display.Renderer
)

var rootCmd = &cobra.Command{
	Use:   "quotes",
	Short: "Keep and rediscover your favorite quotes",
	Long: `quotes is a personal quote keeper. It stores quotes locally and, when an
Anthropic API key is configured, identifies authors, suggests categories,
detects duplicates and explains quotes on demand.

Run without arguments for the interactive menu.`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initApp()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if store != nil {
			store.Close()
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		runMenu()
	},
}

func initApp() error {
	var err error
	cfgPath, err = config.DefaultPath()
	if err != nil {
		return err
	}
	cfg, err = config.Load(cfgPath)
	if err != nil {
		return err
	}

	dataDir, err := config.DefaultDataDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("failed to create data dir %s: %w", dataDir, err)
	}

	backend := cfg.Storage.Backend
	if env := os.Getenv("QUOTES_BACKEND"); env != "" {
		backend = env
	}
	store, err = storage.New(&storage.Config{
		Backend: backend,
		Dir:     dataDir,
		Path:    cfg.Storage.Path,
	})
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}

	theme := cfg.Theme
	if themeFlag != "" {
		theme = themeFlag
	}
	render = display.NewRenderer(os.Stdout, display.ResolveTheme(theme))
	return nil
}

// aiClient returns a configured AI client, or nil when no API key is set.
// Commands treat nil as "AI features off".
func aiClient() *ai.Client {
	client, err := ai.NewClient(nil)
	if err != nil {
		return nil
	}
	return client
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

var themeFlag string

func init() {
	rootCmd.PersistentFlags().StringVar(&themeFlag, "theme", "", "color theme for this invocation")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
