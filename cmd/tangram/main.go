// tangram is a command-line toolkit for building, storing and analyzing
// tangram piece layouts.
//
// Usage:
//
//	tangram shapes                       - Show the piece catalog
//	tangram validate                     - Check the catalog geometry
//	tangram save <name> --from classic   - Build or import a layout and store it
//	tangram layouts                      - List stored layouts
//	tangram show <name>                  - Render a layout as ASCII
//	tangram hit <name> <x> <y>           - Probe a point against a layout
//	tangram compare <a> <b>              - Compare two layouts piece by piece
//	tangram export <name>                - Dump a layout as YAML
//	tangram rm <name>                    - Delete a stored layout
//
// Global flags:
//
//	--config <path>  - Path to a settings YAML file
//	--db <path>      - Path to the layouts database
//	--verbose        - Log geometry diagnostics to stderr
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"tangram-kit/internal/config"
	"tangram-kit/internal/geom"
	"tangram-kit/internal/storage"
	"tangram-kit/internal/tangram"
)

var (
	// Global flags
	flagConfig  string
	flagDBPath  string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tangram",
	Short: "Tangram - build, store and analyze tangram piece layouts",
	Long: `Tangram is a geometry toolkit for the classic seven-piece dissection
puzzle. It builds piece layouts, stores them in SQLite, renders them as
ASCII and answers hit-testing and shape-comparison queries.

Available commands:
  shapes    - Show the piece catalog with areas
  validate  - Check the catalog geometry at the configured unit
  save      - Build or import a layout and store it
  layouts   - List stored layouts
  show      - Render a layout as ASCII
  hit       - Probe a point against a layout
  compare   - Compare two layouts piece by piece
  export    - Dump a layout as YAML
  rm        - Delete a stored layout

Examples:
  tangram shapes
  tangram save solved --from classic
  tangram show solved
  tangram hit solved 70 70 --radius 5
  tangram compare solved start`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagVerbose {
			logger := log.NewWithOptions(os.Stderr, log.Options{
				ReportTimestamp: true,
				Prefix:          "tangram",
			})
			logger.SetLevel(log.DebugLevel)
			geom.SetLogger(logger)
		}
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to settings YAML (default: ~/.tangram/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to layouts database (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Log geometry diagnostics")

	// Add subcommands
	rootCmd.AddCommand(shapesCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(layoutsCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(hitCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(exportCmd)
}

// loadSettings reads the configuration and applies the --db override.
func loadSettings() config.Settings {
	settings, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagDBPath != "" {
		settings.Storage.Path = flagDBPath
	}
	return settings
}

// openStore opens the layouts database named by the settings.
func openStore(settings config.Settings) *storage.Store {
	store, err := storage.Open(settings.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening layouts database: %v\n", err)
		os.Exit(1)
	}
	return store
}

// resolveLayout fetches pieces by name: built-in layouts are constructed at
// the configured unit, anything else is looked up in the store. The returned
// unit is the one the pieces were built or saved with.
func resolveLayout(settings config.Settings, name string) ([]tangram.Piece, float64) {
	if builder, ok := tangram.BuiltinLayout(name); ok {
		cfg := settings.GeometryConfig()
		return builder(cfg), cfg.Unit
	}

	store := openStore(settings)
	defer store.Close()

	row, pieces, err := store.LoadLayout(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading layout: %v\n", err)
		os.Exit(1)
	}
	if row == nil {
		fmt.Fprintf(os.Stderr, "Error: no layout named %q\n", name)
		fmt.Fprintln(os.Stderr, "Run 'tangram layouts' to see stored layouts.")
		os.Exit(1)
	}
	return pieces, row.Unit
}
