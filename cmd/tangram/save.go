package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tangram-kit/internal/tangram"
)

var flagFrom string

var saveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Build or import a layout and store it",
	Long: `Stores a named layout in the database, replacing any previous layout
with the same name.

The --from source is either a built-in layout (classic, tray) built at the
configured unit, or a path to a layout YAML file as written by
'tangram export'.

Examples:
  tangram save solved --from classic
  tangram save start --from tray
  tangram save custom --from ./custom.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runSave,
}

func init() {
	saveCmd.Flags().StringVar(&flagFrom, "from", "tray", "Layout source: classic, tray or a YAML file path")
}

func runSave(cmd *cobra.Command, args []string) {
	name := args[0]
	settings := loadSettings()
	cfg := settings.GeometryConfig()

	var pieces []tangram.Piece
	unit := cfg.Unit

	if builder, ok := tangram.BuiltinLayout(flagFrom); ok {
		pieces = builder(cfg)
	} else if strings.HasSuffix(flagFrom, ".yaml") || strings.HasSuffix(flagFrom, ".yml") {
		data, err := os.ReadFile(flagFrom)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading layout file: %v\n", err)
			os.Exit(1)
		}
		file, decoded, err := tangram.DecodeLayout(data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error decoding layout file: %v\n", err)
			os.Exit(1)
		}
		pieces = decoded
		if file.Unit > 0 {
			unit = file.Unit
		}
	} else {
		fmt.Fprintf(os.Stderr, "Error: unknown layout source %q\n", flagFrom)
		fmt.Fprintf(os.Stderr, "Use one of: %s, or a .yaml file path.\n", strings.Join(tangram.BuiltinLayouts(), ", "))
		os.Exit(1)
	}

	store := openStore(settings)
	defer store.Close()

	if _, err := store.SaveLayout(name, unit, pieces); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving layout: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Saved layout %q (%d pieces, unit %g)\n", name, len(pieces), unit)
}
