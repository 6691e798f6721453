package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tangram-kit/internal/tangram"
)

var flagOutput string

var exportCmd = &cobra.Command{
	Use:   "export <name>",
	Short: "Dump a layout as YAML",
	Long: `Writes a layout as a YAML document that 'tangram save --from' accepts.
Both stored and built-in layout names work.

Examples:
  tangram export solved
  tangram export classic -o classic.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Write to a file instead of stdout")
}

func runExport(cmd *cobra.Command, args []string) {
	name := args[0]
	settings := loadSettings()

	pieces, unit := resolveLayout(settings, name)

	data, err := tangram.EncodeLayout(name, unit, pieces)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding layout: %v\n", err)
		os.Exit(1)
	}

	if flagOutput == "" {
		fmt.Print(string(data))
		return
	}
	if err := os.WriteFile(flagOutput, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", flagOutput, err)
		os.Exit(1)
	}

	fmt.Printf("Exported layout %q to %s\n", name, flagOutput)
}
