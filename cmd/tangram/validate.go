package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tangram-kit/internal/tangram"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the catalog geometry",
	Long: `Validates every piece shape at the configured unit: vertex counts,
degenerate areas and the plausible-area bounds, then checks that the seven
areas sum to the full square.

Exits non-zero when any check fails.`,
	Run: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) {
	cfg := loadSettings().GeometryConfig()

	failed := false
	for _, kind := range tangram.AllKinds() {
		if err := tangram.Validate(kind, cfg.Unit); err != nil {
			fmt.Printf("  %s  %s: %v\n", errorStyle.Render("FAIL"), kind, err)
			failed = true
			continue
		}
		fmt.Printf("  %s  %s\n", okStyle.Render("PASS"), kind)
	}

	if err := tangram.ValidateSet(cfg.Unit); err != nil {
		fmt.Printf("  %s  full set: %v\n", errorStyle.Render("FAIL"), err)
		failed = true
	} else {
		fmt.Printf("  %s  full set, area %.2f\n", okStyle.Render("PASS"), tangram.TotalArea(cfg.Unit))
	}

	if failed {
		os.Exit(1)
	}
}
