package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tangram-kit/internal/tangram"
)

var shapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "Show the piece catalog",
	Long: `Lists the seven tangram pieces with their vertex counts and areas at
the configured unit, plus each piece's share of the full set.`,
	Run: runShapes,
}

func runShapes(cmd *cobra.Command, args []string) {
	cfg := loadSettings().GeometryConfig()
	total := tangram.TotalArea(cfg.Unit)

	fmt.Println(headerStyle.Render(fmt.Sprintf("Piece catalog at unit %g", cfg.Unit)))
	fmt.Println()

	fmt.Printf("  %-18s  %8s  %12s  %7s\n", "Kind", "Vertices", "Area", "Share")
	fmt.Printf("  %-18s  %8s  %12s  %7s\n", "----", "--------", "----", "-----")
	for _, kind := range tangram.AllKinds() {
		area := tangram.ShapeArea(kind, cfg.Unit)
		fmt.Printf("  %-18s  %8d  %12.2f  %6.1f%%\n",
			kind, tangram.VertexCount(kind), area, 100*area/total)
	}

	fmt.Println()
	fmt.Printf("  Total area %.2f, the square of side %.2f\n", total, tangram.SquareSide(cfg.Unit))
}
