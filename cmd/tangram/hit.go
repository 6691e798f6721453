package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"tangram-kit/internal/geom"
	"tangram-kit/internal/tangram"
)

var flagRadius float64

var hitCmd = &cobra.Command{
	Use:   "hit <layout> <x> <y>",
	Short: "Probe a point against a layout",
	Long: `Reports, for every piece in the layout, whether the probe point lands
inside it and whether a brush circle of --radius around the point touches
it. Pieces whose anchor lies within the radius (or within one unit when no
radius is given) are listed as nearby.

Examples:
  tangram hit solved 70 70
  tangram hit solved 70 70 --radius 5`,
	Args: cobra.ExactArgs(3),
	Run:  runHit,
}

func init() {
	hitCmd.Flags().Float64Var(&flagRadius, "radius", 0, "Brush radius in world units")
}

func runHit(cmd *cobra.Command, args []string) {
	settings := loadSettings()
	cfg := settings.GeometryConfig()

	x, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: bad x coordinate %q\n", args[1])
		os.Exit(1)
	}
	y, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: bad y coordinate %q\n", args[2])
		os.Exit(1)
	}
	probe := geom.Pt(x, y)

	pieces, unit := resolveLayout(settings, args[0])

	fmt.Printf("Probe (%g, %g)", x, y)
	if flagRadius > 0 {
		fmt.Printf(" with brush radius %g", flagRadius)
	}
	fmt.Println()
	fmt.Println()

	hits := 0
	for _, p := range pieces {
		verts := p.WorldVertices(unit)
		inside := geom.PointInPolygon(probe, verts)
		touched := flagRadius > 0 &&
			geom.CircleIntersectsPolygon(probe, flagRadius, verts, cfg.MinVertexSeparation)

		switch {
		case inside:
			fmt.Printf("  %s  %-18s contains the point\n", okStyle.Render("HIT"), p.Kind)
			hits++
		case touched:
			fmt.Printf("  %s  %-18s touched by the brush\n", okStyle.Render("HIT"), p.Kind)
			hits++
		default:
			fmt.Printf("  %s  %s\n", dimStyle.Render(" - "), p.Kind)
		}
	}

	proximity := flagRadius
	if proximity <= 0 {
		proximity = cfg.Unit
	}
	near := tangram.PiecesNearPoint(pieces, probe, proximity)

	fmt.Println()
	fmt.Printf("%d of %d pieces hit, %d anchors within %g\n", hits, len(pieces), len(near), proximity)
	for _, p := range near {
		fmt.Printf("  %-18s anchored at (%.1f, %.1f), distance %.2f\n",
			p.Kind, p.Position.X, p.Position.Y, probe.DistanceTo(p.Position))
	}
}
