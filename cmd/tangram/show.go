package main

import (
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"tangram-kit/internal/config"
	"tangram-kit/internal/tangram"
)

var (
	flagWidth  int
	flagHeight int
)

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Render a layout as ASCII",
	Long: `Renders a layout on a character grid, one colored letter per piece.
Both stored and built-in layout names work.

The grid defaults to the render size from the config, or to the terminal
width with rows chosen to keep world proportions (terminal cells are about
twice as tall as they are wide).

Examples:
  tangram show classic
  tangram show solved --width 60
  tangram show tray --width 100 --height 12`,
	Args: cobra.ExactArgs(1),
	Run:  runShow,
}

func init() {
	showCmd.Flags().IntVar(&flagWidth, "width", 0, "Grid width in characters (0 = auto)")
	showCmd.Flags().IntVar(&flagHeight, "height", 0, "Grid height in rows (0 = keep aspect)")
}

func runShow(cmd *cobra.Command, args []string) {
	settings := loadSettings()
	pieces, unit := resolveLayout(settings, args[0])
	if len(pieces) == 0 {
		fmt.Println("Layout has no pieces.")
		return
	}

	width, height := rasterSize(settings, pieces, unit)
	fmt.Print(styleRaster(tangram.Rasterize(pieces, unit, width, height)))

	fmt.Println()
	for _, p := range pieces {
		style := colorStyles[p.Color]
		fmt.Printf("  %s  %-18s at (%.1f, %.1f) rot %.0f°\n",
			style.Render(string(p.Color.Char())), p.Kind,
			p.Position.X, p.Position.Y, p.Rotation*180/math.Pi)
	}
}

// rasterSize picks the grid dimensions: explicit flags win, then the config,
// then the terminal width with the row count derived from the world aspect
// ratio.
func rasterSize(settings config.Settings, pieces []tangram.Piece, unit float64) (int, int) {
	width := flagWidth
	if width == 0 {
		width = settings.Render.Width
	}
	height := flagHeight
	if height == 0 {
		height = settings.Render.Height
	}
	if width > 0 && height > 0 {
		return width, height
	}

	if width == 0 {
		width = 80 // Default
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 2 {
			width = w - 2
		}
	}
	if height == 0 {
		height = 24 // Default
		box := pieces[0].BoundingBox(unit)
		for _, p := range pieces[1:] {
			box = box.Union(p.BoundingBox(unit))
		}
		if box.W > 0 {
			// Terminal cells are roughly twice as tall as they are wide.
			height = int(math.Round(float64(width) * box.H / box.W / 2))
			if height < 1 {
				height = 1
			}
		}
	}
	return width, height
}
