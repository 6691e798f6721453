package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tangram-kit/internal/tangram"
)

// Shared table and status styles.
var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// colorStyles maps piece colors to terminal styles for raster output.
var colorStyles = map[tangram.ColorTag]lipgloss.Style{
	tangram.ColorRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	tangram.ColorOrange: lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	tangram.ColorYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	tangram.ColorGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	tangram.ColorBlue:   lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	tangram.ColorPurple: lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	tangram.ColorBrown:  lipgloss.NewStyle().Foreground(lipgloss.Color("94")),
}

// styleRaster colorizes a Rasterize dump by mapping each color char back to
// its piece style. The '.' filler and anything unknown pass through dimmed.
func styleRaster(raster string) string {
	charStyles := make(map[rune]lipgloss.Style, len(colorStyles))
	for color, style := range colorStyles {
		charStyles[color.Char()] = style
	}

	var sb strings.Builder
	for _, r := range raster {
		if r == '\n' {
			sb.WriteRune(r)
			continue
		}
		if style, ok := charStyles[r]; ok {
			sb.WriteString(style.Render(string(r)))
		} else {
			sb.WriteString(dimStyle.Render(string(r)))
		}
	}
	return sb.String()
}
