package tangram

import (
	"math"
	"strings"
	"testing"

	"tangram-kit/internal/geom"
)

func TestRasterizeDiamond(t *testing.T) {
	// At unit √2 the square piece is a diamond with radius 1 around the
	// origin.
	p := NewPiece(Square, geom.Pt(0, 0), ColorOrange)

	out := Rasterize([]Piece{p}, math.Sqrt2, 8, 8)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 8 {
		t.Fatalf("Rasterize() produced %d rows, expected 8", len(lines))
	}
	for i, line := range lines {
		if len(line) != 8 {
			t.Fatalf("row %d has %d columns, expected 8", i, len(line))
		}
	}

	if lines[3][3] != 'O' || lines[4][4] != 'O' {
		t.Errorf("center cells = %c %c, expected 'O'", lines[3][3], lines[4][4])
	}
	if lines[0][0] != '.' || lines[7][7] != '.' {
		t.Errorf("corner cells = %c %c, expected '.'", lines[0][0], lines[7][7])
	}
}

func TestRasterizeTopmostWins(t *testing.T) {
	bottom := NewPiece(Square, geom.Pt(0, 0), ColorOrange)
	top := NewPiece(Square, geom.Pt(0, 0), ColorBlue)

	out := Rasterize([]Piece{bottom, top}, math.Sqrt2, 8, 8)
	lines := strings.Split(out, "\n")
	if lines[3][3] != 'B' {
		t.Errorf("center cell = %c, expected 'B' from the piece drawn last", lines[3][3])
	}
}

func TestRasterizeEmpty(t *testing.T) {
	if out := Rasterize(nil, 1, 10, 10); out != "" {
		t.Errorf("Rasterize(no pieces) = %q, expected empty", out)
	}
	p := NewPiece(Square, geom.Pt(0, 0), ColorOrange)
	if out := Rasterize([]Piece{p}, 1, 0, 10); out != "" {
		t.Errorf("Rasterize(zero width) = %q, expected empty", out)
	}
}
