package tangram

import (
	"math"
	"sort"
	"strings"

	"tangram-kit/internal/geom"
)

// defaultColors assigns each kind its traditional display color.
var defaultColors = map[ShapeKind]ColorTag{
	LargeTriangleA: ColorRed,
	LargeTriangleB: ColorBlue,
	MediumTriangle: ColorGreen,
	SmallTriangleA: ColorYellow,
	SmallTriangleB: ColorPurple,
	Square:         ColorOrange,
	Parallelogram:  ColorBrown,
}

// DefaultColor returns the traditional display color for a kind.
func DefaultColor(kind ShapeKind) ColorTag {
	return defaultColors[kind]
}

// SquareSide returns the side length of the solved tangram square at the
// given unit. The seven piece areas sum to 8·unit², so the side is 2√2·unit.
func SquareSide(unit float64) float64 {
	return 2 * math.Sqrt2 * unit
}

// NewSet returns a full set of seven pieces laid out in a spaced tray row
// along the x axis, each at rotation zero with its default color. This is
// the starting arrangement handed to a puzzle before the player moves
// anything.
func NewSet(cfg Config) []Piece {
	gap := cfg.Unit / 2
	cursor := 0.0
	pieces := make([]Piece, 0, len(AllKinds()))
	for _, kind := range AllKinds() {
		box := geom.BoundingBox(LocalVertices(kind, cfg.Unit))
		// Anchor each piece so its bounding box rests on y=0 starting
		// at the cursor.
		pieces = append(pieces, NewPiece(kind, geom.Pt(cursor-box.X, -box.Y), DefaultColor(kind)))
		cursor += box.W + gap
	}
	return pieces
}

// classicPose places one piece into the solved square. Positions are
// fractions of the square side so the table works at any unit.
type classicPose struct {
	kind     ShapeKind
	x, y     float64
	rotation float64
}

// classicPoses tiles the square [0,S]x[0,S] exactly: the large triangles
// fill the bottom and right quarters meeting at the center, the medium
// triangle takes the top-left corner, and the small triangles, square and
// parallelogram fill the band between the main diagonal and the top-left
// edges.
var classicPoses = []classicPose{
	{LargeTriangleA, 0.5, 0.5, 5 * math.Pi / 4},
	{LargeTriangleB, 0.5, 0.5, 7 * math.Pi / 4},
	{MediumTriangle, 0, 1, 3 * math.Pi / 2},
	{SmallTriangleA, 0.25, 0.25, 3 * math.Pi / 4},
	{SmallTriangleB, 0.5, 0.5, math.Pi / 4},
	{Square, 0.25, 0.5, 0},
	{Parallelogram, 0.25, 0.75, 0},
}

// ClassicSquare returns the seven pieces posed as the solved tangram square
// with its lower-left corner at the origin.
func ClassicSquare(cfg Config) []Piece {
	side := SquareSide(cfg.Unit)
	pieces := make([]Piece, 0, len(classicPoses))
	for _, pose := range classicPoses {
		p := NewPiece(pose.kind, geom.Pt(pose.x*side, pose.y*side), DefaultColor(pose.kind))
		pieces = append(pieces, p.RotatedTo(pose.rotation))
	}
	return pieces
}

// Builder constructs a built-in layout for a configuration.
type Builder func(Config) []Piece

var builtinLayouts = map[string]Builder{
	"classic": ClassicSquare,
	"tray":    NewSet,
}

// BuiltinLayout looks up a built-in layout builder by name.
func BuiltinLayout(name string) (Builder, bool) {
	b, ok := builtinLayouts[strings.ToLower(name)]
	return b, ok
}

// BuiltinLayouts returns the names of the built-in layouts in sorted order.
func BuiltinLayouts() []string {
	names := make([]string, 0, len(builtinLayouts))
	for name := range builtinLayouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
