package tangram

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"tangram-kit/internal/geom"
)

// ErrUnknownKind is wrapped when a stored record names a shape the catalog
// does not know. Unlike colors, a kind selects geometry, so there is no
// safe fallback value and the record cannot become a piece.
var ErrUnknownKind = errors.New("unknown shape kind")

// Record is the serialized form of a Piece. Kind and color travel as their
// symbolic names so stored layouts stay readable and survive enum
// reordering.
type Record struct {
	ID       string  `yaml:"id,omitempty"`
	Kind     string  `yaml:"kind"`
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Rotation float64 `yaml:"rotation"`
	Color    string  `yaml:"color"`
}

// LayoutFile is a named collection of piece records, the YAML document
// produced by export and accepted by import.
type LayoutFile struct {
	Name   string   `yaml:"name"`
	Unit   float64  `yaml:"unit,omitempty"`
	Pieces []Record `yaml:"pieces"`
}

// Record returns the serialized form of the piece.
func (p Piece) Record() Record {
	return Record{
		ID:       p.ID.String(),
		Kind:     p.Kind.String(),
		X:        p.Position.X,
		Y:        p.Position.Y,
		Rotation: p.Rotation,
		Color:    p.Color.String(),
	}
}

// PieceFromRecord rebuilds a piece from its serialized form. The stored
// identity is preserved when present and parseable, and minted fresh
// otherwise. An unknown color falls back to the default tag rather than
// failing; an unknown kind wraps ErrUnknownKind.
func PieceFromRecord(rec Record) (Piece, error) {
	kind, ok := ParseKind(rec.Kind)
	if !ok {
		return Piece{}, fmt.Errorf("tangram: cannot decode piece of kind %q: %w", rec.Kind, ErrUnknownKind)
	}
	color, _ := ParseColor(rec.Color)
	id, err := uuid.Parse(rec.ID)
	if err != nil {
		id = uuid.New()
	}
	return Piece{
		ID:       id,
		Kind:     kind,
		Position: geom.Pt(rec.X, rec.Y),
		Rotation: rec.Rotation,
		Color:    color,
	}, nil
}

// Records converts a piece list to its serialized form.
func Records(pieces []Piece) []Record {
	recs := make([]Record, len(pieces))
	for i, p := range pieces {
		recs[i] = p.Record()
	}
	return recs
}

// PiecesFromRecords converts a record list, failing on the first record
// whose kind is unknown.
func PiecesFromRecords(recs []Record) ([]Piece, error) {
	pieces := make([]Piece, 0, len(recs))
	for i, rec := range recs {
		p, err := PieceFromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("tangram: piece %d: %w", i, err)
		}
		pieces = append(pieces, p)
	}
	return pieces, nil
}

// EncodeLayout renders a named layout as a YAML document.
func EncodeLayout(name string, unit float64, pieces []Piece) ([]byte, error) {
	data, err := yaml.Marshal(LayoutFile{Name: name, Unit: unit, Pieces: Records(pieces)})
	if err != nil {
		return nil, fmt.Errorf("tangram: cannot encode layout %q: %w", name, err)
	}
	return data, nil
}

// DecodeLayout parses a YAML layout document and rebuilds its pieces.
func DecodeLayout(data []byte) (LayoutFile, []Piece, error) {
	var file LayoutFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return LayoutFile{}, nil, fmt.Errorf("tangram: cannot decode layout: %w", err)
	}
	pieces, err := PiecesFromRecords(file.Pieces)
	if err != nil {
		return LayoutFile{}, nil, err
	}
	return file, pieces, nil
}
