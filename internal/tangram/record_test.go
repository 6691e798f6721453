package tangram

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"tangram-kit/internal/geom"
)

func TestPieceRecordRoundTrip(t *testing.T) {
	original := NewPiece(Parallelogram, geom.Pt(12.5, -3.25), ColorBrown).RotatedTo(1.25)

	restored, err := PieceFromRecord(original.Record())
	if err != nil {
		t.Fatalf("PieceFromRecord() returned error: %v", err)
	}
	if restored != original {
		t.Errorf("round trip = %+v, expected %+v", restored, original)
	}
}

func TestPieceRecordRoundTripAllColors(t *testing.T) {
	for _, color := range AllColors() {
		p := NewPiece(Square, geom.Pt(1, 2), color)
		restored, err := PieceFromRecord(p.Record())
		if err != nil {
			t.Fatalf("PieceFromRecord() for %v returned error: %v", color, err)
		}
		if restored.Color != color {
			t.Errorf("round trip color = %v, expected %v", restored.Color, color)
		}
	}
}

func TestPieceFromRecordUnknownColor(t *testing.T) {
	rec := NewPiece(Square, geom.Pt(0, 0), ColorOrange).Record()
	rec.Color = "neon"

	restored, err := PieceFromRecord(rec)
	if err != nil {
		t.Fatalf("PieceFromRecord() with unknown color returned error: %v", err)
	}
	if restored.Color != ColorRed {
		t.Errorf("unknown color decoded to %v, expected fallback ColorRed", restored.Color)
	}
}

func TestPieceFromRecordUnknownKind(t *testing.T) {
	rec := Record{Kind: "blob", Color: "red"}

	if _, err := PieceFromRecord(rec); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("PieceFromRecord() = %v, expected ErrUnknownKind", err)
	}
}

func TestPieceFromRecordMintsMissingID(t *testing.T) {
	rec := NewPiece(Square, geom.Pt(0, 0), ColorOrange).Record()
	rec.ID = "not-a-uuid"

	a, err := PieceFromRecord(rec)
	if err != nil {
		t.Fatalf("PieceFromRecord() returned error: %v", err)
	}
	if a.ID == uuid.Nil {
		t.Error("decoded piece has nil id, expected a fresh one")
	}
	b, _ := PieceFromRecord(rec)
	if a.ID == b.ID {
		t.Error("two decodes of an id-less record should mint distinct ids")
	}
}

func TestEncodeDecodeLayout(t *testing.T) {
	pieces := ClassicSquare(Config{Unit: 25})

	data, err := EncodeLayout("solved", 25, pieces)
	if err != nil {
		t.Fatalf("EncodeLayout() returned error: %v", err)
	}

	file, restored, err := DecodeLayout(data)
	if err != nil {
		t.Fatalf("DecodeLayout() returned error: %v", err)
	}
	if file.Name != "solved" || file.Unit != 25 {
		t.Errorf("decoded header = (%q, %v), expected (\"solved\", 25)", file.Name, file.Unit)
	}
	if len(restored) != len(pieces) {
		t.Fatalf("decoded %d pieces, expected %d", len(restored), len(pieces))
	}
	for i := range pieces {
		if restored[i] != pieces[i] {
			t.Errorf("piece %d = %+v, expected %+v", i, restored[i], pieces[i])
		}
	}
}

func TestDecodeLayoutRejectsUnknownKind(t *testing.T) {
	data := []byte("name: bad\npieces:\n  - kind: blob\n    x: 0\n    y: 0\n    rotation: 0\n    color: red\n")

	if _, _, err := DecodeLayout(data); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("DecodeLayout() = %v, expected ErrUnknownKind", err)
	}
}
