package config

import (
	_ "embed"
	"math"
)

//go:embed defaults/tangram.yaml
var defaultTangramYAML []byte

// DefaultSettings returns the built-in configuration.
func DefaultSettings() Settings {
	return Settings{
		Geometry: GeometrySettings{
			Unit:                50,
			VertexTolerance:     0.001,
			MinVertexSeparation: 1e-6,
			RotationSnap:        math.Pi / 4,
		},
		Storage: StorageSettings{
			Path: "~/.tangram/layouts.db",
		},
		Render: RenderSettings{
			Width:  0,
			Height: 0,
		},
	}
}
