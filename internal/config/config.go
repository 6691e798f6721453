// Package config provides YAML-based settings loading for the tangram CLI:
// geometry parameters, storage location and render defaults.
package config

import "tangram-kit/internal/tangram"

// Settings contains everything the CLI reads from its configuration file.
type Settings struct {
	Geometry GeometrySettings `yaml:"geometry"`
	Storage  StorageSettings  `yaml:"storage"`
	Render   RenderSettings   `yaml:"render"`
}

// GeometrySettings defines the kernel parameters.
type GeometrySettings struct {
	Unit                float64 `yaml:"unit"`
	VertexTolerance     float64 `yaml:"vertex_tolerance"`
	MinVertexSeparation float64 `yaml:"min_vertex_separation"`
	RotationSnap        float64 `yaml:"rotation_snap"` // radians
}

// StorageSettings defines where layouts are persisted.
type StorageSettings struct {
	Path string `yaml:"path"`
}

// RenderSettings defines the default ASCII raster size. Zero width fits the
// terminal; zero height keeps a 2:1 aspect from the width.
type RenderSettings struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GeometryConfig converts the loaded geometry settings into the kernel
// parameter struct threaded through all tangram operations.
func (s Settings) GeometryConfig() tangram.Config {
	return tangram.Config{
		Unit:                s.Geometry.Unit,
		VertexTolerance:     s.Geometry.VertexTolerance,
		MinVertexSeparation: s.Geometry.MinVertexSeparation,
		RotationSnap:        s.Geometry.RotationSnap,
	}
}
