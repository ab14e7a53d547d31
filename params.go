// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package georand

import (
	"fmt"

	"github.com/golang/geo/r2"

	"github.com/2dChan/georand/ring"
)

// IntRange is an inclusive integer interval.
type IntRange struct {
	Lo, Hi int
}

// IsZero reports whether the range is the zero value. Optional knobs use the
// zero value to mean "not set".
func (r IntRange) IsZero() bool {
	return r.Lo == 0 && r.Hi == 0
}

// FloatRange is an inclusive real interval.
type FloatRange struct {
	Lo, Hi float64
}

// InvalidParameterError reports a Parameters field outside its contract.
// Validation never clamps: an out-of-range value always fails.
type InvalidParameterError struct {
	Field  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("georand: invalid parameter %s: %s", e.Field, e.Reason)
}

// Parameters holds every tunable generation knob. It is a plain value:
// construct it with the fields below or start from Default. Generators
// validate it on entry and reject invalid values via *InvalidParameterError.
type Parameters struct {
	// VertexCountRange bounds the number of distinct ring vertices. Lo must
	// be at least 3.
	VertexCountRange IntRange
	// RadiusRange bounds the unperturbed center-to-vertex distance. Lo must
	// be positive.
	RadiusRange FloatRange
	// Irregularity in [0, 1] controls angular deviation of vertices from
	// even spacing around the center.
	Irregularity float64
	// Spikiness in [0, 1] controls radial deviation of vertices from the
	// drawn base radius.
	Spikiness float64
	// Center anchors single-shape generation.
	Center r2.Point
	// CenterRange bounds random points and collection member centers.
	CenterRange r2.Rect
	// ShapeCountRange bounds collection member counts. Lo must be at
	// least 1.
	ShapeCountRange IntRange
	// MaxPlacementAttempts caps the bounding-box overlap retry loop per
	// collection member. Zero disables overlap avoidance entirely.
	MaxPlacementAttempts int
	// HoleCountRange bounds the number of interior rings per polygon.
	// The zero value produces polygons without holes.
	HoleCountRange IntRange
	// PathPointRange, when set, truncates generated line strings to an open
	// sub-path of that many vertices (clamped to the ring's vertex count).
	// Lo must be at least 2. The zero value emits the full open ring path.
	PathPointRange IntRange
}

// Default returns the process-wide default configuration: a 400×400 world
// with small star-ish polygons and best-effort non-overlapping collections.
func Default() Parameters {
	return Parameters{
		VertexCountRange:     IntRange{Lo: 3, Hi: 7},
		RadiusRange:          FloatRange{Lo: 10, Hi: 30},
		Irregularity:         0.35,
		Spikiness:            0.2,
		Center:               r2.Point{X: 200, Y: 200},
		CenterRange:          r2.RectFromPoints(r2.Point{X: 0, Y: 0}, r2.Point{X: 400, Y: 400}),
		ShapeCountRange:      IntRange{Lo: 4, Hi: 12},
		MaxPlacementAttempts: 100,
	}
}

// Validate checks every field against its contract and returns the first
// violation as an *InvalidParameterError. Values are never adjusted.
func (p Parameters) Validate() error {
	if p.VertexCountRange.Lo < 3 {
		return &InvalidParameterError{Field: "VertexCountRange", Reason: "Lo must be at least 3"}
	}
	if p.VertexCountRange.Hi < p.VertexCountRange.Lo {
		return &InvalidParameterError{Field: "VertexCountRange", Reason: "Hi must be at least Lo"}
	}
	if p.RadiusRange.Lo <= 0 {
		return &InvalidParameterError{Field: "RadiusRange", Reason: "Lo must be positive"}
	}
	if p.RadiusRange.Hi < p.RadiusRange.Lo {
		return &InvalidParameterError{Field: "RadiusRange", Reason: "Hi must be at least Lo"}
	}
	if p.Irregularity < 0 || p.Irregularity > 1 {
		return &InvalidParameterError{Field: "Irregularity", Reason: "must be in [0, 1]"}
	}
	if p.Spikiness < 0 || p.Spikiness > 1 {
		return &InvalidParameterError{Field: "Spikiness", Reason: "must be in [0, 1]"}
	}
	if p.CenterRange.X.Lo > p.CenterRange.X.Hi || p.CenterRange.Y.Lo > p.CenterRange.Y.Hi {
		return &InvalidParameterError{Field: "CenterRange", Reason: "interval Lo must not exceed Hi"}
	}
	if p.ShapeCountRange.Lo < 1 {
		return &InvalidParameterError{Field: "ShapeCountRange", Reason: "Lo must be at least 1"}
	}
	if p.ShapeCountRange.Hi < p.ShapeCountRange.Lo {
		return &InvalidParameterError{Field: "ShapeCountRange", Reason: "Hi must be at least Lo"}
	}
	if p.MaxPlacementAttempts < 0 {
		return &InvalidParameterError{Field: "MaxPlacementAttempts", Reason: "must not be negative"}
	}
	if p.HoleCountRange.Lo < 0 {
		return &InvalidParameterError{Field: "HoleCountRange", Reason: "Lo must not be negative"}
	}
	if p.HoleCountRange.Hi < p.HoleCountRange.Lo {
		return &InvalidParameterError{Field: "HoleCountRange", Reason: "Hi must be at least Lo"}
	}
	if !p.PathPointRange.IsZero() {
		if p.PathPointRange.Lo < 2 {
			return &InvalidParameterError{Field: "PathPointRange", Reason: "Lo must be at least 2"}
		}
		if p.PathPointRange.Hi < p.PathPointRange.Lo {
			return &InvalidParameterError{Field: "PathPointRange", Reason: "Hi must be at least Lo"}
		}
	}
	return nil
}

func (p Parameters) ringParams() ring.Params {
	return ring.Params{
		VertexCountMin: p.VertexCountRange.Lo,
		VertexCountMax: p.VertexCountRange.Hi,
		RadiusMin:      p.RadiusRange.Lo,
		RadiusMax:      p.RadiusRange.Hi,
		Irregularity:   p.Irregularity,
		Spikiness:      p.Spikiness,
	}
}
