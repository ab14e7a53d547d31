// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package ring builds random simple closed rings by angle accumulation:
// vertices are placed at strictly increasing angles around a center, so the
// resulting boundary can never self-intersect.
package ring

import (
	"errors"
	"math"

	"github.com/golang/geo/r2"
)

const (
	// minStep keeps every angular increment strictly positive so the
	// accumulated angle is strictly monotonic.
	minStep = 1e-9
	// maxStep keeps every angular increment strictly below π. A wedge of π
	// or more is not convex, so an edge could leave its wedge and cross a
	// non-adjacent edge.
	maxStep = math.Pi * (1 - 1e-9)
	// minRadius keeps vertices from collapsing onto the center.
	minRadius = 1e-9
)

// ErrDegenerate is returned when a resolved vertex count is below 3.
// Validated parameters make this unreachable; it is a terminal condition,
// never a retry signal.
var ErrDegenerate = errors.New("ring: vertex count below 3")

// Source is the randomness contract the generator consumes. *math/rand.Rand
// satisfies it. Draws are issued in a fixed order for given parameters, so
// equal source states produce identical rings.
type Source interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// Intn returns a uniform value in [0, n). It panics if n <= 0.
	Intn(n int) int
}

// Params controls one ring generation. Fields are assumed already validated
// by the caller; see the georand package.
type Params struct {
	// VertexCountMin and VertexCountMax bound the vertex count, inclusive.
	VertexCountMin, VertexCountMax int
	// RadiusMin and RadiusMax bound the unperturbed center-to-vertex
	// distance, inclusive.
	RadiusMin, RadiusMax float64
	// Irregularity in [0, 1] widens the angular step distribution around
	// the even spacing 2π/n.
	Irregularity float64
	// Spikiness in [0, 1] scales radial deviation from the drawn base
	// radius, producing star-like vertices.
	Spikiness float64
}

// Generate returns a closed ring of n+1 points around center: n vertices at
// strictly increasing angles in [0, 2π), plus a copy of the first vertex.
// The ring is simple and wound counter-clockwise by construction.
func Generate(rng Source, center r2.Point, p Params) ([]r2.Point, error) {
	n := UniformInt(rng, p.VertexCountMin, p.VertexCountMax)
	if n < 3 {
		return nil, ErrDegenerate
	}

	even := 2 * math.Pi / float64(n)
	steps := make([]float64, n)
	sum := 0.0
	for i := range steps {
		s := UniformFloat(rng, even*(1-p.Irregularity), even*(1+p.Irregularity))
		if s < minStep {
			s = minStep
		}
		steps[i] = s
		sum += s
	}

	// Rescale the steps to span exactly one full turn, then cap each one
	// strictly below π. The last vertex lands at 2π minus its own step, so
	// no angle wraps past the first vertex, and with every wedge convex
	// each edge stays confined to its own wedge: edges cannot meet.
	scale := 2 * math.Pi / sum
	for i := range steps {
		steps[i] *= scale
	}
	capSteps(steps)

	points := make([]r2.Point, n+1)
	angle := 0.0
	for i := 0; i < n; i++ {
		base := UniformFloat(rng, p.RadiusMin, p.RadiusMax)
		radius := base * (1 + p.Spikiness*UniformFloat(rng, -1, 1))
		if radius < minRadius {
			radius = minRadius
		}
		points[i] = r2.Point{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle),
		}
		angle += steps[i]
	}
	points[n] = points[0]

	return points, nil
}

// capSteps moves the excess of any step at or above maxStep onto the
// remaining steps, scaled by their share, preserving the 2π total. It
// terminates: capped steps stay capped, redistribution can only cap more
// of them, and n ≥ 3 steps summing to 2π cannot all reach maxStep.
func capSteps(steps []float64) {
	for {
		excess, open := 0.0, 0.0
		for _, s := range steps {
			if s >= maxStep {
				excess += s - maxStep
			} else {
				open += s
			}
		}
		if excess == 0 {
			return
		}
		grow := 1 + excess/open
		for i, s := range steps {
			if s >= maxStep {
				steps[i] = maxStep
			} else {
				steps[i] = s * grow
			}
		}
	}
}

// UniformFloat returns a uniform value in [lo, hi). A degenerate range
// returns lo; the draw is still consumed so the sequence stays fixed.
func UniformFloat(rng Source, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// UniformInt returns a uniform value in [lo, hi], inclusive on both ends.
// A degenerate range returns lo without consuming a draw.
func UniformInt(rng Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
