// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package georand generates random, geometrically valid planar shapes:
// points, open paths, simple polygons, and collections of those, built on
// the angle-accumulation construction in the ring subpackage.
//
// Every generator takes an injected randomness source and a Parameters
// value and returns a freshly built github.com/twpayne/go-geom value. The
// library never seeds or owns a source; for a fixed source state and fixed
// parameters the draw sequence is fixed, so output is byte-for-byte
// reproducible across calls.
package georand

import (
	"github.com/golang/geo/r2"

	"github.com/2dChan/georand/ring"
)

// Source is the randomness contract every generator consumes.
// *math/rand.Rand satisfies it.
type Source = ring.Source

func randomCenter(rng Source, r r2.Rect) r2.Point {
	return r2.Point{
		X: ring.UniformFloat(rng, r.X.Lo, r.X.Hi),
		Y: ring.UniformFloat(rng, r.Y.Lo, r.Y.Hi),
	}
}
