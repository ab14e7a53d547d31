// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package georand

import (
	"fmt"
	"math"
	"slices"

	"github.com/golang/geo/r2"
	"github.com/twpayne/go-geom"

	"github.com/2dChan/georand/ring"
)

// holeReachFrac keeps interior rings strictly inside the exterior: a hole's
// farthest vertex stays within this fraction of the exterior's
// center-to-edge clearance.
const holeReachFrac = 0.9

// Point returns a random point drawn uniformly from p.CenterRange, one draw
// per axis.
func Point(rng Source, p Parameters) (*geom.Point, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	c := randomCenter(rng, p.CenterRange)
	return geom.NewPointFlat(geom.XY, []float64{c.X, c.Y}), nil
}

// Polygon returns a random simple polygon anchored at p.Center: one
// counter-clockwise exterior ring, plus HoleCountRange-many clockwise
// interior rings placed fully inside it.
func Polygon(rng Source, p Parameters) (*geom.Polygon, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	rings, _, err := polygonRingsAt(rng, p, p.Center)
	if err != nil {
		return nil, err
	}
	return geom.NewPolygon(geom.XY).MustSetCoords(rings), nil
}

// LineString returns a random open path: the vertices of a generated ring
// without the closing duplicate. When p.PathPointRange is set, the path is
// truncated to a resolved sub-path length.
func LineString(rng Source, p Parameters) (*geom.LineString, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	open, err := openPathAt(rng, p, p.Center)
	if err != nil {
		return nil, err
	}
	return geom.NewLineString(geom.XY).MustSetCoords(toCoords(open)), nil
}

// polygonRingsAt builds the coordinate rings of one polygon centered at
// center, along with the exterior's bounding box.
func polygonRingsAt(rng Source, p Parameters, center r2.Point) ([][]geom.Coord, r2.Rect, error) {
	exterior, err := ring.Generate(rng, center, p.ringParams())
	if err != nil {
		return nil, r2.Rect{}, err
	}
	rings := [][]geom.Coord{toCoords(exterior)}
	bounds := r2.RectFromPoints(exterior...)

	holes := ring.UniformInt(rng, p.HoleCountRange.Lo, p.HoleCountRange.Hi)
	if holes > 0 {
		clearance := edgeClearance(center, exterior)
		reach := clearance * holeReachFrac
		hp := p.ringParams()
		// A hole's farthest vertex sits at most offset + RadiusMax·(1+Spikiness)
		// from the polygon center; both halves are budgeted reach/2.
		rescale := (reach / 2) / (hp.RadiusMax * (1 + hp.Spikiness))
		hp.RadiusMin *= rescale
		hp.RadiusMax *= rescale
		for i := 0; i < holes; i++ {
			offAngle := ring.UniformFloat(rng, 0, 2*math.Pi)
			offDist := ring.UniformFloat(rng, 0, reach/2)
			hc := r2.Point{
				X: center.X + offDist*math.Cos(offAngle),
				Y: center.Y + offDist*math.Sin(offAngle),
			}
			hole, err := ring.Generate(rng, hc, hp)
			if err != nil {
				return nil, r2.Rect{}, err
			}
			for _, v := range hole {
				if v.Sub(center).Norm() > clearance {
					return nil, r2.Rect{}, fmt.Errorf("georand: interior ring escaped exterior clearance %v", clearance)
				}
			}
			// Interior rings wind clockwise, opposite the exterior.
			slices.Reverse(hole)
			rings = append(rings, toCoords(hole))
		}
	}

	return rings, bounds, nil
}

// openPathAt builds one open line-string path centered at center.
func openPathAt(rng Source, p Parameters, center r2.Point) ([]r2.Point, error) {
	closed, err := ring.Generate(rng, center, p.ringParams())
	if err != nil {
		return nil, err
	}
	open := closed[:len(closed)-1]
	if !p.PathPointRange.IsZero() {
		n := ring.UniformInt(rng, p.PathPointRange.Lo, p.PathPointRange.Hi)
		if n < len(open) {
			open = open[:n]
		}
	}
	return open, nil
}

// edgeClearance returns the minimum distance from center to any edge of a
// closed ring. Every point closer to the center than this lies strictly
// inside the ring.
func edgeClearance(center r2.Point, closed []r2.Point) float64 {
	clearance := math.Inf(1)
	for i := 0; i+1 < len(closed); i++ {
		if d := segmentDistance(center, closed[i], closed[i+1]); d < clearance {
			clearance = d
		}
	}
	return clearance
}

func segmentDistance(p, a, b r2.Point) float64 {
	ab := b.Sub(a)
	den := ab.Dot(ab)
	if den == 0 {
		return p.Sub(a).Norm()
	}
	t := p.Sub(a).Dot(ab) / den
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return p.Sub(a.Add(ab.Mul(t))).Norm()
}

func toCoords(points []r2.Point) []geom.Coord {
	coords := make([]geom.Coord, len(points))
	for i, pt := range points {
		coords[i] = geom.Coord{pt.X, pt.Y}
	}
	return coords
}
