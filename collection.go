// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package georand

import (
	"github.com/golang/geo/r2"
	"github.com/twpayne/go-geom"

	"github.com/2dChan/georand/ring"
)

// MultiPoint returns ShapeCountRange-many random points drawn from
// p.CenterRange, spread with the same best-effort placement loop as the
// other collections.
func MultiPoint(rng Source, p Parameters) (*geom.MultiPoint, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	points, err := placeMembers(rng, p, func(center r2.Point) (geom.Coord, r2.Rect, error) {
		return geom.Coord{center.X, center.Y}, r2.RectFromPoints(center), nil
	})
	if err != nil {
		return nil, err
	}
	return geom.NewMultiPoint(geom.XY).MustSetCoords(points), nil
}

// MultiLineString returns ShapeCountRange-many open paths at centers drawn
// from p.CenterRange, avoiding bounding-box overlap best-effort.
func MultiLineString(rng Source, p Parameters) (*geom.MultiLineString, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	paths, err := placeMembers(rng, p, func(center r2.Point) ([]geom.Coord, r2.Rect, error) {
		open, err := openPathAt(rng, p, center)
		if err != nil {
			return nil, r2.Rect{}, err
		}
		return toCoords(open), r2.RectFromPoints(open...), nil
	})
	if err != nil {
		return nil, err
	}
	return geom.NewMultiLineString(geom.XY).MustSetCoords(paths), nil
}

// MultiPolygon returns ShapeCountRange-many simple polygons at centers drawn
// from p.CenterRange, avoiding bounding-box overlap best-effort.
func MultiPolygon(rng Source, p Parameters) (*geom.MultiPolygon, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	polygons, err := placeMembers(rng, p, func(center r2.Point) ([][]geom.Coord, r2.Rect, error) {
		return polygonRingsAt(rng, p, center)
	})
	if err != nil {
		return nil, err
	}
	return geom.NewMultiPolygon(geom.XY).MustSetCoords(polygons), nil
}

// placeMembers runs the shared placement loop: per member it draws a
// candidate center, generates the member there, and rejects candidates whose
// bounding box intersects an accepted member's, retrying up to
// p.MaxPlacementAttempts fresh centers. Exhausting the attempts accepts the
// overlapping candidate; avoidance is a heuristic, not a guarantee, and is
// never an error. Members are returned in generation order.
func placeMembers[T any](rng Source, p Parameters, generate func(center r2.Point) (T, r2.Rect, error)) ([]T, error) {
	count := ring.UniformInt(rng, p.ShapeCountRange.Lo, p.ShapeCountRange.Hi)
	members := make([]T, 0, count)
	boxes := make([]r2.Rect, 0, count)

	for i := 0; i < count; i++ {
		for attempt := 0; ; attempt++ {
			center := randomCenter(rng, p.CenterRange)
			member, box, err := generate(center)
			if err != nil {
				return nil, err
			}
			if overlapsAny(box, boxes) && attempt < p.MaxPlacementAttempts {
				continue
			}
			members = append(members, member)
			boxes = append(boxes, box)
			break
		}
	}

	return members, nil
}

func overlapsAny(box r2.Rect, boxes []r2.Rect) bool {
	for _, other := range boxes {
		if box.Intersects(other) {
			return true
		}
	}
	return false
}
