// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package surface lowers a 3D face to the 2D parameter domain that package
// sweepcircle triangulates, and recovers a surface normal for a lowered
// point afterward. It is an external collaborator of the core
// triangulator: the only contact between this package and sweepcircle is
// the flat list of r2.Point values LowerVertices produces.
package surface

import (
	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
)

// Surface projects 3D points onto a 2D parameter domain and recovers a
// surface normal for a lowered point.
type Surface interface {
	// Lower projects p onto the surface's 2D parameter domain. It must
	// only be called after Prepare has seen the full vertex set being
	// lowered, since some surfaces (Cylinder) need a pass over all points
	// first to fix their parameterization.
	Lower(p r3.Vector) r2.Point

	// Normal returns the surface normal at p, whose lowered coordinate is
	// uv.
	Normal(p r3.Vector, uv r2.Point) r3.Vector

	// Prepare is called once, before any Lower call, with the full set of
	// points about to be lowered.
	Prepare(points []r3.Vector)
}

// LowerVertices prepares s against the full point set and returns each
// point's lowered 2D coordinate, in the same order.
func LowerVertices(s Surface, points []r3.Vector) []r2.Point {
	s.Prepare(points)
	out := make([]r2.Point, len(points))
	for i, p := range points {
		out[i] = s.Lower(p)
	}
	return out
}
