// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package surface

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
)

// Cylinder lowers points by projecting them into the cylinder's local
// frame and rescaling by height along the axis, so that the topology of
// the lowered points matches the cylinder's wrap-around rather than
// producing a theta/z parameterization (which would need the
// triangulator to understand periodic coordinates).
type Cylinder struct {
	axis, location r3.Vector
	radius         float64
	transform      rigidTransform
	zMin, zMax     float64
}

// NewCylinder builds a Cylinder of the given radius around axis, with
// refDirection fixing the local x axis, anchored at location.
func NewCylinder(axis, refDirection, location r3.Vector, radius float64) (*Cylinder, error) {
	if axis.Norm() < 1e-12 || refDirection.Norm() < 1e-12 {
		return nil, fmt.Errorf("surface.NewCylinder: %w", ErrDegenerateAxis)
	}
	if radius <= 0 {
		return nil, fmt.Errorf("surface.NewCylinder: radius %v must be positive", radius)
	}
	return &Cylinder{
		axis:      axis.Normalize(),
		location:  location,
		radius:    radius,
		transform: newRigidTransform(axis, refDirection, location),
	}, nil
}

// Prepare scans the full point set for its extent along the cylinder's
// axis, which Lower needs to rescale the radial projection.
func (c *Cylinder) Prepare(points []r3.Vector) {
	c.zMin = math.Inf(1)
	c.zMax = math.Inf(-1)
	for _, v := range points {
		z := c.transform.apply(v).Z
		if z < c.zMin {
			c.zMin = z
		}
		if z > c.zMax {
			c.zMax = z
		}
	}
}

// Lower projects p into the cylinder's local frame, then scales the
// radial (x, y) components down as z increases from zMin to zMax — from a
// full-radius disc at zMin toward a half-radius disc at zMax — which
// keeps nested rings from overlapping once flattened to 2D.
func (c *Cylinder) Lower(p r3.Vector) r2.Point {
	local := c.transform.apply(p)
	z := (local.Z - c.zMin) / (c.zMax - c.zMin)
	scale := 1.0 / (1.0 + z)
	return r2.Point{X: local.X * scale, Y: local.Y * scale}
}

// Normal returns the unit radial direction from p toward the cylinder's
// axis (the negated axis-to-p direction), ignoring uv.
func (c *Cylinder) Normal(p r3.Vector, _ r2.Point) r3.Vector {
	proj := p.Sub(c.location).Dot(c.axis)
	nearest := c.location.Add(c.axis.Mul(proj))
	return p.Sub(nearest).Normalize().Mul(-1)
}
