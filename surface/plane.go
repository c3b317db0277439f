// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package surface

import (
	"errors"
	"fmt"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
)

// ErrDegenerateAxis is returned when a surface is constructed from an axis
// or reference direction with near-zero length, which leaves the rigid
// frame underdetermined.
var ErrDegenerateAxis = errors.New("surface: degenerate axis or reference direction")

// Plane lowers points by projecting them into the plane's own (x, y)
// frame; the normal is constant everywhere on the plane.
type Plane struct {
	normal    r3.Vector
	transform rigidTransform
}

// NewPlane builds a Plane whose normal is axis, with refDirection fixing
// the in-plane x axis, anchored at location.
func NewPlane(axis, refDirection, location r3.Vector) (*Plane, error) {
	if axis.Norm() < 1e-12 || refDirection.Norm() < 1e-12 {
		return nil, fmt.Errorf("surface.NewPlane: %w", ErrDegenerateAxis)
	}
	return &Plane{
		normal:    axis.Normalize(),
		transform: newRigidTransform(axis, refDirection, location),
	}, nil
}

// Lower projects p into the plane's local (x, y) coordinates.
func (p *Plane) Lower(pt r3.Vector) r2.Point {
	local := p.transform.apply(pt)
	return r2.Point{X: local.X, Y: local.Y}
}

// Normal returns the plane's constant normal, ignoring both arguments.
func (p *Plane) Normal(r3.Vector, r2.Point) r3.Vector {
	return p.normal
}

// Prepare is a no-op: a plane's parameterization needs no information
// about the point set being lowered.
func (p *Plane) Prepare([]r3.Vector) {}
