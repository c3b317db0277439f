// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package surface

import "github.com/golang/geo/r3"

// rigidTransform is the inverse of a rigid (rotation + translation) frame
// built from a z-axis and an x-reference-direction, world-to-object. Since
// the forward transform's rotation columns are orthonormal, its inverse
// rotation is just the transpose, which lets every Surface skip a full
// matrix-inversion routine (and the dependency it would need).
type rigidTransform struct {
	// rows of the inverse (transposed) rotation matrix.
	x, y, z r3.Vector
	origin  r3.Vector
}

// newRigidTransform mirrors the original's make_rigid_transform: the
// forward frame has x_world as column 0, z_world.Cross(x_world) as column
// 1, and z_world as column 2, anchored at origin_world.
func newRigidTransform(zWorld, xWorld, origin r3.Vector) rigidTransform {
	x := xWorld.Normalize()
	z := zWorld.Normalize()
	y := z.Cross(x)
	return rigidTransform{x: x, y: y, z: z, origin: origin}
}

// apply maps a world-space point into the frame's local coordinates.
func (rt rigidTransform) apply(p r3.Vector) r3.Vector {
	d := p.Sub(rt.origin)
	return r3.Vector{X: rt.x.Dot(d), Y: rt.y.Dot(d), Z: rt.z.Dot(d)}
}
