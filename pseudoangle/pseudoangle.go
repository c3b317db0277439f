// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package pseudoangle implements a monotone surrogate for atan2: a cheap
// function of the direction from a center to a point that grows
// monotonically counter-clockwise around the center, without the
// trigonometry atan2 needs.
package pseudoangle

import "github.com/golang/geo/r2"

// Of returns the pseudo-angle of p as seen from center, in [0, 1). It is
// strictly monotone counter-clockwise and total over every direction
// except the zero vector (p == center, which has no direction).
func Of(center, p r2.Point) float64 {
	dx := p.X - center.X
	dy := p.Y - center.Y
	return diamond(dx, dy)
}

// diamond maps a direction (dx, dy) onto the "diamond norm" angle in
// [0, 1): a piecewise-linear function of dx/(|dx|+|dy|) that is monotone in
// the true angle but far cheaper than atan2.
func diamond(dx, dy float64) float64 {
	p := dx / (abs(dx) + abs(dy))
	if dy < 0 {
		return (3 + p) / 4
	}
	return (1 - p) / 4
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
