// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package predicates implements the robust geometric predicates the
// sweep-circle triangulator relies on: orientation, in-circle, and the
// acute-angle test, plus the small helpers (centroid, squared distance)
// built on top of them.
//
// Each predicate returns a signed float64 whose sign is authoritative; the
// magnitude carries no meaning. Orient2D and InCircle take a fast float64
// path and fall back to an exact big.Float evaluation whenever the fast
// result falls within a conservative error bound of zero, so that the sign
// stays stable under the repeated flips the legalization recursion performs.
package predicates

import (
	"math"
	"math/big"

	"github.com/golang/geo/r2"
)

// precision is the working precision (bits) for the exact fallback. Two
// float64 subtractions multiplied together need at most ~106 bits of
// mantissa to represent exactly; 256 leaves ample headroom for the
// three-term sums in InCircle.
const precision = 256

// Orient2D returns a positive value iff c lies strictly left of the
// directed line a->b (i.e. a, b, c wind counter-clockwise), negative iff it
// lies strictly right, and zero iff the three points are collinear.
func Orient2D(a, b, c r2.Point) float64 {
	acx := a.X - c.X
	bcx := b.X - c.X
	acy := a.Y - c.Y
	bcy := b.Y - c.Y

	det := acx*bcy - acy*bcx

	errBound := orient2DErrBound(acx, bcx, acy, bcy)
	if math.Abs(det) > errBound {
		return det
	}
	return orient2DExact(a, b, c)
}

func orient2DErrBound(acx, bcx, acy, bcy float64) float64 {
	const epsilon = 1.0 / (1 << 50)
	const resultErrBound = (3 + 16*epsilon) * epsilon
	detSum := math.Abs(acx*bcy) + math.Abs(acy*bcx)
	return resultErrBound * detSum
}

func orient2DExact(a, b, c r2.Point) float64 {
	acx := bigSub(a.X, c.X)
	bcx := bigSub(b.X, c.X)
	acy := bigSub(a.Y, c.Y)
	bcy := bigSub(b.Y, c.Y)

	t1 := new(big.Float).SetPrec(precision).Mul(acx, bcy)
	t2 := new(big.Float).SetPrec(precision).Mul(acy, bcx)
	det := new(big.Float).SetPrec(precision).Sub(t1, t2)

	f, _ := det.Float64()
	return f
}

// InCircle returns a positive value iff d lies strictly inside the circle
// through a, b, c (which must be wound counter-clockwise), negative iff it
// lies strictly outside, and zero iff the four points are cocircular.
func InCircle(a, b, c, d r2.Point) float64 {
	adx := a.X - d.X
	ady := a.Y - d.Y
	bdx := b.X - d.X
	bdy := b.Y - d.Y
	cdx := c.X - d.X
	cdy := c.Y - d.Y

	bdxcdy := bdx * cdy
	cdxbdy := cdx * bdy
	alift := adx*adx + ady*ady

	cdxady := cdx * ady
	adxcdy := adx * cdy
	blift := bdx*bdx + bdy*bdy

	adxbdy := adx * bdy
	bdxady := bdx * ady
	clift := cdx*cdx + cdy*cdy

	det := alift*(bdxcdy-cdxbdy) + blift*(cdxady-adxcdy) + clift*(adxbdy-bdxady)

	permanent := (math.Abs(bdxcdy)+math.Abs(cdxbdy))*alift +
		(math.Abs(cdxady)+math.Abs(adxcdy))*blift +
		(math.Abs(adxbdy)+math.Abs(bdxady))*clift
	const epsilon = 1.0 / (1 << 50)
	const resultErrBound = (10 + 96*epsilon) * epsilon
	errBound := resultErrBound * permanent

	if math.Abs(det) > errBound {
		return det
	}
	return inCircleExact(a, b, c, d)
}

func inCircleExact(a, b, c, d r2.Point) float64 {
	adx := bigSub(a.X, d.X)
	ady := bigSub(a.Y, d.Y)
	bdx := bigSub(b.X, d.X)
	bdy := bigSub(b.Y, d.Y)
	cdx := bigSub(c.X, d.X)
	cdy := bigSub(c.Y, d.Y)

	p := func() *big.Float { return new(big.Float).SetPrec(precision) }
	mul := func(x, y *big.Float) *big.Float { return p().Mul(x, y) }
	sub := func(x, y *big.Float) *big.Float { return p().Sub(x, y) }
	add := func(x, y *big.Float) *big.Float { return p().Add(x, y) }

	alift := add(mul(adx, adx), mul(ady, ady))
	blift := add(mul(bdx, bdx), mul(bdy, bdy))
	clift := add(mul(cdx, cdx), mul(cdy, cdy))

	bdxcdy := mul(bdx, cdy)
	cdxbdy := mul(cdx, bdy)
	cdxady := mul(cdx, ady)
	adxcdy := mul(adx, cdy)
	adxbdy := mul(adx, bdy)
	bdxady := mul(bdx, ady)

	t1 := mul(alift, sub(bdxcdy, cdxbdy))
	t2 := mul(blift, sub(cdxady, adxcdy))
	t3 := mul(clift, sub(adxbdy, bdxady))

	det := add(add(t1, t2), t3)
	f, _ := det.Float64()
	return f
}

func bigSub(x, y float64) *big.Float {
	bx := new(big.Float).SetPrec(precision).SetFloat64(x)
	by := new(big.Float).SetPrec(precision).SetFloat64(y)
	return new(big.Float).SetPrec(precision).Sub(bx, by)
}

// Acute returns a positive value iff the angle at b in the polyline a-b-c
// is strictly acute (the dot product of b->a and b->c is positive), zero if
// it is a right angle, and negative if it is obtuse.
func Acute(a, b, c r2.Point) float64 {
	bax := a.X - b.X
	bay := a.Y - b.Y
	bcx := c.X - b.X
	bcy := c.Y - b.Y
	return bax*bcx + bay*bcy
}

// Centroid returns the arithmetic mean of three points.
func Centroid(a, b, c r2.Point) r2.Point {
	return r2.Point{
		X: (a.X + b.X + c.X) / 3,
		Y: (a.Y + b.Y + c.Y) / 3,
	}
}

// Distance2 returns the squared Euclidean distance between a and b.
func Distance2(a, b r2.Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}
