// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package utils provides utility functions for generating planar point
// clouds for demos, benchmarks, and tests.
package utils

import (
	"math/rand"

	"github.com/golang/geo/r2"
)

// GeneratePlanarPoints generates cnt random points uniformly distributed
// inside bbox. The seed parameter ensures reproducibility.
func GeneratePlanarPoints(cnt int, seed int64, bbox r2.Rect) []r2.Point {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	points := make([]r2.Point, cnt)

	for i := range cnt {
		points[i] = r2.Point{
			X: bbox.X.Lo + random.Float64()*bbox.X.Length(),
			Y: bbox.Y.Lo + random.Float64()*bbox.Y.Length(),
		}
	}

	return points
}
