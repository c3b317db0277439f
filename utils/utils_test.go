// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package utils

import (
	"testing"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
	"github.com/google/go-cmp/cmp"
)

func unitSquare() r2.Rect {
	return r2.Rect{X: r1.Interval{Lo: 0, Hi: 1}, Y: r1.Interval{Lo: 0, Hi: 1}}
}

func TestGeneratePlanarPoints_Length(t *testing.T) {
	tests := []struct {
		name string
		cnt  int
		seed int64
	}{
		{"zero points", 0, 42},
		{"one point", 1, 42},
		{"ten points", 10, 0},
		{"hundred points", 100, 99},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := GeneratePlanarPoints(tt.cnt, tt.seed, unitSquare())
			if len(points) != tt.cnt {
				t.Errorf("GeneratePlanarPoints(%v, %v) len = %v, want %v", tt.cnt, tt.seed,
					len(points), tt.cnt)
			}
		})
	}
}

func TestGeneratePlanarPoints_WithinBounds(t *testing.T) {
	const (
		cnt  = 200
		seed = 7
	)
	bbox := r2.Rect{X: r1.Interval{Lo: -3, Hi: 5}, Y: r1.Interval{Lo: 10, Hi: 12}}
	points := GeneratePlanarPoints(cnt, seed, bbox)
	for i, p := range points {
		if !bbox.ContainsPoint(p) {
			t.Errorf("GeneratePlanarPoints(%v, %v, %v)[%d] = %v, want inside bbox", cnt, seed,
				bbox, i, p)
		}
	}
}

func TestGeneratePlanarPoints_Determinism(t *testing.T) {
	const (
		cnt  = 10
		seed = 0
	)
	bbox := unitSquare()
	a := GeneratePlanarPoints(cnt, seed, bbox)
	b := GeneratePlanarPoints(cnt, seed, bbox)
	if diff := cmp.Diff(b, a); diff != "" {
		t.Errorf("GeneratePlanarPoints(%v, %v) mismatch (-want +got):\n%v", cnt, seed, diff)
	}
}
