// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package geomio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/golang/geo/r2"
)

func TestWriteSVG_ProducesWellFormedDocument(t *testing.T) {
	points := []r2.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	triangles := func(yield func(a, b, c int) bool) {
		yield(0, 1, 2)
	}

	var buf bytes.Buffer
	if err := WriteSVG(&buf, points, triangles); err != nil {
		t.Fatalf("WriteSVG: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "<svg") {
		t.Errorf("output missing <svg> open tag:\n%s", out)
	}
	if !strings.Contains(out, "</svg>") {
		t.Errorf("output missing </svg> close tag:\n%s", out)
	}
	if strings.Count(out, "<polygon") != 1 {
		t.Errorf("want exactly one <polygon>, got:\n%s", out)
	}
	if strings.Count(out, "<circle") != len(points) {
		t.Errorf("want %d <circle> markers, got:\n%s", len(points), out)
	}
}

func TestWriteSVG_StopsWhenYieldReturnsFalse(t *testing.T) {
	points := []r2.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}
	calls := 0
	triangles := func(yield func(a, b, c int) bool) {
		for i := 0; i < 5; i++ {
			calls++
			if !yield(0, 1, 2) {
				return
			}
		}
	}

	var buf bytes.Buffer
	if err := WriteSVG(&buf, points, func(yield func(a, b, c int) bool) {
		triangles(func(a, b, c int) bool { return yield(a, b, c) && calls < 2 })
	}); err != nil {
		t.Fatalf("WriteSVG: %v", err)
	}
	if calls != 2 {
		t.Fatalf("triangle iterator ran %d times, want 2 (stopped once yield returned false)", calls)
	}
}

func TestWriteDebugSVG_DrawsEdgesAndHull(t *testing.T) {
	points := []r2.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	edges := func(yield func(EdgeView) bool) {
		yield(EdgeView{A: points[0], B: points[1], HasBuddy: false})
		yield(EdgeView{A: points[1], B: points[2], HasBuddy: true})
	}
	hull := func(yield func(r2.Point) bool) {
		for _, p := range points {
			if !yield(p) {
				return
			}
		}
	}

	var buf bytes.Buffer
	if err := WriteDebugSVG(&buf, points, edges, hull); err != nil {
		t.Fatalf("WriteDebugSVG: %v", err)
	}

	out := buf.String()
	if strings.Count(out, "<line") != 2 {
		t.Errorf("want 2 <line> elements (one per edge), got:\n%s", out)
	}
	if !strings.Contains(out, "<polyline") {
		t.Errorf("want a <polyline> for the hull, got:\n%s", out)
	}
}
