// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package geomio renders a planar triangulation to SVG. It is an external
// collaborator of the core triangulator — its only contact with
// package sweepcircle is a flat list of points and a triangle iterator —
// and, like package step, is the only other place in this module that
// touches I/O.
package geomio

import (
	"fmt"
	"io"
	"iter"

	svg "github.com/ajstarks/svgo"
	"github.com/golang/geo/r2"
)

const (
	scale            = 250.0
	triangleStyle    = "fill:rgb(255,255,255);stroke:rgb(170,170,170);stroke-width:1;stroke-opacity:1.0"
	pointStyle       = "fill:rgb(0,0,255)"
	buddyEdgeStyle   = "stroke:rgb(255,255,255)"
	hullEdgeSegStyle = "stroke:rgb(255,0,0)"
	hullPolygonStyle = "stroke:rgb(255,255,0)"
)

// EdgeView is one drawable half-edge, for WriteDebugSVG: the segment
// between A and B, and whether it has a buddy (an interior edge) or lies
// on the convex hull.
type EdgeView struct {
	A, B     r2.Point
	HasBuddy bool
}

// projector maps a planar bounding box onto an SVG canvas, matching the
// original's to_svg layout: a fixed-width canvas with a margin of one
// line-width on every side.
type projector struct {
	width, height int
	lineWidth     float64
	xMin, yMax    float64
}

func newProjector(points []r2.Point) projector {
	bbox := r2.RectFromPoints(points...)
	span := bbox.X.Length()
	if bbox.Y.Length() > span {
		span = bbox.Y.Length()
	}
	if span == 0 {
		span = 1
	}
	// Matches the original's line_width = max(dx, dy) / 250 * SCALE, with
	// SCALE == 250 so it reduces to the span itself in source units.
	lineWidth := span / 250.0 * scale

	w := int(scale*bbox.X.Length() + 2*lineWidth)
	h := int(scale*bbox.Y.Length() + 2*lineWidth)
	if w <= 0 {
		w = int(scale) + 2
	}
	if h <= 0 {
		h = int(scale) + 2
	}

	return projector{
		width:     w,
		height:    h,
		lineWidth: lineWidth,
		xMin:      bbox.X.Lo,
		yMax:      bbox.Y.Hi,
	}
}

func (p projector) dx(x float64) int {
	return int(scale*(x-p.xMin) + p.lineWidth)
}

func (p projector) dy(y float64) int {
	return int(scale*(p.yMax-y) + p.lineWidth)
}

func (p projector) strokeWidth() string {
	if p.lineWidth < 1 {
		return "1"
	}
	return fmt.Sprintf("%v", p.lineWidth)
}

// WriteSVG draws the final triangle mesh: one filled polygon per triangle,
// plus a small circle marking every input point. triangles has the same
// yield shape as sweepcircle.Triangulator.Triangles and
// halfedge.Store.Triangles but takes plain int indices, so either needs a
// small adapter (see cmd/foxtrot-mesh) to be passed in.
func WriteSVG(w io.Writer, points []r2.Point, triangles func(yield func(a, b, c int) bool)) error {
	proj := newProjector(points)
	canvas := svg.New(w)
	canvas.Start(proj.width, proj.height)
	canvas.Rect(0, 0, proj.width, proj.height, "fill:rgb(255,255,255)")

	var xs, ys []int
	triangles(func(a, b, c int) bool {
		xs = xs[:0]
		ys = ys[:0]
		for _, i := range [3]int{a, b, c} {
			xs = append(xs, proj.dx(points[i].X))
			ys = append(ys, proj.dy(points[i].Y))
		}
		canvas.Polygon(xs, ys, triangleStyle)
		return true
	})

	for _, p := range points {
		canvas.Circle(proj.dx(p.X), proj.dy(p.Y), 3, pointStyle)
	}
	canvas.End()
	return nil
}

// WriteDebugSVG draws every stored half-edge (white if it has a buddy, red
// if it lies on the hull), the current hull polygon in yellow, and
// a circle for every point — the richer debug rendering
// the original keeps as to_svg, for diagnosing a stuck or malformed sweep.
func WriteDebugSVG(w io.Writer, points []r2.Point, edges iter.Seq[EdgeView], hull iter.Seq[r2.Point]) error {
	proj := newProjector(points)
	canvas := svg.New(w)
	canvas.Start(proj.width, proj.height)
	canvas.Rect(0, 0, proj.width, proj.height, "fill:rgb(255,255,255)")

	sw := proj.strokeWidth()

	edges(func(e EdgeView) bool {
		style := hullEdgeSegStyle
		if e.HasBuddy {
			style = buddyEdgeStyle
		}
		canvas.Line(proj.dx(e.A.X), proj.dy(e.A.Y), proj.dx(e.B.X), proj.dy(e.B.Y),
			fmt.Sprintf("%s;stroke-width:%s;stroke-linecap:round", style, sw))
		return true
	})

	var hullXs, hullYs []int
	hull(func(p r2.Point) bool {
		hullXs = append(hullXs, proj.dx(p.X))
		hullYs = append(hullYs, proj.dy(p.Y))
		return true
	})
	if len(hullXs) > 0 {
		canvas.Polyline(append(hullXs, hullXs[0]), append(hullYs, hullYs[0]), hullPolygonStyle)
	}

	for _, p := range points {
		canvas.Circle(proj.dx(p.X), proj.dy(p.Y), 3, pointStyle)
	}
	canvas.End()
	return nil
}
