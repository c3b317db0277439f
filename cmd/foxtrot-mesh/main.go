// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Command foxtrot-mesh triangulates a generated planar point cloud and
// writes the result to an SVG file, logging timing along the way. It is
// pure wiring over packages utils, sweepcircle, and geomio; it carries no
// algorithmic logic of its own.
package main

import (
	"log"
	"os"
	"time"

	"github.com/DOGML/foxtrot/geomio"
	"github.com/DOGML/foxtrot/sweepcircle"
	"github.com/DOGML/foxtrot/utils"
	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
)

const (
	filename  = "mesh.svg"
	numPoints = 1000
	seed      = 0
)

func main() {
	bbox := r2.Rect{X: r1.Interval{Lo: 0, Hi: 1}, Y: r1.Interval{Lo: 0, Hi: 1}}
	points := utils.GeneratePlanarPoints(numPoints, seed, bbox)

	start := time.Now()
	tri, err := sweepcircle.New(points)
	if err != nil {
		log.Fatal(err)
	}
	tri.Run()
	log.Printf("triangulated %d points into %d triangles in %v", numPoints,
		2*numPoints-2-tri.HullSize(), time.Since(start))

	file, err := os.Create(filename)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.Fatal(err)
		}
	}()

	writeStart := time.Now()
	triangles := func(yield func(a, b, c int) bool) {
		tri.Triangles(func(a, b, c sweepcircle.InputIndex) bool {
			return yield(int(a), int(b), int(c))
		})
	}
	if err := geomio.WriteSVG(file, points, triangles); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s in %v", filename, time.Since(writeStart))
}
