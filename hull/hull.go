// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package hull implements the convex-hull acceleration structure the
// sweep-circle triangulator queries to find which hull edge a newly
// arrived point sees.
//
// Entries are kept in a slice sorted by pseudo-angle (see package
// pseudoangle), queried with binary search. Insertion and erasure are
// O(n); lookups (Edge, PrevEdge, GetEdge) are O(log n). spec.md §4.4
// permits either this ordered-container shape or a bucketed hash with
// expected O(1) lookups — see DESIGN.md for why the ordered slice was
// chosen for this implementation.
package hull

import (
	"fmt"
	"sort"

	"github.com/DOGML/foxtrot/halfedge"
	"github.com/DOGML/foxtrot/pseudoangle"
	"github.com/golang/geo/r2"
)

type entry struct {
	angle float64
	point halfedge.PointIndex
	edge  halfedge.EdgeID
}

// Index is the pseudo-angle-keyed hull: a map from the currently-live hull
// vertices to the hull edge whose Src is that vertex.
type Index struct {
	center  r2.Point
	points  []r2.Point
	entries []entry
	// pos maps a PointIndex to its slot in entries, so Update/Erase/Edge
	// don't need to search by angle once a point is known to be on the
	// hull.
	pos map[halfedge.PointIndex]int
}

// New creates an empty hull index around center. points is the
// triangulation's full (already sorted) point array, indexed by
// PointIndex; it must outlive the Index.
func New(center r2.Point, points []r2.Point) *Index {
	return &Index{
		center: center,
		points: points,
		pos:    make(map[halfedge.PointIndex]int, len(points)),
	}
}

func (h *Index) angleOf(p halfedge.PointIndex) float64 {
	return pseudoangle.Of(h.center, h.points[p])
}

// InsertFirst establishes the first hull vertex. It must be called before
// any Insert.
func (h *Index) InsertFirst(p halfedge.PointIndex, e halfedge.EdgeID) {
	h.entries = append(h.entries, entry{angle: h.angleOf(p), point: p, edge: e})
	h.pos[p] = 0
}

// Insert adds a new hull vertex at p's pseudo-angle.
func (h *Index) Insert(p halfedge.PointIndex, e halfedge.EdgeID) {
	angle := h.angleOf(p)
	i := sort.Search(len(h.entries), func(i int) bool { return h.entries[i].angle >= angle })

	h.entries = append(h.entries, entry{})
	copy(h.entries[i+1:], h.entries[i:])
	h.entries[i] = entry{angle: angle, point: p, edge: e}

	for j := i; j < len(h.entries); j++ {
		h.pos[h.entries[j].point] = j
	}
}

// Update rewrites the EdgeID of an existing hull vertex. It panics if p is
// not currently on the hull.
func (h *Index) Update(p halfedge.PointIndex, e halfedge.EdgeID) {
	i, ok := h.pos[p]
	if !ok {
		panic(fmt.Sprintf("hull: Update(%d, ...) point not on hull", p))
	}
	h.entries[i].edge = e
}

// Erase removes p from the hull. It panics if p is not currently on the
// hull.
func (h *Index) Erase(p halfedge.PointIndex) {
	i, ok := h.pos[p]
	if !ok {
		panic(fmt.Sprintf("hull: Erase(%d) point not on hull", p))
	}
	h.entries = append(h.entries[:i], h.entries[i+1:]...)
	delete(h.pos, p)
	for j := i; j < len(h.entries); j++ {
		h.pos[h.entries[j].point] = j
	}
}

// Edge returns the EdgeID whose Src is p. It panics if p is not on the
// hull.
func (h *Index) Edge(p halfedge.PointIndex) halfedge.EdgeID {
	i, ok := h.pos[p]
	if !ok {
		panic(fmt.Sprintf("hull: Edge(%d) point not on hull", p))
	}
	return h.entries[i].edge
}

// PrevEdge returns the EdgeID whose Dst is p: the edge belonging to p's
// predecessor around the hull.
func (h *Index) PrevEdge(p halfedge.PointIndex) halfedge.EdgeID {
	i, ok := h.pos[p]
	if !ok {
		panic(fmt.Sprintf("hull: PrevEdge(%d) point not on hull", p))
	}
	prev := i - 1
	if prev < 0 {
		prev = len(h.entries) - 1
	}
	return h.entries[prev].edge
}

// GetEdge returns the unique hull edge a->b such that newPoint's direction
// from the center lies in [psi(a), psi(b)) going CCW with wrap-around. It
// is the critical query that locates where a newly-arrived point attaches
// to the hull.
func (h *Index) GetEdge(newPoint halfedge.PointIndex) halfedge.EdgeID {
	if len(h.entries) == 0 {
		panic("hull: GetEdge on empty hull")
	}
	angle := h.angleOf(newPoint)

	// i is the index of the first entry whose angle is > the query angle;
	// the edge we want starts at the entry just before it (wrapping to the
	// last entry if the query angle precedes every hull vertex).
	i := sort.Search(len(h.entries), func(i int) bool { return h.entries[i].angle > angle })
	i--
	if i < 0 {
		i = len(h.entries) - 1
	}
	return h.entries[i].edge
}

// Len returns the number of vertices currently on the hull.
func (h *Index) Len() int {
	return len(h.entries)
}

// Points yields the hull's vertices in CCW order, for walking the final
// hull polygon.
func (h *Index) Points(yield func(p halfedge.PointIndex) bool) {
	for _, e := range h.entries {
		if !yield(e.point) {
			return
		}
	}
}

// Edges yields the hull's edges in CCW order.
func (h *Index) Edges(yield func(e halfedge.EdgeID) bool) {
	for _, e := range h.entries {
		if !yield(e.edge) {
			return
		}
	}
}
