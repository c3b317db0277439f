// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package halfedge implements a fixed-capacity half-edge arena: the
// topological store the sweep-circle triangulator builds its triangles in.
//
// Edge identity is the integer position in the arena. Triangle membership
// is implicit: half-edges are stored in consecutive triples, wound
// counter-clockwise, with Next/Prev defined by index arithmetic within the
// triple. The only hazard is keeping each edge's Buddy pointer symmetric
// across Insert and Swap; both are concentrated here and nowhere else
// mutates a HalfEdge.
package halfedge

import "fmt"

// EdgeID identifies a half-edge by its position in the arena.
type EdgeID int32

// Empty is the sentinel buddy for a half-edge that lies on the convex hull.
const Empty EdgeID = -1

// PointIndex is a dense SortedIndex into the triangulation's point array,
// assigned by the seed/sort stage.
type PointIndex int32

// HalfEdge is one directed side of a triangle edge.
type HalfEdge struct {
	Src, Dst PointIndex
	Buddy    EdgeID
}

// Store is a preallocated arena of half-edges, grouped into triangles of
// three consecutive entries.
type Store struct {
	edges []HalfEdge
}

// NewStore preallocates an arena sized for a triangulation of numPoints
// points: at most 2*numPoints-5 triangles, three half-edges each.
func NewStore(numPoints int) *Store {
	maxTriangles := 0
	if numPoints > 2 {
		maxTriangles = 2*numPoints - 5
	}
	if maxTriangles < 1 {
		maxTriangles = 1
	}
	return &Store{edges: make([]HalfEdge, 0, maxTriangles*3)}
}

// Next returns the index of the next half-edge within e's triangle.
func Next(e EdgeID) EdgeID {
	base := 3 * (e / 3)
	return base + (e+1)%3
}

// Prev returns the index of the previous half-edge within e's triangle.
func Prev(e EdgeID) EdgeID {
	base := 3 * (e / 3)
	return base + (e+2)%3
}

// Edge returns the half-edge stored at e. It panics if e is out of range.
func (s *Store) Edge(e EdgeID) HalfEdge {
	if e < 0 || int(e) >= len(s.edges) {
		panic(fmt.Sprintf("halfedge: Edge(%d) out of range [0, %d)", e, len(s.edges)))
	}
	return s.edges[e]
}

// Insert appends one CCW-wound triangle (a->b, b->c, c->a) and returns the
// EdgeID of a->b. Any non-Empty buddy has its own Buddy field rewritten to
// point back at the corresponding new edge, in the same call.
//
// Insert panics if the arena is at capacity: exceeding 2N-5 triangles for N
// points is a programmer error, not a recoverable condition.
func (s *Store) Insert(a, b, c PointIndex, abBuddy, bcBuddy, caBuddy EdgeID) EdgeID {
	if len(s.edges)+3 > cap(s.edges) {
		panic(fmt.Sprintf("halfedge: Insert exceeds arena capacity %d", cap(s.edges)))
	}

	base := EdgeID(len(s.edges))
	eAB := base
	eBC := base + 1
	eCA := base + 2

	s.edges = append(s.edges,
		HalfEdge{Src: a, Dst: b, Buddy: abBuddy},
		HalfEdge{Src: b, Dst: c, Buddy: bcBuddy},
		HalfEdge{Src: c, Dst: a, Buddy: caBuddy},
	)

	s.rebuddy(abBuddy, eAB)
	s.rebuddy(bcBuddy, eBC)
	s.rebuddy(caBuddy, eCA)

	return eAB
}

func (s *Store) rebuddy(buddy, self EdgeID) {
	if buddy == Empty {
		return
	}
	s.edges[buddy].Buddy = self
}

// Swap flips the diagonal of the quadrilateral formed by the two triangles
// meeting at e. Given triangles (a->b, b->c, c->a) and (b->a, a->d, d->b),
// it rewrites them in place to (c->d, d->b, b->c) and (d->c, c->a, a->d),
// fixing up the four outer buddies' back-pointers; the new interior twin
// pair (c->d, d->c) is matched directly.
//
// Swap panics if e's buddy is Empty: flipping a hull edge is a programmer
// error.
func (s *Store) Swap(e EdgeID) {
	eAB := e
	edgeAB := s.Edge(eAB)
	if edgeAB.Buddy == Empty {
		panic(fmt.Sprintf("halfedge: Swap(%d) called on a hull edge", e))
	}

	eBC := Next(eAB)
	eCA := Prev(eAB)
	eBA := edgeAB.Buddy
	eAD := Next(eBA)
	eDB := Prev(eBA)

	a := edgeAB.Src
	b := edgeAB.Dst
	c := s.Edge(eBC).Dst
	d := s.Edge(eAD).Dst

	bcBuddy := s.Edge(eBC).Buddy
	caBuddy := s.Edge(eCA).Buddy
	adBuddy := s.Edge(eAD).Buddy
	dbBuddy := s.Edge(eDB).Buddy

	// (a->b, b->c, c->a) becomes (c->d, d->b, b->c)
	s.edges[eAB] = HalfEdge{Src: c, Dst: d, Buddy: eBA}
	s.edges[eBC] = HalfEdge{Src: d, Dst: b, Buddy: dbBuddy}
	s.edges[eCA] = HalfEdge{Src: b, Dst: c, Buddy: bcBuddy}

	// (b->a, a->d, d->b) becomes (d->c, c->a, a->d)
	s.edges[eBA] = HalfEdge{Src: d, Dst: c, Buddy: eAB}
	s.edges[eAD] = HalfEdge{Src: c, Dst: a, Buddy: caBuddy}
	s.edges[eDB] = HalfEdge{Src: a, Dst: d, Buddy: adBuddy}

	// New edge identities after the rewrite:
	//   eAB now holds c->d, its twin is eBA (d->c) -- matched directly above.
	//   eBC now holds d->b, whose outer buddy is the old d->b buddy (dbBuddy).
	//   eCA now holds b->c, whose outer buddy is the old b->c buddy (bcBuddy).
	//   eAD now holds c->a, whose outer buddy is the old c->a buddy (caBuddy).
	//   eDB now holds a->d, whose outer buddy is the old a->d buddy (adBuddy).
	s.rebuddy(dbBuddy, eBC)
	s.rebuddy(bcBuddy, eCA)
	s.rebuddy(caBuddy, eAD)
	s.rebuddy(adBuddy, eDB)
}

// Triangles yields each triangle's three source vertices once, in
// insertion order.
func (s *Store) Triangles(yield func(a, b, c PointIndex) bool) {
	for i := 0; i+2 < len(s.edges); i += 3 {
		if !yield(s.edges[i].Src, s.edges[i+1].Src, s.edges[i+2].Src) {
			return
		}
	}
}

// Len returns the number of half-edges currently stored (always a multiple
// of three).
func (s *Store) Len() int {
	return len(s.edges)
}
