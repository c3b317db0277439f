// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package sweepcircle implements an incremental Delaunay triangulator: seed
// selection by bounding-box-center search, insertion in order of increasing
// distance from the chosen center, and Lawson-flip legalization, built on
// top of package halfedge (topology) and package hull (convex-hull
// location).
package sweepcircle

import (
	"fmt"
	"sort"

	"github.com/DOGML/foxtrot/halfedge"
	"github.com/DOGML/foxtrot/hull"
	"github.com/DOGML/foxtrot/predicates"
	"github.com/golang/geo/r2"
)

// InputIndex identifies a point in the caller's original input order, the
// only index the public API exposes outside of Triangulator's internals.
type InputIndex int

// Triangulator holds one in-progress or completed triangulation. It is not
// safe for concurrent use; callers running several triangulations on
// disjoint inputs may run one Triangulator per goroutine freely, since none
// share state.
type Triangulator struct {
	opts   options
	center r2.Point

	// points is indexed by the dense sorted PointIndex the core operates
	// on internally; points[0], points[1], points[2] are the seed triangle.
	points []r2.Point

	// reverse[sorted] = original input index; forward[original] = sorted
	// index. Both are retained for the whole lifetime of the triangulator,
	// though only reverse is consulted when emitting triangles.
	reverse []InputIndex
	forward []halfedge.PointIndex

	next halfedge.PointIndex

	hull *hull.Index
	half *halfedge.Store
}

// New performs seed selection and sorting and builds the initial
// three-triangle state. It fails with ErrTooFewPoints if fewer than three
// points are given, or with ErrSeedSearchFailed if no retry of the seed
// search finds a center strictly inside its three closest points (the
// input is collinear or near-collinear beyond what the retry loop
// tolerates).
func New(points []r2.Point, opts ...Option) (*Triangulator, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("sweepcircle.New: %w: got %d", ErrTooFewPoints, len(points))
	}

	o := defaultOptions()
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, err
		}
	}

	center, order, ok := seedSearch(points, o.maxSeedRetries)
	if !ok {
		return nil, fmt.Errorf("sweepcircle.New: %w", ErrSeedSearchFailed)
	}

	sortedPoints := make([]r2.Point, len(points))
	reverse := make([]InputIndex, len(points))
	forward := make([]halfedge.PointIndex, len(points))
	for sorted, orig := range order {
		sortedPoints[sorted] = points[orig]
		reverse[sorted] = InputIndex(orig)
		forward[orig] = halfedge.PointIndex(sorted)
	}

	half := halfedge.NewStore(len(points))
	hullIdx := hull.New(center, sortedPoints)

	pa, pb, pc := halfedge.PointIndex(0), halfedge.PointIndex(1), halfedge.PointIndex(2)
	eAB := half.Insert(pa, pb, pc, halfedge.Empty, halfedge.Empty, halfedge.Empty)
	eBC := halfedge.Next(eAB)
	eCA := halfedge.Prev(eAB)

	hullIdx.InsertFirst(pa, eAB)
	hullIdx.Insert(pb, eBC)
	hullIdx.Insert(pc, eCA)

	return &Triangulator{
		opts:    o,
		center:  center,
		points:  sortedPoints,
		reverse: reverse,
		forward: forward,
		next:    3,
		hull:    hullIdx,
		half:    half,
	}, nil
}

// seedSearch runs the bounded center-search retry loop. On success it
// returns the accepted center and a permutation of [0, len(points)) with
// the accepted seed triple in positions 0, 1, 2 (in CCW order) and every
// other index following in increasing order of distance² from that center.
func seedSearch(points []r2.Point, maxRetries int) (r2.Point, []int, bool) {
	bbox := r2.RectFromPoints(points...)
	center := bbox.Center()

	type scratch struct {
		idx int
		d2  float64
	}
	buf := make([]scratch, len(points))

	recompute := func(c r2.Point) {
		for i, p := range points {
			buf[i] = scratch{idx: i, d2: predicates.Distance2(c, p)}
		}
	}
	recompute(center)

	for try := 0; try < maxRetries; try++ {
		ordered := append([]scratch(nil), buf...)
		sort.Slice(ordered, func(i, j int) bool { return ordered[i].d2 < ordered[j].d2 })

		pa, pb, pc := ordered[0].idx, ordered[1].idx, ordered[2].idx
		if predicates.Orient2D(points[pa], points[pb], points[pc]) < 0 {
			pb, pc = pc, pb
		}

		if predicates.Orient2D(points[pa], points[pb], center) > 0 &&
			predicates.Orient2D(points[pb], points[pc], center) > 0 &&
			predicates.Orient2D(points[pc], points[pa], center) > 0 {

			isSeed := func(idx int) bool { return idx == pa || idx == pb || idx == pc }
			sort.SliceStable(ordered, func(i, j int) bool {
				si, sj := isSeed(ordered[i].idx), isSeed(ordered[j].idx)
				if si != sj {
					return si
				}
				if si {
					return false
				}
				return ordered[i].d2 < ordered[j].d2
			})
			ordered[0].idx, ordered[1].idx, ordered[2].idx = pa, pb, pc

			order := make([]int, len(ordered))
			for i, e := range ordered {
				order[i] = e.idx
			}
			return center, order, true
		}

		center = predicates.Centroid(points[pa], points[pb], points[pc])
		recompute(center)
	}

	return r2.Point{}, nil, false
}

func (t *Triangulator) pt(p halfedge.PointIndex) r2.Point {
	return t.points[p]
}

// Step processes the next point in distance order: it locates the hull
// edge the point sees, attaches a new triangle, closes any acute pockets
// the attachment leaves on either side, and legalizes every newly created
// edge. It returns true if more points remain, false once the
// triangulation is complete.
func (t *Triangulator) Step() bool {
	if int(t.next) >= len(t.points) {
		return false
	}

	p := t.next
	t.next++

	eAB := t.hull.GetEdge(p)
	edge := t.half.Edge(eAB)
	a, b := edge.Src, edge.Dst

	if o := predicates.Orient2D(t.pt(b), t.pt(a), t.pt(p)); o <= 0 {
		panic(fmt.Errorf("sweepcircle: %w: point %d not outside hull edge %d->%d (orient2d=%v)",
			ErrInvariantViolated, p, a, b, o))
	}

	f := t.half.Insert(b, a, p, eAB, halfedge.Empty, halfedge.Empty)
	t.hull.Update(a, halfedge.Next(f))
	t.hull.Insert(p, halfedge.Prev(f))
	t.legalize(f)

	// Walk CCW around the hull from b, closing acute pockets.
	for {
		ePB := t.hull.Edge(p)
		eBQ := t.hull.Edge(b)
		q := t.half.Edge(eBQ).Dst

		if predicates.Acute(t.pt(p), t.pt(b), t.pt(q)) <= 0 ||
			predicates.Orient2D(t.pt(p), t.pt(b), t.pt(q)) >= 0 {
			break
		}

		t.hull.Erase(b)
		ePQ := t.half.Insert(p, q, b, halfedge.Empty, eBQ, ePB)
		t.hull.Update(p, ePQ)
		b = q
		t.legalize(halfedge.Next(ePQ))
		t.legalize(halfedge.Prev(ePQ))
	}

	// Walk CW around the hull from a, closing acute pockets.
	for {
		eAP := t.hull.Edge(a)
		eQA := t.hull.PrevEdge(a)
		q := t.half.Edge(eQA).Src

		if predicates.Acute(t.pt(p), t.pt(a), t.pt(q)) <= 0 ||
			predicates.Orient2D(t.pt(p), t.pt(a), t.pt(q)) <= 0 {
			break
		}

		t.hull.Erase(a)
		eQP := t.half.Insert(q, p, a, halfedge.Empty, eAP, eQA)
		t.hull.Update(q, eQP)
		a = q
		t.legalize(halfedge.Next(eQP))
		t.legalize(halfedge.Prev(eQP))
	}

	return true
}

// legalize restores the Delaunay property across e_ab by flipping it (and
// recursing on the four outer edges of the flipped quadrilateral) whenever
// the opposite vertex of the adjacent triangle lies inside the local
// circumcircle. Swap moves the outer edges to other slots, so any hull
// entry whose edge moved is repointed at its new slot. It is a no-op on a
// hull edge.
func (t *Triangulator) legalize(eAB halfedge.EdgeID) {
	edge := t.half.Edge(eAB)
	if edge.Buddy == halfedge.Empty {
		return
	}
	a, b := edge.Src, edge.Dst
	c := t.half.Edge(halfedge.Next(eAB)).Dst

	eBA := edge.Buddy
	eAD := halfedge.Next(eBA)
	d := t.half.Edge(eAD).Dst

	if predicates.InCircle(t.pt(a), t.pt(b), t.pt(c), t.pt(d)) > 0 {
		eDB := halfedge.Prev(eBA)
		eBC, eCA := halfedge.Next(eAB), halfedge.Prev(eAB)
		t.half.Swap(eAB)
		// Swap moves b->c into eCA, c->a into eAD, a->d into eDB, and d->b
		// into eBC.
		for _, m := range [4][2]halfedge.EdgeID{{eBC, eCA}, {eCA, eAD}, {eAD, eDB}, {eDB, eBC}} {
			if moved := t.half.Edge(m[1]); moved.Buddy == halfedge.Empty && t.hull.Edge(moved.Src) == m[0] {
				t.hull.Update(moved.Src, m[1])
			}
		}
		t.legalize(eBC)
		t.legalize(eCA)
		t.legalize(eAD)
		t.legalize(eDB)
	}
}

// Run repeatedly calls Step until the triangulation is complete.
func (t *Triangulator) Run() {
	for t.Step() {
	}
}

// Triangles yields each triangle's three vertices once, as InputIndex
// values in the caller's original ordering.
func (t *Triangulator) Triangles(yield func(a, b, c InputIndex) bool) {
	t.half.Triangles(func(a, b, c halfedge.PointIndex) bool {
		return yield(t.reverse[a], t.reverse[b], t.reverse[c])
	})
}

// HullSize returns the number of vertices currently on the convex hull.
func (t *Triangulator) HullSize() int {
	return t.hull.Len()
}

// Forward returns the sorted internal position assigned to input point i.
func (t *Triangulator) Forward(i InputIndex) int {
	return int(t.forward[i])
}

// Reverse returns the original input index of sorted position p.
func (t *Triangulator) Reverse(p int) InputIndex {
	return t.reverse[p]
}
