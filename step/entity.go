// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package step parses the textual exchange-structure body of a STEP
// (ISO 10303-21) file — the `#id = KEYWORD(args);` records an AP214
// schema instance is made of — into typed Go entity records.
//
// Go has no tagged-union enum, so each AP214 entity this package
// recognizes is its own struct implementing the Entity marker interface,
// rather than one variant of a sum type.
package step

import "github.com/golang/geo/r3"

// ID is a STEP entity instance name (the integer in "#123").
type ID int

// Entity is implemented by every recognized AP214 record.
type Entity interface {
	EntityID() ID
	isEntity()
}

// CartesianPoint is a CARTESIAN_POINT record: a labelled 3D point.
type CartesianPoint struct {
	ID     ID
	Name   string
	Coords r3.Vector
}

// Direction is a DIRECTION record: a labelled 3D direction vector.
type Direction struct {
	ID         ID
	Name       string
	Components r3.Vector
}

// Axis2Placement3D is an AXIS2_PLACEMENT_3D record: an origin, an axis
// direction, and a reference direction, together defining a local frame.
type Axis2Placement3D struct {
	ID                        ID
	Name                      string
	Location, Axis, RefDirection ID
}

// Plane is a PLANE record: a surface keyed to its placement frame.
type Plane struct {
	ID        ID
	Name      string
	Placement ID
}

// CylindricalSurface is a CYLINDRICAL_SURFACE record: a placement frame
// plus a radius.
type CylindricalSurface struct {
	ID        ID
	Name      string
	Placement ID
	Radius    float64
}

// Line is a LINE record: a point and a direction vector.
type Line struct {
	ID        ID
	Name      string
	Point, Dir ID
}

// Circle is a CIRCLE record: a placement and a radius.
type Circle struct {
	ID        ID
	Name      string
	Placement ID
	Radius    float64
}

// VertexPoint is a VERTEX_POINT record: a topological vertex referencing
// its geometric point.
type VertexPoint struct {
	ID    ID
	Name  string
	Point ID
}

// EdgeCurve is an EDGE_CURVE record: an oriented curve between two
// vertices.
type EdgeCurve struct {
	ID              ID
	Name            string
	Start, End, Curve ID
	SameSense       bool
}

// OrientedEdge is an ORIENTED_EDGE record: a reference to an edge plus the
// sense in which a loop traverses it.
type OrientedEdge struct {
	ID        ID
	Name      string
	Edge      ID
	Orientation bool
}

// EdgeLoop is an EDGE_LOOP record: an ordered cycle of oriented edges.
type EdgeLoop struct {
	ID    ID
	Name  string
	Edges []ID
}

// FaceBound is a FACE_BOUND record: a loop bounding a face, with its
// orientation relative to the face.
type FaceBound struct {
	ID          ID
	Name        string
	Bound       ID
	Orientation bool
}

// AdvancedFace is an ADVANCED_FACE record: a set of bounding loops over a
// surface.
type AdvancedFace struct {
	ID        ID
	Name      string
	Bounds    []ID
	Surface   ID
	SameSense bool
}

// ClosedShell is a CLOSED_SHELL record: a watertight set of faces.
type ClosedShell struct {
	ID    ID
	Name  string
	Faces []ID
}

// ManifoldSolidBrep is a MANIFOLD_SOLID_BREP record: a solid named by its
// outer shell.
type ManifoldSolidBrep struct {
	ID    ID
	Name  string
	Outer ID
}

func (e CartesianPoint) EntityID() ID     { return e.ID }
func (e Direction) EntityID() ID          { return e.ID }
func (e Axis2Placement3D) EntityID() ID   { return e.ID }
func (e Plane) EntityID() ID              { return e.ID }
func (e CylindricalSurface) EntityID() ID { return e.ID }
func (e Line) EntityID() ID               { return e.ID }
func (e Circle) EntityID() ID             { return e.ID }
func (e VertexPoint) EntityID() ID        { return e.ID }
func (e EdgeCurve) EntityID() ID          { return e.ID }
func (e OrientedEdge) EntityID() ID       { return e.ID }
func (e EdgeLoop) EntityID() ID           { return e.ID }
func (e FaceBound) EntityID() ID          { return e.ID }
func (e AdvancedFace) EntityID() ID       { return e.ID }
func (e ClosedShell) EntityID() ID        { return e.ID }
func (e ManifoldSolidBrep) EntityID() ID  { return e.ID }

func (CartesianPoint) isEntity()     {}
func (Direction) isEntity()          {}
func (Axis2Placement3D) isEntity()   {}
func (Plane) isEntity()              {}
func (CylindricalSurface) isEntity() {}
func (Line) isEntity()               {}
func (Circle) isEntity()             {}
func (VertexPoint) isEntity()        {}
func (EdgeCurve) isEntity()          {}
func (OrientedEdge) isEntity()       {}
func (EdgeLoop) isEntity()           {}
func (FaceBound) isEntity()          {}
func (AdvancedFace) isEntity()       {}
func (ClosedShell) isEntity()        {}
func (ManifoldSolidBrep) isEntity()  {}
