// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package step

import (
	"strings"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestParse_CartesianPointAndDirection(t *testing.T) {
	body := `
#10 = CARTESIAN_POINT('',(1.,2.,3.));
#11 = DIRECTION('axis',(0.,0.,1.));
`
	entities, err := Parse(strings.NewReader(body), zaptest.NewLogger(t))
	require.NoError(t, err)
	require.Len(t, entities, 2)

	cp, ok := entities[0].(CartesianPoint)
	require.True(t, ok, "entities[0] = %T", entities[0])
	assert.Equal(t, ID(10), cp.ID)
	assert.Equal(t, r3.Vector{X: 1, Y: 2, Z: 3}, cp.Coords)

	dir, ok := entities[1].(Direction)
	require.True(t, ok, "entities[1] = %T", entities[1])
	assert.Equal(t, "axis", dir.Name)
	assert.Equal(t, r3.Vector{X: 0, Y: 0, Z: 1}, dir.Components)
}

func TestParse_EdgeLoopAndAdvancedFace(t *testing.T) {
	body := `#1 = EDGE_LOOP('',(#2,#3,#4,#5));
#2 = ADVANCED_FACE('',(#1),#9,.T.);`
	entities, err := Parse(strings.NewReader(body), zaptest.NewLogger(t))
	require.NoError(t, err)
	require.Len(t, entities, 2)

	loop := entities[0].(EdgeLoop)
	assert.Equal(t, []ID{2, 3, 4, 5}, loop.Edges)

	face := entities[1].(AdvancedFace)
	assert.Equal(t, []ID{1}, face.Bounds)
	assert.Equal(t, ID(9), face.Surface)
	assert.True(t, face.SameSense)
}

func TestParse_SkipsUnknownKeywordWithoutError(t *testing.T) {
	body := `#1 = SOME_FUTURE_PRESENTATION_ENTITY('', #2, #3);
#2 = CARTESIAN_POINT('',(0.,0.,0.));`
	entities, err := Parse(strings.NewReader(body), zaptest.NewLogger(t))
	require.NoError(t, err)
	require.Len(t, entities, 1)
	_, ok := entities[0].(CartesianPoint)
	assert.True(t, ok)
}

func TestParse_AccumulatesMalformedLinesButKeepsGoodOnes(t *testing.T) {
	body := `#1 = CARTESIAN_POINT('',(1.,2.,3.));
#2 = CYLINDRICAL_SURFACE('',#5,not_a_number);
#3 = DIRECTION('',(0.,1.,0.));`
	entities, err := Parse(strings.NewReader(body), zaptest.NewLogger(t))
	require.Error(t, err)
	require.Len(t, entities, 2)
	assert.IsType(t, CartesianPoint{}, entities[0])
	assert.IsType(t, Direction{}, entities[1])
}

func TestParse_NilLoggerDoesNotPanic(t *testing.T) {
	body := `#1 = CARTESIAN_POINT('',(1.,2.,3.));`
	entities, err := Parse(strings.NewReader(body), nil)
	require.NoError(t, err)
	require.Len(t, entities, 1)
}

func TestParse_QuotedStringMayContainSemicolonLikeCommas(t *testing.T) {
	body := `#1 = CARTESIAN_POINT('a, b, c',(1.,1.,1.));`
	entities, err := Parse(strings.NewReader(body), zaptest.NewLogger(t))
	require.NoError(t, err)
	require.Len(t, entities, 1)
	assert.Equal(t, "a, b, c", entities[0].(CartesianPoint).Name)
}

func TestParse_NullReferenceBecomesZeroID(t *testing.T) {
	body := `#1 = EDGE_CURVE('',#2,#3,$,.F.);`
	entities, err := Parse(strings.NewReader(body), zaptest.NewLogger(t))
	require.NoError(t, err)
	require.Len(t, entities, 1)
	ec := entities[0].(EdgeCurve)
	assert.Equal(t, ID(0), ec.Curve)
	assert.False(t, ec.SameSense)
}
