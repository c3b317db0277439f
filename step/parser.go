// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package step

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/golang/geo/r3"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Parse tokenizes a STEP exchange-structure text body: one entity record
// per "#id = KEYWORD(args);" statement. It and package geomio are the only
// I/O-touching library code in this module — the core triangulator stays
// synchronous and filesystem-free.
//
// Unrecognized keywords (STEP files commonly carry presentation/styling
// entities this package has no use for) are logged through logger and
// skipped rather than failing the parse. Malformed records or arguments
// are accumulated with multierr so one bad line doesn't hide the rest;
// Parse still returns every entity it could build.
func Parse(r io.Reader, logger *zap.Logger) ([]Entity, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("step.Parse: %w", err)
	}

	var entities []Entity
	var errs error

	for _, stmt := range splitStatements(string(data)) {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" || !strings.HasPrefix(stmt, "#") {
			continue
		}

		id, keyword, args, err := tokenizeRecord(stmt)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%w: %q: %v", ErrMalformedRecord, stmt, err))
			continue
		}

		entity, err := build(id, keyword, args)
		if err != nil {
			if err == errUnknownKeyword {
				logger.Warn("skipping unrecognized STEP entity",
					zap.Int("id", int(id)), zap.String("keyword", keyword))
				continue
			}
			errs = multierr.Append(errs, fmt.Errorf("%w: #%d %s: %v", ErrMalformedArgument, id, keyword, err))
			continue
		}
		entities = append(entities, entity)
	}

	return entities, errs
}

// splitStatements breaks the input into ';'-terminated statements,
// ignoring semicolons that fall inside a quoted string.
func splitStatements(s string) []string {
	var out []string
	var cur strings.Builder
	inQuote := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\'' {
			inQuote = !inQuote
		}
		if c == ';' && !inQuote {
			out = append(out, cur.String())
			cur.Reset()
			continue
		}
		cur.WriteByte(c)
	}
	if cur.Len() > 0 {
		out = append(out, cur.String())
	}
	return out
}

// tokenizeRecord splits "#id = KEYWORD(args)" into its id, keyword, and
// the top-level-split argument list.
func tokenizeRecord(stmt string) (ID, string, []string, error) {
	eq := strings.IndexByte(stmt, '=')
	if eq < 0 {
		return 0, "", nil, fmt.Errorf("missing '='")
	}
	head := strings.TrimSpace(stmt[:eq])
	if !strings.HasPrefix(head, "#") {
		return 0, "", nil, fmt.Errorf("id %q does not start with '#'", head)
	}
	idNum, err := strconv.Atoi(strings.TrimSpace(head[1:]))
	if err != nil {
		return 0, "", nil, fmt.Errorf("bad id %q: %w", head, err)
	}

	rest := strings.TrimSpace(stmt[eq+1:])
	open := strings.IndexByte(rest, '(')
	if open < 0 {
		return 0, "", nil, fmt.Errorf("missing '(' in %q", rest)
	}
	keyword := strings.TrimSpace(rest[:open])

	closeParen, err := matchParen(rest, open)
	if err != nil {
		return 0, "", nil, err
	}

	args := splitTopLevel(rest[open+1 : closeParen])
	return ID(idNum), strings.ToUpper(keyword), args, nil
}

// matchParen returns the index of the ')' matching the '(' at open,
// respecting quoted strings and nesting.
func matchParen(s string, open int) (int, error) {
	depth := 0
	inQuote := false
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '\'':
			inQuote = !inQuote
		case '(':
			if !inQuote {
				depth++
			}
		case ')':
			if !inQuote {
				depth--
				if depth == 0 {
					return i, nil
				}
			}
		}
	}
	return 0, fmt.Errorf("unbalanced parens in %q", s)
}

// splitTopLevel splits s on commas that are not nested inside parens or a
// quoted string.
func splitTopLevel(s string) []string {
	var out []string
	var cur strings.Builder
	depth := 0
	inQuote := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '\'':
			inQuote = !inQuote
		case '(':
			if !inQuote {
				depth++
			}
		case ')':
			if !inQuote {
				depth--
			}
		case ',':
			if depth == 0 && !inQuote {
				out = append(out, strings.TrimSpace(cur.String()))
				cur.Reset()
				continue
			}
		}
		cur.WriteByte(c)
	}
	if trimmed := strings.TrimSpace(cur.String()); trimmed != "" || len(out) > 0 {
		out = append(out, trimmed)
	}
	return out
}

func parseString(tok string) string {
	tok = strings.TrimSpace(tok)
	if len(tok) >= 2 && tok[0] == '\'' && tok[len(tok)-1] == '\'' {
		return strings.ReplaceAll(tok[1:len(tok)-1], "''", "'")
	}
	return tok
}

func parseID(tok string) (ID, error) {
	tok = strings.TrimSpace(tok)
	if tok == "$" || tok == "*" {
		return 0, nil
	}
	if !strings.HasPrefix(tok, "#") {
		return 0, fmt.Errorf("expected '#id', got %q", tok)
	}
	n, err := strconv.Atoi(tok[1:])
	if err != nil {
		return 0, fmt.Errorf("bad id %q: %w", tok, err)
	}
	return ID(n), nil
}

func parseIDList(tok string) ([]ID, error) {
	tok = strings.TrimSpace(tok)
	if !strings.HasPrefix(tok, "(") || !strings.HasSuffix(tok, ")") {
		return nil, fmt.Errorf("expected '(...)' id list, got %q", tok)
	}
	parts := splitTopLevel(tok[1 : len(tok)-1])
	out := make([]ID, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			continue
		}
		id, err := parseID(p)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}

func parseFloat(tok string) (float64, error) {
	tok = strings.TrimSpace(tok)
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("bad number %q: %w", tok, err)
	}
	return f, nil
}

func parseBool(tok string) (bool, error) {
	switch strings.TrimSpace(tok) {
	case ".T.":
		return true, nil
	case ".F.":
		return false, nil
	default:
		return false, fmt.Errorf("expected '.T.' or '.F.', got %q", tok)
	}
}

func parseVector(tok string) (r3.Vector, error) {
	tok = strings.TrimSpace(tok)
	if !strings.HasPrefix(tok, "(") || !strings.HasSuffix(tok, ")") {
		return r3.Vector{}, fmt.Errorf("expected '(x,y,z)', got %q", tok)
	}
	parts := splitTopLevel(tok[1 : len(tok)-1])
	if len(parts) != 3 {
		return r3.Vector{}, fmt.Errorf("expected 3 components, got %d in %q", len(parts), tok)
	}
	x, err := parseFloat(parts[0])
	if err != nil {
		return r3.Vector{}, err
	}
	y, err := parseFloat(parts[1])
	if err != nil {
		return r3.Vector{}, err
	}
	z, err := parseFloat(parts[2])
	if err != nil {
		return r3.Vector{}, err
	}
	return r3.Vector{X: x, Y: y, Z: z}, nil
}

var errUnknownKeyword = fmt.Errorf("step: unknown keyword")

// build dispatches a tokenized record to the constructor for its keyword.
func build(id ID, keyword string, args []string) (Entity, error) {
	arg := func(i int) string {
		if i < len(args) {
			return args[i]
		}
		return ""
	}
	need := func(n int) error {
		if len(args) < n {
			return fmt.Errorf("expected %d arguments, got %d", n, len(args))
		}
		return nil
	}

	switch keyword {
	case "CARTESIAN_POINT":
		if err := need(2); err != nil {
			return nil, err
		}
		v, err := parseVector(arg(1))
		if err != nil {
			return nil, err
		}
		return CartesianPoint{ID: id, Name: parseString(arg(0)), Coords: v}, nil

	case "DIRECTION":
		if err := need(2); err != nil {
			return nil, err
		}
		v, err := parseVector(arg(1))
		if err != nil {
			return nil, err
		}
		return Direction{ID: id, Name: parseString(arg(0)), Components: v}, nil

	case "AXIS2_PLACEMENT_3D":
		if err := need(4); err != nil {
			return nil, err
		}
		loc, err := parseID(arg(1))
		if err != nil {
			return nil, err
		}
		axis, err := parseID(arg(2))
		if err != nil {
			return nil, err
		}
		ref, err := parseID(arg(3))
		if err != nil {
			return nil, err
		}
		return Axis2Placement3D{ID: id, Name: parseString(arg(0)), Location: loc, Axis: axis, RefDirection: ref}, nil

	case "PLANE":
		if err := need(2); err != nil {
			return nil, err
		}
		placement, err := parseID(arg(1))
		if err != nil {
			return nil, err
		}
		return Plane{ID: id, Name: parseString(arg(0)), Placement: placement}, nil

	case "CYLINDRICAL_SURFACE":
		if err := need(3); err != nil {
			return nil, err
		}
		placement, err := parseID(arg(1))
		if err != nil {
			return nil, err
		}
		radius, err := parseFloat(arg(2))
		if err != nil {
			return nil, err
		}
		return CylindricalSurface{ID: id, Name: parseString(arg(0)), Placement: placement, Radius: radius}, nil

	case "LINE":
		if err := need(3); err != nil {
			return nil, err
		}
		point, err := parseID(arg(1))
		if err != nil {
			return nil, err
		}
		dir, err := parseID(arg(2))
		if err != nil {
			return nil, err
		}
		return Line{ID: id, Name: parseString(arg(0)), Point: point, Dir: dir}, nil

	case "CIRCLE":
		if err := need(3); err != nil {
			return nil, err
		}
		placement, err := parseID(arg(1))
		if err != nil {
			return nil, err
		}
		radius, err := parseFloat(arg(2))
		if err != nil {
			return nil, err
		}
		return Circle{ID: id, Name: parseString(arg(0)), Placement: placement, Radius: radius}, nil

	case "VERTEX_POINT":
		if err := need(2); err != nil {
			return nil, err
		}
		point, err := parseID(arg(1))
		if err != nil {
			return nil, err
		}
		return VertexPoint{ID: id, Name: parseString(arg(0)), Point: point}, nil

	case "EDGE_CURVE":
		if err := need(5); err != nil {
			return nil, err
		}
		start, err := parseID(arg(1))
		if err != nil {
			return nil, err
		}
		end, err := parseID(arg(2))
		if err != nil {
			return nil, err
		}
		curve, err := parseID(arg(3))
		if err != nil {
			return nil, err
		}
		sameSense, err := parseBool(arg(4))
		if err != nil {
			return nil, err
		}
		return EdgeCurve{ID: id, Name: parseString(arg(0)), Start: start, End: end, Curve: curve, SameSense: sameSense}, nil

	case "ORIENTED_EDGE":
		if err := need(3); err != nil {
			return nil, err
		}
		edge, err := parseID(arg(1))
		if err != nil {
			return nil, err
		}
		orientation, err := parseBool(arg(2))
		if err != nil {
			return nil, err
		}
		return OrientedEdge{ID: id, Name: parseString(arg(0)), Edge: edge, Orientation: orientation}, nil

	case "EDGE_LOOP":
		if err := need(2); err != nil {
			return nil, err
		}
		edges, err := parseIDList(arg(1))
		if err != nil {
			return nil, err
		}
		return EdgeLoop{ID: id, Name: parseString(arg(0)), Edges: edges}, nil

	case "FACE_BOUND":
		if err := need(3); err != nil {
			return nil, err
		}
		bound, err := parseID(arg(1))
		if err != nil {
			return nil, err
		}
		orientation, err := parseBool(arg(2))
		if err != nil {
			return nil, err
		}
		return FaceBound{ID: id, Name: parseString(arg(0)), Bound: bound, Orientation: orientation}, nil

	case "ADVANCED_FACE":
		if err := need(4); err != nil {
			return nil, err
		}
		bounds, err := parseIDList(arg(1))
		if err != nil {
			return nil, err
		}
		surface, err := parseID(arg(2))
		if err != nil {
			return nil, err
		}
		sameSense, err := parseBool(arg(3))
		if err != nil {
			return nil, err
		}
		return AdvancedFace{ID: id, Name: parseString(arg(0)), Bounds: bounds, Surface: surface, SameSense: sameSense}, nil

	case "CLOSED_SHELL":
		if err := need(2); err != nil {
			return nil, err
		}
		faces, err := parseIDList(arg(1))
		if err != nil {
			return nil, err
		}
		return ClosedShell{ID: id, Name: parseString(arg(0)), Faces: faces}, nil

	case "MANIFOLD_SOLID_BREP":
		if err := need(2); err != nil {
			return nil, err
		}
		outer, err := parseID(arg(1))
		if err != nil {
			return nil, err
		}
		return ManifoldSolidBrep{ID: id, Name: parseString(arg(0)), Outer: outer}, nil

	default:
		return nil, errUnknownKeyword
	}
}
