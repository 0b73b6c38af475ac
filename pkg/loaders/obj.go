package loaders

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/corewave/pathtracer/pkg/core"
	"github.com/corewave/pathtracer/pkg/geometry"
	"github.com/corewave/pathtracer/pkg/material"
)

// objIndex is one slash-separated "v/vt/vn" triplet from a face line.
// texture and normal are 0 when absent, since valid OBJ indices are >= 1.
type objIndex struct {
	vertex, texture, normal int
}

// LoadOBJ parses a Wavefront OBJ file into triangles, fan-triangulating any
// face with more than three vertices. defaultMaterial is used for faces
// that appear before any usemtl directive and for any usemtl name an
// mtllib doesn't define.
func LoadOBJ(path string, defaultMaterial material.Material, logger core.Logger) ([]geometry.Primitive, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loaders: opening obj %q: %w", path, err)
	}
	defer file.Close()

	dir := filepath.Dir(path)

	var vertices, normals []core.Vec3
	var texCoords []core.Vec2
	materials := map[string]material.Material{}
	currentMaterial := defaultMaterial

	var primitives []geometry.Primitive

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		directive := fields[0]
		args := fields[1:]

		switch directive {
		case "v":
			v, err := parseVertex3(args)
			if err != nil {
				return nil, &ParseError{File: path, Line: lineNum, Cause: err}
			}
			vertices = append(vertices, v)

		case "vn":
			n, err := parseVertex3(args)
			if err != nil {
				return nil, &ParseError{File: path, Line: lineNum, Cause: err}
			}
			normals = append(normals, n)

		case "vt":
			uv, err := parseVertex2(args)
			if err != nil {
				return nil, &ParseError{File: path, Line: lineNum, Cause: err}
			}
			texCoords = append(texCoords, uv)

		case "vp":
			// Parameter-space vertices aren't used for rendering; accepted
			// so files that declare them still parse.

		case "f":
			face, err := parseFace(args)
			if err != nil {
				return nil, &ParseError{File: path, Line: lineNum, Cause: err}
			}
			tris, err := triangulateFace(face, vertices, texCoords, currentMaterial)
			if err != nil {
				return nil, &ParseError{File: path, Line: lineNum, Cause: err}
			}
			primitives = append(primitives, tris...)

		case "l":
			// Polylines have no renderable surface; accepted and ignored.

		case "o", "s", "g":
			// Object/smoothing-group/grouping markers don't affect geometry.

		case "mtllib":
			if len(args) < 1 {
				return nil, &ParseError{File: path, Line: lineNum, Cause: fmt.Errorf("mtllib missing a filename")}
			}
			loaded, err := LoadMTL(filepath.Join(dir, args[0]), logger)
			if err != nil {
				return nil, err
			}
			for name, m := range loaded {
				materials[name] = m
			}

		case "usemtl":
			if len(args) < 1 {
				return nil, &ParseError{File: path, Line: lineNum, Cause: fmt.Errorf("usemtl missing a name")}
			}
			m, ok := materials[args[0]]
			if !ok {
				if logger != nil {
					logger.Printf("loaders: obj %s:%d: usemtl %q not defined by any mtllib, using default material", path, lineNum, args[0])
				}
				m = defaultMaterial
			}
			currentMaterial = m

		default:
			if logger != nil {
				logger.Printf("loaders: obj %s:%d: skipping unsupported directive %q", path, lineNum, directive)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("loaders: reading obj %q: %w", path, err)
	}
	return primitives, nil
}

func parseVertex3(args []string) (core.Vec3, error) {
	if len(args) < 3 {
		return core.Vec3{}, fmt.Errorf("expected at least 3 components, got %d", len(args))
	}
	x, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return core.Vec3{}, err
	}
	y, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return core.Vec3{}, err
	}
	z, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return core.Vec3{}, err
	}
	return core.NewVec3(x, y, z), nil
}

func parseVertex2(args []string) (core.Vec2, error) {
	if len(args) < 2 {
		return core.Vec2{}, fmt.Errorf("expected at least 2 components, got %d", len(args))
	}
	u, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return core.Vec2{}, err
	}
	v, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return core.Vec2{}, err
	}
	return core.NewVec2(u, v), nil
}

func parseFace(args []string) ([]objIndex, error) {
	if len(args) < 3 {
		return nil, fmt.Errorf("face needs at least 3 vertices, got %d", len(args))
	}
	face := make([]objIndex, len(args))
	for i, token := range args {
		idx, err := parseFaceVertex(token)
		if err != nil {
			return nil, err
		}
		face[i] = idx
	}
	return face, nil
}

// parseFaceVertex parses a single "v", "v/vt", "v//vn" or "v/vt/vn" token.
func parseFaceVertex(token string) (objIndex, error) {
	parts := strings.Split(token, "/")
	v, err := strconv.Atoi(parts[0])
	if err != nil {
		return objIndex{}, fmt.Errorf("invalid vertex index %q: %w", parts[0], err)
	}
	idx := objIndex{vertex: v}
	if len(parts) >= 2 && parts[1] != "" {
		t, err := strconv.Atoi(parts[1])
		if err != nil {
			return objIndex{}, fmt.Errorf("invalid texture index %q: %w", parts[1], err)
		}
		idx.texture = t
	}
	if len(parts) >= 3 && parts[2] != "" {
		n, err := strconv.Atoi(parts[2])
		if err != nil {
			return objIndex{}, fmt.Errorf("invalid normal index %q: %w", parts[2], err)
		}
		idx.normal = n
	}
	return idx, nil
}

// resolveIndex turns a 1-based OBJ index into a 0-based slice index,
// resolving negative indices as count - |raw| (the Nth-from-the-end rule).
func resolveIndex(raw, count int) (int, error) {
	switch {
	case raw > 0:
		if raw > count {
			return 0, fmt.Errorf("index %d out of range (have %d)", raw, count)
		}
		return raw - 1, nil
	case raw < 0:
		resolved := count + raw
		if resolved < 0 {
			return 0, fmt.Errorf("negative index %d out of range (have %d)", raw, count)
		}
		return resolved, nil
	default:
		return 0, fmt.Errorf("vertex index 0 is invalid (OBJ indices are 1-based)")
	}
}

// triangulateFace fan-triangulates a face with a fixed first vertex and a
// sliding window over the rest, producing len(face)-2 triangles. Per-vertex
// texture coordinates, when present, are attached via a UVRemap that
// interpolates them with the barycentric weights Triangle.Hit reports.
func triangulateFace(face []objIndex, vertices []core.Vec3, texCoords []core.Vec2, mat material.Material) ([]geometry.Primitive, error) {
	p0, uv0, err := resolveFaceVertex(face[0], vertices, texCoords)
	if err != nil {
		return nil, err
	}

	var tris []geometry.Primitive
	for i := 1; i < len(face)-1; i++ {
		p1, uv1, err := resolveFaceVertex(face[i], vertices, texCoords)
		if err != nil {
			return nil, err
		}
		p2, uv2, err := resolveFaceVertex(face[i+1], vertices, texCoords)
		if err != nil {
			return nil, err
		}

		tri := geometry.NewTriangle(p0, p1, p2, mat)
		if uv0 != nil && uv1 != nil && uv2 != nil {
			a, b, c := *uv0, *uv1, *uv2
			remap := func(alpha, beta float64) core.Vec2 {
				gamma := 1 - alpha - beta
				return core.NewVec2(
					gamma*a.X+alpha*b.X+beta*c.X,
					gamma*a.Y+alpha*b.Y+beta*c.Y,
				)
			}
			tris = append(tris, geometry.NewUVRemap(tri, remap))
		} else {
			tris = append(tris, tri)
		}
	}
	return tris, nil
}

func resolveFaceVertex(idx objIndex, vertices []core.Vec3, texCoords []core.Vec2) (core.Vec3, *core.Vec2, error) {
	vi, err := resolveIndex(idx.vertex, len(vertices))
	if err != nil {
		return core.Vec3{}, nil, err
	}
	point := vertices[vi]

	if idx.texture == 0 {
		return point, nil, nil
	}
	ti, err := resolveIndex(idx.texture, len(texCoords))
	if err != nil {
		return core.Vec3{}, nil, err
	}
	uv := texCoords[ti]
	return point, &uv, nil
}
