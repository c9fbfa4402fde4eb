package models

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/taigrr/softraster/pkg/math3d"
)

// LoadOBJ loads a Wavefront OBJ file into a Mesh. Only v, vt, vn and f
// records are recognized; f records with more than 3 vertices are
// fan-triangulated around the first vertex. mtllib/usemtl are ignored - OBJ
// materials don't carry PBR factors, so there is nothing useful to map onto
// Mesh.Materials.
func LoadOBJ(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open obj: %w", err)
	}
	defer f.Close()

	var positions []math3d.Vec3
	var normals []math3d.Vec3
	var uvs []math3d.Vec2

	type objVertex struct {
		pos, norm, uv int
	}
	seen := map[objVertex]int{}

	mesh := NewMesh(filepath.Base(path))

	vertexFor := func(ov objVertex) (int, error) {
		if idx, ok := seen[ov]; ok {
			return idx, nil
		}

		if ov.pos < 0 || ov.pos >= len(positions) {
			return 0, fmt.Errorf("vertex index %d out of range", ov.pos+1)
		}
		mv := MeshVertex{Position: positions[ov.pos]}
		if ov.norm >= 0 && ov.norm < len(normals) {
			mv.Normal = normals[ov.norm]
		}
		if ov.uv >= 0 && ov.uv < len(uvs) {
			mv.UV = uvs[ov.uv]
		}

		idx := len(mesh.Vertices)
		mesh.Vertices = append(mesh.Vertices, mv)
		seen[ov] = idx
		return idx, nil
	}

	parseIndex := func(field string, n int) (int, error) {
		i, err := strconv.Atoi(field)
		if err != nil {
			return -1, fmt.Errorf("parse index %q: %w", field, err)
		}
		if i < 0 {
			return n + i, nil
		}
		return i - 1, nil
	}

	parseFaceVertex := func(tok string) (objVertex, error) {
		parts := strings.Split(tok, "/")
		ov := objVertex{pos: -1, norm: -1, uv: -1}

		var err error
		if parts[0] != "" {
			if ov.pos, err = parseIndex(parts[0], len(positions)); err != nil {
				return ov, err
			}
		}
		if len(parts) > 1 && parts[1] != "" {
			if ov.uv, err = parseIndex(parts[1], len(uvs)); err != nil {
				return ov, err
			}
		}
		if len(parts) > 2 && parts[2] != "" {
			if ov.norm, err = parseIndex(parts[2], len(normals)); err != nil {
				return ov, err
			}
		}
		return ov, nil
	}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: malformed v record", lineNo)
			}
			x, errX := strconv.ParseFloat(fields[1], 64)
			y, errY := strconv.ParseFloat(fields[2], 64)
			z, errZ := strconv.ParseFloat(fields[3], 64)
			if errX != nil || errY != nil || errZ != nil {
				return nil, fmt.Errorf("line %d: malformed v record", lineNo)
			}
			positions = append(positions, math3d.V3(x, y, z))

		case "vn":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: malformed vn record", lineNo)
			}
			x, errX := strconv.ParseFloat(fields[1], 64)
			y, errY := strconv.ParseFloat(fields[2], 64)
			z, errZ := strconv.ParseFloat(fields[3], 64)
			if errX != nil || errY != nil || errZ != nil {
				return nil, fmt.Errorf("line %d: malformed vn record", lineNo)
			}
			normals = append(normals, math3d.V3(x, y, z))

		case "vt":
			if len(fields) < 3 {
				return nil, fmt.Errorf("line %d: malformed vt record", lineNo)
			}
			u, errU := strconv.ParseFloat(fields[1], 64)
			v, errV := strconv.ParseFloat(fields[2], 64)
			if errU != nil || errV != nil {
				return nil, fmt.Errorf("line %d: malformed vt record", lineNo)
			}
			uvs = append(uvs, math3d.V2(u, v))

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: malformed f record", lineNo)
			}
			var idx []int
			for _, tok := range fields[1:] {
				ov, err := parseFaceVertex(tok)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				vi, err := vertexFor(ov)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				idx = append(idx, vi)
			}
			for i := 1; i+1 < len(idx); i++ {
				mesh.Faces = append(mesh.Faces, Face{
					V:        [3]int{idx[0], idx[i], idx[i+1]},
					Material: -1,
				})
			}

		default:
			// mtllib, usemtl, o, g, s and anything else: not meaningful
			// without per-face PBR data, so skipped.
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read obj: %w", err)
	}

	hasNormals := false
	for _, v := range mesh.Vertices {
		if v.Normal.Len() > 0.001 {
			hasNormals = true
			break
		}
	}
	if !hasNormals {
		mesh.CalculateSmoothNormals()
	}

	mesh.CalculateBounds()
	return mesh, nil
}
