package loaders

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/corewave/pathtracer/pkg/core"
	"github.com/corewave/pathtracer/pkg/material"
)

// mtlRecord accumulates one material's directives as they're read; it is
// converted to a concrete material.Material once the next "newmtl" or EOF
// closes it out, since a directive can arrive in any order.
type mtlRecord struct {
	ka, kd, ks, ke, tf core.Vec3
	ns, ni, d          float64
	illum              int
	mapKd              string
}

func newMtlRecord() mtlRecord {
	return mtlRecord{ni: 1, d: 1, ns: 0}
}

// LoadMTL parses a Wavefront MTL file into named materials. dir is used to
// resolve map_Kd texture paths relative to the MTL file's own directory.
// Unknown directives are skipped and logged as a warning rather than
// treated as fatal, matching the loader's tolerance for forward-compatible
// MTL extensions it doesn't model.
func LoadMTL(path string, logger core.Logger) (map[string]material.Material, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loaders: opening mtl %q: %w", path, err)
	}
	defer file.Close()

	dir := filepath.Dir(path)
	materials := make(map[string]material.Material)

	var currentName string
	var current mtlRecord
	hasCurrent := false

	flush := func() {
		if hasCurrent {
			materials[currentName] = buildMaterial(current, dir, logger)
		}
	}

	scanner := bufio.NewScanner(file)
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

		if directive == "newmtl" {
			flush()
			if len(args) < 1 {
				return nil, &ParseError{File: path, Line: lineNum, Cause: fmt.Errorf("newmtl missing a name")}
			}
			currentName = args[0]
			current = newMtlRecord()
			hasCurrent = true
			continue
		}

		if !hasCurrent {
			return nil, &ParseError{File: path, Line: lineNum, Cause: fmt.Errorf("directive %q before any newmtl", directive)}
		}

		var err error
		switch directive {
		case "Ka":
			current.ka, err = parseVec3(args)
		case "Kd":
			current.kd, err = parseVec3(args)
		case "Ks":
			current.ks, err = parseVec3(args)
		case "Ke":
			current.ke, err = parseVec3(args)
		case "Tf":
			current.tf, err = parseVec3(args)
		case "Ns":
			current.ns, err = parseFloat(args)
		case "Ni":
			current.ni, err = parseFloat(args)
		case "d":
			current.d, err = parseFloat(args)
		case "Tr":
			var tr float64
			tr, err = parseFloat(args)
			current.d = 1 - tr
		case "illum":
			var illum float64
			illum, err = parseFloat(args)
			current.illum = int(illum)
		case "map_Kd":
			if len(args) < 1 {
				err = fmt.Errorf("map_Kd missing a path")
			} else {
				current.mapKd = args[0]
			}
		default:
			if logger != nil {
				logger.Printf("loaders: mtl %s:%d: skipping unsupported directive %q", path, lineNum, directive)
			}
		}
		if err != nil {
			return nil, &ParseError{File: path, Line: lineNum, Cause: err}
		}
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("loaders: reading mtl %q: %w", path, err)
	}
	return materials, nil
}

// buildMaterial maps an MTL record onto the renderer's BSDF model: emissive
// (Ke non-zero) takes priority, then transparency (d<1 or a refractive
// illum model) as Dielectric, then a shiny Ks as fuzzed Metal, falling back
// to Lambertian Kd (optionally textured via map_Kd).
func buildMaterial(rec mtlRecord, dir string, logger core.Logger) material.Material {
	if !rec.ke.IsZero() {
		return material.NewDiffuseLight(rec.ke)
	}

	isRefractive := rec.d < 1 || rec.illum == 4 || rec.illum == 6 || rec.illum == 7 || rec.illum == 9
	if isRefractive {
		ni := rec.ni
		if ni <= 0 {
			ni = 1.0
		}
		return material.NewDielectric(ni)
	}

	if (rec.illum == 3 || rec.illum == 5) && !rec.ks.IsZero() {
		fuzz := 1.0
		if rec.ns > 0 {
			fuzz = 1.0 - min(rec.ns/1000.0, 1.0)
		}
		return material.NewMetal(rec.ks, fuzz)
	}

	if rec.mapKd != "" {
		img, err := OpenImage(filepath.Join(dir, rec.mapKd))
		if err == nil {
			return material.NewLambertianTexture(img)
		}
		if logger != nil {
			logger.Printf("loaders: mtl: failed to load map_Kd %q: %v", rec.mapKd, err)
		}
	}

	return material.NewLambertian(rec.kd)
}

func parseVec3(args []string) (core.Vec3, error) {
	if len(args) < 3 {
		return core.Vec3{}, fmt.Errorf("expected 3 components, got %d", len(args))
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

func parseFloat(args []string) (float64, error) {
	if len(args) < 1 {
		return 0, fmt.Errorf("expected a value")
	}
	return strconv.ParseFloat(args[0], 64)
}
