package tsplib

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/tspmeta/tsp"
)

const (
	keyName       = "NAME"
	keyType       = "TYPE"
	keyComment    = "COMMENT"
	keyDimension  = "DIMENSION"
	keyWeightType = "EDGE_WEIGHT_TYPE"

	sectionCoords = "NODE_COORD_SECTION"
	markerEOF     = "EOF"
)

// supportedWeightTypes are treated as plain Euclidean distances.
var supportedWeightTypes = map[string]struct{}{
	"":        {},
	"EUC_2D":  {},
	"CEIL_2D": {},
	"ATT":     {},
}

// Load opens path and parses it. When the file has no NAME header, the
// base file name without extension is used.
func Load(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	inst, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if inst.Name == "" {
		inst.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return inst, nil
}

// Parse reads a TSPLIB-style coordinate file from r.
//
// Complexity: O(lines) time, O(n) space.
func Parse(r io.Reader) (*Instance, error) {
	var (
		inst     = &Instance{}
		declared = -1
		inCoords bool
		lineNo   int
		seen     = make(map[int]struct{})
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.EqualFold(line, markerEOF) {
			break
		}

		if inCoords {
			p, err := parseCoord(line)
			if err != nil {
				// A new keyword ends the section (e.g. DISPLAY_DATA_SECTION).
				if isKeyword(line) {
					inCoords = false
					continue
				}
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			if _, dup := seen[p.ID]; dup {
				return nil, fmt.Errorf("line %d: %w: %d", lineNo, ErrDuplicateID, p.ID)
			}
			seen[p.ID] = struct{}{}
			inst.Points = append(inst.Points, p)
			continue
		}

		if strings.EqualFold(line, sectionCoords) {
			inCoords = true
			continue
		}

		key, value := splitHeader(line)
		switch key {
		case keyName:
			inst.Name = value
		case keyType:
			inst.Type = value
		case keyComment:
			if inst.Comment != "" {
				inst.Comment += " "
			}
			inst.Comment += value
		case keyDimension:
			n, err := strconv.Atoi(value)
			if err != nil || n < 0 {
				return nil, fmt.Errorf("line %d: %w: dimension %q", lineNo, ErrMalformed, value)
			}
			declared = n
		case keyWeightType:
			wt := strings.ToUpper(value)
			if _, ok := supportedWeightTypes[wt]; !ok {
				return nil, fmt.Errorf("line %d: %w: %s", lineNo, ErrUnsupportedWeightType, value)
			}
			inst.EdgeWeightType = wt
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	if len(inst.Points) == 0 {
		return nil, ErrNoPoints
	}
	if declared >= 0 && declared != len(inst.Points) {
		return nil, fmt.Errorf("%w: DIMENSION %d, %d coordinates", ErrDimensionMismatch, declared, len(inst.Points))
	}
	inst.Dimension = len(inst.Points)

	return inst, nil
}

// splitHeader splits "KEY : value" or "KEY value" into an upper-cased key
// and a trimmed value.
func splitHeader(line string) (string, string) {
	var key, value string
	if i := strings.IndexByte(line, ':'); i >= 0 {
		key, value = line[:i], line[i+1:]
	} else if f := strings.Fields(line); len(f) > 0 {
		key = f[0]
		value = strings.TrimSpace(strings.TrimPrefix(line, f[0]))
	}

	return strings.ToUpper(strings.TrimSpace(key)), strings.TrimSpace(value)
}

// parseCoord parses "id x y".
func parseCoord(line string) (tsp.Point, error) {
	f := strings.Fields(line)
	if len(f) != 3 {
		return tsp.Point{}, fmt.Errorf("%w: want \"id x y\", got %q", ErrMalformed, line)
	}
	id, err := strconv.Atoi(f[0])
	if err != nil {
		return tsp.Point{}, fmt.Errorf("%w: id %q", ErrMalformed, f[0])
	}
	x, err := strconv.ParseFloat(f[1], 64)
	if err != nil {
		return tsp.Point{}, fmt.Errorf("%w: x %q", ErrMalformed, f[1])
	}
	y, err := strconv.ParseFloat(f[2], 64)
	if err != nil {
		return tsp.Point{}, fmt.Errorf("%w: y %q", ErrMalformed, f[2])
	}

	return tsp.Point{ID: id, X: x, Y: y}, nil
}

// isKeyword reports whether line starts with an upper-case TSPLIB keyword.
func isKeyword(line string) bool {
	f := strings.Fields(line)
	if len(f) == 0 {
		return false
	}
	w := f[0]
	return w == strings.ToUpper(w) && strings.ContainsAny(w, "ABCDEFGHIJKLMNOPQRSTUVWXYZ")
}
