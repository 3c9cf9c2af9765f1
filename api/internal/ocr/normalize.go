package ocr

import (
	"encoding/json"
	"fmt"
)

// Engines have emitted their block list under two nestings across
// versions: either the result already is the block list, or the result
// wraps it in a single-element outer list. The shape is decided once
// here; anything else is unknown and yields no lines. A third nesting,
// should one ever appear, must be confirmed against the engine before
// it gets its own case.
type resultShape int

const (
	shapeUnknown resultShape = iota
	shapeFlat                // raw is the block list
	shapeWrapped             // raw[0] is the block list
)

// Normalize flattens a raw engine result into recognized text lines,
// one per block, in engine order. It never fails: structural surprises
// degrade to skipped blocks or no lines at all, so a shape change in
// the engine can not take the service down. An empty return is a valid
// outcome (blank image), not an error.
func Normalize(raw RawResult) []string {
	blocks, shape := classify(raw)
	if shape == shapeUnknown {
		return nil
	}

	var lines []string
	for _, b := range blocks {
		block, ok := b.([]any)
		if !ok || len(block) < 2 {
			continue
		}
		textInfo, ok := block[1].([]any)
		if !ok || len(textInfo) == 0 {
			continue
		}
		lines = append(lines, coerceString(textInfo[0]))
	}
	return lines
}

// classify resolves the block list behind raw, tagging which nesting
// was found. Absent results and results whose first element is absent
// or empty are unknown.
func classify(raw RawResult) ([]any, resultShape) {
	if len(raw) == 0 {
		return nil, shapeUnknown
	}
	first := raw[0]
	if first == nil {
		return nil, shapeUnknown
	}
	if s, ok := first.([]any); ok && len(s) == 0 {
		return nil, shapeUnknown
	}

	if isBlock(first) {
		return raw, shapeFlat
	}
	if inner, ok := first.([]any); ok {
		return inner, shapeWrapped
	}
	return nil, shapeUnknown
}

// isBlock reports whether v carries the leaf-block signature: a pair
// whose first element is a 4-point polygon.
func isBlock(v any) bool {
	pair, ok := v.([]any)
	if !ok || len(pair) < 2 {
		return false
	}
	return isPolygon(pair[0])
}

// isPolygon matches a 4-point sequence of 2-coordinate points.
func isPolygon(v any) bool {
	pts, ok := v.([]any)
	if !ok || len(pts) != 4 {
		return false
	}
	for _, p := range pts {
		pt, ok := p.([]any)
		if !ok || len(pt) < 2 {
			return false
		}
		if !isNumber(pt[0]) || !isNumber(pt[1]) {
			return false
		}
	}
	return true
}

func isNumber(v any) bool {
	switch v.(type) {
	case float64, float32, int, int64, json.Number:
		return true
	}
	return false
}

func coerceString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
