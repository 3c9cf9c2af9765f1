package ocr

import (
	"encoding/json"
	"reflect"
	"testing"
)

func rawFromJSON(t *testing.T, s string) RawResult {
	t.Helper()
	var v []any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		t.Fatalf("bad test fixture %q: %v", s, err)
	}
	return RawResult(v)
}

func TestNormalizeEmptyResults(t *testing.T) {
	cases := map[string]RawResult{
		"nil":         nil,
		"empty":       {},
		"null first":  rawFromJSON(t, `[null]`),
		"empty first": rawFromJSON(t, `[[]]`),
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			if got := Normalize(raw); len(got) != 0 {
				t.Fatalf("Normalize() = %v, want no lines", got)
			}
		})
	}
}

func TestNormalizeFlatShape(t *testing.T) {
	raw := rawFromJSON(t, `[[[[0,0],[1,0],[1,1],[0,1]], ["hello", 0.9]]]`)
	got := Normalize(raw)
	if !reflect.DeepEqual(got, []string{"hello"}) {
		t.Fatalf("Normalize() = %v, want [hello]", got)
	}
}

func TestNormalizeWrappedShape(t *testing.T) {
	raw := rawFromJSON(t, `[[[[[0,0],[1,0],[1,1],[0,1]], ["hello", 0.9]]]]`)
	got := Normalize(raw)
	if !reflect.DeepEqual(got, []string{"hello"}) {
		t.Fatalf("Normalize() = %v, want [hello]", got)
	}
}

func TestNormalizeShapesConverge(t *testing.T) {
	flat := rawFromJSON(t, `[
		[[[0,0],[5,0],[5,1],[0,1]], ["one", 0.99]],
		[[[0,2],[5,2],[5,3],[0,3]], ["two", 0.98]]
	]`)
	wrapped := RawResult{[]any(flat)}
	if !reflect.DeepEqual(Normalize(flat), Normalize(wrapped)) {
		t.Fatalf("flat %v != wrapped %v", Normalize(flat), Normalize(wrapped))
	}
}

func TestNormalizeSkipsEmptyTextInfo(t *testing.T) {
	raw := rawFromJSON(t, `[[[[0,0],[1,0],[1,1],[0,1]], []]]`)
	if got := Normalize(raw); len(got) != 0 {
		t.Fatalf("Normalize() = %v, want no lines", got)
	}
}

func TestNormalizeSkipsMalformedBlocksOnly(t *testing.T) {
	raw := rawFromJSON(t, `[
		[[[0,0],[1,0],[1,1],[0,1]], ["keep", 0.9]],
		"not a block",
		[[[0,2],[1,2],[1,3],[0,3]]],
		[[[0,4],[1,4],[1,5],[0,5]], ["also keep", 0.8]]
	]`)
	got := Normalize(raw)
	if !reflect.DeepEqual(got, []string{"keep", "also keep"}) {
		t.Fatalf("Normalize() = %v, want [keep, also keep]", got)
	}
}

func TestNormalizeUnrecognizedShape(t *testing.T) {
	cases := map[string]string{
		"scalar first":    `["garbage", "more"]`,
		"object elements": `[{"text": "hi"}]`,
	}
	for name, fixture := range cases {
		t.Run(name, func(t *testing.T) {
			if got := Normalize(rawFromJSON(t, fixture)); len(got) != 0 {
				t.Fatalf("Normalize() = %v, want no lines", got)
			}
		})
	}
}

func TestNormalizePreservesOrder(t *testing.T) {
	raw := rawFromJSON(t, `[
		[[[0,0],[9,0],[9,1],[0,1]], ["first", 0.9]],
		[[[0,2],[9,2],[9,3],[0,3]], ["second", 0.9]],
		[[[0,4],[9,4],[9,5],[0,5]], ["third", 0.9]]
	]`)
	got := Normalize(raw)
	want := []string{"first", "second", "third"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Normalize() = %v, want %v", got, want)
	}
}

func TestNormalizeCoercesNonStringText(t *testing.T) {
	raw := rawFromJSON(t, `[[[[0,0],[1,0],[1,1],[0,1]], [42, 0.5]]]`)
	got := Normalize(raw)
	if !reflect.DeepEqual(got, []string{"42"}) {
		t.Fatalf("Normalize() = %v, want [42]", got)
	}
}
