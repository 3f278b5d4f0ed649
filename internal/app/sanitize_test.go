package app

import (
	"encoding/json"
	"testing"
)

func TestSanitizeResponse_CodeFences(t *testing.T) {
	raw := "```json\n[{\"name\": \"Park Inn\"}]\n```"
	got := sanitizeResponse(raw)
	var v []map[string]any
	if err := json.Unmarshal([]byte(got), &v); err != nil {
		t.Fatalf("unmarshal after sanitize: %v (got %q)", err, got)
	}
	if len(v) != 1 || v[0]["name"] != "Park Inn" {
		t.Fatalf("unexpected: %+v", v)
	}
}

func TestSanitizeResponse_BareFence(t *testing.T) {
	raw := "```\n[1, 2, 3]\n```"
	if got := sanitizeResponse(raw); got != "[1, 2, 3]" {
		t.Fatalf("got %q", got)
	}
}

func TestSanitizeResponse_SurroundingProse(t *testing.T) {
	raw := `Sure! Here are the results you asked for:
[{"name": "A"}, {"name": "B"}]
Let me know if you need anything else.`
	got := sanitizeResponse(raw)
	var v []map[string]any
	if err := json.Unmarshal([]byte(got), &v); err != nil {
		t.Fatalf("unmarshal: %v (got %q)", err, got)
	}
	if len(v) != 2 {
		t.Fatalf("expected 2 elements, got %d", len(v))
	}
}

func TestSanitizeResponse_TrailingCommas(t *testing.T) {
	raw := `[{"name": "A", "rating": 4,}, {"name": "B",},]`
	got := sanitizeResponse(raw)
	var v []map[string]any
	if err := json.Unmarshal([]byte(got), &v); err != nil {
		t.Fatalf("unmarshal: %v (got %q)", err, got)
	}
	if len(v) != 2 {
		t.Fatalf("expected 2 elements, got %d", len(v))
	}
}

func TestSanitizeResponse_BracketsInsideStrings(t *testing.T) {
	raw := `noise [{"name": "The [Grand] Hotel ]["}] trailing`
	got := sanitizeResponse(raw)
	var v []map[string]any
	if err := json.Unmarshal([]byte(got), &v); err != nil {
		t.Fatalf("unmarshal: %v (got %q)", err, got)
	}
	if v[0]["name"] != "The [Grand] Hotel ][" {
		t.Fatalf("unexpected name: %v", v[0]["name"])
	}
}

func TestSanitizeResponse_NoArray(t *testing.T) {
	raw := "I could not find any accommodation."
	got := sanitizeResponse(raw)
	var v []map[string]any
	if err := json.Unmarshal([]byte(got), &v); err == nil {
		t.Fatalf("expected decode failure for %q", got)
	}
}
