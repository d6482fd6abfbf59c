package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/tidycss/tidycss/internal/lint"
)

func TestJSONFormatter_ValidJSON(t *testing.T) {
	f := &JSONFormatter{}
	var buf bytes.Buffer

	report := &lint.Report{
		Messages: []lint.Message{
			{
				Type:    lint.Error,
				Line:    10,
				Col:     5,
				Message: "Rule is empty.",
				Rule:    lint.RuleMeta{ID: "empty-rules", Name: "Disallow empty rules"},
			},
		},
	}

	err := f.Format(&buf, "site.css", report)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var result jsonReport
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("output is not valid JSON: %v\noutput: %s", err, buf.String())
	}
}

func TestJSONFormatter_CorrectFieldNamesAndValues(t *testing.T) {
	f := &JSONFormatter{}
	var buf bytes.Buffer

	report := &lint.Report{
		Messages: []lint.Message{
			{
				Type:     lint.Error,
				Line:     10,
				Col:      5,
				Message:  "Rule is empty.",
				Evidence: ".foo { }",
				Rule:     lint.RuleMeta{ID: "empty-rules", Name: "Disallow empty rules"},
			},
		},
	}

	err := f.Format(&buf, "site.css", report)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Unmarshal into a generic structure to verify field names
	var raw map[string]any
	if err := json.Unmarshal(buf.Bytes(), &raw); err != nil {
		t.Fatalf("failed to unmarshal JSON: %v", err)
	}

	messages, ok := raw["messages"].([]any)
	if !ok || len(messages) != 1 {
		t.Fatalf("expected 1 message, got %v", raw["messages"])
	}

	item := messages[0].(map[string]any)

	expectedFields := []string{"file", "line", "column", "rule", "name", "severity", "message", "evidence"}
	for _, field := range expectedFields {
		if _, ok := item[field]; !ok {
			t.Errorf("missing field %q in JSON output", field)
		}
	}

	if item["file"] != "site.css" {
		t.Errorf("file: got %v, want %q", item["file"], "site.css")
	}
	// JSON numbers are float64 when unmarshaled into any
	if item["line"] != float64(10) {
		t.Errorf("line: got %v, want %v", item["line"], 10)
	}
	if item["column"] != float64(5) {
		t.Errorf("column: got %v, want %v", item["column"], 5)
	}
	if item["rule"] != "empty-rules" {
		t.Errorf("rule: got %v, want %q", item["rule"], "empty-rules")
	}
	if item["severity"] != "error" {
		t.Errorf("severity: got %v, want %q", item["severity"], "error")
	}
	if item["evidence"] != ".foo { }" {
		t.Errorf("evidence: got %v, want %q", item["evidence"], ".foo { }")
	}
}

func TestJSONFormatter_EmptyReport(t *testing.T) {
	f := &JSONFormatter{}
	var buf bytes.Buffer

	err := f.Format(&buf, "site.css", &lint.Report{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var result jsonReport
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("output is not valid JSON: %v\noutput: %s", err, buf.String())
	}

	// Verify it produces an empty array (not null)
	if result.Messages == nil {
		t.Error("expected non-nil empty messages slice, got nil")
	}
	if len(result.Messages) != 0 {
		t.Errorf("expected 0 messages, got %d", len(result.Messages))
	}
}

func TestJSONFormatter_RollupOmitsPosition(t *testing.T) {
	f := &JSONFormatter{}
	var buf bytes.Buffer

	report := &lint.Report{
		Messages: []lint.Message{
			{
				Type:    lint.Warning,
				Message: "Too many @font-face declarations (6).",
				Rule:    lint.RuleMeta{ID: "font-faces"},
				Rollup:  true,
			},
		},
	}

	err := f.Format(&buf, "site.css", report)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(buf.Bytes(), &raw); err != nil {
		t.Fatalf("failed to unmarshal JSON: %v", err)
	}
	item := raw["messages"].([]any)[0].(map[string]any)

	if _, ok := item["line"]; ok {
		t.Error("rollup message should omit line")
	}
	if _, ok := item["column"]; ok {
		t.Error("rollup message should omit column")
	}
	if item["rollup"] != true {
		t.Error("rollup flag should be true")
	}
}

func TestJSONFormatter_IncludesStats(t *testing.T) {
	f := &JSONFormatter{}
	var buf bytes.Buffer

	report := &lint.Report{
		Stats: map[string]any{
			"rule-count": 7,
			"floats":     2,
		},
	}

	err := f.Format(&buf, "site.css", report)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(buf.Bytes(), &raw); err != nil {
		t.Fatalf("failed to unmarshal JSON: %v", err)
	}
	stats, ok := raw["stats"].(map[string]any)
	if !ok {
		t.Fatalf("expected stats object, got %v", raw["stats"])
	}
	if stats["rule-count"] != float64(7) {
		t.Errorf("rule-count: got %v, want 7", stats["rule-count"])
	}
}

func TestJSONFormatter_ImplementsFormatter(t *testing.T) {
	var _ Formatter = &JSONFormatter{}
}
