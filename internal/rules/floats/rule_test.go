package floats

import (
	"strings"
	"testing"

	"github.com/tidycss/tidycss/internal/engine"
	"github.com/tidycss/tidycss/internal/lint"
	"github.com/tidycss/tidycss/internal/rule"
)

func check(t *testing.T, css string) *lint.Report {
	t.Helper()
	reg := rule.NewRegistry()
	reg.Register(&Rule{})
	return engine.Verify(reg, css, nil)
}

func TestFloatCountStat(t *testing.T) {
	report := check(t, ".a { float: left; }\n.b { float: right; }\n.c { float: none; }")

	if got := report.Stats["floats"]; got != 2 {
		t.Errorf("floats stat = %v, want 2 (float: none excluded)", got)
	}
	if len(report.Messages) != 0 {
		t.Errorf("no rollup expected below the threshold: %v", report.Messages)
	}
}

func TestTooManyFloatsRollsUp(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 10; i++ {
		b.WriteString(".a { float: left; }\n")
	}

	report := check(t, b.String())
	if len(report.Messages) != 1 {
		t.Fatalf("expected 1 rollup, got %v", report.Messages)
	}
	m := report.Messages[0]
	if !m.Rollup {
		t.Error("expected a rollup message")
	}
	if !strings.Contains(m.Message, "Too many floats (10)") {
		t.Errorf("message = %q", m.Message)
	}
}
