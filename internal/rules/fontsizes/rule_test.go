package fontsizes

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

func TestFontSizeStat(t *testing.T) {
	report := check(t, ".a { font-size: 12px; }\n.b { font-size: 14px; }")
	if got := report.Stats["font-sizes"]; got != 2 {
		t.Errorf("font-sizes stat = %v, want 2", got)
	}
	if len(report.Messages) != 0 {
		t.Errorf("no rollup expected below the threshold: %v", report.Messages)
	}
}

func TestTooManyFontSizesRollsUp(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 10; i++ {
		b.WriteString(".a { font-size: 12px; }\n")
	}

	report := check(t, b.String())
	if len(report.Messages) != 1 || !report.Messages[0].Rollup {
		t.Fatalf("expected 1 rollup, got %v", report.Messages)
	}
	if !strings.Contains(report.Messages[0].Message, "Too many font-size declarations (10)") {
		t.Errorf("message = %q", report.Messages[0].Message)
	}
}
