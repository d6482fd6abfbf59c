package rulescount

import (
	"testing"

	"github.com/tidycss/tidycss/internal/engine"
	"github.com/tidycss/tidycss/internal/rule"
)

func TestRuleCountStat(t *testing.T) {
	reg := rule.NewRegistry()
	reg.Register(&Rule{})

	report := engine.Verify(reg, ".a { color: red; }\n.b { color: blue; }", nil)

	if got := report.Stats["rule-count"]; got != 2 {
		t.Errorf("rule-count = %v, want 2", got)
	}
	if len(report.Messages) != 0 {
		t.Errorf("rules-count never reports: %v", report.Messages)
	}
}

func TestEmptySheet(t *testing.T) {
	reg := rule.NewRegistry()
	reg.Register(&Rule{})

	report := engine.Verify(reg, "", nil)
	if got := report.Stats["rule-count"]; got != 0 {
		t.Errorf("rule-count = %v, want 0", got)
	}
}
