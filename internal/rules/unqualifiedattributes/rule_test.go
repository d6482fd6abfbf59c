package unqualifiedattributes

import (
	"testing"

	"github.com/tidycss/tidycss/internal/engine"
	"github.com/tidycss/tidycss/internal/lint"
	"github.com/tidycss/tidycss/internal/rule"
)

func check(t *testing.T, css string) []lint.Message {
	t.Helper()
	reg := rule.NewRegistry()
	reg.Register(&Rule{})
	return engine.Verify(reg, css, nil).Messages
}

func TestUnqualifiedAttributeFlagged(t *testing.T) {
	msgs := check(t, "[data-type] { color: red; }")
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %v", msgs)
	}
	if msgs[0].Message != "Unqualified attribute selectors are known to be slow!" {
		t.Errorf("message = %q", msgs[0].Message)
	}
}

func TestUniversalQualifiedFlagged(t *testing.T) {
	if msgs := check(t, "*[data-type] { color: red; }"); len(msgs) != 1 {
		t.Fatalf("* does not qualify an attribute selector, got %v", msgs)
	}
}

func TestElementQualifiedAllowed(t *testing.T) {
	if msgs := check(t, "input[type=text] { color: red; }"); len(msgs) != 0 {
		t.Errorf("element-qualified attributes should pass: %v", msgs)
	}
}

func TestNonKeyPositionAllowed(t *testing.T) {
	if msgs := check(t, "[data-type] span { color: red; }"); len(msgs) != 0 {
		t.Errorf("only the key position matters: %v", msgs)
	}
}
