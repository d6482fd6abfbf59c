package qualifiedheadings

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

func TestQualifiedHeadingFlagged(t *testing.T) {
	msgs := check(t, ".box h3 { color: red; }")
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %v", msgs)
	}
	if msgs[0].Message != "Heading (h3) should not be qualified." {
		t.Errorf("message = %q", msgs[0].Message)
	}
}

func TestTopLevelHeadingAllowed(t *testing.T) {
	if msgs := check(t, "h3 { color: red; }"); len(msgs) != 0 {
		t.Errorf("unqualified heading should pass: %v", msgs)
	}
}

func TestNonHeadingDescendantAllowed(t *testing.T) {
	if msgs := check(t, ".box p { color: red; }"); len(msgs) != 0 {
		t.Errorf("non-heading descendants should pass: %v", msgs)
	}
}
