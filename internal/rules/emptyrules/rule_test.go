package emptyrules

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

func TestEmptyRuleFlagged(t *testing.T) {
	msgs := check(t, ".a { }")
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %v", msgs)
	}
	if msgs[0].Message != "Rule is empty." {
		t.Errorf("message = %q", msgs[0].Message)
	}
	if msgs[0].Line != 1 || msgs[0].Col != 1 {
		t.Errorf("report at %d:%d, want 1:1", msgs[0].Line, msgs[0].Col)
	}
}

func TestNonEmptyRuleAllowed(t *testing.T) {
	if msgs := check(t, ".a { color: red; }"); len(msgs) != 0 {
		t.Errorf("non-empty rule should pass: %v", msgs)
	}
}

func TestMixedRules(t *testing.T) {
	msgs := check(t, ".a { color: red; }\n.b { }\n.c { margin: 0; }")
	if len(msgs) != 1 || msgs[0].Line != 2 {
		t.Fatalf("expected only the empty rule on line 2, got %v", msgs)
	}
}
