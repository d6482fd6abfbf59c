package textindent

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

func TestLargeNegativeIndentFlagged(t *testing.T) {
	msgs := check(t, ".a { text-indent: -9999px; }")
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %v", msgs)
	}
	if msgs[0].Message != "Negative text-indent doesn't work well with RTL. If you use text-indent for image replacement explicitly set direction for that item to ltr." {
		t.Errorf("message = %q", msgs[0].Message)
	}
}

func TestDirectionLTRSuppresses(t *testing.T) {
	css := ".a { text-indent: -9999px; direction: ltr; }"
	if msgs := check(t, css); len(msgs) != 0 {
		t.Errorf("direction: ltr should suppress the warning: %v", msgs)
	}
}

func TestSmallNegativeIndentAllowed(t *testing.T) {
	if msgs := check(t, ".a { text-indent: -2em; }"); len(msgs) != 0 {
		t.Errorf("small negative indents should pass: %v", msgs)
	}
}

func TestPositiveIndentAllowed(t *testing.T) {
	if msgs := check(t, ".a { text-indent: 120px; }"); len(msgs) != 0 {
		t.Errorf("positive indents should pass: %v", msgs)
	}
}
