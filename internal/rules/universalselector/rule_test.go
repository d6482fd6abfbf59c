package universalselector

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

func TestUniversalInKeyPosition(t *testing.T) {
	msgs := check(t, ".box * { color: red; }")
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %v", msgs)
	}
	if msgs[0].Message != "The universal selector (*) is known to be slow." {
		t.Errorf("message = %q", msgs[0].Message)
	}
}

func TestBareUniversalFlagged(t *testing.T) {
	if msgs := check(t, "* { margin: 0; }"); len(msgs) != 1 {
		t.Fatalf("bare * should be flagged, got %v", msgs)
	}
}

func TestUniversalInNonKeyPositionAllowed(t *testing.T) {
	if msgs := check(t, "* .box { color: red; }"); len(msgs) != 0 {
		t.Errorf("only the key position matters: %v", msgs)
	}
}
