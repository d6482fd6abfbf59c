package zerounits

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

func TestZeroWithUnitFlagged(t *testing.T) {
	msgs := check(t, ".a { margin: 0px; }")
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %v", msgs)
	}
	if msgs[0].Message != "Values of 0 shouldn't have units specified." {
		t.Errorf("message = %q", msgs[0].Message)
	}
}

func TestZeroPercentFlagged(t *testing.T) {
	if msgs := check(t, ".a { width: 0%; }"); len(msgs) != 1 {
		t.Fatalf("0%% should be flagged, got %v", msgs)
	}
}

func TestBareZeroAllowed(t *testing.T) {
	if msgs := check(t, ".a { margin: 0; }"); len(msgs) != 0 {
		t.Errorf("unitless zero should pass: %v", msgs)
	}
}

func TestNonZeroAllowed(t *testing.T) {
	if msgs := check(t, ".a { margin: 10px; }"); len(msgs) != 0 {
		t.Errorf("non-zero values should pass: %v", msgs)
	}
}

func TestZeroTimeUnitsExempt(t *testing.T) {
	css := ".a { transition-delay: 0s; animation-delay: 0ms; }"
	if msgs := check(t, css); len(msgs) != 0 {
		t.Errorf("0s and 0ms are meaningful in animations: %v", msgs)
	}
}

func TestEachZeroInShorthandFlagged(t *testing.T) {
	msgs := check(t, ".a { margin: 0px 0em 1px 0; }")
	if len(msgs) != 2 {
		t.Errorf("expected 2 messages (0px and 0em), got %v", msgs)
	}
}
