package displaypropertygrouping

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

func TestInlineWithHeight(t *testing.T) {
	msgs := check(t, ".a { display: inline; height: 100px; }")
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %v", msgs)
	}
	if msgs[0].Message != "height can't be used with display: inline." {
		t.Errorf("message = %q", msgs[0].Message)
	}
}

func TestInlineWithFloat(t *testing.T) {
	msgs := check(t, ".a { display: inline; float: left; }")
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %v", msgs)
	}
	if msgs[0].Message != "display:inline has no effect on floated elements (but may be used to fix the IE6 double-margin bug)." {
		t.Errorf("message = %q", msgs[0].Message)
	}
}

func TestBlockWithFloat(t *testing.T) {
	msgs := check(t, ".a { display: block; float: left; }")
	if len(msgs) != 1 || msgs[0].Message != "display:block should not use float." {
		t.Fatalf("expected the block/float message, got %v", msgs)
	}
}

func TestFloatNoneAllowed(t *testing.T) {
	if msgs := check(t, ".a { display: block; float: none; }"); len(msgs) != 0 {
		t.Errorf("float: none should never be flagged: %v", msgs)
	}
}

func TestTableCellWithMargin(t *testing.T) {
	msgs := check(t, ".a { display: table-cell; margin: 10px; }")
	if len(msgs) != 1 || msgs[0].Message != "margin can't be used with display: table-cell." {
		t.Fatalf("expected the table-cell/margin message, got %v", msgs)
	}
}

func TestInlineWithPaddingAllowed(t *testing.T) {
	// Horizontal padding works on inline elements.
	if msgs := check(t, ".a { display: inline; padding: 10px; }"); len(msgs) != 0 {
		t.Errorf("padding with display: inline should pass: %v", msgs)
	}
}

func TestRulesDoNotLeak(t *testing.T) {
	msgs := check(t, ".a { display: inline; }\n.b { height: 100px; }")
	if len(msgs) != 0 {
		t.Errorf("display in one rule should not affect the next: %v", msgs)
	}
}
