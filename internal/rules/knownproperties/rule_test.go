package knownproperties

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

func TestUnknownPropertyFlagged(t *testing.T) {
	msgs := check(t, ".a { colr: red; }")
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %v", msgs)
	}
	if msgs[0].Message != "Unknown property 'colr'." {
		t.Errorf("message = %q", msgs[0].Message)
	}
}

func TestKnownPropertiesAllowed(t *testing.T) {
	css := ".a { color: red; margin: 0; display: block; text-indent: 1em; box-sizing: border-box; }"
	if msgs := check(t, css); len(msgs) != 0 {
		t.Errorf("known properties should pass: %v", msgs)
	}
}

func TestVendorPrefixedSkipped(t *testing.T) {
	if msgs := check(t, ".a { -webkit-anything-at-all: 1; }"); len(msgs) != 0 {
		t.Errorf("prefixed properties are not checked: %v", msgs)
	}
}

func TestCaseInsensitive(t *testing.T) {
	if msgs := check(t, ".a { COLOR: red; }"); len(msgs) != 0 {
		t.Errorf("property names are case-insensitive: %v", msgs)
	}
}
