package overqualifiedelements

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

func TestElementWithID(t *testing.T) {
	msgs := check(t, "div#header { color: red; }")
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %v", msgs)
	}
	want := "Element (div#header) is overqualified, just use #header without element name."
	if msgs[0].Message != want {
		t.Errorf("message = %q, want %q", msgs[0].Message, want)
	}
}

func TestElementWithUniqueClass(t *testing.T) {
	msgs := check(t, "li.active { color: red; }")
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %v", msgs)
	}
	want := "Element (li.active) is overqualified, just use .active without element name."
	if msgs[0].Message != want {
		t.Errorf("message = %q, want %q", msgs[0].Message, want)
	}
}

func TestClassOnMultipleElementsAllowed(t *testing.T) {
	// The same class qualified on two different elements means the
	// qualification is meaningful.
	css := "li.active { color: red; }\na.active { color: blue; }"
	if msgs := check(t, css); len(msgs) != 0 {
		t.Errorf("class used on several elements should pass: %v", msgs)
	}
}

func TestBareClassAllowed(t *testing.T) {
	if msgs := check(t, ".active { color: red; }"); len(msgs) != 0 {
		t.Errorf("bare class should pass: %v", msgs)
	}
}
