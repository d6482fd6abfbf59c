package rule

import (
	"testing"

	"github.com/tidycss/tidycss/internal/cssparse"
	"github.com/tidycss/tidycss/internal/lint"
)

type stub struct {
	id   string
	name string
}

func (s stub) Meta() lint.RuleMeta {
	name := s.name
	if name == "" {
		name = s.id
	}
	return lint.RuleMeta{ID: s.id, Name: name, Description: s.id}
}

func (s stub) Init(events *cssparse.Handle, rep *lint.Reporter) {}

func TestList_SortedByID(t *testing.T) {
	reg := NewRegistry()
	reg.Register(stub{id: "zeta"})
	reg.Register(stub{id: "alpha"})
	reg.Register(stub{id: "mid"})

	rules := reg.List()
	if len(rules) != 3 {
		t.Fatalf("expected 3 rules, got %d", len(rules))
	}
	want := []string{"alpha", "mid", "zeta"}
	for i, r := range rules {
		if r.Meta().ID != want[i] {
			t.Errorf("rules[%d] = %s, want %s", i, r.Meta().ID, want[i])
		}
	}
}

func TestRegister_OverwritesByID(t *testing.T) {
	reg := NewRegistry()
	reg.Register(stub{id: "dup", name: "first"})
	reg.Register(stub{id: "dup", name: "second"})

	rules := reg.List()
	if len(rules) != 1 {
		t.Fatalf("expected 1 rule after duplicate registration, got %d", len(rules))
	}
	if got := reg.ByID("dup").Meta().Name; got != "second" {
		t.Errorf("lookup resolved to %q, want the most recently registered rule", got)
	}
}

func TestByID_Missing(t *testing.T) {
	reg := NewRegistry()
	if reg.ByID("nope") != nil {
		t.Error("expected nil for unknown id")
	}
}

func TestDefaultRuleset_FreshAndWarn(t *testing.T) {
	reg := NewRegistry()
	reg.Register(stub{id: "a"})
	reg.Register(stub{id: "b"})

	rs := reg.DefaultRuleset()
	if len(rs) != 2 || rs["a"] != lint.Warn || rs["b"] != lint.Warn {
		t.Fatalf("unexpected default ruleset: %v", rs)
	}

	// Mutating the result must not leak into later calls.
	rs["a"] = lint.Disabled
	if reg.DefaultRuleset()["a"] != lint.Warn {
		t.Error("DefaultRuleset should return a fresh map each call")
	}
}

func TestClear(t *testing.T) {
	reg := NewRegistry()
	reg.Register(stub{id: "a"})
	reg.Clear()
	if len(reg.List()) != 0 {
		t.Error("expected empty registry after Clear")
	}
}
