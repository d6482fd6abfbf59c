package tidycss

import (
	"strings"
	"testing"
)

func TestListRules_SortedByID(t *testing.T) {
	rules := ListRules()

	if len(rules) == 0 {
		t.Fatal("expected at least one rule")
	}

	for i := 1; i < len(rules); i++ {
		if rules[i].ID < rules[i-1].ID {
			t.Errorf("rules not sorted: %s comes after %s", rules[i].ID, rules[i-1].ID)
		}
	}
}

func TestListRules_ContainsEmptyRules(t *testing.T) {
	rules := ListRules()

	found := false
	for _, r := range rules {
		if r.ID == "empty-rules" {
			found = true
			if r.Name != "Disallow empty rules" {
				t.Errorf("empty-rules name = %q, want %q", r.Name, "Disallow empty rules")
			}
			if r.Description == "" {
				t.Error("empty-rules description is empty")
			}
			break
		}
	}
	if !found {
		t.Error("empty-rules not found in rule list")
	}
}

func TestLookupRule_ByID(t *testing.T) {
	info, err := LookupRule("empty-rules")
	if err != nil {
		t.Fatalf("LookupRule(empty-rules): %v", err)
	}

	if info.Name != "Disallow empty rules" {
		t.Errorf("name = %q, want %q", info.Name, "Disallow empty rules")
	}
}

func TestLookupRule_ByName(t *testing.T) {
	info, err := LookupRule("Disallow empty rules")
	if err != nil {
		t.Fatalf("LookupRule(Disallow empty rules): %v", err)
	}

	if info.ID != "empty-rules" {
		t.Errorf("ID = %q, want empty-rules", info.ID)
	}
}

func TestLookupRule_CaseInsensitiveID(t *testing.T) {
	info, err := LookupRule("EMPTY-RULES")
	if err != nil {
		t.Fatalf("LookupRule(EMPTY-RULES): %v", err)
	}

	if info.ID != "empty-rules" {
		t.Errorf("ID = %q, want empty-rules", info.ID)
	}
}

func TestLookupRule_Unknown(t *testing.T) {
	_, err := LookupRule("no-such-rule")
	if err == nil {
		t.Fatal("expected error for unknown rule")
	}
	if !strings.Contains(err.Error(), "unknown rule") {
		t.Errorf("error = %q, want it to contain 'unknown rule'", err.Error())
	}
}

func TestVerify_EmptyRule(t *testing.T) {
	report := Verify(".foo { }", nil)

	found := false
	for _, m := range report.Messages {
		if m.Rule.ID == "empty-rules" {
			found = true
		}
	}
	if !found {
		t.Error("expected an empty-rules finding")
	}
}

func TestVerify_CleanSheet(t *testing.T) {
	report := Verify(".foo { color: red; }", nil)

	for _, m := range report.Messages {
		if m.Type == "error" {
			t.Errorf("unexpected error: %s", m.Message)
		}
	}
}
