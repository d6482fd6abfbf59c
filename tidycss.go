// Package tidycss wraps the linting engine for embedding: it exposes
// the built-in rule set and one-shot verification of CSS text.
package tidycss

import (
	"fmt"
	"strings"

	"github.com/tidycss/tidycss/internal/engine"
	"github.com/tidycss/tidycss/internal/lint"
	"github.com/tidycss/tidycss/internal/rule"
	_ "github.com/tidycss/tidycss/internal/rules/all"
)

// RuleInfo describes one built-in rule.
type RuleInfo struct {
	ID          string
	Name        string
	Description string
	URL         string
	Browsers    string
	Tags        []string
}

func infoOf(meta lint.RuleMeta) RuleInfo {
	return RuleInfo{
		ID:          meta.ID,
		Name:        meta.Name,
		Description: meta.Description,
		URL:         meta.URL,
		Browsers:    meta.Browsers,
		Tags:        meta.Tags,
	}
}

// ListRules returns every built-in rule sorted by ID.
func ListRules() []RuleInfo {
	var rules []RuleInfo
	for _, r := range rule.All() {
		rules = append(rules, infoOf(r.Meta()))
	}
	return rules
}

// LookupRule finds a rule by ID (e.g. "empty-rules") or name. ID
// matching is case-insensitive.
func LookupRule(query string) (RuleInfo, error) {
	q := strings.ToLower(query)
	for _, r := range rule.All() {
		meta := r.Meta()
		if strings.ToLower(meta.ID) == q || meta.Name == query {
			return infoOf(meta), nil
		}
	}
	return RuleInfo{}, fmt.Errorf("unknown rule %q", query)
}

// Verify lints text with every enabled built-in rule. A nil ruleset
// enables all rules at warning severity.
func Verify(text string, ruleset lint.Ruleset) *lint.Report {
	return engine.Verify(rule.Default(), text, ruleset)
}
