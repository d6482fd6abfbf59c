package rulescount

import (
	"github.com/tidycss/tidycss/internal/cssparse"
	"github.com/tidycss/tidycss/internal/lint"
	"github.com/tidycss/tidycss/internal/rule"
)

func init() {
	rule.Register(&Rule{})
}

// Rule publishes the style-rule count as a stat. It never reports.
type Rule struct{}

// Meta implements rule.Rule.
func (r *Rule) Meta() lint.RuleMeta {
	return lint.RuleMeta{
		ID:          "rules-count",
		Name:        "Rules Count",
		Description: "Track how many rules there are.",
		Browsers:    "All",
	}
}

// Init implements rule.Rule.
func (r *Rule) Init(events *cssparse.Handle, rep *lint.Reporter) {
	count := 0

	events.OnStartRule(func(cssparse.StartRuleEvent) {
		count++
	})

	events.OnEndStylesheet(func(cssparse.EndStylesheetEvent) {
		rep.Stat("rule-count", count)
	})
}
