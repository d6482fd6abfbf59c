package universalselector

import (
	"github.com/tidycss/tidycss/internal/cssparse"
	"github.com/tidycss/tidycss/internal/lint"
	"github.com/tidycss/tidycss/internal/rule"
)

func init() {
	rule.Register(&Rule{})
}

// Rule flags the universal selector in key position, where browsers
// match it against every element.
type Rule struct{}

// Meta implements rule.Rule.
func (r *Rule) Meta() lint.RuleMeta {
	return lint.RuleMeta{
		ID:          "universal-selector",
		Name:        "Disallow universal selector",
		Description: "The universal selector (*) is known to be slow.",
		URL:         "https://github.com/CSSLint/csslint/wiki/Disallow-universal-selector",
		Browsers:    "All",
	}
}

// Init implements rule.Rule.
func (r *Rule) Init(events *cssparse.Handle, rep *lint.Reporter) {
	meta := r.Meta()

	events.OnStartRule(func(ev cssparse.StartRuleEvent) {
		for _, sel := range ev.Selectors {
			if len(sel.Parts) == 0 {
				continue
			}
			last := sel.Parts[len(sel.Parts)-1]
			if last.Element == "*" {
				rep.Report("The universal selector (*) is known to be slow.",
					sel.Pos.Line, sel.Pos.Col, meta)
			}
		}
	})
}
