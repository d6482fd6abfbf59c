package unqualifiedattributes

import (
	"github.com/tidycss/tidycss/internal/cssparse"
	"github.com/tidycss/tidycss/internal/lint"
	"github.com/tidycss/tidycss/internal/rule"
)

func init() {
	rule.Register(&Rule{})
}

// Rule flags attribute selectors in key position with no element to
// narrow the match.
type Rule struct{}

// Meta implements rule.Rule.
func (r *Rule) Meta() lint.RuleMeta {
	return lint.RuleMeta{
		ID:          "unqualified-attributes",
		Name:        "Disallow unqualified attribute selectors",
		Description: "Unqualified attribute selectors are known to be slow.",
		URL:         "https://github.com/CSSLint/csslint/wiki/Disallow-unqualified-attribute-selectors",
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
			if !last.HasModifier(cssparse.ModAttribute) {
				continue
			}
			if last.Element == "" || last.Element == "*" {
				rep.Report("Unqualified attribute selectors are known to be slow!",
					last.Pos.Line, last.Pos.Col, meta)
			}
		}
	})
}
