package adjoiningclasses

import (
	"github.com/tidycss/tidycss/internal/cssparse"
	"github.com/tidycss/tidycss/internal/lint"
	"github.com/tidycss/tidycss/internal/rule"
)

func init() {
	rule.Register(&Rule{})
}

// Rule flags selector parts that chain two or more classes, which IE6
// matches incorrectly.
type Rule struct{}

// Meta implements rule.Rule.
func (r *Rule) Meta() lint.RuleMeta {
	return lint.RuleMeta{
		ID:          "adjoining-classes",
		Name:        "Disallow adjoining classes",
		Description: "Don't use adjoining classes.",
		URL:         "https://github.com/CSSLint/csslint/wiki/Disallow-adjoining-classes",
		Browsers:    "IE6",
	}
}

// Init implements rule.Rule.
func (r *Rule) Init(events *cssparse.Handle, rep *lint.Reporter) {
	meta := r.Meta()
	events.OnStartRule(func(ev cssparse.StartRuleEvent) {
		for _, sel := range ev.Selectors {
			for _, part := range sel.Parts {
				if part.ClassCount() > 1 {
					rep.Report("Don't use adjoining classes.", part.Pos.Line, part.Pos.Col, meta)
				}
			}
		}
	})
}
