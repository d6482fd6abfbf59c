package ids

import (
	"fmt"

	"github.com/tidycss/tidycss/internal/cssparse"
	"github.com/tidycss/tidycss/internal/lint"
	"github.com/tidycss/tidycss/internal/rule"
)

func init() {
	rule.Register(&Rule{})
}

// Rule flags ID selectors, which are too specific to reuse.
type Rule struct{}

// Meta implements rule.Rule.
func (r *Rule) Meta() lint.RuleMeta {
	return lint.RuleMeta{
		ID:          "ids",
		Name:        "Disallow IDs in selectors",
		Description: "Selectors should not contain IDs.",
		URL:         "https://github.com/CSSLint/csslint/wiki/Disallow-IDs-in-selectors",
		Browsers:    "All",
	}
}

// Init implements rule.Rule.
func (r *Rule) Init(events *cssparse.Handle, rep *lint.Reporter) {
	meta := r.Meta()

	events.OnStartRule(func(ev cssparse.StartRuleEvent) {
		for _, sel := range ev.Selectors {
			count := 0
			for _, part := range sel.Parts {
				for _, mod := range part.Modifiers {
					if mod.Type == cssparse.ModID {
						count++
					}
				}
			}
			switch {
			case count == 1:
				rep.Report("Don't use IDs in selectors.", sel.Pos.Line, sel.Pos.Col, meta)
			case count > 1:
				rep.Report(fmt.Sprintf("%d IDs in the selector, really?", count), sel.Pos.Line, sel.Pos.Col, meta)
			}
		}
	})
}
