package qualifiedheadings

import (
	"fmt"

	"github.com/tidycss/tidycss/internal/cssparse"
	"github.com/tidycss/tidycss/internal/lint"
	"github.com/tidycss/tidycss/internal/rule"
)

func init() {
	rule.Register(&Rule{})
}

// Rule flags headings that appear anywhere but first in a selector.
type Rule struct{}

// Meta implements rule.Rule.
func (r *Rule) Meta() lint.RuleMeta {
	return lint.RuleMeta{
		ID:          "qualified-headings",
		Name:        "Disallow qualified headings",
		Description: "Headings should not be qualified (namespaced).",
		URL:         "https://github.com/CSSLint/csslint/wiki/Disallow-qualified-headings",
		Browsers:    "All",
	}
}

var headings = map[string]bool{
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// Init implements rule.Rule.
func (r *Rule) Init(events *cssparse.Handle, rep *lint.Reporter) {
	meta := r.Meta()

	events.OnStartRule(func(ev cssparse.StartRuleEvent) {
		for _, sel := range ev.Selectors {
			for i, part := range sel.Parts {
				if i > 0 && headings[part.Element] {
					rep.Report(fmt.Sprintf("Heading (%s) should not be qualified.", part.Element),
						part.Pos.Line, part.Pos.Col, meta)
				}
			}
		}
	})
}
