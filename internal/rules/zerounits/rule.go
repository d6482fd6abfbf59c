package zerounits

import (
	"github.com/tidycss/tidycss/internal/cssparse"
	"github.com/tidycss/tidycss/internal/lint"
	"github.com/tidycss/tidycss/internal/rule"
)

func init() {
	rule.Register(&Rule{})
}

// Rule flags units on zero values. Time units are exempt since 0 and
// 0s aren't interchangeable in animations.
type Rule struct{}

// Meta implements rule.Rule.
func (r *Rule) Meta() lint.RuleMeta {
	return lint.RuleMeta{
		ID:          "zero-units",
		Name:        "Disallow units for 0 values",
		Description: "You don't need to specify units when a value is 0.",
		URL:         "https://github.com/CSSLint/csslint/wiki/Disallow-units-for-zero-values",
		Browsers:    "All",
	}
}

// Init implements rule.Rule.
func (r *Rule) Init(events *cssparse.Handle, rep *lint.Reporter) {
	meta := r.Meta()

	events.OnProperty(func(ev cssparse.PropertyEvent) {
		for _, part := range ev.Value.Parts {
			if part.Value != 0 {
				continue
			}
			if part.Units == "s" || part.Units == "ms" {
				continue
			}
			if part.Units != "" || part.Kind == cssparse.ValPercentage {
				rep.Report("Values of 0 shouldn't have units specified.",
					part.Pos.Line, part.Pos.Col, meta)
			}
		}
	})
}
