package emptyrules

import (
	"github.com/tidycss/tidycss/internal/cssparse"
	"github.com/tidycss/tidycss/internal/lint"
	"github.com/tidycss/tidycss/internal/rule"
)

func init() {
	rule.Register(&Rule{})
}

// Rule flags style rules with no declarations.
type Rule struct{}

// Meta implements rule.Rule.
func (r *Rule) Meta() lint.RuleMeta {
	return lint.RuleMeta{
		ID:          "empty-rules",
		Name:        "Disallow empty rules",
		Description: "Rules without any properties specified should be removed.",
		URL:         "https://github.com/CSSLint/csslint/wiki/Disallow-empty-rules",
		Browsers:    "All",
	}
}

// Init implements rule.Rule.
func (r *Rule) Init(events *cssparse.Handle, rep *lint.Reporter) {
	meta := r.Meta()

	var (
		count int
		start cssparse.Position
	)

	events.OnStartRule(func(ev cssparse.StartRuleEvent) {
		count = 0
		start = ev.Pos
	})

	events.OnProperty(func(cssparse.PropertyEvent) {
		count++
	})

	events.OnEndRule(func(cssparse.EndRuleEvent) {
		if count == 0 {
			rep.Report("Rule is empty.", start.Line, start.Col, meta)
		}
	})
}
