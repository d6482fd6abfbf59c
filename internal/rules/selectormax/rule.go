package selectormax

import (
	"fmt"

	"github.com/tidycss/tidycss/internal/cssparse"
	"github.com/tidycss/tidycss/internal/lint"
	"github.com/tidycss/tidycss/internal/rule"
)

func init() {
	rule.Register(&Rule{})
}

// limit is the IE9-and-earlier per-stylesheet selector cap.
const limit = 4095

// Rule rolls up when the stylesheet exceeds the old IE selector limit.
type Rule struct{}

// Meta implements rule.Rule.
func (r *Rule) Meta() lint.RuleMeta {
	return lint.RuleMeta{
		ID:          "selector-max",
		Name:        "Error when past the 4095 selector limit for IE",
		Description: "Will error when selector count is > 4095.",
		Browsers:    "IE",
	}
}

// Init implements rule.Rule.
func (r *Rule) Init(events *cssparse.Handle, rep *lint.Reporter) {
	meta := r.Meta()
	count := 0

	events.OnStartRule(func(ev cssparse.StartRuleEvent) {
		count += len(ev.Selectors)
	})

	events.OnEndStylesheet(func(cssparse.EndStylesheetEvent) {
		if count > limit {
			rep.RollupWarn(fmt.Sprintf("%d selectors exceeds the limit of %d. Internet Explorer supports a maximum of %d selectors per stylesheet. Consider refactoring.",
				count, limit, limit), meta)
		}
	})
}
