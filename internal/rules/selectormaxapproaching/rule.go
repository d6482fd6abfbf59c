package selectormaxapproaching

import (
	"fmt"

	"github.com/tidycss/tidycss/internal/cssparse"
	"github.com/tidycss/tidycss/internal/lint"
	"github.com/tidycss/tidycss/internal/rule"
)

func init() {
	rule.Register(&Rule{})
}

// warnAt leaves headroom before the hard 4095-selector IE limit.
const warnAt = 3800

// Rule rolls up when the selector count nears the old IE limit.
type Rule struct{}

// Meta implements rule.Rule.
func (r *Rule) Meta() lint.RuleMeta {
	return lint.RuleMeta{
		ID:          "selector-max-approaching",
		Name:        "Warn when approaching the 4095 selector limit for IE",
		Description: "Will warn when selector count is >= 3800 selectors.",
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
		if count >= warnAt {
			rep.RollupWarn(fmt.Sprintf("You have %d selectors. Internet Explorer supports a maximum of 4095 selectors per stylesheet. Consider refactoring.", count), meta)
		}
	})
}
