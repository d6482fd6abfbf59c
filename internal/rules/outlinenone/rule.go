package outlinenone

import (
	"strings"

	"github.com/tidycss/tidycss/internal/cssparse"
	"github.com/tidycss/tidycss/internal/lint"
	"github.com/tidycss/tidycss/internal/rule"
)

func init() {
	rule.Register(&Rule{})
}

// Rule flags outline suppression: removing the focus outline without a
// replacement makes keyboard navigation invisible.
type Rule struct{}

// Meta implements rule.Rule.
func (r *Rule) Meta() lint.RuleMeta {
	return lint.RuleMeta{
		ID:          "outline-none",
		Name:        "Disallow outline: none",
		Description: "Use of outline: none or outline: 0 should be limited to :focus rules.",
		URL:         "https://github.com/CSSLint/csslint/wiki/Disallow-outline%3Anone",
		Browsers:    "All",
		Tags:        []string{"Accessibility"},
	}
}

// Init implements rule.Rule.
func (r *Rule) Init(events *cssparse.Handle, rep *lint.Reporter) {
	meta := r.Meta()

	type ruleInfo struct {
		focus   bool
		outline cssparse.Position
		hasOut  bool
		props   int
	}
	var cur *ruleInfo

	events.OnStartRule(func(ev cssparse.StartRuleEvent) {
		focus := false
		for _, sel := range ev.Selectors {
			if strings.Contains(strings.ToLower(sel.Text), ":focus") {
				focus = true
				break
			}
		}
		cur = &ruleInfo{focus: focus}
	})

	events.OnProperty(func(ev cssparse.PropertyEvent) {
		if cur == nil {
			return
		}
		cur.props++
		value := strings.ToLower(strings.TrimSpace(ev.Value.Text))
		if strings.EqualFold(ev.Property.Name, "outline") && (value == "none" || value == "0") {
			cur.hasOut = true
			cur.outline = ev.Pos
		}
	})

	events.OnEndRule(func(cssparse.EndRuleEvent) {
		if cur == nil {
			return
		}
		if cur.hasOut {
			if !cur.focus {
				rep.Report("Outlines should only be modified using :focus.", cur.outline.Line, cur.outline.Col, meta)
			} else if cur.props == 1 {
				rep.Report("Outlines shouldn't be hidden unless other visual changes are made.", cur.outline.Line, cur.outline.Col, meta)
			}
		}
		cur = nil
	})
}
