package shorthand

import (
	"fmt"
	"strings"

	"github.com/tidycss/tidycss/internal/cssparse"
	"github.com/tidycss/tidycss/internal/lint"
	"github.com/tidycss/tidycss/internal/rule"
)

func init() {
	rule.Register(&Rule{})
}

// Rule suggests the margin/padding shorthand when all four longhand
// sides appear in one block.
type Rule struct{}

// Meta implements rule.Rule.
func (r *Rule) Meta() lint.RuleMeta {
	return lint.RuleMeta{
		ID:          "shorthand",
		Name:        "Require shorthand properties",
		Description: "Use shorthand properties where possible.",
		URL:         "https://github.com/CSSLint/csslint/wiki/Require-shorthand-properties",
		Browsers:    "All",
	}
}

// shorthands maps each shorthand to its longhand sides.
var shorthands = map[string][]string{
	"margin": {
		"margin-top", "margin-bottom", "margin-left", "margin-right",
	},
	"padding": {
		"padding-top", "padding-bottom", "padding-left", "padding-right",
	},
}

// Init implements rule.Rule.
func (r *Rule) Init(events *cssparse.Handle, rep *lint.Reporter) {
	meta := r.Meta()

	var seen map[string]bool

	events.OnStartRule(func(cssparse.StartRuleEvent) {
		seen = make(map[string]bool)
	})

	events.OnProperty(func(ev cssparse.PropertyEvent) {
		if seen != nil {
			seen[strings.ToLower(ev.Property.Name)] = true
		}
	})

	events.OnEndRule(func(ev cssparse.EndRuleEvent) {
		if seen == nil {
			return
		}
		for _, prop := range []string{"margin", "padding"} {
			sides := shorthands[prop]
			total := 0
			for _, side := range sides {
				if seen[side] {
					total++
				}
			}
			if total == len(sides) {
				rep.Report(fmt.Sprintf("The properties %s can be replaced by %s.", strings.Join(sides, ", "), prop),
					ev.Pos.Line, ev.Pos.Col, meta)
			}
		}
		seen = nil
	})
}
