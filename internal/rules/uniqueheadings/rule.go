package uniqueheadings

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

// Rule flags headings styled more than once. Pseudo-qualified headings
// (h1:hover) don't count as redefinitions.
type Rule struct{}

// Meta implements rule.Rule.
func (r *Rule) Meta() lint.RuleMeta {
	return lint.RuleMeta{
		ID:          "unique-headings",
		Name:        "Headings should only be defined once",
		Description: "Headings should be defined only once.",
		URL:         "https://github.com/CSSLint/csslint/wiki/Headings-should-only-be-defined-once",
		Browsers:    "All",
	}
}

var order = []string{"h1", "h2", "h3", "h4", "h5", "h6"}

// Init implements rule.Rule.
func (r *Rule) Init(events *cssparse.Handle, rep *lint.Reporter) {
	meta := r.Meta()
	counts := make(map[string]int, len(order))

	events.OnStartRule(func(ev cssparse.StartRuleEvent) {
		for _, sel := range ev.Selectors {
			if len(sel.Parts) == 0 {
				continue
			}
			last := sel.Parts[len(sel.Parts)-1]
			name := strings.ToLower(last.Element)
			if !isHeading(name) {
				continue
			}
			if last.HasModifier(cssparse.ModPseudo) {
				continue
			}
			counts[name]++
			if counts[name] > 1 {
				rep.Report(fmt.Sprintf("Heading (%s) has already been defined.", last.Element),
					sel.Pos.Line, sel.Pos.Col, meta)
			}
		}
	})

	events.OnEndStylesheet(func(cssparse.EndStylesheetEvent) {
		var messages []string
		for _, h := range order {
			if counts[h] > 1 {
				messages = append(messages, fmt.Sprintf("%d %ss", counts[h], h))
			}
		}
		if len(messages) > 0 {
			rep.RollupWarn(fmt.Sprintf("You have %s defined in this stylesheet.", strings.Join(messages, ", ")), meta)
		}
	})
}

func isHeading(name string) bool {
	for _, h := range order {
		if name == h {
			return true
		}
	}
	return false
}
