package overqualifiedelements

import (
	"fmt"

	"github.com/tidycss/tidycss/internal/cssparse"
	"github.com/tidycss/tidycss/internal/lint"
	"github.com/tidycss/tidycss/internal/rule"
)

func init() {
	rule.Register(&Rule{})
}

// Rule flags element-qualified IDs immediately, and element-qualified
// classes once the whole sheet shows the class is used only that way.
type Rule struct{}

// Meta implements rule.Rule.
func (r *Rule) Meta() lint.RuleMeta {
	return lint.RuleMeta{
		ID:          "overqualified-elements",
		Name:        "Disallow overqualified elements",
		Description: "Don't use classes or IDs with elements (a.foo or a#foo).",
		URL:         "https://github.com/CSSLint/csslint/wiki/Disallow-overqualified-elements",
		Browsers:    "All",
	}
}

// Init implements rule.Rule.
func (r *Rule) Init(events *cssparse.Handle, rep *lint.Reporter) {
	meta := r.Meta()

	type usage struct {
		part cssparse.SelectorPart
		mod  cssparse.Modifier
	}
	// class text -> every qualified use, in document order
	classes := make(map[string][]usage)
	var order []string

	events.OnStartRule(func(ev cssparse.StartRuleEvent) {
		for _, sel := range ev.Selectors {
			for _, part := range sel.Parts {
				if part.Element == "" || part.Element == "*" {
					continue
				}
				for _, mod := range part.Modifiers {
					switch mod.Type {
					case cssparse.ModID:
						rep.Report(fmt.Sprintf("Element (%s) is overqualified, just use %s without element name.",
							part.Text, mod.Text), part.Pos.Line, part.Pos.Col, meta)
					case cssparse.ModClass:
						if _, ok := classes[mod.Text]; !ok {
							order = append(order, mod.Text)
						}
						classes[mod.Text] = append(classes[mod.Text], usage{part: part, mod: mod})
					}
				}
			}
		}
	})

	// An element-qualified class is only a problem when the class is
	// never used on its own or on another element.
	events.OnEndStylesheet(func(cssparse.EndStylesheetEvent) {
		for _, text := range order {
			uses := classes[text]
			if len(uses) != 1 {
				continue
			}
			u := uses[0]
			rep.Report(fmt.Sprintf("Element (%s) is overqualified, just use %s without element name.",
				u.part.Text, u.mod.Text), u.part.Pos.Line, u.part.Pos.Col, meta)
		}
	})
}
