package regexselectors

import (
	"fmt"
	"regexp"

	"github.com/tidycss/tidycss/internal/cssparse"
	"github.com/tidycss/tidycss/internal/lint"
	"github.com/tidycss/tidycss/internal/rule"
)

func init() {
	rule.Register(&Rule{})
}

// Rule flags substring-matching attribute selectors, which force the
// browser to scan attribute values.
type Rule struct{}

// Meta implements rule.Rule.
func (r *Rule) Meta() lint.RuleMeta {
	return lint.RuleMeta{
		ID:          "regex-selectors",
		Name:        "Disallow selectors that look like regexs",
		Description: "Selectors that look like regular expressions are slow and should be avoided.",
		URL:         "https://github.com/CSSLint/csslint/wiki/Disallow-selectors-that-look-like-regular-expressions",
		Browsers:    "All",
	}
}

var regexLike = regexp.MustCompile(`([~|^$*]=)`)

// Init implements rule.Rule.
func (r *Rule) Init(events *cssparse.Handle, rep *lint.Reporter) {
	meta := r.Meta()

	events.OnStartRule(func(ev cssparse.StartRuleEvent) {
		for _, sel := range ev.Selectors {
			for _, part := range sel.Parts {
				for _, mod := range part.Modifiers {
					if mod.Type != cssparse.ModAttribute {
						continue
					}
					if m := regexLike.FindStringSubmatch(mod.Text); m != nil {
						rep.Report(fmt.Sprintf("Attribute selectors with %s are slow!", m[1]),
							mod.Pos.Line, mod.Pos.Col, meta)
					}
				}
			}
		}
	})
}
