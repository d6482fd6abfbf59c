package starpropertyhack

import (
	"strings"

	"github.com/tidycss/tidycss/internal/cssparse"
	"github.com/tidycss/tidycss/internal/lint"
	"github.com/tidycss/tidycss/internal/rule"
)

func init() {
	rule.Register(&Rule{})
}

// Rule flags the star hack (*property), an IE7-and-earlier filter.
type Rule struct{}

// Meta implements rule.Rule.
func (r *Rule) Meta() lint.RuleMeta {
	return lint.RuleMeta{
		ID:          "star-property-hack",
		Name:        "Disallow properties with a star prefix",
		Description: "Checks for the star property hack (targets IE6/7)",
		URL:         "https://github.com/CSSLint/csslint/wiki/Disallow-star-hack",
		Browsers:    "All",
	}
}

// Init implements rule.Rule.
func (r *Rule) Init(events *cssparse.Handle, rep *lint.Reporter) {
	meta := r.Meta()

	events.OnProperty(func(ev cssparse.PropertyEvent) {
		if strings.HasPrefix(ev.Property.Name, "*") {
			rep.Report("Property with star prefix found.", ev.Pos.Line, ev.Pos.Col, meta)
		}
	})
}
