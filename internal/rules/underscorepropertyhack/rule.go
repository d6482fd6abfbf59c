package underscorepropertyhack

import (
	"strings"

	"github.com/tidycss/tidycss/internal/cssparse"
	"github.com/tidycss/tidycss/internal/lint"
	"github.com/tidycss/tidycss/internal/rule"
)

func init() {
	rule.Register(&Rule{})
}

// Rule flags the underscore hack (_property), an IE6 filter.
type Rule struct{}

// Meta implements rule.Rule.
func (r *Rule) Meta() lint.RuleMeta {
	return lint.RuleMeta{
		ID:          "underscore-property-hack",
		Name:        "Disallow properties with an underscore prefix",
		Description: "Checks for the underscore property hack (targets IE6)",
		URL:         "https://github.com/CSSLint/csslint/wiki/Disallow-underscore-hack",
		Browsers:    "All",
	}
}

// Init implements rule.Rule.
func (r *Rule) Init(events *cssparse.Handle, rep *lint.Reporter) {
	meta := r.Meta()

	events.OnProperty(func(ev cssparse.PropertyEvent) {
		if strings.HasPrefix(ev.Property.Name, "_") {
			rep.Report("Property with underscore prefix found.", ev.Pos.Line, ev.Pos.Col, meta)
		}
	})
}
