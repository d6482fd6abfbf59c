package boxsizing

import (
	"strings"

	"github.com/tidycss/tidycss/internal/cssparse"
	"github.com/tidycss/tidycss/internal/lint"
	"github.com/tidycss/tidycss/internal/rule"
)

func init() {
	rule.Register(&Rule{})
}

// Rule flags use of the box-sizing property, unsupported in old IE.
type Rule struct{}

// Meta implements rule.Rule.
func (r *Rule) Meta() lint.RuleMeta {
	return lint.RuleMeta{
		ID:          "box-sizing",
		Name:        "Disallow use of box-sizing",
		Description: "The box-sizing properties isn't supported in IE6 and IE7.",
		URL:         "https://github.com/CSSLint/csslint/wiki/Disallow-box-sizing",
		Browsers:    "IE6, IE7",
	}
}

// Init implements rule.Rule.
func (r *Rule) Init(events *cssparse.Handle, rep *lint.Reporter) {
	meta := r.Meta()
	events.OnProperty(func(ev cssparse.PropertyEvent) {
		if strings.ToLower(ev.Property.Name) == "box-sizing" {
			rep.Report("The box-sizing property isn't supported in IE6 and IE7.",
				ev.Pos.Line, ev.Pos.Col, meta)
		}
	})
}
