package floats

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

// threshold is the float count at which the stylesheet is probably
// using floats for layout.
const threshold = 10

// Rule counts float declarations and rolls up when they pile up.
type Rule struct{}

// Meta implements rule.Rule.
func (r *Rule) Meta() lint.RuleMeta {
	return lint.RuleMeta{
		ID:          "floats",
		Name:        "Disallow too many floats",
		Description: "This rule tests if the float property is used too many times",
		URL:         "https://github.com/CSSLint/csslint/wiki/Disallow-too-many-floats",
		Browsers:    "All",
	}
}

// Init implements rule.Rule.
func (r *Rule) Init(events *cssparse.Handle, rep *lint.Reporter) {
	meta := r.Meta()
	count := 0

	events.OnProperty(func(ev cssparse.PropertyEvent) {
		if strings.EqualFold(ev.Property.Name, "float") &&
			!strings.EqualFold(ev.Value.Text, "none") {
			count++
		}
	})

	events.OnEndStylesheet(func(cssparse.EndStylesheetEvent) {
		rep.Stat("floats", count)
		if count >= threshold {
			rep.RollupWarn(fmt.Sprintf("Too many floats (%d), you're probably using them for layout. Consider using a grid system instead.", count), meta)
		}
	})
}
