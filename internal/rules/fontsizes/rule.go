package fontsizes

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

// threshold is the font-size count suggesting missing abstraction.
const threshold = 10

// Rule counts font-size declarations and rolls up past the threshold.
type Rule struct{}

// Meta implements rule.Rule.
func (r *Rule) Meta() lint.RuleMeta {
	return lint.RuleMeta{
		ID:          "font-sizes",
		Name:        "Disallow too many font sizes",
		Description: "Checks the number of font-size declarations.",
		URL:         "https://github.com/CSSLint/csslint/wiki/Don%27t-use-too-many-font-size-declarations",
		Browsers:    "All",
	}
}

// Init implements rule.Rule.
func (r *Rule) Init(events *cssparse.Handle, rep *lint.Reporter) {
	meta := r.Meta()
	count := 0

	events.OnProperty(func(ev cssparse.PropertyEvent) {
		if strings.EqualFold(ev.Property.Name, "font-size") {
			count++
		}
	})

	events.OnEndStylesheet(func(cssparse.EndStylesheetEvent) {
		rep.Stat("font-sizes", count)
		if count >= threshold {
			rep.RollupWarn(fmt.Sprintf("Too many font-size declarations (%d), abstraction needed.", count), meta)
		}
	})
}
