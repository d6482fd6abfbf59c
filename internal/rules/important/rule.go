package important

import (
	"fmt"

	"github.com/tidycss/tidycss/internal/cssparse"
	"github.com/tidycss/tidycss/internal/lint"
	"github.com/tidycss/tidycss/internal/rule"
)

func init() {
	rule.Register(&Rule{})
}

// threshold is the !important count that escalates to a rollup.
const threshold = 10

// Rule flags every !important and rolls up when they pile up.
type Rule struct{}

// Meta implements rule.Rule.
func (r *Rule) Meta() lint.RuleMeta {
	return lint.RuleMeta{
		ID:          "important",
		Name:        "Disallow !important",
		Description: "Be careful when using !important declaration",
		URL:         "https://github.com/CSSLint/csslint/wiki/Disallow-%21important",
		Browsers:    "All",
	}
}

// Init implements rule.Rule.
func (r *Rule) Init(events *cssparse.Handle, rep *lint.Reporter) {
	meta := r.Meta()
	count := 0

	events.OnProperty(func(ev cssparse.PropertyEvent) {
		if ev.Important {
			count++
			rep.Report("Use of !important", ev.Pos.Line, ev.Pos.Col, meta)
		}
	})

	events.OnEndStylesheet(func(cssparse.EndStylesheetEvent) {
		if count >= threshold {
			rep.RollupWarn(fmt.Sprintf("Too many !important declarations (%d), try to use less than 10 to avoid !important war.", count), meta)
		}
	})
}
