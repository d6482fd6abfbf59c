package importrule

import (
	"github.com/tidycss/tidycss/internal/cssparse"
	"github.com/tidycss/tidycss/internal/lint"
	"github.com/tidycss/tidycss/internal/rule"
)

func init() {
	rule.Register(&Rule{})
}

// Rule flags @import, which serializes stylesheet downloads.
type Rule struct{}

// Meta implements rule.Rule.
func (r *Rule) Meta() lint.RuleMeta {
	return lint.RuleMeta{
		ID:          "import",
		Name:        "Disallow @import",
		Description: "Don't use @import, use <link> instead.",
		URL:         "https://github.com/CSSLint/csslint/wiki/Disallow-%40import",
		Browsers:    "All",
	}
}

// Init implements rule.Rule.
func (r *Rule) Init(events *cssparse.Handle, rep *lint.Reporter) {
	meta := r.Meta()
	events.OnImport(func(ev cssparse.ImportEvent) {
		rep.Report("@import prevents parallel downloads, use <link> instead.", ev.Pos.Line, ev.Pos.Col, meta)
	})
}
