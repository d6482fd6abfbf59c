package errors

import (
	"github.com/tidycss/tidycss/internal/cssparse"
	"github.com/tidycss/tidycss/internal/lint"
	"github.com/tidycss/tidycss/internal/rule"
)

func init() {
	rule.Register(&Rule{})
}

// Rule surfaces parser errors as findings. Its severity is forced to
// error for every run; allow and ignore directives never apply.
type Rule struct{}

// Meta implements rule.Rule.
func (r *Rule) Meta() lint.RuleMeta {
	return lint.RuleMeta{
		ID:          "errors",
		Name:        "Parsing Errors",
		Description: "This rule looks for recoverable syntax errors.",
		Browsers:    "All",
	}
}

// Init implements rule.Rule.
func (r *Rule) Init(events *cssparse.Handle, rep *lint.Reporter) {
	meta := r.Meta()
	events.OnError(func(ev cssparse.ErrorEvent) {
		rep.Error(ev.Message, ev.Pos.Line, ev.Pos.Col, meta)
	})
}
