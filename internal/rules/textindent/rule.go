package textindent

import (
	"strings"

	"github.com/tidycss/tidycss/internal/cssparse"
	"github.com/tidycss/tidycss/internal/lint"
	"github.com/tidycss/tidycss/internal/rule"
)

func init() {
	rule.Register(&Rule{})
}

// Rule flags large negative text-indent (the image-replacement trick)
// in rules that don't also pin direction to ltr.
type Rule struct{}

// Meta implements rule.Rule.
func (r *Rule) Meta() lint.RuleMeta {
	return lint.RuleMeta{
		ID:          "text-indent",
		Name:        "Disallow negative text-indent",
		Description: "Checks for text indent less than -99px",
		URL:         "https://github.com/CSSLint/csslint/wiki/Disallow-negative-text-indent",
		Browsers:    "All",
	}
}

// Init implements rule.Rule.
func (r *Rule) Init(events *cssparse.Handle, rep *lint.Reporter) {
	meta := r.Meta()

	var (
		indent    cssparse.Position
		hasIndent bool
		ltr       bool
	)

	reset := func() {
		hasIndent = false
		ltr = false
	}
	reset()

	events.OnStartRule(func(cssparse.StartRuleEvent) { reset() })
	events.OnStartFontFace(func(cssparse.StartFontFaceEvent) { reset() })

	events.OnProperty(func(ev cssparse.PropertyEvent) {
		name := strings.ToLower(ev.Property.Name)
		switch {
		case name == "text-indent" && len(ev.Value.Parts) > 0 && ev.Value.Parts[0].Value < -99:
			hasIndent = true
			indent = ev.Pos
		case name == "direction" && strings.EqualFold(ev.Value.Text, "ltr"):
			ltr = true
		}
	})

	check := func() {
		if hasIndent && !ltr {
			rep.Report("Negative text-indent doesn't work well with RTL. If you use text-indent for image replacement explicitly set direction for that item to ltr.",
				indent.Line, indent.Col, meta)
		}
		reset()
	}

	events.OnEndRule(func(cssparse.EndRuleEvent) { check() })
	events.OnEndFontFace(func(cssparse.EndFontFaceEvent) { check() })
}
