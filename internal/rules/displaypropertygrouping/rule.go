package displaypropertygrouping

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

// Rule flags properties that have no effect for the rule's display
// value, e.g. width with display: inline.
type Rule struct{}

// Meta implements rule.Rule.
func (r *Rule) Meta() lint.RuleMeta {
	return lint.RuleMeta{
		ID:          "display-property-grouping",
		Name:        "Require properties appropriate for display",
		Description: "Certain properties shouldn't be used with certain display property values.",
		URL:         "https://github.com/CSSLint/csslint/wiki/Require-properties-appropriate-for-display",
		Browsers:    "All",
	}
}

// tracked are the properties the rule cross-checks against display.
var tracked = map[string]bool{
	"display": true, "float": true, "height": true, "width": true,
	"margin": true, "margin-left": true, "margin-right": true,
	"margin-top": true, "margin-bottom": true,
	"padding": true, "padding-left": true, "padding-right": true,
	"padding-top": true, "padding-bottom": true,
}

// Init implements rule.Rule.
func (r *Rule) Init(events *cssparse.Handle, rep *lint.Reporter) {
	meta := r.Meta()

	type prop struct {
		value string
		pos   cssparse.Position
	}

	var props map[string]prop

	reset := func() {
		props = make(map[string]prop)
	}
	reset()

	events.OnStartRule(func(cssparse.StartRuleEvent) { reset() })
	events.OnStartFontFace(func(cssparse.StartFontFaceEvent) { reset() })
	events.OnStartPage(func(cssparse.StartPageEvent) { reset() })
	events.OnStartViewport(func(cssparse.StartViewportEvent) { reset() })
	events.OnStartKeyframeRule(func(cssparse.StartKeyframeRuleEvent) { reset() })

	events.OnProperty(func(ev cssparse.PropertyEvent) {
		name := strings.ToLower(ev.Property.Name)
		if !tracked[name] {
			return
		}
		props[name] = prop{value: strings.ToLower(ev.Value.Text), pos: ev.Pos}
	})

	reportIf := func(name, msg string) {
		if p, ok := props[name]; ok {
			if name == "float" && p.value == "none" {
				return
			}
			rep.Report(msg, p.pos.Line, p.pos.Col, meta)
		}
	}

	check := func() {
		display, ok := props["display"]
		if !ok {
			return
		}
		switch {
		case display.value == "inline":
			for _, name := range []string{"height", "width", "margin", "margin-top", "margin-bottom"} {
				reportIf(name, fmt.Sprintf("%s can't be used with display: %s.", name, display.value))
			}
			reportIf("float", "display:inline has no effect on floated elements (but may be used to fix the IE6 double-margin bug).")
		case display.value == "block":
			reportIf("float", "display:block should not use float.")
		case display.value == "inline-block":
			reportIf("float", "display:inline-block should not use float.")
		case strings.HasPrefix(display.value, "table-"):
			for _, name := range []string{
				"margin", "margin-left", "margin-right", "margin-top", "margin-bottom",
				"padding", "padding-left", "padding-right", "padding-top", "padding-bottom",
				"float",
			} {
				reportIf(name, fmt.Sprintf("%s can't be used with display: %s.", name, display.value))
			}
		}
	}

	events.OnEndRule(func(cssparse.EndRuleEvent) { check(); reset() })
	events.OnEndFontFace(func(cssparse.EndFontFaceEvent) { check(); reset() })
	events.OnEndPage(func(cssparse.EndPageEvent) { check(); reset() })
	events.OnEndViewport(func(cssparse.EndViewportEvent) { check(); reset() })
	events.OnEndKeyframeRule(func(cssparse.EndKeyframeRuleEvent) { check(); reset() })
}
