package fallbackcolors

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

// Rule requires a plain hex/RGB fallback declaration before any
// rgba/hsl/hsla color, which IE8 and earlier can't parse.
type Rule struct{}

// Meta implements rule.Rule.
func (r *Rule) Meta() lint.RuleMeta {
	return lint.RuleMeta{
		ID:          "fallback-colors",
		Name:        "Require fallback colors",
		Description: "For older browsers that don't support RGBA, HSL, or HSLA, provide a fallback color.",
		URL:         "https://github.com/CSSLint/csslint/wiki/Require-fallback-colors",
		Browsers:    "IE6,IE7,IE8",
	}
}

// checked are the color-carrying properties the rule watches.
var checked = map[string]bool{
	"color": true, "background": true, "background-color": true,
	"border": true, "border-color": true,
	"border-top-color": true, "border-right-color": true,
	"border-bottom-color": true, "border-left-color": true,
}

// newerFns are functional notations old IE can't parse.
var newerFns = map[string]bool{
	"rgba": true, "hsl": true, "hsla": true,
}

// Init implements rule.Rule.
func (r *Rule) Init(events *cssparse.Handle, rep *lint.Reporter) {
	meta := r.Meta()

	// name of the last checked property that declared a compatible color
	var lastCompat string

	events.OnStartRule(func(cssparse.StartRuleEvent) { lastCompat = "" })
	events.OnStartFontFace(func(cssparse.StartFontFaceEvent) { lastCompat = "" })
	events.OnStartPage(func(cssparse.StartPageEvent) { lastCompat = "" })
	events.OnStartKeyframeRule(func(cssparse.StartKeyframeRuleEvent) { lastCompat = "" })

	events.OnProperty(func(ev cssparse.PropertyEvent) {
		name := strings.ToLower(ev.Property.Name)
		if !checked[name] {
			return
		}

		compat := false
		newer := ""
		for _, part := range ev.Value.Parts {
			if part.Kind != cssparse.ValColor {
				continue
			}
			if newerFns[part.Fn] {
				newer = part.Fn
			} else {
				compat = true
			}
		}

		if newer != "" && lastCompat != name {
			rep.Report(fmt.Sprintf("Fallback %s (hex or RGB) should precede %s color.", name, newer),
				ev.Pos.Line, ev.Pos.Col, meta)
		}

		if compat {
			lastCompat = name
		} else {
			lastCompat = ""
		}
	})
}
