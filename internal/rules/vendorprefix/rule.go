package vendorprefix

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

// Rule checks that every vendor-prefixed property is paired with its
// standard form, and that the standard form comes last.
type Rule struct{}

// Meta implements rule.Rule.
func (r *Rule) Meta() lint.RuleMeta {
	return lint.RuleMeta{
		ID:          "vendor-prefix",
		Name:        "Require standard property with vendor prefix",
		Description: "When using a vendor-prefixed property, make sure to include the standard one.",
		URL:         "https://github.com/CSSLint/csslint/wiki/Require-standard-property-with-vendor-prefix",
		Browsers:    "All",
	}
}

// standardOf maps prefixed properties to their standard form.
var standardOf = map[string]string{
	"-webkit-border-radius":             "border-radius",
	"-webkit-border-top-left-radius":    "border-top-left-radius",
	"-webkit-border-top-right-radius":   "border-top-right-radius",
	"-webkit-border-bottom-left-radius": "border-bottom-left-radius",
	"-webkit-border-bottom-right-radius": "border-bottom-right-radius",

	"-o-border-radius":              "border-radius",
	"-o-border-top-left-radius":     "border-top-left-radius",
	"-o-border-top-right-radius":    "border-top-right-radius",
	"-o-border-bottom-left-radius":  "border-bottom-left-radius",
	"-o-border-bottom-right-radius": "border-bottom-right-radius",

	"-moz-border-radius":             "border-radius",
	"-moz-border-radius-topleft":     "border-top-left-radius",
	"-moz-border-radius-topright":    "border-top-right-radius",
	"-moz-border-radius-bottomleft":  "border-bottom-left-radius",
	"-moz-border-radius-bottomright": "border-bottom-right-radius",

	"-moz-column-count":    "column-count",
	"-webkit-column-count": "column-count",
	"-moz-column-gap":      "column-gap",
	"-webkit-column-gap":   "column-gap",
	"-moz-column-rule":     "column-rule",
	"-webkit-column-rule":  "column-rule",
	"-moz-column-rule-style":    "column-rule-style",
	"-webkit-column-rule-style": "column-rule-style",
	"-moz-column-rule-color":    "column-rule-color",
	"-webkit-column-rule-color": "column-rule-color",
	"-moz-column-rule-width":    "column-rule-width",
	"-webkit-column-rule-width": "column-rule-width",
	"-moz-column-width":         "column-width",
	"-webkit-column-width":      "column-width",

	"-webkit-column-span": "column-span",
	"-webkit-columns":     "columns",

	"-moz-box-shadow":    "box-shadow",
	"-webkit-box-shadow": "box-shadow",

	"-moz-transform":    "transform",
	"-webkit-transform": "transform",
	"-o-transform":      "transform",
	"-ms-transform":     "transform",

	"-moz-transform-origin":    "transform-origin",
	"-webkit-transform-origin": "transform-origin",
	"-o-transform-origin":      "transform-origin",
	"-ms-transform-origin":     "transform-origin",

	"-moz-box-sizing":    "box-sizing",
	"-webkit-box-sizing": "box-sizing",
}

// Init implements rule.Rule.
func (r *Rule) Init(events *cssparse.Handle, rep *lint.Reporter) {
	meta := r.Meta()

	type decl struct {
		name string
		pos  cssparse.Position
	}
	var (
		index map[string]int
		decls []decl
	)

	reset := func() {
		index = make(map[string]int)
		decls = nil
	}
	reset()

	events.OnStartRule(func(cssparse.StartRuleEvent) { reset() })
	events.OnStartFontFace(func(cssparse.StartFontFaceEvent) { reset() })
	events.OnStartPage(func(cssparse.StartPageEvent) { reset() })
	events.OnStartViewport(func(cssparse.StartViewportEvent) { reset() })
	events.OnStartKeyframeRule(func(cssparse.StartKeyframeRuleEvent) { reset() })

	events.OnProperty(func(ev cssparse.PropertyEvent) {
		name := strings.ToLower(ev.Property.Name)
		if _, ok := index[name]; !ok {
			index[name] = len(decls)
		}
		decls = append(decls, decl{name: name, pos: ev.Pos})
	})

	check := func() {
		for _, d := range decls {
			standard, ok := standardOf[d.name]
			if !ok {
				continue
			}
			if d.pos != decls[index[d.name]].pos {
				continue // report only at the first occurrence
			}
			stdIdx, present := index[standard]
			switch {
			case !present:
				rep.Report(fmt.Sprintf("Missing standard property '%s' to go along with '%s'.", standard, d.name),
					d.pos.Line, d.pos.Col, meta)
			case stdIdx < index[d.name]:
				rep.Report(fmt.Sprintf("Standard property '%s' should come after vendor-prefixed property '%s'.", standard, d.name),
					d.pos.Line, d.pos.Col, meta)
			}
		}
		reset()
	}

	events.OnEndRule(func(cssparse.EndRuleEvent) { check() })
	events.OnEndFontFace(func(cssparse.EndFontFaceEvent) { check() })
	events.OnEndPage(func(cssparse.EndPageEvent) { check() })
	events.OnEndViewport(func(cssparse.EndViewportEvent) { check() })
	events.OnEndKeyframeRule(func(cssparse.EndKeyframeRuleEvent) { check() })
}
