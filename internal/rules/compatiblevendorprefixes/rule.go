package compatiblevendorprefixes

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

// Rule checks that experimental properties carry the full set of
// vendor-prefixed variants they were compatible with.
type Rule struct{}

// Meta implements rule.Rule.
func (r *Rule) Meta() lint.RuleMeta {
	return lint.RuleMeta{
		ID:          "compatible-vendor-prefixes",
		Name:        "Require compatible vendor prefixes",
		Description: "Include all compatible vendor prefixes to reach a wider range of users.",
		URL:         "https://github.com/CSSLint/csslint/wiki/Require-compatible-vendor-prefixes",
		Browsers:    "All",
	}
}

// prefixes maps a standard property to the vendor prefixes that offer
// an equivalent experimental property.
var prefixes = map[string]string{
	"animation":                 "webkit moz",
	"animation-delay":           "webkit moz",
	"animation-direction":       "webkit moz",
	"animation-duration":        "webkit moz",
	"animation-fill-mode":       "webkit moz",
	"animation-iteration-count": "webkit moz",
	"animation-name":            "webkit moz",
	"animation-play-state":      "webkit moz",
	"animation-timing-function": "webkit moz",
	"appearance":                "webkit moz",
	"border-end":                "webkit moz",
	"border-end-color":          "webkit moz",
	"border-end-style":          "webkit moz",
	"border-end-width":          "webkit moz",
	"border-image":              "webkit moz o",
	"border-radius":             "webkit",
	"border-start":              "webkit moz",
	"border-start-color":        "webkit moz",
	"border-start-style":        "webkit moz",
	"border-start-width":        "webkit moz",
	"box-align":                 "webkit moz ms",
	"box-direction":             "webkit moz ms",
	"box-flex":                  "webkit moz ms",
	"box-lines":                 "webkit ms",
	"box-ordinal-group":         "webkit moz ms",
	"box-orient":                "webkit moz ms",
	"box-pack":                  "webkit moz ms",
	"box-sizing":                "webkit moz",
	"box-shadow":                "webkit moz",
	"column-count":              "webkit moz ms",
	"column-gap":                "webkit moz ms",
	"column-rule":               "webkit moz ms",
	"column-rule-color":         "webkit moz ms",
	"column-rule-style":         "webkit moz ms",
	"column-rule-width":         "webkit moz ms",
	"column-width":              "webkit moz ms",
	"hyphens":                   "epub moz",
	"line-break":                "webkit ms",
	"margin-end":                "webkit moz",
	"margin-start":              "webkit moz",
	"marquee-speed":             "webkit wap",
	"marquee-style":             "webkit wap",
	"padding-end":               "webkit moz",
	"padding-start":             "webkit moz",
	"tab-size":                  "moz o",
	"text-size-adjust":          "webkit ms",
	"transform":                 "webkit moz ms o",
	"transform-origin":          "webkit moz ms o",
	"transition":                "webkit moz o",
	"transition-delay":          "webkit moz o",
	"transition-duration":       "webkit moz o",
	"transition-property":       "webkit moz o",
	"transition-timing-function": "webkit moz o",
	"user-modify":               "webkit moz",
	"user-select":               "webkit moz ms",
	"word-break":                "epub ms",
	"writing-mode":              "epub ms",
}

// variations returns the full compatibility group for a standard
// property: every prefixed form plus the standard form itself.
func variations(standard string) []string {
	group := []string{}
	for _, prefix := range strings.Fields(prefixes[standard]) {
		group = append(group, "-"+prefix+"-"+standard)
	}
	return append(group, standard)
}

// Init implements rule.Rule.
func (r *Rule) Init(events *cssparse.Handle, rep *lint.Reporter) {
	meta := r.Meta()

	type seenProp struct {
		name string
		pos  cssparse.Position
	}

	var inRule bool
	var seen []seenProp

	events.OnStartRule(func(cssparse.StartRuleEvent) {
		inRule = true
		seen = nil
	})

	events.OnProperty(func(ev cssparse.PropertyEvent) {
		if !inRule {
			return
		}
		seen = append(seen, seenProp{name: strings.ToLower(ev.Property.Name), pos: ev.Pos})
	})

	events.OnEndRule(func(cssparse.EndRuleEvent) {
		inRule = false

		used := make(map[string]cssparse.Position, len(seen))
		for _, p := range seen {
			if _, ok := used[p.name]; !ok {
				used[p.name] = p.pos
			}
		}

		// walk in declaration order so reports stay deterministic
		checked := make(map[string]bool)
		for _, p := range seen {
			standard := strings.TrimPrefix(p.name, vendorPrefixOf(p.name))
			if _, ok := prefixes[standard]; !ok || checked[standard] {
				continue
			}
			checked[standard] = true

			group := variations(standard)
			var present []string
			var missing []string
			var at cssparse.Position
			found := false
			for _, v := range group {
				if pos, ok := used[v]; ok {
					present = append(present, v)
					if !found {
						at = pos
						found = true
					}
				} else {
					missing = append(missing, v)
				}
			}
			if len(present) > 0 && len(missing) > 0 {
				for _, m := range missing {
					rep.Report(fmt.Sprintf("The property %s is compatible with %s and should be included as well.",
						m, strings.Join(present, ", ")), at.Line, at.Col, meta)
				}
			}
		}
	})
}

// vendorPrefixOf returns the leading vendor prefix of name ("" when
// name is unprefixed).
func vendorPrefixOf(name string) string {
	if !strings.HasPrefix(name, "-") {
		return ""
	}
	rest := name[1:]
	i := strings.Index(rest, "-")
	if i < 0 {
		return ""
	}
	return name[:i+2]
}
