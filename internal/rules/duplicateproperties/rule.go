package duplicateproperties

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

// Rule flags duplicate declarations within one block. Consecutive
// duplicates with different values are allowed as fallbacks.
type Rule struct{}

// Meta implements rule.Rule.
func (r *Rule) Meta() lint.RuleMeta {
	return lint.RuleMeta{
		ID:          "duplicate-properties",
		Name:        "Disallow duplicate properties",
		Description: "Duplicate properties must appear one after the other.",
		URL:         "https://github.com/CSSLint/csslint/wiki/Disallow-duplicate-properties",
		Browsers:    "All",
	}
}

// Init implements rule.Rule.
func (r *Rule) Init(events *cssparse.Handle, rep *lint.Reporter) {
	meta := r.Meta()

	var (
		values map[string]string
		last   string
	)

	reset := func() {
		values = make(map[string]string)
		last = ""
	}
	reset()

	events.OnStartRule(func(cssparse.StartRuleEvent) { reset() })
	events.OnStartFontFace(func(cssparse.StartFontFaceEvent) { reset() })
	events.OnStartPage(func(cssparse.StartPageEvent) { reset() })
	events.OnStartViewport(func(cssparse.StartViewportEvent) { reset() })
	events.OnStartKeyframeRule(func(cssparse.StartKeyframeRuleEvent) { reset() })

	events.OnProperty(func(ev cssparse.PropertyEvent) {
		name := strings.ToLower(ev.Property.Name)
		value := ev.Value.Text

		if prev, ok := values[name]; ok && (last != name || prev == value) {
			rep.Report(fmt.Sprintf("Duplicate property '%s' found.", ev.Property.Name),
				ev.Pos.Line, ev.Pos.Col, meta)
		}
		values[name] = value
		last = name
	})
}
