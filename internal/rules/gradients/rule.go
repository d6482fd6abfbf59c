package gradients

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tidycss/tidycss/internal/cssparse"
	"github.com/tidycss/tidycss/internal/lint"
	"github.com/tidycss/tidycss/internal/rule"
)

func init() {
	rule.Register(&Rule{})
}

// Rule checks that when one vendor-prefixed gradient appears in a rule,
// the prefixes for the other engines appear too.
type Rule struct{}

// Meta implements rule.Rule.
func (r *Rule) Meta() lint.RuleMeta {
	return lint.RuleMeta{
		ID:          "gradients",
		Name:        "Require all gradient definitions",
		Description: "When using a vendor-prefixed gradient, make sure to use them all.",
		URL:         "https://github.com/CSSLint/csslint/wiki/Require-all-gradient-definitions",
		Browsers:    "All",
	}
}

var (
	prefixedGradient = regexp.MustCompile(`(?i)-(moz|o|webkit)(?:-(?:linear|radial))-gradient`)
	oldWebkit        = regexp.MustCompile(`(?i)-webkit-gradient`)
)

// Init implements rule.Rule.
func (r *Rule) Init(events *cssparse.Handle, rep *lint.Reporter) {
	meta := r.Meta()

	var (
		seen  map[string]bool
		start cssparse.Position
	)

	events.OnStartRule(func(ev cssparse.StartRuleEvent) {
		seen = make(map[string]bool)
		start = ev.Pos
	})

	events.OnProperty(func(ev cssparse.PropertyEvent) {
		if seen == nil {
			return
		}
		if m := prefixedGradient.FindStringSubmatch(ev.Value.Text); m != nil {
			seen[strings.ToLower(m[1])] = true
		}
		if oldWebkit.MatchString(ev.Value.Text) {
			seen["oldWebkit"] = true
		}
	})

	events.OnEndRule(func(cssparse.EndRuleEvent) {
		if seen == nil || len(seen) == 0 {
			return
		}
		var missing []string
		if !seen["moz"] {
			missing = append(missing, "Firefox 3.6+")
		}
		if !seen["webkit"] {
			missing = append(missing, "Webkit (Safari 5+, Chrome)")
		}
		if !seen["oldWebkit"] {
			missing = append(missing, "Old Webkit (Safari 4+, Chrome)")
		}
		if !seen["o"] {
			missing = append(missing, "Opera 11.1+")
		}
		if len(missing) > 0 && len(missing) < 4 {
			rep.Report(fmt.Sprintf("Missing vendor-prefixed CSS gradients for %s.", strings.Join(missing, ", ")),
				start.Line, start.Col, meta)
		}
		seen = nil
	})
}
