package duplicatebackgroundimages

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

// Rule flags a background image URL used by more than one declaration;
// the image belongs in a shared class instead.
type Rule struct{}

// Meta implements rule.Rule.
func (r *Rule) Meta() lint.RuleMeta {
	return lint.RuleMeta{
		ID:          "duplicate-background-images",
		Name:        "Disallow duplicate background images",
		Description: "Every background-image should be unique. Use a common class for e.g. sprites.",
		URL:         "https://github.com/CSSLint/csslint/wiki/Disallow-duplicate-background-images",
		Browsers:    "All",
	}
}

// Init implements rule.Rule.
func (r *Rule) Init(events *cssparse.Handle, rep *lint.Reporter) {
	meta := r.Meta()
	stack := make(map[string]cssparse.Position)

	events.OnProperty(func(ev cssparse.PropertyEvent) {
		if !strings.Contains(strings.ToLower(ev.Property.Name), "background") {
			return
		}
		for _, part := range ev.Value.Parts {
			if part.Kind != cssparse.ValURI || part.URI == "" {
				continue
			}
			if first, ok := stack[part.URI]; ok {
				rep.Report(fmt.Sprintf("Background image '%s' was used multiple times, first declared at line %d, col %d.",
					part.URI, first.Line, first.Col), ev.Pos.Line, ev.Pos.Col, meta)
			} else {
				stack[part.URI] = ev.Pos
			}
		}
	})
}
