package fontfaces

import (
	"fmt"

	"github.com/tidycss/tidycss/internal/cssparse"
	"github.com/tidycss/tidycss/internal/lint"
	"github.com/tidycss/tidycss/internal/rule"
)

func init() {
	rule.Register(&Rule{})
}

// threshold is how many web fonts a page can reasonably load.
const threshold = 5

// Rule counts @font-face blocks and rolls up when too many fonts are
// declared.
type Rule struct{}

// Meta implements rule.Rule.
func (r *Rule) Meta() lint.RuleMeta {
	return lint.RuleMeta{
		ID:          "font-faces",
		Name:        "Don't use too many web fonts",
		Description: "Too many different web fonts in the same stylesheet.",
		URL:         "https://github.com/CSSLint/csslint/wiki/Don%27t-use-too-many-web-fonts",
		Browsers:    "All",
	}
}

// Init implements rule.Rule.
func (r *Rule) Init(events *cssparse.Handle, rep *lint.Reporter) {
	meta := r.Meta()
	count := 0

	events.OnStartFontFace(func(cssparse.StartFontFaceEvent) {
		count++
	})

	events.OnEndStylesheet(func(cssparse.EndStylesheetEvent) {
		if count > threshold {
			rep.RollupWarn(fmt.Sprintf("Too many @font-face declarations (%d).", count), meta)
		}
	})
}
