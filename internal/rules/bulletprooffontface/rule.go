package bulletprooffontface

import (
	"regexp"
	"strings"

	"github.com/tidycss/tidycss/internal/cssparse"
	"github.com/tidycss/tidycss/internal/lint"
	"github.com/tidycss/tidycss/internal/rule"
)

func init() {
	rule.Register(&Rule{})
}

// Rule checks that @font-face src declarations use the bulletproof
// syntax so old IE doesn't request the wrong font file.
type Rule struct{}

// Meta implements rule.Rule.
func (r *Rule) Meta() lint.RuleMeta {
	return lint.RuleMeta{
		ID:          "bulletproof-font-face",
		Name:        "Use the bulletproof @font-face syntax",
		Description: "Use the bulletproof @font-face syntax to avoid 404's in old IE (http://www.fontspring.com/blog/the-new-bulletproof-font-face-syntax).",
		URL:         "https://github.com/CSSLint/csslint/wiki/Bulletproof-font-face",
		Browsers:    "All",
	}
}

// bulletproof matches the first src format: an .eot url with the ?#iefix
// query hack followed by format('embedded-opentype').
var bulletproof = regexp.MustCompile(`(?i)^url\(['"]?[^'")]+\.eot\?[^'")]*['"]?\)\s*format\(['"]embedded-opentype['"]\)`)

// Init implements rule.Rule.
func (r *Rule) Init(events *cssparse.Handle, rep *lint.Reporter) {
	meta := r.Meta()

	var (
		inFontFace bool
		firstSrc   bool
		failed     bool
		failedPos  cssparse.Position
	)

	events.OnStartFontFace(func(cssparse.StartFontFaceEvent) {
		inFontFace = true
		firstSrc = true
		failed = false
	})

	events.OnProperty(func(ev cssparse.PropertyEvent) {
		if !inFontFace || !firstSrc {
			return
		}
		if strings.ToLower(ev.Property.Name) != "src" {
			return
		}
		firstSrc = false
		if !bulletproof.MatchString(ev.Value.Text) {
			failed = true
			failedPos = ev.Pos
		}
	})

	events.OnEndFontFace(func(cssparse.EndFontFaceEvent) {
		inFontFace = false
		if failed {
			rep.Report("@font-face declaration doesn't follow the fontspring bulletproof syntax.",
				failedPos.Line, failedPos.Col, meta)
			failed = false
		}
	})
}
