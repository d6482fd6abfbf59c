package boxmodel

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

// Rule warns when a rule combines width/height with the padding or
// border properties that grow the rendered box.
type Rule struct{}

// Meta implements rule.Rule.
func (r *Rule) Meta() lint.RuleMeta {
	return lint.RuleMeta{
		ID:          "box-model",
		Name:        "Beware of broken box size",
		Description: "Don't use width or height when using padding or border.",
		URL:         "https://github.com/CSSLint/csslint/wiki/Beware-of-box-model-size",
		Browsers:    "All",
	}
}

var widthProperties = map[string]bool{
	"border": true, "border-left": true, "border-right": true,
	"padding": true, "padding-left": true, "padding-right": true,
}

var heightProperties = map[string]bool{
	"border": true, "border-bottom": true, "border-top": true,
	"padding": true, "padding-bottom": true, "padding-top": true,
}

// Init implements rule.Rule.
func (r *Rule) Init(events *cssparse.Handle, rep *lint.Reporter) {
	meta := r.Meta()

	type sized struct {
		name string
		pos  cssparse.Position
	}

	var (
		width     bool
		height    bool
		boxSizing bool
		seen      map[string]bool
		recorded  []sized
	)

	reset := func() {
		width, height, boxSizing = false, false, false
		seen = make(map[string]bool)
		recorded = nil
	}

	reset()
	events.OnStartRule(func(cssparse.StartRuleEvent) { reset() })
	events.OnStartFontFace(func(cssparse.StartFontFaceEvent) { reset() })
	events.OnStartPage(func(cssparse.StartPageEvent) { reset() })
	events.OnStartKeyframeRule(func(cssparse.StartKeyframeRuleEvent) { reset() })

	events.OnProperty(func(ev cssparse.PropertyEvent) {
		name := strings.ToLower(ev.Property.Name)
		value := strings.ToLower(ev.Value.Text)

		switch {
		case name == "box-sizing":
			boxSizing = true
		case name == "width":
			width = true
		case name == "height":
			height = true
		case widthProperties[name] || heightProperties[name]:
			// border: none and zero-size values don't grow the box
			if value == "none" || value == "0" {
				return
			}
			if !seen[name] {
				seen[name] = true
				recorded = append(recorded, sized{name: name, pos: ev.Pos})
			}
		}
	})

	check := func() {
		if boxSizing {
			return
		}
		for _, p := range recorded {
			if width && widthProperties[p.name] {
				rep.Report(fmt.Sprintf("Using width with %s can sometimes make elements larger than you expect.", p.name),
					p.pos.Line, p.pos.Col, meta)
			}
			if height && heightProperties[p.name] {
				rep.Report(fmt.Sprintf("Using height with %s can sometimes make elements larger than you expect.", p.name),
					p.pos.Line, p.pos.Col, meta)
			}
		}
	}

	events.OnEndRule(func(cssparse.EndRuleEvent) { check() })
	events.OnEndFontFace(func(cssparse.EndFontFaceEvent) { check() })
	events.OnEndPage(func(cssparse.EndPageEvent) { check() })
	events.OnEndKeyframeRule(func(cssparse.EndKeyframeRuleEvent) { check() })
}
