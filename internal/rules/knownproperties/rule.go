package knownproperties

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

// Rule flags property names that are not in the known standard set.
// Vendor-prefixed and custom properties are never checked.
type Rule struct{}

// Meta implements rule.Rule.
func (r *Rule) Meta() lint.RuleMeta {
	return lint.RuleMeta{
		ID:          "known-properties",
		Name:        "Require use of known properties",
		Description: "Properties should be known (listed in CSS3 specification) or be a vendor-prefixed property.",
		URL:         "https://github.com/CSSLint/csslint/wiki/Require-use-of-known-properties",
		Browsers:    "All",
	}
}

// Init implements rule.Rule.
func (r *Rule) Init(events *cssparse.Handle, rep *lint.Reporter) {
	meta := r.Meta()

	events.OnProperty(func(ev cssparse.PropertyEvent) {
		name := strings.ToLower(ev.Property.Name)
		if strings.HasPrefix(name, "-") {
			return
		}
		if !known[name] {
			rep.Report(fmt.Sprintf("Unknown property '%s'.", ev.Property.Name), ev.Pos.Line, ev.Pos.Col, meta)
		}
	})
}

var known = map[string]bool{
	"align-content": true, "align-items": true, "align-self": true,
	"alignment-adjust": true, "alignment-baseline": true,
	"all": true, "animation": true, "animation-delay": true,
	"animation-direction": true, "animation-duration": true,
	"animation-fill-mode": true, "animation-iteration-count": true,
	"animation-name": true, "animation-play-state": true,
	"animation-timing-function": true, "appearance": true,
	"azimuth": true,

	"backface-visibility": true, "background": true,
	"background-attachment": true, "background-blend-mode": true,
	"background-clip": true, "background-color": true,
	"background-image": true, "background-origin": true,
	"background-position": true, "background-repeat": true,
	"background-size": true, "baseline-shift": true,
	"binding": true, "bleed": true, "bookmark-label": true,
	"bookmark-level": true, "bookmark-state": true, "bookmark-target": true,
	"border": true, "border-bottom": true, "border-bottom-color": true,
	"border-bottom-left-radius": true, "border-bottom-right-radius": true,
	"border-bottom-style": true, "border-bottom-width": true,
	"border-collapse": true, "border-color": true, "border-image": true,
	"border-image-outset": true, "border-image-repeat": true,
	"border-image-slice": true, "border-image-source": true,
	"border-image-width": true, "border-left": true,
	"border-left-color": true, "border-left-style": true,
	"border-left-width": true, "border-radius": true, "border-right": true,
	"border-right-color": true, "border-right-style": true,
	"border-right-width": true, "border-spacing": true, "border-style": true,
	"border-top": true, "border-top-color": true,
	"border-top-left-radius": true, "border-top-right-radius": true,
	"border-top-style": true, "border-top-width": true, "border-width": true,
	"bottom": true, "box-decoration-break": true, "box-shadow": true,
	"box-sizing": true, "break-after": true, "break-before": true,
	"break-inside": true,

	"caption-side": true, "caret-color": true, "clear": true, "clip": true,
	"clip-path": true, "color": true, "color-profile": true,
	"column-count": true, "column-fill": true, "column-gap": true,
	"column-rule": true, "column-rule-color": true,
	"column-rule-style": true, "column-rule-width": true,
	"column-span": true, "column-width": true, "columns": true,
	"content": true, "counter-increment": true, "counter-reset": true,
	"crop": true, "cue": true, "cue-after": true, "cue-before": true,
	"cursor": true,

	"direction": true, "display": true, "dominant-baseline": true,
	"drop-initial-after-adjust": true, "drop-initial-after-align": true,
	"drop-initial-before-adjust": true, "drop-initial-before-align": true,
	"drop-initial-size": true, "drop-initial-value": true,

	"elevation": true, "empty-cells": true,

	"filter": true, "fit": true, "fit-position": true, "flex": true,
	"flex-basis": true, "flex-direction": true, "flex-flow": true,
	"flex-grow": true, "flex-shrink": true, "flex-wrap": true,
	"float": true, "float-offset": true, "font": true, "font-family": true,
	"font-feature-settings": true, "font-kerning": true, "font-size": true,
	"font-size-adjust": true, "font-stretch": true, "font-style": true,
	"font-synthesis": true, "font-variant": true, "font-variant-caps": true,
	"font-variant-ligatures": true, "font-variant-numeric": true,
	"font-weight": true,

	"gap": true, "grid": true, "grid-area": true, "grid-auto-columns": true,
	"grid-auto-flow": true, "grid-auto-rows": true, "grid-column": true,
	"grid-column-end": true, "grid-column-gap": true,
	"grid-column-start": true, "grid-gap": true, "grid-row": true,
	"grid-row-end": true, "grid-row-gap": true, "grid-row-start": true,
	"grid-template": true, "grid-template-areas": true,
	"grid-template-columns": true, "grid-template-rows": true,

	"hanging-punctuation": true, "height": true, "hyphenate-after": true,
	"hyphenate-before": true, "hyphenate-character": true,
	"hyphenate-lines": true, "hyphenate-resource": true, "hyphens": true,

	"icon": true, "image-orientation": true, "image-rendering": true,
	"image-resolution": true, "inline-box-align": true, "isolation": true,

	"justify-content": true, "justify-items": true, "justify-self": true,

	"left": true, "letter-spacing": true, "line-break": true,
	"line-height": true, "line-stacking": true, "line-stacking-ruby": true,
	"line-stacking-shift": true, "line-stacking-strategy": true,
	"list-style": true, "list-style-image": true,
	"list-style-position": true, "list-style-type": true,

	"margin": true, "margin-bottom": true, "margin-left": true,
	"margin-right": true, "margin-top": true, "mark": true,
	"mark-after": true, "mark-before": true, "marks": true,
	"marquee-direction": true, "marquee-play-count": true,
	"marquee-speed": true, "marquee-style": true, "mask": true,
	"max-height": true, "max-width": true, "min-height": true,
	"min-width": true, "mix-blend-mode": true, "move-to": true,

	"nav-down": true, "nav-index": true, "nav-left": true,
	"nav-right": true, "nav-up": true,

	"object-fit": true, "object-position": true, "opacity": true,
	"order": true, "orphans": true, "outline": true,
	"outline-color": true, "outline-offset": true, "outline-style": true,
	"outline-width": true, "overflow": true, "overflow-style": true,
	"overflow-wrap": true, "overflow-x": true, "overflow-y": true,

	"padding": true, "padding-bottom": true, "padding-left": true,
	"padding-right": true, "padding-top": true, "page": true,
	"page-break-after": true, "page-break-before": true,
	"page-break-inside": true, "page-policy": true, "pause": true,
	"pause-after": true, "pause-before": true, "perspective": true,
	"perspective-origin": true, "phonemes": true, "pitch": true,
	"pitch-range": true, "place-content": true, "place-items": true,
	"place-self": true, "play-during": true, "pointer-events": true,
	"position": true, "presentation-level": true, "punctuation-trim": true,

	"quotes": true,

	"rendering-intent": true, "resize": true, "rest": true,
	"rest-after": true, "rest-before": true, "richness": true,
	"right": true, "rotation": true, "rotation-point": true,
	"row-gap": true, "ruby-align": true, "ruby-overhang": true,
	"ruby-position": true, "ruby-span": true,

	"scroll-behavior": true, "size": true, "speak": true,
	"speak-header": true, "speak-numeral": true, "speak-punctuation": true,
	"speech-rate": true, "src": true, "stress": true, "string-set": true,

	"tab-size": true, "table-layout": true, "target": true,
	"target-name": true, "target-new": true, "target-position": true,
	"text-align": true, "text-align-last": true, "text-decoration": true,
	"text-decoration-color": true, "text-decoration-line": true,
	"text-decoration-style": true, "text-emphasis": true,
	"text-height": true, "text-indent": true, "text-justify": true,
	"text-outline": true, "text-overflow": true, "text-rendering": true,
	"text-shadow": true, "text-transform": true, "text-wrap": true,
	"top": true, "touch-action": true, "transform": true,
	"transform-origin": true, "transform-style": true, "transition": true,
	"transition-delay": true, "transition-duration": true,
	"transition-property": true, "transition-timing-function": true,

	"unicode-bidi": true, "user-select": true,

	"vertical-align": true, "visibility": true, "voice-balance": true,
	"voice-duration": true, "voice-family": true, "voice-pitch": true,
	"voice-pitch-range": true, "voice-rate": true, "voice-stress": true,
	"voice-volume": true, "volume": true,

	"white-space": true, "white-space-collapse": true, "widows": true,
	"width": true, "will-change": true, "word-break": true,
	"word-spacing": true, "word-wrap": true, "writing-mode": true,

	"z-index": true, "zoom": true,
}
