package cssparse

import (
	"bytes"
	"errors"
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Options control parsing behavior.
type Options struct {
	// Inline parses the text as a declaration list (style attribute)
	// instead of a full stylesheet.
	Inline bool
}

// Parser walks CSS source once and fires structural events on its
// Handle. A Parser is built per run; listeners attach to Events before
// Parse is called.
type Parser struct {
	Events Handle
	opts   Options
}

// New returns a stylesheet parser.
func New() *Parser {
	return &Parser{}
}

// NewWithOptions returns a parser with explicit options.
func NewWithOptions(opts Options) *Parser {
	return &Parser{opts: opts}
}

// Parse tokenizes text and emits events in document order. A
// malformed-CSS condition fires a single ErrorEvent and stops further
// structural emission; EndStylesheetEvent always fires last.
func (p *Parser) Parse(text string) {
	src := []byte(text)
	input := parse.NewInput(bytes.NewReader(src))
	r := &run{
		p:      p,
		parser: css.NewParser(input, p.opts.Inline),
		c:      newCursor(src),
	}
	p.Events.EmitStartStylesheet(StartStylesheetEvent{})
	r.stylesheet()
	p.Events.EmitEndStylesheet(EndStylesheetEvent{})
}

// run holds the per-parse state.
type run struct {
	p       *Parser
	parser  *css.Parser
	c       *cursor
	pending []Selector // comma-separated selectors seen before the block opens
	done    bool
}

func (r *run) stylesheet() {
	for !r.done {
		gt, _, data := r.parser.Next()
		switch gt {
		case css.ErrorGrammar:
			r.terminal()
			return
		case css.AtRuleGrammar:
			r.atRule(data, r.parser.Values())
		case css.BeginAtRuleGrammar:
			r.beginAtRule(data, r.parser.Values())
		case css.QualifiedRuleGrammar:
			r.pending = append(r.pending, parseSelectors(r.c, data, r.parser.Values())...)
		case css.BeginRulesetGrammar:
			r.styleRule(data)
		default:
			r.c.locate(data)
			r.advanceValues()
		}
	}
}

// terminal handles the ErrorGrammar state: clean EOF ends the walk
// silently, anything else becomes an ErrorEvent.
func (r *run) terminal() {
	r.done = true
	err := r.parser.Err()
	if err == nil || errors.Is(err, io.EOF) {
		return
	}
	r.p.Events.EmitError(ErrorEvent{Message: err.Error(), Pos: r.c.here()})
}

func (r *run) styleRule(data []byte) {
	sels := r.pending
	r.pending = nil
	sels = append(sels, parseSelectors(r.c, data, r.parser.Values())...)

	pos := r.c.here()
	if len(sels) > 0 {
		pos = sels[0].Pos
	}
	r.p.Events.EmitStartRule(StartRuleEvent{Selectors: sels, Pos: pos})
	r.declarations()
	r.p.Events.EmitEndRule(EndRuleEvent{Selectors: sels, Pos: r.c.here()})
}

// declarations consumes a block body, emitting PropertyEvents until the
// block closes.
func (r *run) declarations() {
	for !r.done {
		gt, _, data := r.parser.Next()
		switch gt {
		case css.ErrorGrammar:
			r.terminal()
			return
		case css.EndRulesetGrammar, css.EndAtRuleGrammar:
			return
		case css.DeclarationGrammar:
			r.declaration(data)
		default:
			r.c.locate(data)
			r.advanceValues()
		}
	}
}

func (r *run) declaration(data []byte) {
	pos := r.c.locate(data)
	val, important := parseValue(r.c, r.parser.Values())
	r.p.Events.EmitProperty(PropertyEvent{
		Property:  Property{Name: string(data), Pos: pos},
		Value:     val,
		Important: important,
		Pos:       pos,
	})
}

func (r *run) atRule(data []byte, values []css.Token) {
	name := strings.ToLower(string(data))
	pos := r.c.locate(data)

	switch name {
	case "@import":
		uri := importTarget(values)
		r.advanceTokens(values)
		r.p.Events.EmitImport(ImportEvent{URI: uri, Pos: pos})
	case "@charset":
		cs := firstStringValue(values)
		r.advanceTokens(values)
		r.p.Events.EmitCharset(CharsetEvent{Charset: cs, Pos: pos})
	case "@namespace":
		prefix, uri := namespaceParts(values)
		r.advanceTokens(values)
		r.p.Events.EmitNamespace(NamespaceEvent{Prefix: prefix, URI: uri, Pos: pos})
	default:
		r.advanceTokens(values)
	}
}

func (r *run) beginAtRule(data []byte, values []css.Token) {
	name := strings.ToLower(string(data))
	pos := r.c.locate(data)

	switch {
	case name == "@media":
		media := r.preludeText(values)
		r.p.Events.EmitStartMedia(StartMediaEvent{Media: media, Pos: pos})
		r.mediaBlock()
		r.p.Events.EmitEndMedia(EndMediaEvent{Media: media, Pos: r.c.here()})

	case name == "@font-face":
		r.advanceTokens(values)
		r.p.Events.EmitStartFontFace(StartFontFaceEvent{Pos: pos})
		r.declarations()
		r.p.Events.EmitEndFontFace(EndFontFaceEvent{Pos: r.c.here()})

	case name == "@page":
		r.advanceTokens(values)
		r.p.Events.EmitStartPage(StartPageEvent{Pos: pos})
		r.declarations()
		r.p.Events.EmitEndPage(EndPageEvent{Pos: r.c.here()})

	case name == "@viewport" || name == "@-ms-viewport" || name == "@-o-viewport":
		r.advanceTokens(values)
		r.p.Events.EmitStartViewport(StartViewportEvent{Pos: pos})
		r.declarations()
		r.p.Events.EmitEndViewport(EndViewportEvent{Pos: r.c.here()})

	case strings.HasSuffix(name, "keyframes"):
		prefix := strings.TrimSuffix(strings.TrimPrefix(name, "@"), "keyframes")
		kf := r.preludeText(values)
		r.p.Events.EmitStartKeyframes(StartKeyframesEvent{Name: kf, Prefix: prefix, Pos: pos})
		r.keyframes()
		r.p.Events.EmitEndKeyframes(EndKeyframesEvent{Pos: r.c.here()})

	default:
		r.advanceTokens(values)
		r.skipBlock()
	}
}

// mediaBlock consumes the body of an @media block, which nests rules
// and further at-rules.
func (r *run) mediaBlock() {
	for !r.done {
		gt, _, data := r.parser.Next()
		switch gt {
		case css.ErrorGrammar:
			r.terminal()
			return
		case css.EndAtRuleGrammar:
			return
		case css.AtRuleGrammar:
			r.atRule(data, r.parser.Values())
		case css.BeginAtRuleGrammar:
			r.beginAtRule(data, r.parser.Values())
		case css.QualifiedRuleGrammar:
			r.pending = append(r.pending, parseSelectors(r.c, data, r.parser.Values())...)
		case css.BeginRulesetGrammar:
			r.styleRule(data)
		default:
			r.c.locate(data)
			r.advanceValues()
		}
	}
}

// keyframes consumes the body of an @keyframes block. Keyframe
// selector blocks are emitted as keyframe-rule events, not style
// rules.
func (r *run) keyframes() {
	for !r.done {
		gt, _, data := r.parser.Next()
		switch gt {
		case css.ErrorGrammar:
			r.terminal()
			return
		case css.EndAtRuleGrammar:
			return
		case css.BeginRulesetGrammar:
			pos := r.c.here()
			key := r.preludeRaw(data, r.parser.Values())
			r.p.Events.EmitStartKeyframeRule(StartKeyframeRuleEvent{Key: key, Pos: pos})
			r.declarations()
			r.p.Events.EmitEndKeyframeRule(EndKeyframeRuleEvent{Pos: r.c.here()})
		default:
			r.c.locate(data)
			r.advanceValues()
		}
	}
}

// skipBlock discards an unrecognized at-rule block, tracking nesting.
func (r *run) skipBlock() {
	depth := 1
	for depth > 0 && !r.done {
		gt, _, data := r.parser.Next()
		switch gt {
		case css.ErrorGrammar:
			r.terminal()
			return
		case css.BeginAtRuleGrammar, css.BeginRulesetGrammar:
			depth++
		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			depth--
		}
		r.c.locate(data)
		r.advanceValues()
	}
}

// advanceValues moves the cursor past the current grammar item's value
// tokens so later positions stay accurate.
func (r *run) advanceValues() {
	r.advanceTokens(r.parser.Values())
}

func (r *run) advanceTokens(values []css.Token) {
	for _, tok := range values {
		r.c.locate(tok.Data)
	}
}

// preludeText joins prelude tokens into normalized text, advancing the
// cursor.
func (r *run) preludeText(values []css.Token) string {
	var b strings.Builder
	for _, tok := range values {
		r.c.locate(tok.Data)
		if tok.TokenType == css.WhitespaceToken {
			b.WriteString(" ")
			continue
		}
		b.Write(tok.Data)
	}
	return strings.TrimSpace(collapseSpaces(b.String()))
}

// preludeRaw is preludeText including the grammar payload bytes.
func (r *run) preludeRaw(data []byte, values []css.Token) string {
	var b strings.Builder
	if len(data) > 0 {
		r.c.locate(data)
		b.Write(data)
	}
	for _, tok := range values {
		r.c.locate(tok.Data)
		if tok.TokenType == css.WhitespaceToken {
			b.WriteString(" ")
			continue
		}
		b.Write(tok.Data)
	}
	return strings.TrimSpace(collapseSpaces(b.String()))
}

// importTarget extracts the URI from @import prelude tokens. Handles
// the string, url("...") and url(...) forms.
func importTarget(values []css.Token) string {
	for _, tok := range values {
		switch tok.TokenType {
		case css.StringToken:
			return unquote(string(tok.Data))
		case css.URLToken:
			return urlTarget(string(tok.Data))
		}
	}
	return ""
}

// firstStringValue returns the first string token, unquoted.
func firstStringValue(values []css.Token) string {
	for _, tok := range values {
		if tok.TokenType == css.StringToken {
			return unquote(string(tok.Data))
		}
	}
	return ""
}

// namespaceParts splits @namespace prelude tokens into an optional
// prefix and the namespace URI.
func namespaceParts(values []css.Token) (string, string) {
	var prefix, uri string
	for _, tok := range values {
		switch tok.TokenType {
		case css.IdentToken:
			if prefix == "" {
				prefix = string(tok.Data)
			}
		case css.StringToken:
			uri = unquote(string(tok.Data))
		case css.URLToken:
			uri = urlTarget(string(tok.Data))
		}
	}
	return prefix, uri
}
