package cssparse

import (
	"strings"

	"github.com/tdewolff/parse/v2/css"
)

// ModifierType classifies a simple-selector modifier.
type ModifierType int

// Modifier types.
const (
	ModClass ModifierType = iota
	ModID
	ModAttribute
	ModPseudo
)

// Modifier is a class, id, attribute or pseudo component attached to
// one selector part.
type Modifier struct {
	Type ModifierType
	Text string
	Pos  Position
}

// SelectorPart is one compound selector: an optional element name plus
// its modifiers. Combinators between parts are not retained; parts
// appear in document order.
type SelectorPart struct {
	Element   string // "" when the part has no element name, "*" for universal
	Modifiers []Modifier
	Text      string
	Pos       Position
}

// ClassCount returns the number of class modifiers on the part.
func (p SelectorPart) ClassCount() int {
	n := 0
	for _, m := range p.Modifiers {
		if m.Type == ModClass {
			n++
		}
	}
	return n
}

// HasModifier reports whether the part carries a modifier of the given type.
func (p SelectorPart) HasModifier(t ModifierType) bool {
	for _, m := range p.Modifiers {
		if m.Type == t {
			return true
		}
	}
	return false
}

// Selector is one comma-separated selector of a rule prelude.
type Selector struct {
	Text  string
	Parts []SelectorPart
	Pos   Position
}

// selectorScanner builds Selectors from prelude tokens.
type selectorScanner struct {
	c    *cursor
	sels []Selector

	cur      Selector
	curText  strings.Builder
	part     SelectorPart
	partText strings.Builder
	partOpen bool

	pendingClass  bool
	pendingColons int
	modPos        Position
}

// parseSelectors splits a rule prelude into selectors. data is the
// grammar payload (usually empty for rulesets) and values the prelude
// tokens.
func parseSelectors(c *cursor, data []byte, values []css.Token) []Selector {
	tokens := make([]css.Token, 0, len(values)+1)
	if len(data) > 0 {
		tokens = append(tokens, css.Token{TokenType: css.IdentToken, Data: data})
	}
	tokens = append(tokens, values...)

	s := &selectorScanner{c: c}
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		text := string(tok.Data)

		switch tok.TokenType {
		case css.WhitespaceToken:
			s.flushPart()
			s.curText.WriteString(" ")

		case css.CommaToken:
			s.flushSelector()

		case css.CommentToken:
			c.locate(tok.Data) // dropped from selector text

		case css.DelimToken:
			switch text {
			case ".":
				s.modPos = c.locate(tok.Data)
				s.pendingClass = true
			case "*":
				pos := c.locate(tok.Data)
				if !s.partOpen {
					s.openPart(pos)
					s.part.Element = "*"
				}
				s.partText.WriteString(text)
				s.curText.WriteString(text)
			case ">", "+", "~":
				c.locate(tok.Data)
				s.flushPart()
				s.curText.WriteString(text)
			default:
				c.locate(tok.Data)
				s.appendText(text)
			}

		case css.IdentToken:
			pos := c.locate(tok.Data)
			switch {
			case s.pendingClass:
				s.addModifier(Modifier{Type: ModClass, Text: "." + text, Pos: s.modPos})
				s.pendingClass = false
				s.partText.WriteString("." + text)
				s.curText.WriteString("." + text)
			case s.pendingColons > 0:
				full := strings.Repeat(":", s.pendingColons) + text
				s.addModifier(Modifier{Type: ModPseudo, Text: full, Pos: s.modPos})
				s.pendingColons = 0
				s.partText.WriteString(full)
				s.curText.WriteString(full)
			default:
				if !s.partOpen {
					s.openPart(pos)
					s.part.Element = text
				} else if s.part.Element == "" && len(s.part.Modifiers) == 0 {
					s.part.Element = text
				}
				s.partText.WriteString(text)
				s.curText.WriteString(text)
			}

		case css.HashToken:
			pos := c.locate(tok.Data)
			s.ensurePart(pos)
			s.addModifier(Modifier{Type: ModID, Text: text, Pos: pos})
			s.partText.WriteString(text)
			s.curText.WriteString(text)

		case css.ColonToken:
			if s.pendingColons == 0 {
				s.modPos = c.locate(tok.Data)
			} else {
				c.locate(tok.Data)
			}
			s.pendingColons++

		case css.FunctionToken:
			fnStart := c.locate(tok.Data)
			var b strings.Builder
			b.WriteString(text)
			depth := 1
			for depth > 0 && i+1 < len(tokens) {
				i++
				inner := tokens[i]
				c.locate(inner.Data)
				switch inner.TokenType {
				case css.FunctionToken, css.LeftParenthesisToken:
					depth++
				case css.RightParenthesisToken:
					depth--
				}
				b.Write(inner.Data)
			}
			fnText := b.String()
			if s.pendingColons > 0 {
				full := strings.Repeat(":", s.pendingColons) + fnText
				s.ensurePart(s.modPos)
				s.addModifier(Modifier{Type: ModPseudo, Text: full, Pos: s.modPos})
				s.pendingColons = 0
				s.partText.WriteString(full)
				s.curText.WriteString(full)
			} else {
				s.ensurePart(fnStart)
				s.appendText(fnText)
			}

		case css.LeftBracketToken:
			pos := c.locate(tok.Data)
			var b strings.Builder
			b.WriteString(text)
			for i+1 < len(tokens) {
				i++
				inner := tokens[i]
				c.locate(inner.Data)
				b.Write(inner.Data)
				if inner.TokenType == css.RightBracketToken {
					break
				}
			}
			s.ensurePart(pos)
			s.addModifier(Modifier{Type: ModAttribute, Text: b.String(), Pos: pos})
			s.partText.WriteString(b.String())
			s.curText.WriteString(b.String())

		case css.NumberToken, css.PercentageToken, css.DimensionToken:
			pos := c.locate(tok.Data)
			if !s.partOpen {
				s.openPart(pos)
				s.part.Element = text
			}
			s.partText.WriteString(text)
			s.curText.WriteString(text)

		default:
			c.locate(tok.Data)
			s.appendText(text)
		}
	}
	s.flushSelector()
	return s.sels
}

func (s *selectorScanner) openPart(pos Position) {
	s.part = SelectorPart{Pos: pos}
	s.partText.Reset()
	s.partOpen = true
	if len(s.cur.Parts) == 0 && s.curText.Len() == 0 {
		s.cur.Pos = pos
	}
}

func (s *selectorScanner) ensurePart(pos Position) {
	if !s.partOpen {
		s.openPart(pos)
	}
}

func (s *selectorScanner) addModifier(m Modifier) {
	s.ensurePart(m.Pos)
	s.part.Modifiers = append(s.part.Modifiers, m)
}

func (s *selectorScanner) appendText(text string) {
	if s.partOpen {
		s.partText.WriteString(text)
	}
	s.curText.WriteString(text)
}

func (s *selectorScanner) flushPart() {
	if !s.partOpen {
		return
	}
	s.part.Text = s.partText.String()
	s.cur.Parts = append(s.cur.Parts, s.part)
	s.part = SelectorPart{}
	s.partText.Reset()
	s.partOpen = false
}

func (s *selectorScanner) flushSelector() {
	s.flushPart()
	text := strings.TrimSpace(collapseSpaces(s.curText.String()))
	if len(s.cur.Parts) > 0 || text != "" {
		s.cur.Text = text
		s.sels = append(s.sels, s.cur)
	}
	s.cur = Selector{}
	s.curText.Reset()
}

// collapseSpaces folds runs of whitespace into single spaces.
func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
