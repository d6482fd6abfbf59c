package cssparse

import (
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2/css"
)

// ValueKind classifies one part of a declaration value.
type ValueKind int

// Value part kinds.
const (
	ValUnknown ValueKind = iota
	ValNumber
	ValPercentage
	ValDimension
	ValColor
	ValString
	ValURI
	ValIdent
	ValFunction
)

// ValuePart is a single component of a declaration value.
type ValuePart struct {
	Text  string
	Kind  ValueKind
	Value float64 // numeric value for number/percentage/dimension parts
	Units string  // unit for dimension parts, lowercased
	Fn    string  // function name for function/color-function parts, lowercased
	URI   string  // target for url() parts, unquoted
	Pos   Position
}

// Value is a parsed declaration value.
type Value struct {
	Text  string
	Parts []ValuePart
	Pos   Position
}

// Property is a declaration name with its source position.
type Property struct {
	Name string
	Pos  Position
}

// colorFns are functional color notations.
var colorFns = map[string]bool{
	"rgb": true, "rgba": true, "hsl": true, "hsla": true,
}

// namedColors covers the CSS2 palette plus common extended names,
// enough for the color-shaped rules.
var namedColors = map[string]bool{
	"aqua": true, "black": true, "blue": true, "fuchsia": true,
	"gray": true, "grey": true, "green": true, "lime": true,
	"maroon": true, "navy": true, "olive": true, "orange": true,
	"purple": true, "red": true, "silver": true, "teal": true,
	"white": true, "yellow": true, "transparent": true,
	"currentcolor": true,
}

// parseValue converts declaration value tokens into a Value, stripping
// a trailing !important and reporting it separately.
func parseValue(c *cursor, values []css.Token) (Value, bool) {
	var (
		val       Value
		text      strings.Builder
		important bool
	)

	for i := 0; i < len(values); i++ {
		tok := values[i]
		data := string(tok.Data)

		switch tok.TokenType {
		case css.WhitespaceToken:
			c.locate(tok.Data)
			text.WriteString(" ")

		case css.DelimToken:
			if data == "!" && isImportantTail(values[i+1:]) {
				// consume "!", optional whitespace, and "important"
				c.locate(tok.Data)
				for i+1 < len(values) {
					i++
					c.locate(values[i].Data)
					if values[i].TokenType == css.IdentToken {
						break
					}
				}
				important = true
				continue
			}
			c.locate(tok.Data)
			text.WriteString(data)

		case css.NumberToken:
			pos := c.locate(tok.Data)
			n, _ := strconv.ParseFloat(data, 64)
			val.add(ValuePart{Text: data, Kind: ValNumber, Value: n, Pos: pos})
			text.WriteString(data)

		case css.PercentageToken:
			pos := c.locate(tok.Data)
			n, _ := strconv.ParseFloat(strings.TrimSuffix(data, "%"), 64)
			val.add(ValuePart{Text: data, Kind: ValPercentage, Value: n, Units: "%", Pos: pos})
			text.WriteString(data)

		case css.DimensionToken:
			pos := c.locate(tok.Data)
			n, units := splitDimension(data)
			val.add(ValuePart{Text: data, Kind: ValDimension, Value: n, Units: units, Pos: pos})
			text.WriteString(data)

		case css.HashToken:
			pos := c.locate(tok.Data)
			val.add(ValuePart{Text: data, Kind: ValColor, Pos: pos})
			text.WriteString(data)

		case css.StringToken:
			pos := c.locate(tok.Data)
			val.add(ValuePart{Text: data, Kind: ValString, Pos: pos})
			text.WriteString(data)

		case css.URLToken:
			pos := c.locate(tok.Data)
			val.add(ValuePart{Text: data, Kind: ValURI, URI: urlTarget(data), Pos: pos})
			text.WriteString(data)

		case css.IdentToken:
			pos := c.locate(tok.Data)
			kind := ValIdent
			if namedColors[strings.ToLower(data)] {
				kind = ValColor
			}
			val.add(ValuePart{Text: data, Kind: kind, Pos: pos})
			text.WriteString(data)

		case css.FunctionToken:
			pos := c.locate(tok.Data)
			name := strings.ToLower(strings.TrimSuffix(data, "("))
			var b strings.Builder
			b.WriteString(data)
			depth := 1
			for depth > 0 && i+1 < len(values) {
				i++
				inner := values[i]
				c.locate(inner.Data)
				switch inner.TokenType {
				case css.FunctionToken, css.LeftParenthesisToken:
					depth++
				case css.RightParenthesisToken:
					depth--
				}
				b.Write(inner.Data)
			}
			kind := ValFunction
			if colorFns[name] {
				kind = ValColor
			}
			val.add(ValuePart{Text: b.String(), Kind: kind, Fn: name, Pos: pos})
			text.WriteString(b.String())

		default:
			c.locate(tok.Data)
			text.WriteString(data)
		}
	}

	val.Text = strings.TrimSpace(collapseSpaces(text.String()))
	if len(val.Parts) > 0 {
		val.Pos = val.Parts[0].Pos
	}
	return val, important
}

func (v *Value) add(p ValuePart) {
	v.Parts = append(v.Parts, p)
}

// isImportantTail reports whether the remaining tokens begin with an
// optional whitespace run followed by the ident "important".
func isImportantTail(rest []css.Token) bool {
	for _, tok := range rest {
		switch tok.TokenType {
		case css.WhitespaceToken:
			continue
		case css.IdentToken:
			return strings.EqualFold(string(tok.Data), "important")
		default:
			return false
		}
	}
	return false
}

// splitDimension separates a dimension token into value and unit.
func splitDimension(s string) (float64, string) {
	numEnd := 0
	for i, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' || r == '+' {
			numEnd = i + 1
		} else {
			break
		}
	}
	if numEnd == 0 {
		return 0, strings.ToLower(s)
	}
	n, _ := strconv.ParseFloat(s[:numEnd], 64)
	return n, strings.ToLower(s[numEnd:])
}

// urlTarget extracts the unquoted target of a url(...) token.
func urlTarget(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 4 && strings.EqualFold(s[:4], "url(") {
		s = s[4:]
	}
	s = strings.TrimSuffix(s, ")")
	return unquote(strings.TrimSpace(s))
}

// unquote removes surrounding quotes from a string.
func unquote(s string) string {
	if len(s) < 2 {
		return s
	}
	if (s[0] == '"' && s[len(s)-1] == '"') ||
		(s[0] == '\'' && s[len(s)-1] == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}
