package cssparse

import (
	"bytes"
	"sort"
)

// cursor maps parser output back to source positions. Token data is a
// verbatim slice of the input, so locating each token forward from the
// previous one reconstructs exact offsets without parser support.
type cursor struct {
	src        []byte
	off        int
	lineStarts []int
}

func newCursor(src []byte) *cursor {
	starts := []int{0}
	for i, b := range src {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &cursor{src: src, lineStarts: starts}
}

// locate finds data at or after the current offset, advances past it
// and returns its position. Unlocatable data (normalized by the lexer)
// leaves the cursor in place and yields the current position.
func (c *cursor) locate(data []byte) Position {
	if len(data) == 0 {
		return c.pos(c.off)
	}
	i := bytes.Index(c.src[c.off:], data)
	if i < 0 {
		return c.pos(c.off)
	}
	start := c.off + i
	c.off = start + len(data)
	return c.pos(start)
}

// here returns the position of the current offset.
func (c *cursor) here() Position {
	return c.pos(c.off)
}

func (c *cursor) pos(off int) Position {
	line := sort.Search(len(c.lineStarts), func(i int) bool {
		return c.lineStarts[i] > off
	})
	return Position{Line: line, Col: off - c.lineStarts[line-1] + 1}
}
